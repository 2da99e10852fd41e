package service

import (
	"context"
	"fmt"
	"testing"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"
	"techblog/internal/server/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryQuestionStore struct {
	questions map[string]*models.Question
}

func newMemoryQuestionStore() *memoryQuestionStore {
	return &memoryQuestionStore{questions: make(map[string]*models.Question)}
}

func (s *memoryQuestionStore) Create(_ context.Context, q *models.Question) error {
	s.questions[q.ID] = q
	return nil
}

func (s *memoryQuestionStore) FindByID(_ context.Context, id string) (*models.Question, error) {
	q, ok := s.questions[id]
	if !ok {
		return nil, fmt.Errorf("%w: question %s", apperr.ErrNotFound, id)
	}
	copied := *q
	return &copied, nil
}

func (s *memoryQuestionStore) List(context.Context, string, int64, int64) ([]models.Question, error) {
	var out []models.Question
	for _, q := range s.questions {
		out = append(out, *q)
	}
	return out, nil
}

func (s *memoryQuestionStore) Delete(_ context.Context, id string) error {
	if _, ok := s.questions[id]; !ok {
		return fmt.Errorf("%w: question %s", apperr.ErrNotFound, id)
	}
	delete(s.questions, id)
	return nil
}

func (s *memoryQuestionStore) AddComment(_ context.Context, id string, comment models.Comment) error {
	q, ok := s.questions[id]
	if !ok {
		return fmt.Errorf("%w: question %s", apperr.ErrNotFound, id)
	}
	q.Comments = append(q.Comments, comment)
	return nil
}

func (s *memoryQuestionStore) UpdateStatus(_ context.Context, id, status string) error {
	q, ok := s.questions[id]
	if !ok {
		return fmt.Errorf("%w: question %s", apperr.ErrNotFound, id)
	}
	q.Status = status
	return nil
}

func (s *memoryQuestionStore) IncrementViewCount(_ context.Context, id string) error {
	if q, ok := s.questions[id]; ok {
		q.ViewCount++
	}
	return nil
}

type recordingTagCounter struct {
	adjustments map[string]int64
}

func newRecordingTagCounter() *recordingTagCounter {
	return &recordingTagCounter{adjustments: make(map[string]int64)}
}

func (c *recordingTagCounter) AdjustUsage(_ context.Context, names []string, delta int64) error {
	for _, n := range names {
		c.adjustments[n] += delta
	}
	return nil
}

func session(userID uint, admin bool) *middleware.Session {
	return &middleware.Session{UserID: userID, Username: "tester", IsAdmin: admin}
}

func TestCreateQuestionNormalizesTagsAndBumpsUsage(t *testing.T) {
	store := newMemoryQuestionStore()
	tags := newRecordingTagCounter()
	svc := NewQuestionService(store, tags)

	req := models.CreateQuestionRequest{
		Title: "How do I use channels in Go?",
		Body:  "I keep deadlocking my goroutines, what am I doing wrong?",
		Tags:  []string{"Go", " go ", "Concurrency"},
	}
	q, err := svc.CreateQuestion(context.Background(), session(7, false), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "concurrency"}, q.Tags)
	assert.Equal(t, "7", q.AuthorID)
	assert.Equal(t, models.StatusActive, q.Status)
	assert.Equal(t, 0, q.Votes.Score)
	assert.NotEmpty(t, q.ID)

	assert.Equal(t, int64(1), tags.adjustments["go"])
	assert.Equal(t, int64(1), tags.adjustments["concurrency"])
}

func TestDeleteQuestionAuthorization(t *testing.T) {
	store := newMemoryQuestionStore()
	tags := newRecordingTagCounter()
	svc := NewQuestionService(store, tags)

	q, err := svc.CreateQuestion(context.Background(), session(7, false), models.CreateQuestionRequest{
		Title: "A sufficiently long question title",
		Body:  "A sufficiently long question body for the test.",
		Tags:  []string{"go"},
	})
	require.NoError(t, err)

	err = svc.DeleteQuestion(context.Background(), session(8, false), q.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// Admins may delete on behalf of others.
	err = svc.DeleteQuestion(context.Background(), session(1, true), q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), tags.adjustments["go"], "usage count returns to zero after delete")
}

func TestGetQuestionHidesRemoved(t *testing.T) {
	store := newMemoryQuestionStore()
	svc := NewQuestionService(store, newRecordingTagCounter())

	q, err := svc.CreateQuestion(context.Background(), session(7, false), models.CreateQuestionRequest{
		Title: "A sufficiently long question title",
		Body:  "A sufficiently long question body for the test.",
		Tags:  []string{"go"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), q.ID, models.StatusRemoved))

	_, err = svc.GetQuestion(context.Background(), q.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetQuestionBumpsViewCount(t *testing.T) {
	store := newMemoryQuestionStore()
	svc := NewQuestionService(store, newRecordingTagCounter())

	q, err := svc.CreateQuestion(context.Background(), session(7, false), models.CreateQuestionRequest{
		Title: "A sufficiently long question title",
		Body:  "A sufficiently long question body for the test.",
		Tags:  []string{"go"},
	})
	require.NoError(t, err)

	_, err = svc.GetQuestion(context.Background(), q.ID)
	require.NoError(t, err)
	_, err = svc.GetQuestion(context.Background(), q.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), store.questions[q.ID].ViewCount)
}
