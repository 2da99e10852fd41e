package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"
	"techblog/internal/server/middleware"
	"techblog/internal/vote"

	"github.com/google/uuid"
)

// QuestionStore is the slice of the question repository the service needs.
type QuestionStore interface {
	Create(ctx context.Context, q *models.Question) error
	FindByID(ctx context.Context, id string) (*models.Question, error)
	List(ctx context.Context, tag string, page, pageSize int64) ([]models.Question, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, id string, comment models.Comment) error
	UpdateStatus(ctx context.Context, id, status string) error
	IncrementViewCount(ctx context.Context, id string) error
}

// TagCounter maintains tag usage counts.
type TagCounter interface {
	AdjustUsage(ctx context.Context, names []string, delta int64) error
}

type QuestionService struct {
	repo QuestionStore
	tags TagCounter
}

func NewQuestionService(repo QuestionStore, tags TagCounter) *QuestionService {
	return &QuestionService{repo: repo, tags: tags}
}

// CreateQuestion creates the document and bumps each tag's usage counter.
func (s *QuestionService) CreateQuestion(ctx context.Context, session *middleware.Session, req models.CreateQuestionRequest) (*models.Question, error) {
	now := time.Now().UTC()
	q := &models.Question{
		ID:        uuid.NewString(),
		AuthorID:  session.VoterID(),
		Title:     strings.TrimSpace(req.Title),
		Body:      req.Body,
		Tags:      normalizeTags(req.Tags),
		Status:    models.StatusActive,
		Votes:     vote.State{Upvoters: []string{}, Downvoters: []string{}},
		Comments:  []models.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	if err := s.tags.AdjustUsage(ctx, q.Tags, 1); err != nil {
		// The question exists either way; counter drift is logged.
		log.Printf("failed to bump tag usage for question %s: %v", q.ID, err)
	}
	return q, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status == models.StatusRemoved {
		return nil, fmt.Errorf("%w: question %s", apperr.ErrNotFound, id)
	}
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		log.Printf("failed to bump view count for question %s: %v", id, err)
	}
	return q, nil
}

func (s *QuestionService) ListQuestions(ctx context.Context, tag string, page, pageSize int64) ([]models.Question, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.List(ctx, strings.ToLower(strings.TrimSpace(tag)), page, pageSize)
}

// DeleteQuestion removes a question. Only the author or an admin may.
func (s *QuestionService) DeleteQuestion(ctx context.Context, session *middleware.Session, id string) error {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if q.AuthorID != session.VoterID() && !session.IsAdmin {
		return fmt.Errorf("%w: not the question author", apperr.ErrForbidden)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.tags.AdjustUsage(ctx, q.Tags, -1); err != nil {
		log.Printf("failed to drop tag usage for question %s: %v", id, err)
	}
	return nil
}

func (s *QuestionService) AddComment(ctx context.Context, session *middleware.Session, id string, req models.CreateCommentRequest) (*models.Comment, error) {
	comment := models.Comment{
		ID:        uuid.NewString(),
		AuthorID:  session.VoterID(),
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddComment(ctx, id, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateStatus is the admin moderation transition.
func (s *QuestionService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
