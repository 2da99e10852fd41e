package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"
	"techblog/internal/server/middleware"
	"techblog/internal/vote"

	"github.com/google/uuid"
)

// AnswerStore is the slice of the answer repository the service needs.
type AnswerStore interface {
	Create(ctx context.Context, a *models.Answer) error
	FindByID(ctx context.Context, id string) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID string) ([]models.Answer, error)
	AddComment(ctx context.Context, id string, comment models.Comment) error
	UpdateStatus(ctx context.Context, id, status string) error
	MarkAccepted(ctx context.Context, id string, accepted bool) error
}

// QuestionAccepter is the slice of the question repository needed to
// record an accepted answer.
type QuestionAccepter interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
	SetAcceptedAnswer(ctx context.Context, id, answerID string) error
}

// AcceptRewarder fires the accept reputation bonuses.
type AcceptRewarder interface {
	ApplyAccept(ctx context.Context, answerAuthorID, askerID, answerID string) error
}

type AnswerService struct {
	repo       AnswerStore
	questions  QuestionAccepter
	reputation AcceptRewarder
}

func NewAnswerService(repo AnswerStore, questions QuestionAccepter, reputation AcceptRewarder) *AnswerService {
	return &AnswerService{repo: repo, questions: questions, reputation: reputation}
}

func (s *AnswerService) CreateAnswer(ctx context.Context, session *middleware.Session, questionID string, req models.CreateAnswerRequest) (*models.Answer, error) {
	q, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q.Status != models.StatusActive {
		return nil, fmt.Errorf("%w: question is not open for answers", apperr.ErrConflict)
	}

	now := time.Now().UTC()
	a := &models.Answer{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		AuthorID:   session.VoterID(),
		Body:       req.Body,
		Status:     models.StatusActive,
		Votes:      vote.State{Upvoters: []string{}, Downvoters: []string{}},
		Comments:   []models.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnswerService) ListAnswers(ctx context.Context, questionID string) ([]models.Answer, error) {
	return s.repo.ListByQuestion(ctx, questionID)
}

// AcceptAnswer marks an answer accepted. Only the question's asker may
// accept, one answer per question; the accept bonuses are applied
// immediately and are exempt from the daily cap.
func (s *AnswerService) AcceptAnswer(ctx context.Context, session *middleware.Session, answerID string) error {
	a, err := s.repo.FindByID(ctx, answerID)
	if err != nil {
		return err
	}
	q, err := s.questions.FindByID(ctx, a.QuestionID)
	if err != nil {
		return err
	}
	if q.AuthorID != session.VoterID() {
		return fmt.Errorf("%w: only the asker may accept an answer", apperr.ErrForbidden)
	}
	if q.AcceptedAnswerID == answerID {
		return nil
	}
	if q.AcceptedAnswerID != "" {
		return fmt.Errorf("%w: question already has an accepted answer", apperr.ErrConflict)
	}

	if err := s.repo.MarkAccepted(ctx, answerID, true); err != nil {
		return err
	}
	if err := s.questions.SetAcceptedAnswer(ctx, a.QuestionID, answerID); err != nil {
		return err
	}

	if err := s.reputation.ApplyAccept(ctx, a.AuthorID, q.AuthorID, answerID); err != nil {
		// The acceptance stands; the missed bonus is logged.
		log.Printf("failed to apply accept bonuses for answer %s: %v", answerID, err)
	}
	return nil
}

func (s *AnswerService) AddComment(ctx context.Context, session *middleware.Session, id string, req models.CreateCommentRequest) (*models.Comment, error) {
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
func (s *AnswerService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.repo.UpdateStatus(ctx, id, status)
}
