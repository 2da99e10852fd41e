package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"
	"techblog/internal/server/repository"
	"techblog/internal/vote"
)

// TransitionPublisher hands vote transitions to the reputation pipeline.
type TransitionPublisher interface {
	Publish(ctx context.Context, msg models.VoteTransitionMessage) error
}

// storageRetries bounds retries of the vote operation on transient
// storage failures. The atomic store update makes the retry safe.
const storageRetries = 3

type VoteService struct {
	store     repository.VotableStore
	publisher TransitionPublisher
}

func NewVoteService(store repository.VotableStore, publisher TransitionPublisher) *VoteService {
	return &VoteService{store: store, publisher: publisher}
}

// CastVote applies one vote end-to-end and returns the target's new score.
// Re-voting in the same direction is a no-op: the stored state does not
// change and no transition is published.
func (s *VoteService) CastVote(ctx context.Context, voterID, rawTargetType, targetID, rawDirection string) (int, error) {
	if voterID == "" {
		return 0, fmt.Errorf("%w: missing voter identity", apperr.ErrUnauthorized)
	}
	targetType, err := vote.ParseTargetType(rawTargetType)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrInvalidRequest, err)
	}
	direction, err := vote.ParseDirection(rawDirection)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrInvalidRequest, err)
	}
	if targetID == "" {
		return 0, fmt.Errorf("%w: missing target id", apperr.ErrInvalidRequest)
	}

	var prev vote.State
	var authorID string
	for attempt := 0; ; attempt++ {
		prev, authorID, err = s.store.ApplyVote(ctx, targetType, targetID, voterID, direction)
		if err == nil {
			break
		}
		if !apperr.Retryable(err) || attempt >= storageRetries-1 {
			return 0, err
		}
		log.Printf("vote storage failure (attempt %d/%d): %v", attempt+1, storageRetries, err)
	}

	// The store already persisted the new state; replay the same pure
	// operation on the pre-image to get the new score and transition.
	// If a retried attempt follows an update whose response was lost,
	// the pre-image already holds the voter's new position, the replay
	// reads as unchanged, and no transition is published: the vote
	// stays correct, the reputation event is at-most-once.
	next, tr, err := vote.Apply(prev, voterID, direction)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrInvalidRequest, err)
	}

	if tr.Changed() {
		msg := models.VoteTransitionMessage{
			VoterID:    voterID,
			TargetType: string(targetType),
			TargetID:   targetID,
			AuthorID:   authorID,
			From:       string(tr.From),
			To:         string(tr.To),
			OccurredAt: time.Now().UTC(),
		}
		// The vote itself is already persisted; a publish failure loses only the
		// reputation side effect, so log rather than fail the request.
		if err := s.publisher.Publish(ctx, msg); err != nil {
			log.Printf("failed to publish vote transition for %s %s: %v", targetType, targetID, err)
		}
	}

	return next.Score, nil
}
