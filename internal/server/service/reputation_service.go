package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"
	"techblog/internal/server/repository"
	"techblog/internal/vote"
)

// ReputationUserStore is the slice of the user repository the reputation
// service needs.
type ReputationUserStore interface {
	AddReputation(ctx context.Context, userID uint, delta int) error
}

// ReputationEntryStore persists applied ledger entries.
type ReputationEntryStore interface {
	CreateEntry(ctx context.Context, entry *models.ReputationEntry) error
	// NetApplied sums the applied amounts for one user and target across
	// the given reasons.
	NetApplied(ctx context.Context, userID uint, targetType, targetID string, reasons []string) (int, error)
}

type ReputationService struct {
	users    ReputationUserStore
	entries  ReputationEntryStore
	capStore repository.CapStore
}

func NewReputationService(users ReputationUserStore, entries ReputationEntryStore, capStore repository.CapStore) *ReputationService {
	return &ReputationService{users: users, entries: entries, capStore: capStore}
}

// DailyBucket formats the UTC calendar day used for cap accounting.
func DailyBucket(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ApplyTransition applies the reputation deltas of one vote transition.
// Capped deltas are truncated to the author's remaining daily headroom;
// the truncated remainder is recorded but not credited.
func (s *ReputationService) ApplyTransition(ctx context.Context, msg models.VoteTransitionMessage) error {
	targetType, err := vote.ParseTargetType(msg.TargetType)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidRequest, err)
	}
	tr := vote.Transition{
		VoterID: msg.VoterID,
		From:    vote.Position(msg.From),
		To:      vote.Position(msg.To),
	}
	deltas, err := vote.TransitionDeltas(targetType, tr, msg.AuthorID)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidRequest, err)
	}

	bucket := DailyBucket(msg.OccurredAt)
	return s.apply(ctx, deltas, msg.TargetType, msg.TargetID, bucket)
}

// ApplyAccept applies the accept bonuses, which are exempt from the cap.
func (s *ReputationService) ApplyAccept(ctx context.Context, answerAuthorID, askerID, answerID string) error {
	deltas, err := vote.AcceptDeltas(answerAuthorID, askerID)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidRequest, err)
	}
	bucket := DailyBucket(time.Now())
	return s.apply(ctx, deltas, string(vote.TargetAnswer), answerID, bucket)
}

func (s *ReputationService) apply(ctx context.Context, deltas []vote.Delta, targetType, targetID, bucket string) error {
	for _, d := range deltas {
		userID, err := parseUserID(d.UserID)
		if err != nil {
			return fmt.Errorf("%w: delta user %q: %v", apperr.ErrInvalidRequest, d.UserID, err)
		}

		amount := d.Amount
		if d.Capped && amount < 0 {
			// Revoking a credit the cap truncated must not debit more
			// than the author actually received for this target.
			credited, err := s.entries.NetApplied(ctx, userID, targetType, targetID,
				[]string{string(vote.ReasonUpvoteReceived), string(vote.ReasonUpvoteRevoked)})
			if err != nil {
				return err
			}
			if credited < 0 {
				credited = 0
			}
			if amount < -credited {
				amount = -credited
			}
		}

		applied := amount
		if d.Capped && amount != 0 {
			applied, err = s.capStore.Consume(ctx, userID, bucket, amount, vote.DailyUpvoteCap)
			if err != nil {
				return err
			}
		}
		if applied != d.Amount {
			log.Printf("daily cap truncated %s for user %d: %d -> %d", d.Reason, userID, d.Amount, applied)
		}

		if applied != 0 {
			if err := s.users.AddReputation(ctx, userID, applied); err != nil {
				return err
			}
		}

		entry := &models.ReputationEntry{
			UserID:      userID,
			Amount:      d.Amount,
			Applied:     applied,
			Reason:      string(d.Reason),
			TargetType:  targetType,
			TargetID:    targetID,
			DailyBucket: bucket,
		}
		if err := s.entries.CreateEntry(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func parseUserID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
