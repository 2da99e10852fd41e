package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyApplier struct {
	failures int
	err      error
	calls    int
}

func (a *flakyApplier) ApplyTransition(_ context.Context, _ models.VoteTransitionMessage) error {
	a.calls++
	if a.calls <= a.failures {
		return a.err
	}
	return nil
}

func transitionFixture() models.VoteTransitionMessage {
	return models.VoteTransitionMessage{
		VoterID:    "7",
		TargetType: "question",
		TargetID:   "q1",
		AuthorID:   "42",
		From:       "none",
		To:         "up",
		OccurredAt: time.Now().UTC(),
	}
}

func TestApplyWithRetryRecoversFromStorageFailure(t *testing.T) {
	applier := &flakyApplier{
		failures: 3,
		err:      fmt.Errorf("%w: db down", apperr.ErrStorage),
	}

	err := applyWithRetry(context.Background(), applier, transitionFixture(), time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 4, applier.calls)
}

func TestApplyWithRetryReturnsInvalidImmediately(t *testing.T) {
	applier := &flakyApplier{
		failures: 10,
		err:      fmt.Errorf("%w: bad target type", apperr.ErrInvalidRequest),
	}

	err := applyWithRetry(context.Background(), applier, transitionFixture(), time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
	assert.Equal(t, 1, applier.calls)
}

func TestApplyWithRetryStopsOnContextCancel(t *testing.T) {
	applier := &flakyApplier{
		failures: 1000,
		err:      fmt.Errorf("%w: db down", apperr.ErrStorage),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := applyWithRetry(ctx, applier, transitionFixture(), 100*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	// The failing call keeps being retried, never skipped.
	assert.Equal(t, 1, applier.calls)
}
