package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionDeltasFirstUpvote(t *testing.T) {
	tr := Transition{VoterID: "7", From: None, To: Up}

	deltas, err := TransitionDeltas(TargetAnswer, tr, "42")
	require.NoError(t, err)
	require.Len(t, deltas, 1)
	assert.Equal(t, "42", deltas[0].UserID)
	assert.Equal(t, AnswerUpvotedPoints, deltas[0].Amount)
	assert.Equal(t, ReasonUpvoteReceived, deltas[0].Reason)
	assert.True(t, deltas[0].Capped)

	deltas, err = TransitionDeltas(TargetQuestion, tr, "42")
	require.NoError(t, err)
	require.Len(t, deltas, 1)
	assert.Equal(t, QuestionUpvotedPoints, deltas[0].Amount)
}

func TestTransitionDeltasFirstDownvote(t *testing.T) {
	tr := Transition{VoterID: "7", From: None, To: Down}

	deltas, err := TransitionDeltas(TargetQuestion, tr, "42")
	require.NoError(t, err)
	require.Len(t, deltas, 2)

	assert.Equal(t, "42", deltas[0].UserID)
	assert.Equal(t, DownvotedPoints, deltas[0].Amount)
	assert.False(t, deltas[0].Capped)

	// Casting a downvote costs the voter a point.
	assert.Equal(t, "7", deltas[1].UserID)
	assert.Equal(t, DownvoteCastPoints, deltas[1].Amount)
	assert.Equal(t, ReasonDownvoteCast, deltas[1].Reason)
}

func TestTransitionDeltasDownToUpIsAdditive(t *testing.T) {
	// Additive symmetry: the downvote penalties are refunded before the
	// upvote credit applies.
	tr := Transition{VoterID: "7", From: Down, To: Up}

	deltas, err := TransitionDeltas(TargetAnswer, tr, "42")
	require.NoError(t, err)
	require.Len(t, deltas, 3)

	assert.Equal(t, ReasonDownvoteRevoked, deltas[0].Reason)
	assert.Equal(t, -DownvotedPoints, deltas[0].Amount)
	assert.Equal(t, ReasonDownvoteRetracted, deltas[1].Reason)
	assert.Equal(t, -DownvoteCastPoints, deltas[1].Amount)
	assert.Equal(t, "7", deltas[1].UserID)
	assert.Equal(t, ReasonUpvoteReceived, deltas[2].Reason)
	assert.Equal(t, AnswerUpvotedPoints, deltas[2].Amount)

	authorTotal := 0
	for _, d := range deltas {
		if d.UserID == "42" {
			authorTotal += d.Amount
		}
	}
	assert.Equal(t, 2+15, authorTotal)
}

func TestTransitionDeltasUpToDown(t *testing.T) {
	tr := Transition{VoterID: "7", From: Up, To: Down}

	deltas, err := TransitionDeltas(TargetQuestion, tr, "42")
	require.NoError(t, err)
	require.Len(t, deltas, 3)

	assert.Equal(t, ReasonUpvoteRevoked, deltas[0].Reason)
	assert.Equal(t, -QuestionUpvotedPoints, deltas[0].Amount)
	assert.True(t, deltas[0].Capped)
	assert.Equal(t, ReasonDownvoteReceived, deltas[1].Reason)
	assert.Equal(t, ReasonDownvoteCast, deltas[2].Reason)
}

func TestTransitionDeltasNoChange(t *testing.T) {
	tr := Transition{VoterID: "7", From: Up, To: Up}

	deltas, err := TransitionDeltas(TargetAnswer, tr, "42")
	require.NoError(t, err)
	assert.Empty(t, deltas)
}

func TestTransitionDeltasUnknownAuthor(t *testing.T) {
	tr := Transition{VoterID: "7", From: None, To: Up}
	_, err := TransitionDeltas(TargetAnswer, tr, "")
	assert.ErrorIs(t, err, ErrUnknownAuthor)
}

func TestAcceptDeltas(t *testing.T) {
	deltas, err := AcceptDeltas("42", "9")
	require.NoError(t, err)
	require.Len(t, deltas, 2)

	assert.Equal(t, "42", deltas[0].UserID)
	assert.Equal(t, AnswerAcceptedPoints, deltas[0].Amount)
	assert.False(t, deltas[0].Capped, "accept bonus must not count against the daily cap")

	assert.Equal(t, "9", deltas[1].UserID)
	assert.Equal(t, AcceptGivenPoints, deltas[1].Amount)
	assert.False(t, deltas[1].Capped)

	_, err = AcceptDeltas("", "9")
	assert.ErrorIs(t, err, ErrUnknownAuthor)
}

func TestParseTargetType(t *testing.T) {
	tt, err := ParseTargetType("question")
	require.NoError(t, err)
	assert.Equal(t, TargetQuestion, tt)

	tt, err = ParseTargetType("answer")
	require.NoError(t, err)
	assert.Equal(t, TargetAnswer, tt)

	_, err = ParseTargetType("comment")
	assert.ErrorIs(t, err, ErrUnknownTargetType)
}
