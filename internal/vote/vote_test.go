package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireConsistent(t *testing.T, s State) {
	t.Helper()
	require.Equal(t, len(s.Upvoters)-len(s.Downvoters), s.Score)
	for _, id := range s.Upvoters {
		require.NotContains(t, s.Downvoters, id, "voter %s holds both positions", id)
	}
}

func TestApplyFreshTarget(t *testing.T) {
	s := State{}

	s, tr, err := Apply(s, "A", Upvote)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, s.Upvoters)
	assert.Empty(t, s.Downvoters)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, None, tr.From)
	assert.Equal(t, Up, tr.To)
	requireConsistent(t, s)

	s, tr, err = Apply(s, "B", Downvote)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, s.Upvoters)
	assert.Equal(t, []string{"B"}, s.Downvoters)
	assert.Equal(t, 0, s.Score)
	assert.True(t, tr.Changed())
	requireConsistent(t, s)

	s, _, err = Apply(s, "A", Downvote)
	require.NoError(t, err)
	assert.Empty(t, s.Upvoters)
	assert.ElementsMatch(t, []string{"A", "B"}, s.Downvoters)
	assert.Equal(t, -2, s.Score)
	requireConsistent(t, s)
}

func TestApplyIdempotent(t *testing.T) {
	s := State{}
	s, _, err := Apply(s, "A", Upvote)
	require.NoError(t, err)

	again, tr, err := Apply(s, "A", Upvote)
	require.NoError(t, err)
	assert.Equal(t, s.Upvoters, again.Upvoters)
	assert.Equal(t, s.Downvoters, again.Downvoters)
	assert.Equal(t, s.Score, again.Score)
	assert.False(t, tr.Changed())
}

func TestApplyDirectionSwitch(t *testing.T) {
	s := State{}
	s, _, err := Apply(s, "A", Upvote)
	require.NoError(t, err)
	before := s.Score

	s, tr, err := Apply(s, "A", Downvote)
	require.NoError(t, err)
	assert.NotContains(t, s.Upvoters, "A")
	assert.Contains(t, s.Downvoters, "A")
	assert.Equal(t, before-2, s.Score)
	assert.Equal(t, Up, tr.From)
	assert.Equal(t, Down, tr.To)
	requireConsistent(t, s)
}

func TestApplyMutualExclusivityFromCorruptState(t *testing.T) {
	// Even if stored state already violates the invariant, applying a
	// vote restores it.
	s := State{Upvoters: []string{"A"}, Downvoters: []string{"A"}, Score: 0}

	s, _, err := Apply(s, "A", Upvote)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, s.Upvoters)
	assert.Empty(t, s.Downvoters)
	requireConsistent(t, s)
}

func TestApplyInvalidInput(t *testing.T) {
	_, _, err := Apply(State{}, "", Upvote)
	assert.ErrorIs(t, err, ErrEmptyVoterID)

	_, _, err = Apply(State{}, "A", Direction("sideways"))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("upvote")
	require.NoError(t, err)
	assert.Equal(t, Upvote, d)

	d, err = ParseDirection("downvote")
	require.NoError(t, err)
	assert.Equal(t, Downvote, d)

	_, err = ParseDirection("UPVOTE")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestPositionOf(t *testing.T) {
	s := State{Upvoters: []string{"A"}, Downvoters: []string{"B"}, Score: 0}
	assert.Equal(t, Up, PositionOf(s, "A"))
	assert.Equal(t, Down, PositionOf(s, "B"))
	assert.Equal(t, None, PositionOf(s, "C"))
}

func TestApplyLongSequenceKeepsInvariant(t *testing.T) {
	s := State{}
	voters := []string{"A", "B", "C", "D", "E"}
	directions := []Direction{Upvote, Downvote, Upvote, Upvote, Downvote}

	for round := 0; round < 4; round++ {
		for i, v := range voters {
			d := directions[(i+round)%len(directions)]
			next, _, err := Apply(s, v, d)
			require.NoError(t, err)
			requireConsistent(t, next)
			s = next
		}
	}
}
