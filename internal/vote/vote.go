package vote

import (
	"errors"
	"fmt"
)

// Direction is the polarity of a vote.
type Direction string

const (
	Upvote   Direction = "upvote"
	Downvote Direction = "downvote"
)

// Position is a voter's recorded stance on a target. None means the voter
// has no active vote on it.
type Position string

const (
	None Position = "none"
	Up   Position = "upvote"
	Down Position = "downvote"
)

var (
	ErrInvalidDirection = errors.New("invalid vote direction")
	ErrEmptyVoterID     = errors.New("empty voter id")
)

// ParseDirection validates a raw direction string from a request body.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case Upvote, Downvote:
		return Direction(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, raw)
	}
}

// State is a target's vote sets and derived score.
// Invariant: Score == len(Upvoters) - len(Downvoters), and a voter id
// appears in at most one of the two sets.
type State struct {
	Upvoters   []string `bson:"upvoters" json:"upvoters"`
	Downvoters []string `bson:"downvoters" json:"downvoters"`
	Score      int      `bson:"score" json:"score"`
}

// Transition describes how one voter's position changed.
type Transition struct {
	VoterID string
	From    Position
	To      Position
}

// Changed reports whether the voter's position actually moved. Re-voting
// in the same direction is a no-op and must not fire reputation deltas.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Apply computes the vote state after voterID casts a vote in direction d.
// The voter is removed from both sets before being added to the requested
// one, so mutual exclusivity holds regardless of prior state and repeating
// the same direction leaves the state unchanged.
func Apply(s State, voterID string, d Direction) (State, Transition, error) {
	if voterID == "" {
		return State{}, Transition{}, ErrEmptyVoterID
	}
	if d != Upvote && d != Downvote {
		return State{}, Transition{}, fmt.Errorf("%w: %q", ErrInvalidDirection, d)
	}

	tr := Transition{VoterID: voterID, From: PositionOf(s, voterID)}

	up := remove(s.Upvoters, voterID)
	down := remove(s.Downvoters, voterID)
	if d == Upvote {
		up = append(up, voterID)
		tr.To = Up
	} else {
		down = append(down, voterID)
		tr.To = Down
	}

	next := State{
		Upvoters:   up,
		Downvoters: down,
		Score:      len(up) - len(down),
	}
	return next, tr, nil
}

// PositionOf returns the voter's current position within a state.
func PositionOf(s State, voterID string) Position {
	if contains(s.Upvoters, voterID) {
		return Up
	}
	if contains(s.Downvoters, voterID) {
		return Down
	}
	return None
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
