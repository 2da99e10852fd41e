package vote

import "errors"

// TargetType distinguishes the two votable entities.
type TargetType string

const (
	TargetQuestion TargetType = "question"
	TargetAnswer   TargetType = "answer"
)

var ErrUnknownTargetType = errors.New("unknown target type")

// ParseTargetType validates a raw target type from a request path.
func ParseTargetType(raw string) (TargetType, error) {
	switch TargetType(raw) {
	case TargetQuestion, TargetAnswer:
		return TargetType(raw), nil
	default:
		return "", ErrUnknownTargetType
	}
}

// Reputation point values as documented for the community.
const (
	AnswerUpvotedPoints   = 15
	QuestionUpvotedPoints = 10
	AnswerAcceptedPoints  = 15
	AcceptGivenPoints     = 2
	DownvotedPoints       = -2
	DownvoteCastPoints    = -1

	// DailyUpvoteCap bounds reputation gained from received upvotes per
	// author per UTC day. Accept bonuses are exempt.
	DailyUpvoteCap = 200
)

// DeltaReason tags a reputation delta with the event that produced it.
type DeltaReason string

const (
	ReasonUpvoteReceived    DeltaReason = "upvote_received"
	ReasonUpvoteRevoked     DeltaReason = "upvote_revoked"
	ReasonDownvoteReceived  DeltaReason = "downvote_received"
	ReasonDownvoteRevoked   DeltaReason = "downvote_revoked"
	ReasonDownvoteCast      DeltaReason = "downvote_cast"
	ReasonDownvoteRetracted DeltaReason = "downvote_retracted"
	ReasonAnswerAccepted    DeltaReason = "answer_accepted"
	ReasonAcceptGiven       DeltaReason = "accept_given"
)

// Delta is a single reputation adjustment to one user.
type Delta struct {
	UserID string
	Amount int
	Reason DeltaReason
	// Capped deltas count against the author's daily upvote cap.
	Capped bool
}

var ErrUnknownAuthor = errors.New("target has no resolvable author")

// upvotePoints returns the received-upvote value for a target type.
func upvotePoints(t TargetType) int {
	if t == TargetAnswer {
		return AnswerUpvotedPoints
	}
	return QuestionUpvotedPoints
}

// TransitionDeltas translates one voter's position change on a target into
// reputation deltas. Transitions are additive-symmetric: leaving a
// position refunds its deltas, entering the new position applies its own.
// A no-op transition (same position) yields no deltas, which keeps
// re-voting idempotent with respect to reputation.
func TransitionDeltas(t TargetType, tr Transition, authorID string) ([]Delta, error) {
	if authorID == "" {
		return nil, ErrUnknownAuthor
	}
	if !tr.Changed() {
		return nil, nil
	}

	var deltas []Delta

	switch tr.From {
	case Up:
		deltas = append(deltas, Delta{
			UserID: authorID,
			Amount: -upvotePoints(t),
			Reason: ReasonUpvoteRevoked,
			Capped: true,
		})
	case Down:
		deltas = append(deltas,
			Delta{UserID: authorID, Amount: -DownvotedPoints, Reason: ReasonDownvoteRevoked},
			Delta{UserID: tr.VoterID, Amount: -DownvoteCastPoints, Reason: ReasonDownvoteRetracted},
		)
	}

	switch tr.To {
	case Up:
		deltas = append(deltas, Delta{
			UserID: authorID,
			Amount: upvotePoints(t),
			Reason: ReasonUpvoteReceived,
			Capped: true,
		})
	case Down:
		deltas = append(deltas,
			Delta{UserID: authorID, Amount: DownvotedPoints, Reason: ReasonDownvoteReceived},
			Delta{UserID: tr.VoterID, Amount: DownvoteCastPoints, Reason: ReasonDownvoteCast},
		)
	}

	return deltas, nil
}

// AcceptDeltas returns the deltas fired when an asker accepts an answer.
// Both bonuses are exempt from the daily cap.
func AcceptDeltas(answerAuthorID, askerID string) ([]Delta, error) {
	if answerAuthorID == "" {
		return nil, ErrUnknownAuthor
	}
	return []Delta{
		{UserID: answerAuthorID, Amount: AnswerAcceptedPoints, Reason: ReasonAnswerAccepted},
		{UserID: askerID, Amount: AcceptGivenPoints, Reason: ReasonAcceptGiven},
	}, nil
}
