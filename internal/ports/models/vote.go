package models

import "time"

// VoteRequest defines the input for casting a vote. Target type and id
// come from the URL path; only the direction rides in the body.
type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=upvote downvote"`
}

// VoteResponse carries the target's new score back to the client.
type VoteResponse struct {
	Score int `json:"score"`
}

// VoteTransitionMessage is the Kafka payload published after a vote
// changes a voter's position. The reputation worker consumes it.
type VoteTransitionMessage struct {
	VoterID    string    `json:"voter_id"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	AuthorID   string    `json:"author_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}
