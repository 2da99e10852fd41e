package models

import (
	"time"

	"techblog/internal/vote"
)

// Answer is a votable document attached to a question.
type Answer struct {
	ID         string     `bson:"_id" json:"id"`
	QuestionID string     `bson:"question_id" json:"question_id"`
	AuthorID   string     `bson:"author_id" json:"author_id"`
	Body       string     `bson:"body" json:"body"`
	Status     string     `bson:"status" json:"status"`
	Accepted   bool       `bson:"accepted" json:"accepted"`
	Votes      vote.State `bson:"votes" json:"votes"`
	Comments   []Comment  `bson:"comments" json:"comments"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}

// CreateAnswerRequest defines the input for answering a question
type CreateAnswerRequest struct {
	Body string `json:"body" binding:"required,min=20"`
}
