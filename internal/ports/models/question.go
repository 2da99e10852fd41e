package models

import (
	"time"

	"techblog/internal/vote"
)

// Content moderation statuses shared by questions and answers.
const (
	StatusActive  = "active"
	StatusFlagged = "flagged"
	StatusRemoved = "removed"
)

// Comment is embedded in the document it belongs to.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Question is a votable document. AuthorID is the decimal form of the
// author's user id; reputation changes from votes apply to that user.
type Question struct {
	ID               string     `bson:"_id" json:"id"`
	AuthorID         string     `bson:"author_id" json:"author_id"`
	Title            string     `bson:"title" json:"title"`
	Body             string     `bson:"body" json:"body"`
	Tags             []string   `bson:"tags" json:"tags"`
	Status           string     `bson:"status" json:"status"`
	AcceptedAnswerID string     `bson:"accepted_answer_id,omitempty" json:"accepted_answer_id,omitempty"`
	Votes            vote.State `bson:"votes" json:"votes"`
	Comments         []Comment  `bson:"comments" json:"comments"`
	ViewCount        int64      `bson:"view_count" json:"view_count"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
}

// CreateQuestionRequest defines the input for asking a question
type CreateQuestionRequest struct {
	Title string   `json:"title" binding:"required,min=10,max=200"`
	Body  string   `json:"body" binding:"required,min=20"`
	Tags  []string `json:"tags" binding:"required,min=1,max=5,dive,min=1,max=30"`
}

// CreateCommentRequest defines the input for commenting
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,min=1,max=600"`
}

// UpdateStatusRequest defines the admin moderation input
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active flagged removed"`
}
