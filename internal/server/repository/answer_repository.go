package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnswerRepository struct {
	coll *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{coll: db.Collection("answers")}
}

func (r *AnswerRepository) Create(ctx context.Context, a *models.Answer) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("%w: insert answer: %v", apperr.ErrStorage, err)
	}
	return nil
}

func (r *AnswerRepository) FindByID(ctx context.Context, id string) (*models.Answer, error) {
	var a models.Answer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: answer %s", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find answer: %v", apperr.ErrStorage, err)
	}
	return &a, nil
}

// ListByQuestion returns a question's answers, accepted first, then by
// score descending.
func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID string) ([]models.Answer, error) {
	filter := bson.M{"question_id": questionID, "status": models.StatusActive}
	opts := options.Find().SetSort(bson.D{
		{Key: "accepted", Value: -1},
		{Key: "votes.score", Value: -1},
		{Key: "created_at", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list answers: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var answers []models.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, fmt.Errorf("%w: decode answers: %v", apperr.ErrStorage, err)
	}
	return answers, nil
}

func (r *AnswerRepository) AddComment(ctx context.Context, id string, comment models.Comment) error {
	return r.update(ctx, id, bson.M{"$push": bson.M{"comments": comment}})
}

func (r *AnswerRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}})
}

func (r *AnswerRepository) MarkAccepted(ctx context.Context, id string, accepted bool) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{"accepted": accepted, "updated_at": time.Now().UTC()}})
}

func (r *AnswerRepository) update(ctx context.Context, id string, update bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("%w: update answer: %v", apperr.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: answer %s", apperr.ErrNotFound, id)
	}
	return nil
}
