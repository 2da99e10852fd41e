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

type QuestionRepository struct {
	coll *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{coll: db.Collection("questions")}
}

func (r *QuestionRepository) Create(ctx context.Context, q *models.Question) error {
	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("%w: insert question: %v", apperr.ErrStorage, err)
	}
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var q models.Question
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: question %s", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find question: %v", apperr.ErrStorage, err)
	}
	return &q, nil
}

// List returns active questions, newest first, optionally filtered by tag.
func (r *QuestionRepository) List(ctx context.Context, tag string, page, pageSize int64) ([]models.Question, error) {
	filter := bson.M{"status": models.StatusActive}
	if tag != "" {
		filter["tags"] = tag
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list questions: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	questions := make([]models.Question, 0, pageSize)
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("%w: decode questions: %v", apperr.ErrStorage, err)
	}
	return questions, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: delete question: %v", apperr.ErrStorage, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: question %s", apperr.ErrNotFound, id)
	}
	return nil
}

func (r *QuestionRepository) AddComment(ctx context.Context, id string, comment models.Comment) error {
	return r.pushUpdate(ctx, id, bson.M{"$push": bson.M{"comments": comment}})
}

func (r *QuestionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.pushUpdate(ctx, id, bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}})
}

func (r *QuestionRepository) SetAcceptedAnswer(ctx context.Context, id, answerID string) error {
	return r.pushUpdate(ctx, id, bson.M{"$set": bson.M{"accepted_answer_id": answerID, "updated_at": time.Now().UTC()}})
}

func (r *QuestionRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.pushUpdate(ctx, id, bson.M{"$inc": bson.M{"view_count": 1}})
}

func (r *QuestionRepository) pushUpdate(ctx context.Context, id string, update bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("%w: update question: %v", apperr.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: question %s", apperr.ErrNotFound, id)
	}
	return nil
}
