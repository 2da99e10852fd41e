package repository

import (
	"context"
	"fmt"
	"time"

	"techblog/internal/apperr"
	"techblog/internal/ports/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TagRepository struct {
	coll *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{coll: db.Collection("tags")}
}

func (r *TagRepository) Upsert(ctx context.Context, tag *models.Tag) error {
	filter := bson.M{"_id": tag.Name}
	update := bson.M{
		"$set":         bson.M{"definition": tag.Definition},
		"$setOnInsert": bson.M{"usage_count": int64(0), "created_at": time.Now().UTC()},
	}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: upsert tag: %v", apperr.ErrStorage, err)
	}
	return nil
}

// AdjustUsage moves each tag's usage counter by delta with an atomic $inc,
// creating missing tags on first use.
func (r *TagRepository) AdjustUsage(ctx context.Context, names []string, delta int64) error {
	for _, name := range names {
		filter := bson.M{"_id": name}
		update := bson.M{
			"$inc":         bson.M{"usage_count": delta},
			"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
		}
		if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("%w: adjust tag usage %q: %v", apperr.ErrStorage, name, err)
		}
	}
	return nil
}

func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "usage_count", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list tags: %v", apperr.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var tags []models.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("%w: decode tags: %v", apperr.ErrStorage, err)
	}
	return tags, nil
}
