package repository

import (
	"context"
	"errors"
	"fmt"

	"techblog/internal/apperr"
	"techblog/internal/vote"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VotableStore applies votes to question and answer documents.
type VotableStore interface {
	// ApplyVote atomically updates the target's vote sets and score and
	// returns the pre-image vote state plus the target's author id.
	ApplyVote(ctx context.Context, t vote.TargetType, targetID, voterID string, d vote.Direction) (vote.State, string, error)
}

type MongoVotableStore struct {
	questions *mongo.Collection
	answers   *mongo.Collection
}

func NewMongoVotableStore(db *mongo.Database) *MongoVotableStore {
	return &MongoVotableStore{
		questions: db.Collection("questions"),
		answers:   db.Collection("answers"),
	}
}

func (s *MongoVotableStore) collection(t vote.TargetType) *mongo.Collection {
	if t == vote.TargetAnswer {
		return s.answers
	}
	return s.questions
}

// voteFields is the slice of a target document the vote path reads back.
type voteFields struct {
	AuthorID string     `bson:"author_id"`
	Votes    vote.State `bson:"votes"`
}

// ApplyVote runs the whole remove-from-both / add-to-one / recompute-score
// cycle as a single aggregation-pipeline update, so concurrent votes on
// the same target serialize at the storage layer and no read-modify-write
// race can lose an update. The pre-image is returned so the caller can
// derive the voter's position transition without a second read.
func (s *MongoVotableStore) ApplyVote(ctx context.Context, t vote.TargetType, targetID, voterID string, d vote.Direction) (vote.State, string, error) {
	voter := bson.A{voterID}

	upvoters := bson.M{"$setDifference": bson.A{
		bson.M{"$ifNull": bson.A{"$votes.upvoters", bson.A{}}}, voter,
	}}
	downvoters := bson.M{"$setDifference": bson.A{
		bson.M{"$ifNull": bson.A{"$votes.downvoters", bson.A{}}}, voter,
	}}
	if d == vote.Upvote {
		upvoters = bson.M{"$setUnion": bson.A{upvoters, voter}}
	} else {
		downvoters = bson.M{"$setUnion": bson.A{downvoters, voter}}
	}

	// Stages apply in order, so the score stage sees the updated sets.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"votes.upvoters":   upvoters,
			"votes.downvoters": downvoters,
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"votes.score": bson.M{"$subtract": bson.A{
				bson.M{"$size": "$votes.upvoters"},
				bson.M{"$size": "$votes.downvoters"},
			}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	res := s.collection(t).FindOneAndUpdate(ctx, bson.M{"_id": targetID}, pipeline, opts)

	var prev voteFields
	if err := res.Decode(&prev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return vote.State{}, "", fmt.Errorf("%w: %s %s", apperr.ErrNotFound, t, targetID)
		}
		return vote.State{}, "", fmt.Errorf("%w: apply vote: %v", apperr.ErrStorage, err)
	}
	return prev.Votes, prev.AuthorID, nil
}
