package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/codebabbler/SemesterSaat/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedbackRepo handles the persistence of labeled classifier feedback.
type FeedbackRepo struct {
	collection *mongo.Collection
}

// NewFeedbackRepo creates a new FeedbackRepo with the given MongoDB client, database name, and collection name.
func NewFeedbackRepo(client *mongo.Client, dbName, collectionName string) *FeedbackRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &FeedbackRepo{
		collection: collection,
	}
}

// Save inserts a feedback example into the repository.
func (r *FeedbackRepo) Save(ctx context.Context, feedback *dmn.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("feedback already recorded")
		}
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// All retrieves every stored feedback example, oldest first.
func (r *FeedbackRepo) All(ctx context.Context) ([]*dmn.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var feedback []*dmn.Feedback
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return feedback, nil
}
