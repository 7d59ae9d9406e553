package mongo

import (
	"context"

	"fittrack/tracker-api/internal/domain"
	"fittrack/tracker-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const foodLogCollectionName = "foodlog"

// mongoFoodLogRepository implements repository.FoodLogRepository.
type mongoFoodLogRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodLogRepository creates a new FoodLog repository backed by
// MongoDB.
func NewMongoFoodLogRepository(db *mongo.Database) repository.FoodLogRepository {
	return &mongoFoodLogRepository{
		collection: db.Collection(foodLogCollectionName),
	}
}

// Create inserts a new food log and returns its assigned ID.
func (r *mongoFoodLogRepository) Create(ctx context.Context, log *domain.FoodLog) (primitive.ObjectID, error) {
	log.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, repository.ErrInsertFailed
	}
	return insertedID, nil
}

// ListByUser returns the user's food logs in insertion order, narrowed to
// a single date when logDate is non-empty.
func (r *mongoFoodLogRepository) ListByUser(ctx context.Context, userID, logDate string) ([]domain.FoodLog, error) {
	var logs []domain.FoodLog

	findOptions := options.Find().SetSort(insertionOrder())

	cursor, err := r.collection.Find(ctx, foodLogFilter(userID, logDate), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// EnsureFoodLogIndexes creates indexes for the food log collection.
func EnsureFoodLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "log_date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal: listing still works without the index.
	}
}
