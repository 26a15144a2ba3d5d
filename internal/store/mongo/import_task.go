package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/restomenu/restomenu/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ImportTaskRepository struct {
	collection *mongo.Collection
}

func NewImportTaskRepository(db *mongo.Database) *ImportTaskRepository {
	return &ImportTaskRepository{
		collection: db.Collection("import_tasks"),
	}
}

func (r *ImportTaskRepository) Create(ctx context.Context, task *domain.ImportTask) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to create import task: %w", err)
	}

	return nil
}

func (r *ImportTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ImportTask, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var task domain.ImportTask
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("import task not found")
		}
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return &task, nil
}

func (r *ImportTaskRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}

	if errorMsg != "" {
		update["$set"].(bson.M)["error_message"] = errorMsg
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update import task status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("import task not found")
	}

	return nil
}

func (r *ImportTaskRepository) Complete(ctx context.Context, id primitive.ObjectID, categories, items int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":             domain.ImportCompleted,
			"categories_created": categories,
			"items_created":      items,
			"updated_at":         time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to complete import task: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("import task not found")
	}

	return nil
}

func (r *ImportTaskRepository) IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"retry_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment retry count: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("import task not found")
	}

	return nil
}
