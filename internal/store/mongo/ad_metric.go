package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/restomenu/restomenu/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdMetricRepository struct {
	collection *mongo.Collection
}

func NewAdMetricRepository(db *mongo.Database) *AdMetricRepository {
	return &AdMetricRepository{
		collection: db.Collection("ad_metrics"),
	}
}

func (r *AdMetricRepository) Create(ctx context.Context, record *domain.AdMetricRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		// the unique event_id index makes redelivered events harmless
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to create ad metric record: %w", err)
	}

	return nil
}

func (r *AdMetricRepository) GetByAdID(ctx context.Context, adID string, limit int) ([]domain.AdMetricRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"ad_id": adID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get ad metric records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []domain.AdMetricRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode ad metric records: %w", err)
	}

	return records, nil
}

func (r *AdMetricRepository) CountByAdID(ctx context.Context, adID, eventType string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"ad_id": adID, "event_type": eventType})
	if err != nil {
		return 0, fmt.Errorf("failed to count ad metric records: %w", err)
	}

	return count, nil
}
