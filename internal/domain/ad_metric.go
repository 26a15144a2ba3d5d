package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdMetricRecord is the audit document written for every processed
// impression/click event.
type AdMetricRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   string             `bson:"event_id" json:"event_id"`
	EventType string             `bson:"event_type" json:"event_type"`
	AdID      string             `bson:"ad_id" json:"ad_id"`
	MenuID    string             `bson:"menu_id,omitempty" json:"menu_id,omitempty"`
	Locale    string             `bson:"locale,omitempty" json:"locale,omitempty"`
	Forwarded bool               `bson:"forwarded" json:"forwarded"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
