package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	ImportQueued     ImportTaskStatus = "queued"
	ImportProcessing ImportTaskStatus = "processing"
	ImportCompleted  ImportTaskStatus = "completed"
	ImportFailed     ImportTaskStatus = "failed"
)

// ImportTask tracks a spreadsheet menu import. The imported categories and
// items themselves live in the backend; Mongo only keeps this bookkeeping.
type ImportTask struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status            ImportTaskStatus   `bson:"status" json:"status"`
	SpreadsheetID     string             `bson:"spreadsheet_id" json:"spreadsheet_id"`
	MenuID            string             `bson:"menu_id" json:"menu_id"`
	CategoriesCreated int                `bson:"categories_created" json:"categories_created"`
	ItemsCreated      int                `bson:"items_created" json:"items_created"`
	ErrorMessage      string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount        int                `bson:"retry_count" json:"retry_count"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
