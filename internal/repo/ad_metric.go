package repo

import (
	"context"

	"github.com/restomenu/restomenu/internal/domain"
)

type AdMetricRepository interface {
	Create(ctx context.Context, record *domain.AdMetricRecord) error
	GetByAdID(ctx context.Context, adID string, limit int) ([]domain.AdMetricRecord, error)
	CountByAdID(ctx context.Context, adID, eventType string) (int64, error)
}
