package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restomenu/restomenu/internal/adapter"
	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/queue"
	"github.com/restomenu/restomenu/internal/repo"
	"go.uber.org/zap"
)

// AdMetricsService handles impression/click beacons from public menus.
// Beacons are fire-and-forget: the handler only publishes; the worker writes
// the audit record and forwards the increment to the backend counter.
type AdMetricsService struct {
	metricRepo repo.AdMetricRepository
	ads        *adapter.Ads
	broker     queue.Broker
	logger     *zap.SugaredLogger
}

func NewAdMetricsService(
	metricRepo repo.AdMetricRepository,
	ads *adapter.Ads,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *AdMetricsService {
	return &AdMetricsService{
		metricRepo: metricRepo,
		ads:        ads,
		broker:     broker,
		logger:     logger,
	}
}

func (s *AdMetricsService) RecordEvent(ctx context.Context, eventType, adID, menuID, locale string) error {
	if eventType != domain.AdEventImpression && eventType != domain.AdEventClick {
		return fmt.Errorf("unknown ad event type %q", eventType)
	}

	event := domain.AdMetricEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		AdID:      adID,
		MenuID:    menuID,
		Locale:    locale,
		Timestamp: time.Now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueAdMetrics, eventBytes); err != nil {
		s.logger.Errorw("failed to publish ad metric event", "ad_id", adID, "error", err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// ProcessEvent stores the audit record, then forwards the increment. The
// unique event_id index dedupes broker redeliveries; increments are
// commutative so consumption order does not matter.
func (s *AdMetricsService) ProcessEvent(ctx context.Context, event domain.AdMetricEvent) error {
	record := &domain.AdMetricRecord{
		EventID:   event.EventID,
		EventType: event.EventType,
		AdID:      event.AdID,
		MenuID:    event.MenuID,
		Locale:    event.Locale,
		Timestamp: event.Timestamp,
	}

	if err := s.metricRepo.Create(ctx, record); err != nil {
		s.logger.Errorw("failed to create ad metric record", "ad_id", event.AdID, "error", err)
		return fmt.Errorf("failed to create ad metric record: %w", err)
	}

	if err := s.ads.ForwardMetric(ctx, event.AdID, event.EventType); err != nil {
		s.logger.Errorw("failed to forward ad metric", "ad_id", event.AdID, "error", err)
		return err
	}

	s.logger.Infow("ad metric processed", "ad_id", event.AdID, "event_type", event.EventType)

	return nil
}

func (s *AdMetricsService) GetAdMetrics(ctx context.Context, adID string, limit int) ([]domain.AdMetricRecord, error) {
	records, err := s.metricRepo.GetByAdID(ctx, adID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get ad metrics: %w", err)
	}

	return records, nil
}
