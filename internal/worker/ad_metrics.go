package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/queue"
	"github.com/restomenu/restomenu/internal/service"
	"go.uber.org/zap"
)

type AdMetricsWorker struct {
	metricsService *service.AdMetricsService
	broker         queue.Broker
	logger         *zap.SugaredLogger
	ctx            context.Context
	cancel         context.CancelFunc
}

func NewAdMetricsWorker(
	metricsService *service.AdMetricsService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *AdMetricsWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &AdMetricsWorker{
		metricsService: metricsService,
		broker:         broker,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

func (w *AdMetricsWorker) Start() error {
	w.logger.Info("starting ad metrics worker")

	return w.broker.Subscribe(w.ctx, queue.QueueAdMetrics, w.handleMessage)
}

func (w *AdMetricsWorker) Stop() {
	w.logger.Info("stopping ad metrics worker")
	w.cancel()
}

func (w *AdMetricsWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.AdMetricEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing ad metric event", "ad_id", event.AdID, "event_type", event.EventType)

	if err := w.metricsService.ProcessEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process ad metric event", "ad_id", event.AdID, "error", err)
		return err
	}

	return nil
}
