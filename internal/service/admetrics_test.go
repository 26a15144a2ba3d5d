package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBroker struct {
	published map[string][][]byte
	err       error
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{published: make(map[string][][]byte)}
}

func (b *fakeBroker) Publish(_ context.Context, queueName string, message []byte) error {
	if b.err != nil {
		return b.err
	}
	b.published[queueName] = append(b.published[queueName], message)
	return nil
}

func (b *fakeBroker) Subscribe(context.Context, string, queue.MessageHandler) error { return nil }

func (b *fakeBroker) Close() error { return nil }

func TestRecordEventPublishes(t *testing.T) {
	broker := newFakeBroker()
	svc := NewAdMetricsService(nil, nil, broker, zap.NewNop().Sugar())

	err := svc.RecordEvent(context.Background(), domain.AdEventImpression, "ad1", "m1", "ar")
	require.NoError(t, err)

	msgs := broker.published[queue.QueueAdMetrics]
	require.Len(t, msgs, 1)

	var event domain.AdMetricEvent
	require.NoError(t, json.Unmarshal(msgs[0], &event))
	assert.Equal(t, domain.AdEventImpression, event.EventType)
	assert.Equal(t, "ad1", event.AdID)
	assert.Equal(t, "m1", event.MenuID)
	assert.Equal(t, "ar", event.Locale)
	assert.NotEmpty(t, event.EventID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestRecordEventUniqueIDs(t *testing.T) {
	broker := newFakeBroker()
	svc := NewAdMetricsService(nil, nil, broker, zap.NewNop().Sugar())

	require.NoError(t, svc.RecordEvent(context.Background(), domain.AdEventClick, "ad1", "", ""))
	require.NoError(t, svc.RecordEvent(context.Background(), domain.AdEventClick, "ad1", "", ""))

	msgs := broker.published[queue.QueueAdMetrics]
	require.Len(t, msgs, 2)

	var first, second domain.AdMetricEvent
	require.NoError(t, json.Unmarshal(msgs[0], &first))
	require.NoError(t, json.Unmarshal(msgs[1], &second))
	assert.NotEqual(t, first.EventID, second.EventID)
}

func TestRecordEventRejectsUnknownType(t *testing.T) {
	broker := newFakeBroker()
	svc := NewAdMetricsService(nil, nil, broker, zap.NewNop().Sugar())

	err := svc.RecordEvent(context.Background(), "ad.hover", "ad1", "", "")
	require.Error(t, err)
	assert.Empty(t, broker.published)
}
