package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flamesblue/pkg/kafka"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/middleware"
	"flamesblue/pkg/model"
)

type capturingPublisher struct {
	messages []kafka.Message
	err      error
}

func (p *capturingPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	p.messages = append(p.messages, msg)
	return p.err
}

func (p *capturingPublisher) Close() error {
	return nil
}

func TestKafkaCodeSender_PublishesEvent(t *testing.T) {
	publisher := &capturingPublisher{}
	sender := NewKafkaCodeSender(publisher, "flamesblue-api")
	sender.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	require.NoError(t, sender.SendCode(ctx, "+15551234567", "482913"))

	require.Len(t, publisher.messages, 1)
	msg := publisher.messages[0]
	assert.Equal(t, "+15551234567", msg.Key)
	assert.Equal(t, model.EventTypeOtpRequested, msg.GetEventType())
	assert.Equal(t, "req-42", msg.GetCorrelationID())
	assert.Equal(t, "flamesblue-api", msg.Headers[kafka.HeaderSource])
	assert.NotEmpty(t, msg.GetEventID())

	var event model.OtpRequestedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "+15551234567", event.Phone)
	assert.Equal(t, "482913", event.Code)
	assert.True(t, event.RequestedAt.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestKafkaCodeSender_ReturnsPublishError(t *testing.T) {
	publisher := &capturingPublisher{err: kafka.ErrProducerClosed}
	sender := NewKafkaCodeSender(publisher, "flamesblue-api")

	err := sender.SendCode(context.Background(), "+15551234567", "482913")
	assert.ErrorIs(t, err, kafka.ErrProducerClosed)
}

func TestLogCodeSender(t *testing.T) {
	sender := NewLogCodeSender(logger.NewNop())
	assert.NoError(t, sender.SendCode(context.Background(), "+15551234567", "482913"))
}
