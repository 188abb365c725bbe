package kafka_middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"flamesblue/pkg/kafka"
	"flamesblue/pkg/logger"
)

func TestCounters_ConsumerMiddleware(t *testing.T) {
	counters := &Counters{}
	mw := counters.ConsumerMiddleware()
	msg := kafka.Message{Headers: map[string]string{}}

	ok := func(ctx context.Context, m kafka.Message) error { return nil }
	fail := func(ctx context.Context, m kafka.Message) error { return errors.New("boom") }

	assert.NoError(t, mw(context.Background(), msg, ok))
	assert.NoError(t, mw(context.Background(), msg, ok))
	assert.Error(t, mw(context.Background(), msg, fail))

	snapshot := counters.Snapshot()
	assert.Equal(t, int64(2), snapshot.Processed)
	assert.Equal(t, int64(1), snapshot.Failed)
}

func TestCounters_EmptySnapshot(t *testing.T) {
	assert.Equal(t, CountersSnapshot{}, (&Counters{}).Snapshot())
}

func TestLoggingMiddleware_PassesResultThrough(t *testing.T) {
	log := logger.NewNop()
	msg := kafka.Message{Headers: map[string]string{}}
	boom := errors.New("boom")

	consumerMW := LoggingConsumerMiddleware(log)
	assert.ErrorIs(t, consumerMW(context.Background(), msg, func(ctx context.Context, m kafka.Message) error { return boom }), boom)
	assert.NoError(t, consumerMW(context.Background(), msg, func(ctx context.Context, m kafka.Message) error { return nil }))

	producerMW := LoggingProducerMiddleware(log)
	assert.ErrorIs(t, producerMW(context.Background(), msg, func(ctx context.Context, m kafka.Message) error { return boom }), boom)
}
