package kafka_middleware

import (
	"context"
	"sync/atomic"
	"time"

	"flamesblue/pkg/kafka"
)

// Counters tracks consumer throughput for the shutdown summary.
type Counters struct {
	processed atomic.Int64
	failed    atomic.Int64
	duration  atomic.Int64 // Nanoseconds
}

type CountersSnapshot struct {
	Processed   int64
	Failed      int64
	AvgDuration time.Duration
}

func (c *Counters) Snapshot() CountersSnapshot {
	processed := c.processed.Load()
	failed := c.failed.Load()

	var avg time.Duration
	if total := processed + failed; total > 0 {
		avg = time.Duration(c.duration.Load() / total)
	}

	return CountersSnapshot{Processed: processed, Failed: failed, AvgDuration: avg}
}

// ConsumerMiddleware counts each handler attempt, retries included.
func (c *Counters) ConsumerMiddleware() kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		c.duration.Add(int64(time.Since(start)))

		if err != nil {
			c.failed.Add(1)
		} else {
			c.processed.Add(1)
		}
		return err
	}
}
