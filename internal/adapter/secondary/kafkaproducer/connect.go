package kafkaproducer

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// connectWithRetry runs probe until it succeeds, waiting a constant delay
// between attempts. After maxAttempts failures the last error is returned.
// The delay never grows; exponential backoff is deliberately not used here.
func connectWithRetry(
	ctx context.Context,
	probe func(context.Context) error,
	maxAttempts uint,
	delay time.Duration,
	logger *zap.Logger,
) error {
	return retry.Do(
		func() error {
			return probe(ctx)
		},
		retry.Attempts(maxAttempts),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("kafka connection attempt failed",
				zap.Uint("attempt", n+1),
				zap.Uint("max_attempts", maxAttempts),
				zap.Error(err),
			)
		}),
	)
}

// probeBrokers dials the broker list until one answers. Used both for the
// startup connectivity check and the health endpoint.
func probeBrokers(ctx context.Context, brokers []string) error {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	var lastErr error
	for _, addr := range brokers {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			lastErr = err
			continue
		}
		_ = conn.Close()
		return nil
	}

	if lastErr == nil {
		return fmt.Errorf("no brokers configured")
	}
	return lastErr
}
