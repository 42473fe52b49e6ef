package kafkaproducer

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"fhirpub/internal/config"
	"fhirpub/internal/domain"
	"fhirpub/internal/port/secondary"
)

// Producer implements secondary.MessageProducer using segmentio/kafka-go.
// It maintains a single writer for the configured topic.
type Producer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// Connect probes broker reachability with a bounded fixed-delay retry and,
// once a broker answers, constructs the producer. Exhausting the retry
// budget is fatal: the last dial error is wrapped and returned.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (secondary.MessageProducer, error) {
	log := logger.Named("kafka-producer")

	err := connectWithRetry(ctx, func(ctx context.Context) error {
		return probeBrokers(ctx, cfg.KafkaBrokers)
	}, domain.ConnectMaxAttempts, domain.ConnectRetryDelay, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBrokerUnavailable, err)
	}

	log.Info("successfully connected to kafka",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.Topic),
	)

	p := &Producer{logger: log}

	writer := &kafka.Writer{
		Addr:            kafka.TCP(cfg.KafkaBrokers...),
		Topic:           cfg.Topic,
		Balancer:        &kafka.LeastBytes{},
		BatchTimeout:    100 * time.Millisecond,
		WriteTimeout:    domain.AckTimeout,
		RequiredAcks:    kafka.RequireAll,
		MaxAttempts:     domain.ClientMaxAttempts,
		WriteBackoffMin: domain.ClientRetryBackoff,
		WriteBackoffMax: domain.ClientRetryBackoff,
		Completion:      p.completion,
	}
	p.writer = writer

	return p, nil
}

// completion is the writer's delivery-report hook: one success line per
// acknowledged message, with the partition and offset the broker assigned.
// Failures surface synchronously from WriteMessages and are logged by the
// caller, so an errored batch produces no lines here.
func (p *Producer) completion(messages []kafka.Message, err error) {
	if err != nil {
		return
	}
	for _, msg := range messages {
		p.logger.Info("sent FHIR resource",
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		)
	}
}

// Publish sends one payload to the configured topic and waits for the
// broker's acknowledgment, bounded by the context deadline.
func (p *Producer) Publish(ctx context.Context, value []byte) error {
	msg := kafka.Message{
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing message to kafka topic %q: %w", p.writer.Topic, err)
	}

	return nil
}

// Close shuts down the Kafka writer and releases its resources.
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
