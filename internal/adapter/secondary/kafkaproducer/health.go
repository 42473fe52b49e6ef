package kafkaproducer

import (
	"context"

	"fhirpub/internal/config"
	"fhirpub/internal/port/secondary"
)

// HealthCheck implements secondary.HealthChecker for the Kafka brokers.
type HealthCheck struct {
	brokers []string
}

// NewHealthCheck creates a Kafka health checker.
func NewHealthCheck(cfg *config.Config) secondary.HealthChecker {
	return &HealthCheck{brokers: cfg.KafkaBrokers}
}

// Name returns the name of this health check.
func (h *HealthCheck) Name() string {
	return "kafka"
}

// Check dials a broker to verify connectivity.
func (h *HealthCheck) Check(ctx context.Context) error {
	return probeBrokers(ctx, h.brokers)
}
