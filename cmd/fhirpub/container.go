package main

import (
	"context"
	"net/http"

	"go.uber.org/dig"
	"go.uber.org/zap"

	httphandler "fhirpub/internal/adapter/primary/http"
	"fhirpub/internal/adapter/primary/worker"
	"fhirpub/internal/adapter/secondary/kafkaproducer"
	"fhirpub/internal/adapter/secondary/samplestore"
	"fhirpub/internal/config"
	"fhirpub/internal/domain/service"
	"fhirpub/internal/port/primary"
	"fhirpub/internal/port/secondary"
)

func buildContainer(ctx context.Context) (*dig.Container, error) {
	c := dig.New()

	// --- Configuration ---
	if err := c.Provide(config.New); err != nil {
		return nil, err
	}

	// --- Logger ---
	if err := c.Provide(newLogger); err != nil {
		return nil, err
	}

	// --- Secondary Adapters (infrastructure) ---

	// Kafka producer. Connect retries with a bounded fixed delay; an
	// exhausted budget fails resolution and terminates the process.
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger) (secondary.MessageProducer, error) {
		return kafkaproducer.Connect(ctx, cfg, logger)
	}); err != nil {
		return nil, err
	}

	// Kafka health check (implements secondary.HealthChecker)
	if err := c.Provide(func(cfg *config.Config) secondary.HealthChecker {
		return kafkaproducer.NewHealthCheck(cfg)
	}); err != nil {
		return nil, err
	}

	// Collect all health checks
	if err := c.Provide(func(kafkaCheck secondary.HealthChecker) []secondary.HealthChecker {
		return []secondary.HealthChecker{kafkaCheck}
	}); err != nil {
		return nil, err
	}

	// Sample loader
	if err := c.Provide(samplestore.NewLoader); err != nil {
		return nil, err
	}

	// --- Domain Services ---

	if err := c.Provide(func(loader *samplestore.Loader, producer secondary.MessageProducer, logger *zap.Logger) *service.PublisherService {
		return service.NewPublisherService(loader.Load(), producer, logger)
	}); err != nil {
		return nil, err
	}

	// Bind concrete PublisherService to the primary port interface
	if err := c.Provide(func(s *service.PublisherService) primary.PublisherService {
		return s
	}); err != nil {
		return nil, err
	}

	// --- Primary Adapters ---

	// HTTP router
	if err := c.Provide(func(checks []secondary.HealthChecker) http.Handler {
		return httphandler.NewRouter(checks)
	}); err != nil {
		return nil, err
	}

	// Worker (send loop)
	if err := c.Provide(func(svc primary.PublisherService, cfg *config.Config, logger *zap.Logger) *worker.Worker {
		return worker.NewWorker(svc, cfg.SendInterval, logger)
	}); err != nil {
		return nil, err
	}

	return c, nil
}
