package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fhirpub/internal/adapter/primary/worker"
	"fhirpub/internal/config"
	"fhirpub/internal/port/primary"
	"fhirpub/internal/port/secondary"
)

const appName = "fhirpub"

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Root context with cancellation for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the dependency injection container.
	c, err := buildContainer(ctx)
	if err != nil {
		return fmt.Errorf("building container: %w", err)
	}

	// Invoke the application, resolving all dependencies and starting services.
	// Connecting to Kafka happens during resolution; an exhausted connection
	// retry budget propagates out of Invoke and exits the process non-zero.
	return c.Invoke(func(
		router http.Handler,
		w *worker.Worker,
		svc primary.PublisherService,
		cfg *config.Config,
		logger *zap.Logger,
		producer secondary.MessageProducer,
	) {
		defer func() {
			// Clean up resources on shutdown.
			if err := producer.Close(); err != nil {
				logger.Error("error closing kafka producer", zap.Error(err))
			}
			_ = logger.Sync()
		}()

		logger.Info("starting application",
			zap.String("app", appName),
			zap.String("version", version),
			zap.String("environment", cfg.Environment),
			zap.String("topic", cfg.Topic),
			zap.String("samples_path", cfg.SamplesPath),
			zap.Duration("send_interval", cfg.SendInterval),
			zap.Int("sample_count", svc.SampleCount()),
		)

		// Azure values are surfaced for operators; they never alter send
		// behavior and the secret itself is never logged.
		logger.Info("azure fhir configuration",
			zap.String("azure_fhir_url", cfg.AzureFHIRURL),
			zap.String("azure_tenant_id", cfg.AzureTenantID),
			zap.String("azure_client_id", cfg.AzureClientID),
			zap.Bool("azure_client_secret_set", cfg.AzureClientSecret != ""),
			zap.String("azure_scope", cfg.AzureScope),
		)

		// Start the send loop.
		workerCtx, workerCancel := context.WithCancel(ctx)
		defer workerCancel()

		errCh := make(chan error, 2)
		go func() {
			errCh <- w.Run(workerCtx)
		}()

		// Start the HTTP server for the health endpoint.
		server := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			if srvErr := server.ListenAndServe(); srvErr != nil && srvErr != http.ErrServerClosed {
				errCh <- fmt.Errorf("http server: %w", srvErr)
			}
		}()

		// Wait for shutdown signal.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		case srvErr := <-errCh:
			if srvErr != nil && srvErr != context.Canceled {
				logger.Error("service error", zap.Error(srvErr))
			}
		}

		// Graceful shutdown with timeout.
		logger.Info("shutting down gracefully")
		cancel()
		workerCancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", zap.Error(err))
		}

		logger.Info("shutdown complete")
	})
}
