package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fhirpub/internal/domain"
	"fhirpub/internal/domain/entity"
	"fhirpub/internal/port/secondary"
)

// PublisherService cycles through the sample set and hands each sample to
// the producer port. Per-send failures are logged and surfaced but never
// stop the cycle; the cursor advances regardless of delivery outcome.
type PublisherService struct {
	samples  *entity.SampleSet
	producer secondary.MessageProducer
	logger   *zap.Logger
}

// NewPublisherService creates a PublisherService over the loaded samples.
// If the loaded set is empty, the built-in default resources are used.
func NewPublisherService(
	loaded []entity.Sample,
	producer secondary.MessageProducer,
	logger *zap.Logger,
) *PublisherService {
	log := logger.Named("publisher-service")

	set := entity.NewSampleSet(loaded)
	if set.IsEmpty() {
		log.Info("no sample files found, using built-in samples")
		set = entity.NewSampleSet(entity.DefaultSamples())
	}

	log.Info("sample set ready", zap.Int("sample_count", set.Len()))

	return &PublisherService{
		samples:  set,
		producer: producer,
		logger:   log,
	}
}

// PublishNext selects the next sample round-robin and publishes it,
// waiting up to the acknowledgment timeout for the broker.
func (s *PublisherService) PublishNext(ctx context.Context) error {
	if s.samples.IsEmpty() {
		s.logger.Warn("no samples available")
		return domain.ErrNoSamples
	}

	sample := s.samples.Next()

	ctx, cancel := context.WithTimeout(ctx, domain.AckTimeout)
	defer cancel()

	if err := s.producer.Publish(ctx, []byte(sample)); err != nil {
		s.logger.Error("failed to send FHIR resource", zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrPublishFailed, err)
	}

	return nil
}

// SampleCount returns the number of samples in the effective set.
func (s *PublisherService) SampleCount() int {
	return s.samples.Len()
}
