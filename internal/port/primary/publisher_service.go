package primary

import "context"

// PublisherService defines the primary port for the sample publishing
// operations exposed to driving adapters (the send loop).
type PublisherService interface {
	// PublishNext selects the next sample round-robin and publishes it.
	// Per-send failures are logged and returned; callers are expected to
	// absorb them and keep the loop alive.
	PublishNext(ctx context.Context) error

	// SampleCount returns the number of samples in the effective set.
	SampleCount() int
}
