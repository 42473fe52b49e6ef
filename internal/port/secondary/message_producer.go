package secondary

import "context"

// MessageProducer defines the secondary port for publishing payloads to
// the configured broker topic.
type MessageProducer interface {
	// Publish sends one payload and waits for the broker's acknowledgment,
	// bounded by the context deadline.
	Publish(ctx context.Context, value []byte) error

	// Close releases any resources held by the producer.
	Close() error
}
