package domain

import "time"

const (
	// ConnectMaxAttempts bounds the startup connection retry loop.
	ConnectMaxAttempts = 10

	// ConnectRetryDelay is the fixed delay between connection attempts.
	// The delay is constant across attempts, not exponential.
	ConnectRetryDelay = 5 * time.Second

	// ClientMaxAttempts is the Kafka client's own transient-send retry
	// budget, applied per write beneath the send loop.
	ClientMaxAttempts = 3

	// ClientRetryBackoff is the backoff between client-level send retries.
	ClientRetryBackoff = 1 * time.Second

	// AckTimeout bounds the wait for a broker acknowledgment per send.
	AckTimeout = 10 * time.Second
)
