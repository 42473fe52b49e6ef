package domain

import "errors"

var (
	// ErrBrokerUnavailable indicates the broker could not be reached within
	// the startup retry budget. The only fatal error in the system.
	ErrBrokerUnavailable = errors.New("kafka broker unavailable")

	// ErrPublishFailed indicates a single send was not acknowledged.
	ErrPublishFailed = errors.New("publish failed")

	// ErrNoSamples indicates the sample set is empty for this iteration.
	ErrNoSamples = errors.New("no samples available")
)
