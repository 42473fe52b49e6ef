package service

import "context"

// mockProducer implements secondary.MessageProducer for testing.
type mockProducer struct {
	publishFunc func(ctx context.Context, value []byte) error
	closeFunc   func() error

	publishCalls []publishCall
}

type publishCall struct {
	Value []byte
	Err   error
}

func (m *mockProducer) Publish(ctx context.Context, value []byte) error {
	var err error
	if m.publishFunc != nil {
		err = m.publishFunc(ctx, value)
	}
	m.publishCalls = append(m.publishCalls, publishCall{Value: value, Err: err})
	return err
}

func (m *mockProducer) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}
