package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"fhirpub/internal/domain"
	"fhirpub/internal/domain/entity"
)

func TestPublisherService_PublishNext_roundRobin(t *testing.T) {
	samples := []entity.Sample{`{"n":1}`, `{"n":2}`, `{"n":3}`}
	producer := &mockProducer{}
	svc := NewPublisherService(samples, producer, zap.NewNop())

	ctx := context.Background()
	for i := 0; i < 6; i++ {
		if err := svc.PublishNext(ctx); err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
	}

	if len(producer.publishCalls) != 6 {
		t.Fatalf("expected 6 publish calls, got %d", len(producer.publishCalls))
	}
	for i, call := range producer.publishCalls {
		want := string(samples[i%len(samples)])
		if string(call.Value) != want {
			t.Fatalf("call %d: got %s, want %s", i, call.Value, want)
		}
	}
}

func TestPublisherService_fallsBackToDefaults(t *testing.T) {
	producer := &mockProducer{}
	svc := NewPublisherService(nil, producer, zap.NewNop())

	if svc.SampleCount() != 2 {
		t.Fatalf("expected 2 built-in samples, got %d", svc.SampleCount())
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := svc.PublishNext(ctx); err != nil {
			t.Fatalf("publish %d: unexpected error: %v", i, err)
		}
	}

	// First the Patient, then the Observation.
	wantTypes := []string{"Patient", "Observation"}
	for i, call := range producer.publishCalls {
		var resource struct {
			ResourceType string `json:"resourceType"`
		}
		if err := json.Unmarshal(call.Value, &resource); err != nil {
			t.Fatalf("call %d: payload is not valid JSON: %v", i, err)
		}
		if resource.ResourceType != wantTypes[i] {
			t.Fatalf("call %d: got resourceType %q, want %q", i, resource.ResourceType, wantTypes[i])
		}
	}
}

func TestPublisherService_PublishNext_producerError(t *testing.T) {
	brokerErr := errors.New("broker unreachable")
	producer := &mockProducer{
		publishFunc: func(_ context.Context, _ []byte) error {
			return brokerErr
		},
	}
	svc := NewPublisherService([]entity.Sample{`{"n":1}`, `{"n":2}`}, producer, zap.NewNop())

	err := svc.PublishNext(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrPublishFailed) {
		t.Fatalf("expected ErrPublishFailed, got %v", err)
	}
}

func TestPublisherService_cursorAdvancesOnError(t *testing.T) {
	// A failed send must not cause the same sample to be retried by the
	// loop; the cursor advances regardless of delivery outcome.
	calls := 0
	producer := &mockProducer{
		publishFunc: func(_ context.Context, _ []byte) error {
			calls++
			if calls == 1 {
				return errors.New("transient")
			}
			return nil
		},
	}
	samples := []entity.Sample{`{"n":1}`, `{"n":2}`}
	svc := NewPublisherService(samples, producer, zap.NewNop())

	ctx := context.Background()
	_ = svc.PublishNext(ctx)
	if err := svc.PublishNext(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(producer.publishCalls) != 2 {
		t.Fatalf("expected 2 publish calls, got %d", len(producer.publishCalls))
	}
	if string(producer.publishCalls[1].Value) != `{"n":2}` {
		t.Fatalf("expected second sample after failed first send, got %s", producer.publishCalls[1].Value)
	}
}

func TestPublisherService_PublishNext_ackDeadline(t *testing.T) {
	producer := &mockProducer{
		publishFunc: func(ctx context.Context, _ []byte) error {
			deadline, ok := ctx.Deadline()
			if !ok {
				t.Fatal("expected a deadline on the publish context")
			}
			if remaining := time.Until(deadline); remaining > domain.AckTimeout {
				t.Fatalf("deadline exceeds ack timeout: %s", remaining)
			}
			return nil
		},
	}
	svc := NewPublisherService([]entity.Sample{`{"n":1}`}, producer, zap.NewNop())

	if err := svc.PublishNext(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
