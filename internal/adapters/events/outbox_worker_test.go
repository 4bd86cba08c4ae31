package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/givehub/givehub/internal/ports"
)

func TestProcessOncePublishesAndMarks(t *testing.T) {
	t.Parallel()

	outbox := &stubOutbox{records: []ports.OutboxRecord{
		{OutboxID: "a", EventType: "user.registered", PartitionKey: "johndoe", Payload: []byte(`{}`)},
		{OutboxID: "b", EventType: "donation.completed", PartitionKey: "7", Payload: []byte(`{}`)},
	}}
	publisher := &stubPublisher{failTypes: map[string]bool{"donation.completed": true}}
	worker := NewOutboxWorker(discardLogger(), outbox, publisher, time.Second, 100, 5)

	if err := worker.processOnce(context.Background()); err != nil {
		t.Fatalf("processOnce failed: %v", err)
	}

	if got := outbox.publishedIDs(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("published ids = %v, want [a]", got)
	}
	if got := outbox.failedIDs(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("failed ids = %v, want [b]", got)
	}
	if publisher.count("user.registered") != 1 {
		t.Fatalf("user.registered should have been delivered once")
	}
}

func TestProcessOnceSkipsExhaustedRetries(t *testing.T) {
	t.Parallel()

	outbox := &stubOutbox{records: []ports.OutboxRecord{
		{OutboxID: "dead", EventType: "user.registered", RetryCount: 5},
	}}
	publisher := &stubPublisher{}
	worker := NewOutboxWorker(discardLogger(), outbox, publisher, time.Second, 100, 5)

	if err := worker.processOnce(context.Background()); err != nil {
		t.Fatalf("processOnce failed: %v", err)
	}
	if publisher.count("user.registered") != 0 {
		t.Fatalf("exhausted record must not be delivered")
	}
	if len(outbox.publishedIDs())+len(outbox.failedIDs()) != 0 {
		t.Fatalf("exhausted record must stay untouched")
	}
}

func TestProcessOnceSurfacesFetchError(t *testing.T) {
	t.Parallel()

	outbox := &stubOutbox{fetchErr: errors.New("db down")}
	worker := NewOutboxWorker(discardLogger(), outbox, &stubPublisher{}, time.Second, 100, 5)

	if err := worker.processOnce(context.Background()); err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubOutbox struct {
	mu        sync.Mutex
	records   []ports.OutboxRecord
	fetchErr  error
	published []string
	failed    []string
}

func (s *stubOutbox) FetchUnpublished(context.Context, int) ([]ports.OutboxRecord, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.records, nil
}

func (s *stubOutbox) MarkPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, outboxID)
	return nil
}

func (s *stubOutbox) MarkFailed(_ context.Context, outboxID string, _ string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = append(s.failed, outboxID)
	return nil
}

func (s *stubOutbox) publishedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.published...)
}

func (s *stubOutbox) failedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.failed...)
}

type stubPublisher struct {
	mu        sync.Mutex
	failTypes map[string]bool
	delivered map[string]int
}

func (s *stubPublisher) Publish(_ context.Context, eventType, _ string, _ []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTypes[eventType] {
		return errors.New("broker unavailable")
	}
	if s.delivered == nil {
		s.delivered = map[string]int{}
	}
	s.delivered[eventType]++
	return nil
}

func (s *stubPublisher) count(eventType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivered[eventType]
}
