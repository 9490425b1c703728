package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/tommytoyou/bost-lawn-care/data"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, backend store.Backend) *ContentStore {
	t.Helper()
	if backend == nil {
		backend = store.NewMemoryBackend()
	}
	defaults, err := data.LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	logger := discardLogger()
	return NewContentStore(store.New(backend, "bost_", logger), defaults, logger)
}

// failingBackend reads fine and refuses every write.
type failingBackend struct {
	store.Backend
}

func (failingBackend) Save(context.Context, string, []byte) error {
	return errors.New("disk full")
}

// flakyBackend fails the next n loads of a key after failLoads, then
// recovers.
type flakyBackend struct {
	store.Backend
	mu    sync.Mutex
	fails map[string]int
}

func newFlakyBackend() *flakyBackend {
	return &flakyBackend{Backend: store.NewMemoryBackend(), fails: map[string]int{}}
}

func (b *flakyBackend) failLoads(key string, n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fails[key] = n
}

func (b *flakyBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	fail := b.fails[key] > 0
	if fail {
		b.fails[key]--
	}
	b.mu.Unlock()
	if fail {
		return nil, false, errors.New("connection reset")
	}
	return b.Backend.Load(ctx, key)
}

type sentMessage struct {
	subject string
	message string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (n *fakeNotifier) Notify(_ context.Context, subject, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{subject, message})
	return n.err
}

type publishedEvent struct {
	key   string
	value any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{key, v})
	return p.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func validProperty() models.PropertyDetails {
	return models.PropertyDetails{Address: "123 Elm St, Lawrence, KS", LawnSize: models.LawnSizes[1]}
}

func validContact() models.ContactDetails {
	return models.ContactDetails{
		Name:          "Pat Rivera",
		Email:         "pat@example.com",
		Phone:         "(785) 555-0123",
		PreferredDate: "2026-05-04",
	}
}
