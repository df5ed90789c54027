package memory

import (
	"context"
	"sync"

	"github.com/udi/talleres-api/internal/domain"
)

// Store holds the workshop and participant collections in insertion order.
// One Store is created by the application root and shared by the
// repositories built on it.
type Store struct {
	mu           sync.RWMutex
	workshops    []domain.Workshop
	participants []domain.Participant
}

func NewStore() *Store {
	return &Store{}
}

type txKey struct{ store *Store }

// WithTx runs fn holding the store's write lock. Repository calls made with
// the context passed to fn see a consistent view and do not lock again, so a
// validate-then-write sequence inside fn is atomic with respect to other
// requests.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txCtx := context.WithValue(ctx, txKey{store: s}, true)
	return fn(txCtx)
}

func (s *Store) inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txKey{store: s}).(bool)
	return held
}

func (s *Store) read(ctx context.Context, fn func()) {
	if !s.inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(ctx context.Context, fn func()) {
	if !s.inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}
