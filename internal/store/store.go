// Package store owns the billing entities. Every mutation runs under one lock
// and is written through to the configured snapshot backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diewo77/go-billing/internal/metrics"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/persistence"
)

// DefaultRecentWindow is how many of the newest invoices stay fully addressable.
const DefaultRecentWindow = 10

var (
	// ErrNotFound is returned for ids that match no entity.
	ErrNotFound = errors.New("not found")
	// ErrArchived is returned for invoices outside the recent window.
	ErrArchived = errors.New("invoice is archived")
)

// Store is the single owner of products, clients and invoices.
type Store struct {
	mu      sync.Mutex
	backend persistence.Snapshotter
	state   models.Snapshot
	now     func() time.Time
	newID   func() string
	rng     *rand.Rand
	window  int
	rec     metrics.Recorder
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithRecentWindow sets the size of the recent partition. Negative values are
// treated as zero.
func WithRecentWindow(n int) Option {
	return func(s *Store) {
		if n < 0 {
			n = 0
		}
		s.window = n
	}
}

// WithRand sets the random source used to generate seed data.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithMetrics reports operations to rec.
func WithMetrics(rec metrics.Recorder) Option {
	return func(s *Store) { s.rec = rec }
}

// Open loads the persisted snapshot, if any, and returns a ready store.
func Open(ctx context.Context, backend persistence.Snapshotter, opts ...Option) (*Store, error) {
	if backend == nil {
		return nil, errors.New("store: nil snapshot backend")
	}
	s := &Store{
		backend: backend,
		now:     time.Now,
		newID:   uuid.NewString,
		window:  DefaultRecentWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(s.now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	snap, ok, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if ok {
		s.state = snap
		log.Printf("[store] loaded %d products, %d clients, %d invoices from %s",
			len(snap.Products), len(snap.Clients), len(snap.Invoices), backend.Driver())
	}
	s.observePartition()
	return s, nil
}

// RecentWindow returns the configured size of the recent partition.
func (s *Store) RecentWindow() int { return s.window }

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Seeded reports whether demo data has been loaded.
func (s *Store) Seeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Seeded
}

// persist writes the full state through to the backend. The in-memory
// mutation is kept when the write fails. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, op string) error {
	err := s.backend.Save(ctx, s.state)
	if err != nil {
		log.Printf("[store] %s: persist failed: %v", op, err)
		err = fmt.Errorf("persist snapshot: %w", err)
	}
	s.record(op, err)
	s.observePartition()
	return err
}

func (s *Store) record(op string, err error) {
	if s.rec != nil {
		s.rec.StoreOperation(op, err)
	}
}

func (s *Store) observePartition() {
	if s.rec == nil {
		return
	}
	recent, archived := Partition(s.state.Invoices, s.window)
	s.rec.InvoicePartition(len(recent), len(archived))
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
