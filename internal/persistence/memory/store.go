// Package memory provides an in-memory snapshot slot used for tests and
// ephemeral environments.
package memory

import (
	"context"
	"sync"

	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/persistence"
)

// Store keeps the last encoded snapshot in memory. Encoding on every save
// keeps the slot independent from the caller's slices.
type Store struct {
	mu    sync.Mutex
	data  []byte
	saves int
	err   error
}

// New returns an empty in-memory slot.
func New() *Store {
	return &Store{}
}

// NewWithSnapshot returns a slot pre-filled with snap.
func NewWithSnapshot(snap models.Snapshot) (*Store, error) {
	s := New()
	if err := s.Save(context.Background(), snap); err != nil {
		return nil, err
	}
	s.saves = 0
	return s, nil
}

func (s *Store) Driver() persistence.Driver { return persistence.DriverMemory }

func (s *Store) Load(_ context.Context) (models.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return models.Snapshot{}, false, nil
	}
	snap, err := persistence.Decode(s.data)
	if err != nil {
		return models.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *Store) Save(_ context.Context, snap models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	data, err := persistence.Encode(snap)
	if err != nil {
		return err
	}
	s.data = data
	s.saves++
	return nil
}

// Saves returns how many snapshots were written.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// FailWith makes subsequent saves return err; nil restores normal behaviour.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
