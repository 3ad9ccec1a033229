package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/domain"
	"github.com/spiceterra/webapi/internal/storage"
)

// Subscriber is notified with a snapshot of the lines after every mutation.
// Display layers resync from these snapshots instead of keeping their own
// copy of the cart.
type Subscriber func(lines []domain.CartLine)

// Store is the single source of truth for the cart. All quantity changes go
// through it; every mutation persists a wholesale snapshot and notifies
// subscribers. Stores must be created with NewStore; operations on a
// zero-value Store panic, since that is a wiring bug rather than a runtime
// condition.
type Store struct {
	mu          sync.Mutex
	lines       []domain.CartLine
	snapshots   storage.SnapshotStore
	logger      *zap.Logger
	subscribers []Subscriber
	provisioned bool
}

// NewStore creates a cart store, restoring any previously saved snapshot
func NewStore(snapshots storage.SnapshotStore, logger *zap.Logger) *Store {
	return &Store{
		lines:       snapshots.Load(),
		snapshots:   snapshots,
		logger:      logger,
		provisioned: true,
	}
}

func (s *Store) ensureProvisioned() {
	if !s.provisioned {
		panic("cart: Store must be created with NewStore")
	}
}

// Subscribe registers a callback invoked after every mutation
func (s *Store) Subscribe(fn Subscriber) {
	s.ensureProvisioned()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// AddItem adds a line to the cart. If a line with the same identity already
// exists its quantity is increased by the incoming quantity; the cart never
// holds two lines for one identity.
func (s *Store) AddItem(line domain.CartLine) {
	s.ensureProvisioned()
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i, existing := range s.lines {
		if existing.ID == line.ID {
			s.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// RemoveItem deletes the line with the given identity. Removing an absent
// identity is a no-op, not an error.
func (s *Store) RemoveItem(id int) {
	s.ensureProvisioned()

	s.mu.Lock()
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// UpdateQuantity sets a line's quantity to exactly quantity. A quantity of
// zero or less removes the line; a zero-quantity line is never kept.
func (s *Store) UpdateQuantity(id int, quantity int) {
	s.ensureProvisioned()
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	for i, line := range s.lines {
		if line.ID == id {
			s.lines[i].Quantity = quantity
			break
		}
	}
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// Clear empties the cart
func (s *Store) Clear() {
	s.ensureProvisioned()

	s.mu.Lock()
	s.lines = nil
	snapshot := s.persistLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// Lines returns a copy of the current cart lines in stable display order
func (s *Store) Lines() []domain.CartLine {
	s.ensureProvisioned()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Total is the sum of price times quantity over current lines, recomputed
// from the line list on every call
func (s *Store) Total() float64 {
	s.ensureProvisioned()
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// Count is the sum of quantities over current lines
func (s *Store) Count() int {
	s.ensureProvisioned()
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Quantity returns the quantity held for an identity, zero when absent
func (s *Store) Quantity(id int) int {
	s.ensureProvisioned()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.ID == id {
			return line.Quantity
		}
	}
	return 0
}

// persistLocked writes the full snapshot and returns a copy of the lines for
// subscriber notification. A failed save is logged, not surfaced: the
// in-memory cart stays authoritative for the session.
func (s *Store) persistLocked() []domain.CartLine {
	if err := s.snapshots.Save(s.lines); err != nil {
		s.logger.Warn("Failed to save cart snapshot", zap.Error(err))
	}
	return s.copyLocked()
}

func (s *Store) copyLocked() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) notify(snapshot []domain.CartLine) {
	s.mu.Lock()
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
