package selection

import (
	"sync"
	"time"
)

// Selection is a visitor's in-progress package choice, held only for the
// active browsing session.
type Selection struct {
	PackageID string    `json:"packageId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store keeps per-session selections in memory. Last write wins; a read
// before any write yields nil. Entries older than ttl are dropped lazily.
type Store struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	selections map[string]Selection
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:        ttl,
		now:        time.Now,
		selections: make(map[string]Selection),
	}
}

// Set records the selection for a session, replacing any previous one.
func (s *Store) Set(sessionID string, sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel.UpdatedAt = s.now()
	s.selections[sessionID] = sel
	s.evictExpiredLocked()
}

// Get returns the current selection for a session, or nil when the visitor
// has not picked a package yet.
func (s *Store) Get(sessionID string) *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.selections[sessionID]
	if !ok {
		return nil
	}
	if s.expiredLocked(sel) {
		delete(s.selections, sessionID)
		return nil
	}
	return &sel
}

// Clear drops the selection for a session.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selections, sessionID)
}

func (s *Store) expiredLocked(sel Selection) bool {
	return s.ttl > 0 && s.now().Sub(sel.UpdatedAt) > s.ttl
}

func (s *Store) evictExpiredLocked() {
	if s.ttl <= 0 {
		return
	}
	for id, sel := range s.selections {
		if s.expiredLocked(sel) {
			delete(s.selections, id)
		}
	}
}
