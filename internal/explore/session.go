package explore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harithais/microbiome-explorer-app/internal/dataset"
)

// Mode selects how a session's working table was built.
type Mode string

const (
	// ModeUpload derives the working table by matching an uploaded query list.
	ModeUpload Mode = "upload"
	// ModeAll uses the entire reference table.
	ModeAll Mode = "all"
)

// Session is one user's private view over the shared reference table. The
// working table and unmatched list are fixed at creation and replaced
// wholesale by starting a new session; filters and sort are applied per
// request over the working table, never mutating it.
type Session struct {
	ID        string
	Mode      Mode
	FileName  string // upload mode only
	Working   []dataset.Record
	Matched   []string // distinct matched reference Microbe values
	Unmatched []string
	CreatedAt time.Time
}

// DistinctMicrobes counts distinct Microbe values in the working table.
func (s *Session) DistinctMicrobes() int {
	seen := make(map[string]bool)
	for _, rec := range s.Working {
		seen[rec.Microbe] = true
	}
	return len(seen)
}

// Store holds active sessions keyed by UUID, expiring them after a TTL.
// The reference table is shared read-only; each session owns its derived
// state, so no locking is needed beyond the store map itself.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	maxCount int

	done chan struct{}
	once sync.Once
}

// NewStore creates a session store. Sessions expire ttl after creation;
// at most maxCount sessions are kept (0 = unlimited). The cleanup loop
// runs every sweep interval until Close is called.
func NewStore(ttl, sweep time.Duration, maxCount int) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		maxCount: maxCount,
		done:     make(chan struct{}),
	}
	go s.cleanup(sweep)
	return s
}

// cleanup removes expired sessions every sweep interval.
func (s *Store) cleanup(sweep time.Duration) {
	ticker := time.NewTicker(sweep)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.CreatedAt.Before(cutoff) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// Close stops the cleanup loop.
func (s *Store) Close() {
	s.once.Do(func() { close(s.done) })
}

// Create registers a new session built from a match result (upload mode)
// or the full reference table (explore-all mode).
func (s *Store) Create(mode Mode, fileName string, working []dataset.Record, matched, unmatched []string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		FileName:  fileName,
		Working:   working,
		Matched:   matched,
		Unmatched: unmatched,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxCount > 0 && len(s.sessions) >= s.maxCount {
		return nil, ErrTooManySessions
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

// Get returns the session for id, or ErrSessionNotFound.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Count returns the number of active sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
