package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process. Sessions are lost on restart and
// are not shared between replicas; use RedisStore when either matters.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Record

	// Now is the clock used for expiry. Defaults to time.Now.
	Now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Record),
		Now:      time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, key string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.sessions[key] = rec
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, key string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[key]
	if !ok {
		return Record{}, ErrNotFound
	}
	if !s.Now().Before(rec.ExpiresAt) {
		delete(s.sessions, key)
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryStore) Revoke(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, key)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

// Len reports the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweepLocked drops expired sessions so abandoned logins do not accumulate.
func (s *MemoryStore) sweepLocked() {
	now := s.Now()
	for k, rec := range s.sessions {
		if !now.Before(rec.ExpiresAt) {
			delete(s.sessions, k)
		}
	}
}
