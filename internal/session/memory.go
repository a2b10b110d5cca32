package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-prep/internal/types"
)

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryStore keeps submissions in process memory. Entries are dropped after the TTL.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewMemoryStore creates a store and starts a goroutine that removes expired entries
// every cleanupInterval. A zero interval disables the goroutine; expired entries are
// still never returned.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
	if cleanupInterval > 0 {
		s.cleanupTicker = time.NewTicker(cleanupInterval)
		s.cleanupStop = make(chan struct{})
		go s.cleanup()
	}
	return s
}

func (s *MemoryStore) Save(_ context.Context, sub *types.Submission) (string, error) {
	data, err := encode(sub)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()

	s.mu.Lock()
	s.entries[token] = memoryEntry{data: data, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Load(_ context.Context, token string) (*types.Submission, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok || !s.now().Before(entry.expires) {
		return nil, ErrNotFound
	}
	return decode(entry.data)
}

// Len returns the number of entries currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) cleanup() {
	for {
		select {
		case <-s.cleanupTicker.C:
			s.removeExpired()
		case <-s.cleanupStop:
			return
		}
	}
}

func (s *MemoryStore) removeExpired() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, entry := range s.entries {
		if !now.Before(entry.expires) {
			delete(s.entries, token)
		}
	}
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() {
		if s.cleanupTicker != nil {
			s.cleanupTicker.Stop()
		}
		if s.cleanupStop != nil {
			close(s.cleanupStop)
		}
	})
	return nil
}
