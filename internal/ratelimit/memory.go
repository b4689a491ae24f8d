package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store. It is safe for concurrent use; records
// are lost on process restart.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*memoryEntry
	idleTTL time.Duration
}

type memoryEntry struct {
	rec      Record
	lastSeen time.Time
}

type MemoryOption func(*MemoryStore)

// WithIdleTTL sets how long an untouched identity survives before Cleanup
// evicts it.
func WithIdleTTL(d time.Duration) MemoryOption {
	return func(s *MemoryStore) { s.idleTTL = d }
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		records: make(map[string]*memoryEntry),
		idleTTL: 15 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, identity string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.records[identity]
	if !ok {
		return Record{}, nil
	}
	return ent.rec, nil
}

func (s *MemoryStore) CompareAndSwap(_ context.Context, identity string, old, next Record) (bool, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.records[identity]
	if !ok {
		if !old.IsZero() {
			return false, nil
		}
		s.records[identity] = &memoryEntry{rec: next, lastSeen: now}
		return true, nil
	}

	if ent.rec != old {
		return false, nil
	}
	ent.rec = next
	ent.lastSeen = now
	return true, nil
}

// Cleanup removes identities that have not been touched within the idle TTL.
func (s *MemoryStore) Cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for identity, ent := range s.records {
		if ent.lastSeen.Before(cutoff) {
			delete(s.records, identity)
		}
	}
}

// Len returns the number of tracked identities.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// StartJanitor runs Cleanup every interval until ctx is done. The stale-record
// map would otherwise grow for the life of the process.
func (s *MemoryStore) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}
