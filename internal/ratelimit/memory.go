package ratelimit

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxClients bounds how many client windows the in-memory store
// tracks at once.
const DefaultMaxClients = 4096

// MemoryStore keeps per-client windows in an LRU cache so memory stays
// bounded over the lifetime of the process: idle clients fall off the cold
// end instead of accumulating forever.
type MemoryStore struct {
	mu      sync.Mutex
	clients *lru.Cache[string, []time.Time]
}

func NewMemoryStore(maxClients int) *MemoryStore {
	if maxClients <= 0 {
		maxClients = DefaultMaxClients
	}
	cache, err := lru.New[string, []time.Time](maxClients)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &MemoryStore{clients: cache}
}

func (s *MemoryStore) Take(key string, cutoff, now time.Time, limit int) (bool, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, _ := s.clients.Get(key)
	recent := prev[:0:0]
	for _, t := range prev {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= limit {
		s.clients.Add(key, recent)
		return false, recent[0], nil
	}
	recent = append(recent, now)
	s.clients.Add(key, recent)
	return true, time.Time{}, nil
}

// Len reports how many client windows are currently tracked.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients.Len()
}
