package core

import "sync"

// MemorySessionStore is a mutex-guarded SessionStore for hosts without a
// native session dictionary, and for tests. Production web hosts should
// adapt their own session object instead.
type MemorySessionStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: map[string]string{}}
}

func (s *MemorySessionStore) Get(key string) string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *MemorySessionStore) Set(key, value string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
}
