package session

import (
	"sync"
)

// Store keeps per-session checkout state in memory, keyed by the customer's
// session token. Entries live as long as the process; the host session is the
// source of truth and re-sends values on every checkout attempt.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]map[string]string)}
}

func (s *Store) Get(token, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	value, ok := values[key]
	return value, ok
}

func (s *Store) Set(token, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.sessions[token]
	if !ok {
		values = make(map[string]string)
		s.sessions[token] = values
	}
	values[key] = value
}

func (s *Store) Remove(token, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.sessions[token]
	if !ok {
		return
	}
	delete(values, key)
	if len(values) == 0 {
		delete(s.sessions, token)
	}
}
