package storefakes

import (
	"encoding/json"
	"sync"

	"github.com/sellerhq/seller-console/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session store. Values round-trip through JSON
// so fakes catch the same serialization mistakes the file store would.
type FakeStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewFakeStore() *FakeStore {
	return &FakeStore{entries: make(map[string][]byte)}
}

func (s *FakeStore) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FakeStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *FakeStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Has reports whether a key is currently stored.
func (s *FakeStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key]
	return ok
}
