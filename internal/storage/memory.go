package storage

import (
	"context"
	"encoding/json"
	"sync"

	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
)

// MemoryStore is the in-memory Store used by tests. It round-trips documents
// through JSON so its semantics match FileStore exactly, including decode
// failures on corrupt payloads.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, name string, v any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeCorruptData, "stored collection is not valid JSON")
	}
	return true, nil
}

func (s *MemoryStore) Save(_ context.Context, name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode collection")
	}
	s.docs[name] = data
	return nil
}

// SetRaw stores raw bytes under name, bypassing encoding. Tests use it to
// plant corrupt documents.
func (s *MemoryStore) SetRaw(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = data
}
