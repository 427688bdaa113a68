package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
)

// FileStore keeps each domain's collection in <dir>/<name>.json, written
// indented so the files stay hand-editable — they are mock fixtures, after
// all.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the data directory if needed and returns a store over
// it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Load(_ context.Context, name string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read stored collection")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeCorruptData, "stored collection is not valid JSON")
	}
	return true, nil
}

func (s *FileStore) Save(_ context.Context, name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode collection")
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write stored collection")
	}
	return nil
}
