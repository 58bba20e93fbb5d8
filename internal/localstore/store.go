// Package localstore is a small durable key-value store for per-user
// documents that do not belong in relational tables: carts and pending
// actions parked for anonymous visitors.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrKeyInvalid is returned for empty or unsafe keys.
var ErrKeyInvalid = errors.New("localstore: invalid key")

// ErrCorrupt is returned when a stored document no longer decodes.
// Callers decide whether to reset or surface it.
var ErrCorrupt = errors.New("localstore: corrupt document")

// Store persists one JSON document per key.
type Store interface {
	Get(key string, out interface{}) (bool, error)
	Set(key string, value interface{}) error
	Delete(key string) error
}

// FileStore keeps one file per key under a directory. Writes go through
// a temp file plus rename so readers never observe a half-written value.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("localstore: empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create dir failed: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the document stored under key into out. The second return is
// false when the key has never been written.
func (s *FileStore) Get(key string, out interface{}) (bool, error) {
	path, err := s.path(key)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return true, nil
}

// Set writes the document stored under key.
func (s *FileStore) Set(key string, value interface{}) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the document stored under key. Deleting a missing key
// is not an error.
func (s *FileStore) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) path(key string) (string, error) {
	name := encodeKey(key)
	if name == "" {
		return "", ErrKeyInvalid
	}
	return filepath.Join(s.dir, name+".json"), nil
}

// encodeKey maps a logical key to a safe filename. Colons are common in
// keys (cart:user:1) and are flattened to underscores.
func encodeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ':', r == '/', r == '.':
			b.WriteByte('_')
		default:
			b.WriteString(fmt.Sprintf("%%%04x", r))
		}
	}
	return b.String()
}

// MemoryStore is an in-memory Store used by tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get reads the document stored under key into out.
func (s *MemoryStore) Get(key string, out interface{}) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, ErrKeyInvalid
	}
	s.mu.Lock()
	data, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return true, nil
}

// Set writes the document stored under key.
func (s *MemoryStore) Set(key string, value interface{}) error {
	if strings.TrimSpace(key) == "" {
		return ErrKeyInvalid
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

// Delete removes the document stored under key.
func (s *MemoryStore) Delete(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrKeyInvalid
	}
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// SetRaw stores bytes verbatim, bypassing JSON encoding. Tests use it to
// plant corrupt documents.
func (s *MemoryStore) SetRaw(key string, data []byte) {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), data...)
	s.mu.Unlock()
}
