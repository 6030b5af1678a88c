package state

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is the thin KV layer behind persisted states. Keys are caller-owned:
// no prefixing, no versioning, collisions are the caller's responsibility.
type Store interface {
	// Read returns the stored bytes for key, or (nil, false) when absent.
	Read(key string) ([]byte, bool)
	// Write stores data under key.
	Write(key string, data []byte) error
}

const (
	// StateDirEnv is the env var override for the FileStore base directory.
	StateDirEnv = "BANDA_STATE_DIR"
	// defaultStateBase is the default base under the user's home.
	defaultStateBase = ".banda/state"
)

// FileStore keeps one JSON file per key under a base directory.
// Layout: <base>/<key>.json with key normalized to a safe filename.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a store rooted at the user's home + .banda/state,
// or at the path in BANDA_STATE_DIR if set.
func NewFileStore() (*FileStore, error) {
	base := os.Getenv(StateDirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, defaultStateBase)
	}
	return &FileStore{baseDir: base}, nil
}

// NewFileStoreAt creates a store rooted at dir.
func NewFileStoreAt(dir string) *FileStore {
	return &FileStore{baseDir: dir}
}

// Path returns the file path backing a key.
func (s *FileStore) Path(key string) string {
	normalized := strings.ToLower(strings.ReplaceAll(key, " ", "-"))
	normalized = strings.ReplaceAll(normalized, string(filepath.Separator), "-")
	return filepath.Join(s.baseDir, normalized+".json")
}

// Read implements Store. Any read error reports absent.
func (s *FileStore) Read(key string) ([]byte, bool) {
	b, err := os.ReadFile(s.Path(key))
	if err != nil {
		return nil, false
	}
	return b, true
}

// Write implements Store, creating the base directory on first use.
func (s *FileStore) Write(key string, data []byte) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.Path(key), data, 0o644)
}

// MemStore is an in-memory Store for tests. Safe for concurrent use.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Read implements Store.
func (s *MemStore) Read(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[key]
	return b, ok
}

// Write implements Store.
func (s *MemStore) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[key] = cp
	return nil
}
