// Package state provides durable client-state storage adapters: the
// string-keyed JSON blobs the entity stores persist to and rehydrate from.
package state

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

// FileStore keeps one JSON file per key under a directory. Writes are
// atomic (write-tmp-then-rename) and guarded by a cross-process flock so
// concurrent CLI invocations cannot interleave a partial write. A write
// whose payload fingerprint matches the last one seen by this process is
// skipped entirely.
type FileStore struct {
	dir    string
	mu     sync.Mutex
	hashes map[string]uint64 // key -> xxhash of last written payload
	logger *slog.Logger
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{
		dir:    dir,
		hashes: make(map[string]uint64),
		logger: logger,
	}, nil
}

// Get returns the blob stored under key, or outbound.ErrKeyNotFound.
func (s *FileStore) Get(key string) ([]byte, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, outbound.ErrKeyNotFound
		}
		return nil, fmt.Errorf("read state key %q: %w", key, err)
	}

	// Warn once if a previous writer left the file group/other readable.
	if runtime.GOOS != "windows" {
		if info, statErr := os.Stat(path); statErr == nil && info.Mode().Perm()&0o077 != 0 {
			s.logger.Warn("state file has too-open permissions, should be 0600",
				"key", key, "current_mode", fmt.Sprintf("%04o", info.Mode().Perm()))
		}
	}

	return data, nil
}

// Put stores the blob under key. No-op when the payload is byte-identical
// to the last write this process made for the key.
func (s *FileStore) Put(key string, value []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sum := xxhash.Sum64(value)
	if prev, ok := s.hashes[key]; ok && prev == sum {
		s.logger.Debug("state unchanged, skipping write", "key", key)
		return nil
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if err := writeAtomic(path, value); err != nil {
		return fmt.Errorf("write state key %q: %w", key, err)
	}
	s.hashes[key] = sum

	s.logger.Debug("state saved", "key", key)
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *FileStore) Delete(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	delete(s.hashes, key)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete state key %q: %w", key, err)
	}
	return nil
}

// keyPath maps a key to its file, rejecting anything that would escape
// the state directory.
func (s *FileStore) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return "", fmt.Errorf("invalid state key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// lock acquires the cross-process flock shared by all keys in this
// directory and returns the release function.
func (s *FileStore) lock() (func(), error) {
	lockPath := filepath.Join(s.dir, ".lock")
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := flockLock(lockFile.Fd()); err != nil {
		_ = lockFile.Close()
		return nil, fmt.Errorf("acquire file lock: %w", err)
	}
	return func() {
		_ = flockUnlock(lockFile.Fd())
		_ = lockFile.Close()
	}, nil
}

// writeAtomic writes data to a temp file, fsyncs it, and renames it over
// the target path. On any error the temp file is cleaned up.
func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := f.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Compile-time check that FileStore implements the port.
var _ outbound.StateStore = (*FileStore)(nil)
