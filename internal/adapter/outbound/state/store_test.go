package state

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Both backends must satisfy the same contract; run the shared suite
// against each.
func TestStateStores_Contract(t *testing.T) {
	t.Parallel()

	backends := []struct {
		name string
		open func(t *testing.T) outbound.StateStore
	}{
		{
			"file",
			func(t *testing.T) outbound.StateStore {
				s, err := NewFileStore(t.TempDir(), testLogger())
				if err != nil {
					t.Fatalf("NewFileStore() error: %v", err)
				}
				return s
			},
		},
		{
			"memory",
			func(t *testing.T) outbound.StateStore {
				return NewMemStore()
			},
		},
		{
			"sqlite",
			func(t *testing.T) outbound.StateStore {
				s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"), testLogger())
				if err != nil {
					t.Fatalf("NewSQLiteStore() error: %v", err)
				}
				t.Cleanup(func() { _ = s.Close() })
				return s
			},
		},
	}

	for _, backend := range backends {
		backend := backend
		t.Run(backend.name, func(t *testing.T) {
			t.Parallel()
			store := backend.open(t)

			// Absent key is not an error condition, just ErrKeyNotFound.
			if _, err := store.Get("token"); !errors.Is(err, outbound.ErrKeyNotFound) {
				t.Errorf("Get(absent) error = %v, want ErrKeyNotFound", err)
			}

			if err := store.Put("token", []byte(`"abc123"`)); err != nil {
				t.Fatalf("Put() error: %v", err)
			}
			got, err := store.Get("token")
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if string(got) != `"abc123"` {
				t.Errorf("Get() = %s, want %q", got, `"abc123"`)
			}

			// Overwrite replaces.
			if err := store.Put("token", []byte(`"def456"`)); err != nil {
				t.Fatalf("Put(overwrite) error: %v", err)
			}
			got, _ = store.Get("token")
			if string(got) != `"def456"` {
				t.Errorf("Get() after overwrite = %s, want %q", got, `"def456"`)
			}

			if err := store.Delete("token"); err != nil {
				t.Fatalf("Delete() error: %v", err)
			}
			if _, err := store.Get("token"); !errors.Is(err, outbound.ErrKeyNotFound) {
				t.Errorf("Get(deleted) error = %v, want ErrKeyNotFound", err)
			}

			// Deleting an absent key is fine.
			if err := store.Delete("token"); err != nil {
				t.Errorf("Delete(absent) error = %v, want nil", err)
			}
		})
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s1, err := NewFileStore(dir, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	if err := s1.Put("userInfo", []byte(`{"account":"m1"}`)); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	// A fresh instance over the same directory sees the value: this is the
	// reload-in-a-new-tab scenario.
	s2, err := NewFileStore(dir, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	got, err := s2.Get("userInfo")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got) != `{"account":"m1"}` {
		t.Errorf("Get() = %s, want persisted blob", got)
	}
}

func TestFileStore_RejectsTraversalKeys(t *testing.T) {
	t.Parallel()

	s, err := NewFileStore(t.TempDir(), testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	for _, key := range []string{"", "../escape", "a/b", `a\b`, "dotted.key"} {
		if err := s.Put(key, []byte("x")); err == nil {
			t.Errorf("Put(%q) error = nil, want invalid-key error", key)
		}
	}
}

func TestFileStore_SkipsIdenticalWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewFileStore(dir, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	payload := []byte(`{"shopId":7}`)
	if err := s.Put("shopInfo", payload); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	path := filepath.Join(dir, "shopInfo.json")
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}

	if err := s.Put("shopInfo", payload); err != nil {
		t.Fatalf("Put(identical) error: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}

	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("identical Put() rewrote the file, want skipped write")
	}
}
