package service

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"go.uber.org/goleak"

	"github.com/hqh-mall/mallclient/internal/adapter/outbound/state"
	"github.com/hqh-mall/mallclient/internal/domain/user"
	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newMemStore() outbound.StateStore {
	return state.NewMemStore()
}

func TestSessionService_EstablishAndRehydrate(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	s1 := NewSessionService(store, testLogger())
	s1.Rehydrate()

	if s1.IsActive() {
		t.Error("fresh session is active, want inactive")
	}
	if s1.Phase() != SessionReady {
		t.Errorf("Phase = %q, want ready after rehydrate", s1.Phase())
	}

	creds := &user.Credentials{
		Identity: user.Identity{Account: "m1", Username: "Merchant One", UserType: user.TypeMerchant},
		Token:    "jwt-abc",
	}
	if err := s1.Establish(creds); err != nil {
		t.Fatalf("Establish() error: %v", err)
	}
	if s1.Token() != "jwt-abc" {
		t.Errorf("Token = %q", s1.Token())
	}

	// A second service over the same store resumes the session.
	s2 := NewSessionService(store, testLogger())
	s2.Rehydrate()
	if s2.Token() != "jwt-abc" {
		t.Errorf("rehydrated Token = %q, want persisted token", s2.Token())
	}
	id := s2.Identity()
	if id == nil || id.Account != "m1" || id.UserType != user.TypeMerchant {
		t.Errorf("rehydrated Identity = %+v", id)
	}
}

func TestSessionService_RehydrateDiscardsCorruptState(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	_ = store.Put("token", []byte(`{not json`))
	_ = store.Put("userInfo", []byte(`42`))

	s := NewSessionService(store, testLogger())
	s.Rehydrate()

	if s.IsActive() {
		t.Error("session active after corrupt token, want inactive")
	}
	if s.Identity() != nil {
		t.Error("identity survived corrupt blob, want nil")
	}
	// Corrupt blobs are purged so the next start does not re-warn.
	if _, err := store.Get("token"); !errors.Is(err, outbound.ErrKeyNotFound) {
		t.Error("corrupt token still persisted, want deleted")
	}
}

func TestSessionService_RehydrateDiscardsIdentityWithoutToken(t *testing.T) {
	t.Parallel()

	// Only the identity survived (the token blob was lost or corrupted).
	// Installing it anyway would report a stale identity on an inactive
	// session, so it must be dropped along with its persisted blob.
	store := newMemStore()
	_ = store.Put("token", []byte(`{not json`))
	_ = store.Put("userInfo", []byte(`{"account":"a1","username":"u","userType":"customer"}`))

	s := NewSessionService(store, testLogger())
	s.Rehydrate()

	if s.IsActive() {
		t.Error("session active without a token")
	}
	if id := s.Identity(); id != nil {
		t.Errorf("Identity = %+v on an inactive session, want nil", id)
	}
	if _, err := store.Get("userInfo"); !errors.Is(err, outbound.ErrKeyNotFound) {
		t.Error("orphaned identity still persisted, want deleted")
	}
}

func TestSessionService_EvictIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	s := NewSessionService(store, testLogger())
	s.Rehydrate()
	_ = s.Establish(&user.Credentials{
		Identity: user.Identity{Account: "a"},
		Token:    "t",
	})

	s.Evict(outbound.ReasonExpired)
	s.Evict(outbound.ReasonExpired)
	s.Evict(outbound.ReasonLogout)

	if s.IsActive() {
		t.Error("session active after eviction")
	}
	if _, err := store.Get("token"); !errors.Is(err, outbound.ErrKeyNotFound) {
		t.Error("token still persisted after eviction")
	}
	if _, err := store.Get("userInfo"); !errors.Is(err, outbound.ErrKeyNotFound) {
		t.Error("identity still persisted after eviction")
	}
}

func TestSessionService_SetIdentityKeepsToken(t *testing.T) {
	t.Parallel()

	s := NewSessionService(newMemStore(), testLogger())
	s.Rehydrate()
	_ = s.Establish(&user.Credentials{
		Identity: user.Identity{Account: "a", Username: "old"},
		Token:    "t",
	})

	if err := s.SetIdentity(user.Identity{Account: "a", Username: "new"}); err != nil {
		t.Fatalf("SetIdentity() error: %v", err)
	}
	if s.Token() != "t" {
		t.Errorf("Token = %q, want unchanged", s.Token())
	}
	if id := s.Identity(); id == nil || id.Username != "new" {
		t.Errorf("Identity = %+v, want updated username", id)
	}
}
