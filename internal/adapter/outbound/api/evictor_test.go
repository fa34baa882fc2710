package api

import (
	"sync"
	"testing"

	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

type fakeSessions struct {
	mu      sync.Mutex
	token   string
	evicted []string
}

func (f *fakeSessions) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeSessions) Evict(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.evicted = append(f.evicted, reason)
}

func (f *fakeSessions) login(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

type fakeNavigator struct {
	mu        sync.Mutex
	path      string
	redirects []string
}

func (f *fakeNavigator) CurrentPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

func (f *fakeNavigator) RedirectToLogin(from, reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.redirects = append(f.redirects, from)
	f.path = "/login"
}

func TestEvictor_EvictsAndRedirectsOnce(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{token: "tok"}
	nav := &fakeNavigator{path: "/admin/users"}
	e := NewEvictor(sessions, nav, "/login", testLogger(), nil)

	// Several requests fail with 401 at the same time.
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Handle()
		}()
	}
	wg.Wait()

	if sessions.Token() != "" {
		t.Error("token survived eviction")
	}
	if len(sessions.evicted) != 1 {
		t.Errorf("evictions = %d, want exactly 1", len(sessions.evicted))
	}
	if len(nav.redirects) != 1 {
		t.Errorf("redirects = %d, want exactly 1", len(nav.redirects))
	}
	if nav.redirects[0] != "/admin/users" {
		t.Errorf("redirect from = %q, want the interrupted path", nav.redirects[0])
	}
}

func TestEvictor_RearmsAfterNewLogin(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{token: "tok-1"}
	nav := &fakeNavigator{path: "/shop"}
	e := NewEvictor(sessions, nav, "/login", testLogger(), nil)

	e.Handle()
	if len(nav.redirects) != 1 {
		t.Fatalf("redirects = %d, want 1 after first expiry", len(nav.redirects))
	}

	// The user logs in again, navigates away, and that session also expires.
	sessions.login("tok-2")
	nav.path = "/shop/orders"
	e.Handle()

	if len(sessions.evicted) != 2 {
		t.Errorf("evictions = %d, want 2", len(sessions.evicted))
	}
	if len(nav.redirects) != 2 {
		t.Errorf("redirects = %d, want the guard re-armed for the new session", len(nav.redirects))
	}
}

func TestEvictor_SkipsRedirectOnLoginSurface(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{token: "tok"}
	nav := &fakeNavigator{path: "/login"}
	e := NewEvictor(sessions, nav, "/login", testLogger(), nil)

	e.Handle()

	if len(sessions.evicted) != 1 {
		t.Errorf("evictions = %d, want eviction to still run", len(sessions.evicted))
	}
	if len(nav.redirects) != 0 {
		t.Errorf("redirects = %d, want none while already on the login surface", len(nav.redirects))
	}
}

func TestEvictor_EmptySessionStillRedirectsOnce(t *testing.T) {
	t.Parallel()

	// A protected call before any login: there is nothing to evict, but the
	// user still deserves the one redirect telling them to log in. Repeats
	// stay silent until a session is established and expires.
	sessions := &fakeSessions{}
	nav := &fakeNavigator{path: "/orders"}
	e := NewEvictor(sessions, nav, "/login", testLogger(), nil)

	e.Handle()
	e.Handle()

	if len(sessions.evicted) != 0 {
		t.Errorf("evictions = %d, want none for an empty session", len(sessions.evicted))
	}
	if len(nav.redirects) != 1 {
		t.Errorf("redirects = %d, want exactly 1", len(nav.redirects))
	}
}

func TestEvictor_EvictionReason(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{token: "tok"}
	nav := &fakeNavigator{path: "/x"}
	NewEvictor(sessions, nav, "/login", testLogger(), nil).Handle()

	if len(sessions.evicted) != 1 || sessions.evicted[0] != outbound.ReasonExpired {
		t.Errorf("evicted = %v, want [%q]", sessions.evicted, outbound.ReasonExpired)
	}
}
