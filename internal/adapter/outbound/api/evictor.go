package api

import (
	"log/slog"
	"sync"

	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

// Sessions is the slice of the session service the evictor needs.
type Sessions interface {
	Token() string
	Evict(reason string)
}

// Evictor reacts to authentication failures: it evicts the local session
// once and redirects to the login surface once, no matter how many
// concurrent requests fail with a 401 at the same time.
type Evictor struct {
	sessions Sessions
	nav      outbound.Navigator
	logger   *slog.Logger
	metrics  *Metrics

	loginPath string

	mu         sync.Mutex
	redirected bool
}

// NewEvictor wires the auth-failure handler. Install its Handle method as
// the client's unauthenticated hook.
func NewEvictor(sessions Sessions, nav outbound.Navigator, loginPath string, logger *slog.Logger, metrics *Metrics) *Evictor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evictor{
		sessions:  sessions,
		nav:       nav,
		logger:    logger,
		metrics:   metrics,
		loginPath: loginPath,
	}
}

// Handle processes one authentication failure. Eviction is idempotent so
// it always runs; the redirect fires at most once per expiry cycle. A 401
// on an already-empty session (a protected call issued before login)
// still gets the one pending redirect so the user is told to log in, but
// it does not re-arm the guard.
func (e *Evictor) Handle() {
	e.mu.Lock()
	defer e.mu.Unlock()

	wasActive := e.sessions.Token() != ""
	if wasActive {
		e.sessions.Evict(outbound.ReasonExpired)
		if e.metrics != nil {
			e.metrics.SessionEvictions.Inc()
		}
		// A fresh session expired, so the guard resets: the next 401 after
		// a future login must redirect again.
		e.redirected = false
	}

	if e.redirected {
		return
	}

	from := e.nav.CurrentPath()
	if from == e.loginPath {
		// Already on the login surface; a redirect would only clobber the
		// form the user is filling in.
		return
	}

	e.logger.Info("session expired, redirecting to login", "from", from)
	e.nav.RedirectToLogin(from, outbound.ReasonExpired)
	e.redirected = true
}
