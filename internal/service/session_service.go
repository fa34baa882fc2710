// Package service holds the client-state services: the session, the
// merchant shop cache, and the cart selection. Each owns one slice of
// state, serializes access with a mutex, and persists through the
// StateStore port.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hqh-mall/mallclient/internal/domain/user"
	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

// Session lifecycle states. The session is Uninitialized until Rehydrate
// runs; requests issued before that see an empty token.
const (
	SessionUninitialized = "uninitialized"
	SessionRehydrating   = "rehydrating"
	SessionReady         = "ready"
)

// Storage keys owned by the session service.
const (
	keyToken    = "token"
	keyUserInfo = "userInfo"
)

// SessionService owns the authentication state: the bearer token and the
// cached identity. Both live in memory for synchronous reads and are
// written through to durable storage on every mutation, so a new process
// over the same state directory resumes the session.
type SessionService struct {
	store  outbound.StateStore
	logger *slog.Logger

	mu       sync.RWMutex
	phase    string
	token    string
	identity *user.Identity
}

// NewSessionService creates a session service. Call Rehydrate before
// serving reads.
func NewSessionService(store outbound.StateStore, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:  store,
		logger: logger,
		phase:  SessionUninitialized,
	}
}

// Rehydrate loads the persisted token and identity. Corrupt or missing
// values start an unauthenticated session rather than failing: losing a
// cached login is an inconvenience, refusing to start is an outage.
func (s *SessionService) Rehydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = SessionRehydrating

	if raw, err := s.store.Get(keyToken); err == nil {
		var tok string
		if jsonErr := json.Unmarshal(raw, &tok); jsonErr == nil && tok != "" {
			s.token = tok
		} else {
			s.logger.Warn("discarding corrupt persisted token")
			_ = s.store.Delete(keyToken)
		}
	} else if !errors.Is(err, outbound.ErrKeyNotFound) {
		s.logger.Warn("reading persisted token failed", "error", err)
	}

	if raw, err := s.store.Get(keyUserInfo); err == nil {
		var id user.Identity
		switch {
		case s.token == "":
			// An identity without a token would present a stale login on an
			// inactive session; the two are only ever valid together.
			s.logger.Warn("discarding persisted identity without a token")
			_ = s.store.Delete(keyUserInfo)
		case json.Unmarshal(raw, &id) == nil && id.Account != "":
			s.identity = &id
		default:
			s.logger.Warn("discarding corrupt persisted identity")
			_ = s.store.Delete(keyUserInfo)
		}
	} else if !errors.Is(err, outbound.ErrKeyNotFound) {
		s.logger.Warn("reading persisted identity failed", "error", err)
	}

	s.phase = SessionReady
	s.logger.Info("session rehydrated", "active", s.token != "")
}

// Phase returns the lifecycle phase.
func (s *SessionService) Phase() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Token returns the current bearer token, empty when unauthenticated.
// This is the pipeline's TokenSource.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsActive reports whether a session is live.
func (s *SessionService) IsActive() bool {
	return s.Token() != ""
}

// Identity returns a copy of the cached identity, nil when none is set.
func (s *SessionService) Identity() *user.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Establish installs a fresh login: token and identity together, memory
// first, then durable storage. A persistence failure is reported but the
// in-memory session stays live; the user did log in.
func (s *SessionService) Establish(creds *user.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = creds.Token
	id := creds.Identity
	s.identity = &id

	var errs []error
	if data, err := json.Marshal(creds.Token); err == nil {
		if err := s.store.Put(keyToken, data); err != nil {
			errs = append(errs, fmt.Errorf("persist token: %w", err))
		}
	}
	if data, err := json.Marshal(id); err == nil {
		if err := s.store.Put(keyUserInfo, data); err != nil {
			errs = append(errs, fmt.Errorf("persist identity: %w", err))
		}
	}

	s.logger.Info("session established", "account", id.Account, "userType", id.UserType)
	return errors.Join(errs...)
}

// SetIdentity replaces the cached identity, keeping the token.
func (s *SessionService) SetIdentity(id user.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &id
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	if err := s.store.Put(keyUserInfo, data); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}
	return nil
}

// Evict clears the session from memory and durable storage. Idempotent:
// evicting an already-empty session is a no-op, so concurrent 401
// handling and an explicit logout cannot trip over each other.
func (s *SessionService) Evict(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" && s.identity == nil {
		return
	}

	s.token = ""
	s.identity = nil

	if err := s.store.Delete(keyToken); err != nil {
		s.logger.Warn("deleting persisted token failed", "error", err)
	}
	if err := s.store.Delete(keyUserInfo); err != nil {
		s.logger.Warn("deleting persisted identity failed", "error", err)
	}

	s.logger.Info("session evicted", "reason", reason)
}
