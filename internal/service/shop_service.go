package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/hqh-mall/mallclient/internal/domain/shop"
	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

// Storage key owned by the shop service.
const keyShopInfo = "shopInfo"

// ShopAPI is the slice of the backend client the shop service needs.
type ShopAPI interface {
	MyShop(ctx context.Context) (*shop.Profile, error)
	UpdateShop(ctx context.Context, params shop.UpdateParams) (*shop.Profile, error)
	UploadShopLogo(ctx context.Context, filename string, r io.Reader) (string, error)
}

// ShopService caches the merchant's shop profile. The cache belongs to
// the merchant session that fetched it: eviction must call Reset so the
// next login never sees the previous merchant's shop.
type ShopService struct {
	api          ShopAPI
	store        outbound.StateStore
	logger       *slog.Logger
	imageBaseURL string

	mu      sync.RWMutex
	profile *shop.Profile
	loading bool
	lastErr error
}

// NewShopService creates a shop service.
func NewShopService(api ShopAPI, store outbound.StateStore, imageBaseURL string, logger *slog.Logger) *ShopService {
	return &ShopService{
		api:          api,
		store:        store,
		logger:       logger,
		imageBaseURL: imageBaseURL,
	}
}

// Rehydrate loads the persisted shop profile, if any. Corrupt blobs are
// discarded silently; the next Fetch repopulates.
func (s *ShopService) Rehydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(keyShopInfo)
	if err != nil {
		if !errors.Is(err, outbound.ErrKeyNotFound) {
			s.logger.Warn("reading persisted shop failed", "error", err)
		}
		return
	}

	var p shop.Profile
	if err := json.Unmarshal(raw, &p); err != nil || p.ShopID == 0 {
		s.logger.Warn("discarding corrupt persisted shop")
		_ = s.store.Delete(keyShopInfo)
		return
	}
	s.profile = &p
}

// Profile returns a copy of the cached profile, nil when none is loaded.
func (s *ShopService) Profile() *shop.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Loading reports whether a fetch or update is in flight.
func (s *ShopService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the most recent operation failure, cleared by the
// next successful operation.
func (s *ShopService) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// LogoURL returns the displayable logo URL for the cached profile,
// placeholder included when no shop or no logo is cached.
func (s *ShopService) LogoURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return shop.PlaceholderLogoURL
	}
	return shop.ResolveLogoURL(s.profile.LogoPath, s.imageBaseURL)
}

// Fetch loads the merchant's shop from the backend and caches it. The
// error is recorded for LastError and returned.
func (s *ShopService) Fetch(ctx context.Context) (*shop.Profile, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	p, err := s.api.MyShop(ctx)
	if err != nil {
		s.recordErr(err)
		return nil, err
	}

	s.cache(p)
	return s.Profile(), nil
}

// Update sends a shop update and shallow-merges the result into the
// cache on success.
func (s *ShopService) Update(ctx context.Context, params shop.UpdateParams) (*shop.Profile, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.UpdateShop(ctx, params)
	if err != nil {
		s.recordErr(err)
		return nil, err
	}

	s.mu.Lock()
	merged := *updated
	if s.profile != nil {
		merged = *s.profile
		if updated.ShopName != "" {
			merged.ShopName = updated.ShopName
		}
		if updated.Description != "" {
			merged.Description = updated.Description
		}
		if updated.LogoPath != "" {
			merged.LogoPath = updated.LogoPath
		}
		if updated.BannerPath != "" {
			merged.BannerPath = updated.BannerPath
		}
		if updated.Status != "" {
			merged.Status = updated.Status
		}
		if updated.UpdateTime != "" {
			merged.UpdateTime = updated.UpdateTime
		}
	}
	s.mu.Unlock()

	s.cache(&merged)
	return s.Profile(), nil
}

// UploadLogo uploads a new logo, then updates the shop to point at it.
func (s *ShopService) UploadLogo(ctx context.Context, filename string, r io.Reader) (*shop.Profile, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	path, err := s.api.UploadShopLogo(ctx, filename, r)
	if err != nil {
		s.recordErr(err)
		return nil, err
	}

	s.setLoading(false)
	return s.Update(ctx, shop.UpdateParams{LogoPath: path})
}

// Reset drops the cached profile from memory and durable storage. Called
// on session eviction so profiles never leak across logins.
func (s *ShopService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = nil
	s.lastErr = nil
	if err := s.store.Delete(keyShopInfo); err != nil {
		s.logger.Warn("deleting persisted shop failed", "error", err)
	}
}

// cache installs a profile and writes it through. Persistence failures
// are logged, not returned: the in-memory cache is already correct.
func (s *ShopService) cache(p *shop.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = p
	s.lastErr = nil

	data, err := json.Marshal(p)
	if err != nil {
		s.logger.Warn("marshal shop failed", "error", err)
		return
	}
	if err := s.store.Put(keyShopInfo, data); err != nil {
		s.logger.Warn("persist shop failed", "error", err)
	}
}

func (s *ShopService) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *ShopService) recordErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = fmt.Errorf("shop operation: %w", err)
}
