package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hqh-mall/mallclient/internal/domain/shop"
	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

type fakeShopAPI struct {
	profile   *shop.Profile
	fetchErr  error
	updateErr error
	uploaded  string

	updates []shop.UpdateParams
}

func (f *fakeShopAPI) MyShop(_ context.Context) (*shop.Profile, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeShopAPI) UpdateShop(_ context.Context, params shop.UpdateParams) (*shop.Profile, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updates = append(f.updates, params)
	return &shop.Profile{
		ShopID:      f.profile.ShopID,
		ShopName:    params.ShopName,
		Description: params.Description,
		LogoPath:    params.LogoPath,
		BannerPath:  params.BannerPath,
	}, nil
}

func (f *fakeShopAPI) UploadShopLogo(_ context.Context, _ string, _ io.Reader) (string, error) {
	return f.uploaded, nil
}

func TestShopService_FetchCachesAndPersists(t *testing.T) {
	t.Parallel()

	api := &fakeShopAPI{profile: &shop.Profile{ShopID: 7, ShopName: "n", Status: shop.StatusActive}}
	store := newMemStore()
	s := NewShopService(api, store, "https://img.example.com", testLogger())

	got, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if got.ShopID != 7 {
		t.Errorf("ShopID = %d", got.ShopID)
	}

	// A fresh service over the same store rehydrates the profile.
	s2 := NewShopService(api, store, "https://img.example.com", testLogger())
	s2.Rehydrate()
	if p := s2.Profile(); p == nil || p.ShopID != 7 {
		t.Errorf("rehydrated Profile = %+v", p)
	}
}

func TestShopService_FetchErrorRecorded(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("backend down")
	api := &fakeShopAPI{fetchErr: wantErr}
	s := NewShopService(api, newMemStore(), "", testLogger())

	if _, err := s.Fetch(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Fetch() error = %v, want wrapped cause", err)
	}
	if !errors.Is(s.LastError(), wantErr) {
		t.Errorf("LastError() = %v, want recorded failure", s.LastError())
	}
	if s.Loading() {
		t.Error("Loading() = true after Fetch returned")
	}
}

func TestShopService_UpdateMergesIntoCache(t *testing.T) {
	t.Parallel()

	api := &fakeShopAPI{profile: &shop.Profile{ShopID: 7, ShopName: "old", Description: "d", Status: shop.StatusActive}}
	s := NewShopService(api, newMemStore(), "", testLogger())
	if _, err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	got, err := s.Update(context.Background(), shop.UpdateParams{ShopName: "new"})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got.ShopName != "new" {
		t.Errorf("ShopName = %q, want updated", got.ShopName)
	}
	// Fields absent from the update survive the merge.
	if got.Description != "d" || got.Status != shop.StatusActive {
		t.Errorf("merged Profile = %+v, want untouched fields kept", got)
	}
}

func TestShopService_UploadLogoChainsUpdate(t *testing.T) {
	t.Parallel()

	api := &fakeShopAPI{
		profile:  &shop.Profile{ShopID: 7, ShopName: "n"},
		uploaded: "shop/7/logo.png",
	}
	s := NewShopService(api, newMemStore(), "https://img.example.com/", testLogger())
	if _, err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	got, err := s.UploadLogo(context.Background(), "logo.png", nil)
	if err != nil {
		t.Fatalf("UploadLogo() error: %v", err)
	}
	if got.LogoPath != "shop/7/logo.png" {
		t.Errorf("LogoPath = %q, want uploaded path", got.LogoPath)
	}
	if len(api.updates) != 1 || api.updates[0].LogoPath != "shop/7/logo.png" {
		t.Errorf("updates = %+v, want one update carrying the new path", api.updates)
	}
}

func TestShopService_LogoURL(t *testing.T) {
	t.Parallel()

	s := NewShopService(&fakeShopAPI{}, newMemStore(), "https://img.example.com/", testLogger())
	if got := s.LogoURL(); got != shop.PlaceholderLogoURL {
		t.Errorf("LogoURL() = %q, want placeholder with no shop cached", got)
	}
}

func TestShopService_ResetDropsEverything(t *testing.T) {
	t.Parallel()

	api := &fakeShopAPI{profile: &shop.Profile{ShopID: 7, ShopName: "n"}}
	store := newMemStore()
	s := NewShopService(api, store, "", testLogger())
	if _, err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	s.Reset()

	if s.Profile() != nil {
		t.Error("Profile survived Reset")
	}
	if _, err := store.Get("shopInfo"); !errors.Is(err, outbound.ErrKeyNotFound) {
		t.Error("persisted shop survived Reset")
	}
}
