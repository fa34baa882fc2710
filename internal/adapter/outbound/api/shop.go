package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/shop"
)

func buildShopProfile(m map[string]any) shop.Profile {
	return shop.Profile{
		ShopID:      integer(m, "shopId"),
		ShopName:    str(m, "shopName"),
		Description: str(m, "shopDescription"),
		LogoPath:    str(m, "shopLogo"),
		BannerPath:  str(m, "shopBanner"),
		Status:      strOr(m, "status", shop.StatusAuditing),
		CreateTime:  str(m, "createTime"),
		UpdateTime:  str(m, "updateTime"),
	}
}

// MyShop fetches the authenticated merchant's shop profile. Strict: a
// merchant without a readable shop cannot operate, so malformed payloads
// are errors, not empty profiles.
func (c *Client) MyShop(ctx context.Context) (*shop.Profile, error) {
	v, err := c.get(ctx, "/api/shop/my", nil)
	if err != nil {
		return nil, err
	}

	data := objectOf(v)
	if data == nil {
		return nil, &apierr.TransportError{Op: "GET /api/shop/my", Err: errors.New("malformed shop payload")}
	}

	p := buildShopProfile(data)
	return &p, nil
}

// UpdateShop replaces the shop's editable fields and returns the profile
// the backend now holds. Backends that answer with an empty data member
// get the submitted fields echoed back so the caller can still merge.
func (c *Client) UpdateShop(ctx context.Context, params shop.UpdateParams) (*shop.Profile, error) {
	v, err := c.send(ctx, http.MethodPut, "/api/shop/update", nil, params)
	if err != nil {
		return nil, err
	}

	if data := objectOf(v); data != nil {
		p := buildShopProfile(data)
		if p.ShopID != 0 || p.ShopName != "" {
			return &p, nil
		}
	}

	return &shop.Profile{
		ShopName:    params.ShopName,
		Description: params.Description,
		LogoPath:    params.LogoPath,
		BannerPath:  params.BannerPath,
	}, nil
}

// UploadShopLogo uploads a logo image and returns the stored path. The
// form field name is fixed by the backend.
func (c *Client) UploadShopLogo(ctx context.Context, filename string, r io.Reader) (string, error) {
	form := NewForm()
	form.AddFile("logo", filename, r)

	v, err := c.sendForm(ctx, "/api/shop/logo/upload", nil, form)
	if err != nil {
		return "", err
	}

	// The path comes back either as the bare data value or wrapped in an
	// object under url/path.
	switch data := dataOf(v).(type) {
	case string:
		if data != "" {
			return data, nil
		}
	case map[string]any:
		if s := str(data, "url"); s != "" {
			return s, nil
		}
		if s := str(data, "path"); s != "" {
			return s, nil
		}
	}

	return "", &apierr.TransportError{Op: "POST /api/shop/logo/upload", Err: fmt.Errorf("upload response carries no path")}
}

// ShopStatistics fetches the merchant dashboard counters. Never errors;
// anomalies degrade to zeros.
func (c *Client) ShopStatistics(ctx context.Context) shop.Statistics {
	const path = "/api/shop/statistics"
	v, err := c.get(ctx, path, nil)
	if err != nil {
		c.fallback(path, err)
		return shop.Statistics{}
	}

	data := objectOf(v)
	if data == nil {
		c.fallback(path, errors.New("malformed statistics payload"))
		return shop.Statistics{}
	}

	return shop.Statistics{
		ShopID:             integer(data, "shopId"),
		ShopName:           str(data, "shopName"),
		ProductCount:       integer(data, "productCount"),
		OrderCount:         integer(data, "orderCount"),
		TotalSales:         num(data, "totalSales"),
		PendingOrderCount:  integer(data, "pendingOrderCount"),
		OnSaleProductCount: integer(data, "onSaleProductCount"),
	}
}
