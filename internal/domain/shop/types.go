// Package shop defines the merchant shop profile and its derived views.
package shop

import "strings"

// Shop statuses.
const (
	StatusActive   = "active"
	StatusClosed   = "closed"
	StatusAuditing = "auditing"
)

// OSSOrigin is the object-storage origin whose absolute URLs are rewritten
// to the local proxy path to dodge the bucket's CORS policy.
const OSSOrigin = "taobao-hqh.oss-cn-beijing.aliyuncs.com"

// PlaceholderLogoURL is shown when a shop has no logo at all.
const PlaceholderLogoURL = "https://via.placeholder.com/200x200"

// Profile is the merchant's own shop, owned exclusively by the merchant
// session that fetched it. Persisted to durable storage on every mutation.
type Profile struct {
	ShopID      int64  `json:"shopId"`
	ShopName    string `json:"shopName"`
	Description string `json:"shopDescription"`
	LogoPath    string `json:"shopLogo"`
	BannerPath  string `json:"shopBanner"`
	Status      string `json:"status"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
}

// IsActive reports whether the shop is open for business.
func (p *Profile) IsActive() bool { return p.Status == StatusActive }

// IsClosed reports whether the shop has been closed.
func (p *Profile) IsClosed() bool { return p.Status == StatusClosed }

// IsAuditing reports whether the shop is still under review.
func (p *Profile) IsAuditing() bool { return p.Status == StatusAuditing }

// UpdateParams is a partial shop update; it is shallow-merged into the
// cached profile on success.
type UpdateParams struct {
	ShopName    string `json:"shopName"`
	Description string `json:"shopDescription"`
	LogoPath    string `json:"shopLogo,omitempty"`
	BannerPath  string `json:"shopBanner,omitempty"`
}

// Statistics is the merchant dashboard summary for a shop.
type Statistics struct {
	ShopID             int64   `json:"shopId"`
	ShopName           string  `json:"shopName"`
	ProductCount       int64   `json:"productCount"`
	OrderCount         int64   `json:"orderCount"`
	TotalSales         float64 `json:"totalSales"`
	PendingOrderCount  int64   `json:"pendingOrderCount"`
	OnSaleProductCount int64   `json:"onSaleProductCount"`
}

// ResolveLogoURL turns a stored logo path into a displayable URL:
//   - absolute URL at the known object-storage origin: rewritten to the
//     local /oss/ proxy path
//   - absolute URL elsewhere: used verbatim
//   - relative path: prefixed with the image base URL
//   - empty: the placeholder
func ResolveLogoURL(logoPath, imageBaseURL string) string {
	if logoPath == "" {
		return PlaceholderLogoURL
	}

	for _, scheme := range []string{"https://", "http://"} {
		if !strings.HasPrefix(logoPath, scheme) {
			continue
		}
		rest := strings.TrimPrefix(logoPath, scheme)
		if strings.HasPrefix(rest, OSSOrigin+"/") {
			return "/oss/" + strings.TrimPrefix(rest, OSSOrigin+"/")
		}
		return logoPath
	}

	return imageBaseURL + logoPath
}
