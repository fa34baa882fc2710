// Package page defines the normalized pagination shape shared by every
// list endpoint.
package page

// Defaults applied when the backend omits or mangles pagination metadata.
const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
)

// ListPage is the stable result of a list endpoint after normalization.
// The counts are display hints only: the backend routinely reports totals
// that disagree with len(List), so nothing may index into List using them.
type ListPage[T any] struct {
	Total     int `json:"total"`
	TotalPage int `json:"totalPage"`
	PageNum   int `json:"pageNum"`
	PageSize  int `json:"pageSize"`
	List      []T `json:"list"`
}

// Empty is the degraded result a read normalizer falls back to on any
// anomaly: well-typed, never nil, safe to render as an empty table.
func Empty[T any]() ListPage[T] {
	return ListPage[T]{
		PageNum:  DefaultPageNum,
		PageSize: DefaultPageSize,
		List:     []T{},
	}
}

// Query carries the pagination parameters common to list requests.
type Query struct {
	PageNum  int
	PageSize int
}
