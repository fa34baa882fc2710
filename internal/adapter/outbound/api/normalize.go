package api

import (
	"github.com/hqh-mall/mallclient/internal/domain/page"
	"github.com/hqh-mall/mallclient/pkg/envelope"
)

// Shared plumbing for the read normalizers. A list endpoint may answer
// with any of these shapes and all of them must normalize:
//
//	{"code":200,"data":{"list":[...],"total":N,...}}   the documented shape
//	{"code":200,"data":[...]}                          data is the bare array
//	[...]                                              no envelope at all
//	{"code":200,"data":null} / {} / garbage            anything else
//
// The last group degrades to an empty page rather than an error.

// listOf extracts the element array from an unwrapped payload, or nil
// when the payload carries no usable list.
func listOf(data any) []any {
	switch t := data.(type) {
	case []any:
		return t
	case map[string]any:
		if list, ok := t["list"].([]any); ok {
			return list
		}
		return nil
	default:
		return nil
	}
}

// pageOf assembles a normalized page from an unwrapped payload, mapping
// each well-formed element through build. Elements that are not objects
// are dropped, never propagated as errors.
func pageOf[T any](data any, build func(map[string]any) T) page.ListPage[T] {
	list := listOf(data)
	if list == nil {
		return page.Empty[T]()
	}

	out := page.ListPage[T]{
		PageNum:  page.DefaultPageNum,
		PageSize: page.DefaultPageSize,
		List:     make([]T, 0, len(list)),
	}

	if meta, ok := data.(map[string]any); ok {
		out.Total = count(meta, "total", 0)
		out.TotalPage = count(meta, "totalPage", 0)
		out.PageNum = count(meta, "pageNum", page.DefaultPageNum)
		out.PageSize = count(meta, "pageSize", page.DefaultPageSize)
	}

	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		out.List = append(out.List, build(m))
	}

	return out
}

// dataOf unwraps the business payload of a pipeline result: the "data"
// member of an envelope, or the value itself for non-enveloped responses.
func dataOf(v any) any {
	return envelope.Data(v)
}

// objectOf returns the payload as an object, or nil when it is anything
// else. Detail normalizers use it before rebuilding fields.
func objectOf(v any) map[string]any {
	m, _ := dataOf(v).(map[string]any)
	return m
}
