// Package pagination implements offset pagination over ordered in-memory
// sequences: clamped page parameters, a generic paged window, and the
// metadata header paged HTTP responses carry.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

const (
	minPageNumber = 1
	minPageSize   = 1
	maxPageSize   = 50
)

// PageParameters is a (pageNumber, pageSize) pair that can never hold an
// out-of-range value: every assignment re-applies the clamping bounds, so
// query-string binding cannot produce parameters that break slicing
// downstream. Out-of-range input is corrected silently, never rejected.
type PageParameters struct {
	pageNumber int
	pageSize   int
}

func NewPageParameters() *PageParameters {
	return &PageParameters{pageNumber: minPageNumber, pageSize: minPageSize}
}

func (p *PageParameters) PageNumber() int { return p.pageNumber }

func (p *PageParameters) PageSize() int { return p.pageSize }

func (p *PageParameters) SetPageNumber(n int) {
	if n < minPageNumber {
		n = minPageNumber
	}
	p.pageNumber = n
}

func (p *PageParameters) SetPageSize(n int) {
	switch {
	case n > maxPageSize:
		n = maxPageSize
	case n < minPageSize:
		n = minPageSize
	}
	p.pageSize = n
}

// FromQuery binds pageNumber/pageSize query parameters. Missing or
// non-numeric values keep the defaults; numeric values go through the
// clamping setters.
func FromQuery(q url.Values) *PageParameters {
	p := NewPageParameters()
	if v := q.Get("pageNumber"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.SetPageNumber(n)
		}
	}
	if v := q.Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.SetPageSize(n)
		}
	}
	return p
}

// PagedList is one window over an ordered source plus the metadata needed to
// iterate the rest of it. It is a pure function of its inputs: no clamping
// happens here, a caller bypassing PageParameters gets literal arithmetic.
type PagedList[T any] struct {
	Items      []T `json:"items"`
	PageSize   int `json:"pageSize"`
	PageNumber int `json:"pageNumber"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// NewPagedList slices the window [(pageNumber-1)*pageSize, pageNumber*pageSize)
// out of source, clipped at the source's end. A window starting past the end
// yields empty Items while TotalCount/TotalPages still describe the full source.
func NewPagedList[T any](source []T, pageSize, pageNumber int) *PagedList[T] {
	totalCount := len(source)
	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))

	start := (pageNumber - 1) * pageSize
	if start > totalCount {
		start = totalCount
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	items := make([]T, end-start)
	copy(items, source[start:end])

	return &PagedList[T]{
		Items:      items,
		PageSize:   pageSize,
		PageNumber: pageNumber,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// ToPagedList windows source through params.
func ToPagedList[T any](source []T, params *PageParameters) *PagedList[T] {
	return NewPagedList(source, params.PageSize(), params.PageNumber())
}

// HeaderName is the response header paged endpoints attach their metadata to.
const HeaderName = "Pagination"

// Header is the pagination metadata serialized out-of-band alongside the
// item payload.
type Header struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

func (l *PagedList[T]) Header() Header {
	return Header{
		PageNumber: l.PageNumber,
		PageSize:   l.PageSize,
		TotalCount: l.TotalCount,
		TotalPages: l.TotalPages,
	}
}
