// Package pagination normalizes page/page_size query parameters into
// bounded, safe values shared by every listing endpoint.
package pagination

import (
	"errors"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrInvalidParams is returned when a pagination parameter is present but
// not an integer.
var ErrInvalidParams = errors.New("invalid pagination parameters")

// Params is a normalized page request. Page is always >= 1 and PageSize is
// always within [1, MaxPageSize].
type Params struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for a store query.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Parse normalizes raw page and page_size query values. Absent values fall
// back to the defaults; values that are present but unparseable are an
// error. The result is always clamped.
func Parse(pageRaw, sizeRaw string) (Params, error) {
	page := DefaultPage
	size := DefaultPageSize

	if pageRaw != "" {
		n, err := strconv.Atoi(pageRaw)
		if err != nil {
			return Params{}, ErrInvalidParams
		}
		page = n
	}
	if sizeRaw != "" {
		n, err := strconv.Atoi(sizeRaw)
		if err != nil {
			return Params{}, ErrInvalidParams
		}
		size = n
	}

	return Clamp(page, size), nil
}

// Clamp bounds page to >= 1 and pageSize to [1, MaxPageSize].
func Clamp(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return Params{Page: page, PageSize: pageSize}
}
