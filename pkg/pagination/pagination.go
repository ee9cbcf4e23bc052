// Package pagination extracts limit/offset query parameters with
// configurable defaults and caps.
package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Limits carries the configured default and maximum page sizes.
type Limits struct {
	Default int
	Max     int
}

// Params holds pagination parameters extracted from a request.
type Params struct {
	Limit  int
	Offset int
}

// FromContext extracts limit and offset from the query string. A
// missing or non-positive limit falls back to the default; anything
// above Max is clamped rather than rejected.
func (l Limits) FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = l.Default
	}
	if limit > l.Max {
		limit = l.Max
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset+p.Limit < total
}

// NextOffset returns the offset for the next page.
func (p Params) NextOffset() int {
	return p.Offset + p.Limit
}
