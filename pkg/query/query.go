// Package query parses the listing parameters shared by every
// collection endpoint: pagination, sorting and free-text search.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds normalized listing parameters.
type Params struct {
	Page   int
	Limit  int
	Sort   string // column name, empty means endpoint default
	Order  string // "asc" or "desc"
	Search string
}

// Parse reads page/limit/sort/order/search from a query string and
// clamps them to sane bounds.
func Parse(values url.Values) Params {
	p := Params{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		Order:  "asc",
		Search: strings.TrimSpace(values.Get("search")),
	}

	if v, err := strconv.Atoi(values.Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil && v > 0 {
		p.Limit = v
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}
	if s := values.Get("sort"); isSafeColumn(s) {
		p.Sort = s
	}
	if o := strings.ToLower(values.Get("order")); o == "desc" {
		p.Order = "desc"
	}

	return p
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause builds an ORDER BY expression, falling back to the
// given default column when no sort was requested.
func (p Params) OrderClause(defaultSort string) string {
	col := p.Sort
	if col == "" {
		col = defaultSort
	}
	if col == "" {
		return ""
	}
	return col + " " + p.Order
}

// SearchPattern returns the ILIKE pattern for the search term, empty
// when no search was requested.
func (p Params) SearchPattern() string {
	if p.Search == "" {
		return ""
	}
	return "%" + p.Search + "%"
}

// isSafeColumn rejects sort values that are not plain identifiers,
// so user input never reaches the ORDER BY clause verbatim.
func isSafeColumn(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
