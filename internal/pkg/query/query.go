package query

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPerPage is the default number of items per page
const DefaultPerPage = 10

// MaxPerPage is the maximum number of items per page
const MaxPerPage = 100

// Sentinel reports whether a filter value means "no constraint" and must be
// stripped before it reaches the query string.
func Sentinel(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == "all"
}

// Set adds key=value unless the value is a sentinel.
func Set(v url.Values, key, value string) {
	if Sentinel(value) {
		return
	}
	v.Set(key, strings.TrimSpace(value))
}

// SetPage adds pagination parameters, clamping them to valid ranges.
// Zero values are omitted entirely (server defaults apply).
func SetPage(v url.Values, page, perPage int) {
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		if perPage > MaxPerPage {
			perPage = MaxPerPage
		}
		v.Set("per_page", strconv.Itoa(perPage))
	}
}

// Clean drops every sentinel-valued key from a raw filter map and returns
// the remainder as query parameters.
func Clean(filters map[string]string) url.Values {
	v := url.Values{}
	for key, value := range filters {
		Set(v, key, value)
	}
	return v
}

// Meta represents server-side pagination metadata as returned by list
// endpoints that paginate.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// HasNext reports whether another page follows the current one.
func (m Meta) HasNext() bool {
	return m.CurrentPage < m.LastPage
}

// HasPrev reports whether a page precedes the current one.
func (m Meta) HasPrev() bool {
	return m.CurrentPage > 1
}
