package shared

import (
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type Page struct {
	Limit  int
	Offset int
}

// PageFromRequest reads the optional limit/offset query parameters.
// Invalid or missing values fall back to the defaults; limit is capped so a
// single request cannot drag an entire tenant's history through the API.
func PageFromRequest(r *http.Request) Page {
	page := Page{Limit: defaultPageSize}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		page.Limit = min(v, maxPageSize)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		page.Offset = v
	}
	return page
}
