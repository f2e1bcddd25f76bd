package utils

import (
	"net/http"
	"strconv"
)

// ParsePagination reads page/limit query params. When no limit is
// supplied the returned limit is 0, meaning "everything" — callers only
// paginate on explicit request. An explicit limit falls back to
// defaultLimit when invalid and is capped at maxLimit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int64) (skip, limit int64) {
	q := r.URL.Query()

	if q.Get("limit") == "" {
		return 0, 0
	}

	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	return (page - 1) * limit, limit
}
