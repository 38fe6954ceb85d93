package utils

import (
	"net/http"
	"strconv"
)

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// PaginatedResponse represents a paginated API response
type PaginatedResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// DefaultPageSize is the default number of items per page
const DefaultPageSize = 6

// MaxPageSize is the maximum number of items per page
const MaxPageSize = 100

// ParsePaginationParams parses page and page_size from the query string
func ParsePaginationParams(r *http.Request) PaginationParams {
	page := parseIntQuery(r.URL.Query().Get("page"), 1)
	pageSize := parseIntQuery(r.URL.Query().Get("page_size"), DefaultPageSize)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// NewPaginatedResponse builds a paginated response with next/previous links
// derived from the request URL.
func NewPaginatedResponse(r *http.Request, results interface{}, params PaginationParams, total int64) PaginatedResponse {
	totalPages := int(total) / params.PageSize
	if int(total)%params.PageSize != 0 {
		totalPages++
	}

	var next, prev *string
	if params.Page < totalPages {
		next = pageURL(r, params.Page+1)
	}
	if params.Page > 1 {
		prev = pageURL(r, params.Page-1)
	}

	return PaginatedResponse{
		Count:    total,
		Next:     next,
		Previous: prev,
		Results:  results,
	}
}

func pageURL(r *http.Request, page int) *string {
	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

func parseIntQuery(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}
