// Package pagination is the single shared implementation for both list
// styles the dashboard uses: server-driven pages (users) and lists the
// service filters and slices itself (categories, products).
package pagination

import "strings"

// Gap marks a collapsed run of page numbers in a window.
const Gap = -1

const DefaultPerPage = 10

// Window computes the page-number strip: always page 1 and the last page,
// up to one page either side of current, and a Gap wherever numbers were
// skipped. Contiguous neighbours never get a Gap between them.
func Window(current, total int) []int {
	if total <= 0 {
		return []int{}
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	pages := make([]int, 0, 7)
	for p := 1; p <= total; p++ {
		if p == 1 || p == total || (p >= current-1 && p <= current+1) {
			if n := len(pages); n > 0 && pages[n-1] != p-1 {
				pages = append(pages, Gap)
			}
			pages = append(pages, p)
		}
	}

	return pages
}

type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int   `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	Window     []int `json:"window"`
}

// NewMeta builds the page metadata every list response carries.
func NewMeta(page, perPage, totalItems int) Meta {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	totalPages := (totalItems + perPage - 1) / perPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	return Meta{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Window:     Window(page, totalPages),
	}
}

// Bounds returns the [start, end) slice indices for a page.
func Bounds(page, perPage, totalItems int) (int, int) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	if start >= totalItems {
		return 0, 0
	}

	end := start + perPage
	if end > totalItems {
		end = totalItems
	}

	return start, end
}

// MatchesSearch reports whether any field contains the query, case
// insensitively. Name fields in both languages are passed together so one
// search box covers Arabic and English.
func MatchesSearch(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}

	return false
}
