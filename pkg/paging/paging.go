// Package paging provides the pure arithmetic behind pagination: deriving
// page counts, visible index ranges, and the windowed set of page numbers
// rendered as controls. All functions are total; out-of-contract inputs are
// clamped rather than rejected.
package paging

// TotalPages returns the number of pages needed to show count items at
// perPage items per page. An empty collection occupies exactly one page, so
// the result is always >= 1. A perPage below 1 is treated as 1.
func TotalPages(count, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	if count < 1 {
		return 1
	}

	return (count + perPage - 1) / perPage
}

// Bounds returns the half-open index range [start, end) of the items visible
// on the given 1-based page, clipped to [0, count).
func Bounds(page, perPage, count int) (start, end int) {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	start = (page - 1) * perPage
	if start > count {
		start = count
	}

	end = min(start+perPage, count)

	return start, end
}

// Window returns the ordered page numbers that should be rendered as
// controls. A page p is included iff it is the first page, the last page,
// the current page, or within displayCount/2 of the current page. The
// first, last, and current pages are therefore always present, even when
// they fall outside the numeric window.
func Window(page, totalPages, displayCount int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	half := displayCount / 2

	window := make([]int, 0, min(totalPages, displayCount+2))
	for p := 1; p <= totalPages; p++ {
		if p == 1 || p == totalPages || p == page || abs(p-page) <= half {
			window = append(window, p)
		}
	}

	return window
}

// Contains reports whether the window includes the given page number.
// The window is ordered, but it is short enough that a scan beats a search.
func Contains(window []int, page int) bool {
	for _, p := range window {
		if p == page {
			return true
		}
	}

	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
