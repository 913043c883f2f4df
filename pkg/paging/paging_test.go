package paging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/turner/pkg/paging"
)

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		count    int
		perPage  int
		expected int
	}{
		"empty collection still has one page": {
			count:    0,
			perPage:  3,
			expected: 1,
		},
		"single item": {
			count:    1,
			perPage:  3,
			expected: 1,
		},
		"partial last page": {
			count:    7,
			perPage:  3,
			expected: 3,
		},
		"exact multiple": {
			count:    9,
			perPage:  3,
			expected: 3,
		},
		"one item per page": {
			count:    5,
			perPage:  1,
			expected: 5,
		},
		"invalid perPage clamps to one": {
			count:    4,
			perPage:  0,
			expected: 4,
		},
		"negative count": {
			count:    -3,
			perPage:  3,
			expected: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, paging.TotalPages(tc.count, tc.perPage))
		})
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		page          int
		perPage       int
		count         int
		expectedStart int
		expectedEnd   int
	}{
		"first page": {
			page: 1, perPage: 3, count: 10,
			expectedStart: 0, expectedEnd: 3,
		},
		"middle page": {
			page: 2, perPage: 3, count: 10,
			expectedStart: 3, expectedEnd: 6,
		},
		"clipped last page": {
			page: 4, perPage: 3, count: 10,
			expectedStart: 9, expectedEnd: 10,
		},
		"empty collection": {
			page: 1, perPage: 3, count: 0,
			expectedStart: 0, expectedEnd: 0,
		},
		"page beyond collection": {
			page: 9, perPage: 3, count: 4,
			expectedStart: 4, expectedEnd: 4,
		},
		"page below one clamps": {
			page: 0, perPage: 3, count: 10,
			expectedStart: 0, expectedEnd: 3,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			start, end := paging.Bounds(tc.page, tc.perPage, tc.count)
			assert.Equal(t, tc.expectedStart, start)
			assert.Equal(t, tc.expectedEnd, end)
		})
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		page         int
		totalPages   int
		displayCount int
		expected     []int
	}{
		"narrow window in the middle": {
			page: 5, totalPages: 10, displayCount: 3,
			expected: []int{1, 4, 5, 6, 10},
		},
		"wide window in the middle": {
			page: 5, totalPages: 10, displayCount: 5,
			expected: []int{1, 3, 4, 5, 6, 7, 10},
		},
		"window at the start": {
			page: 1, totalPages: 10, displayCount: 3,
			expected: []int{1, 2, 10},
		},
		"window at the end": {
			page: 10, totalPages: 10, displayCount: 3,
			expected: []int{1, 9, 10},
		},
		"window covers everything": {
			page: 2, totalPages: 3, displayCount: 5,
			expected: []int{1, 2, 3},
		},
		"single page": {
			page: 1, totalPages: 1, displayCount: 5,
			expected: []int{1},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, paging.Window(tc.page, tc.totalPages, tc.displayCount))
		})
	}
}

// The first, last, and current pages must be in the window no matter what.
func TestWindowInclusionLaw(t *testing.T) {
	t.Parallel()

	for totalPages := 1; totalPages <= 20; totalPages++ {
		for page := 1; page <= totalPages; page++ {
			for _, displayCount := range []int{3, 5} {
				window := paging.Window(page, totalPages, displayCount)

				assert.True(t, paging.Contains(window, 1),
					"page 1 missing for page=%d total=%d display=%d", page, totalPages, displayCount)
				assert.True(t, paging.Contains(window, totalPages),
					"last page missing for page=%d total=%d display=%d", page, totalPages, displayCount)
				assert.True(t, paging.Contains(window, page),
					"current page missing for page=%d total=%d display=%d", page, totalPages, displayCount)
			}
		}
	}
}
