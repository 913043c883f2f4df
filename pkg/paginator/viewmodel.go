package paginator

// PageButton describes one page-number control.
type PageButton struct {
	// Page is the 1-based page number the button navigates to.
	Page int
	// Active marks the button for the current page.
	Active bool
	// Visible reports whether the button is inside the page-number window.
	// Invisible buttons are typically collapsed into an ellipsis.
	Visible bool
}

// ViewModel is the derived description of what a renderer should display.
// It is recomputed on demand and never stored.
type ViewModel struct {
	// VisibleStart and VisibleEnd bound the half-open index range of items
	// visible on the current page.
	VisibleStart int
	VisibleEnd   int

	// Buttons holds one entry per page, in order.
	Buttons []PageButton

	PrevEnabled bool
	NextEnabled bool

	// ControlsVisible is false when there is only a single page, in which
	// case the whole control strip should be hidden.
	ControlsVisible bool
}

// Change is the payload of the page-change notification. It is emitted only
// on user-driven navigation; refreshes and reconfigurations resync the view
// silently.
type Change struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	ItemsPerPage int `json:"itemsPerPage"`
	StartIndex   int `json:"startIndex"`
	EndIndex     int `json:"endIndex"`
}
