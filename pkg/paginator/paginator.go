// Package paginator implements a pagination state machine over an ordered
// collection of opaque items, plus a Bubble Tea wrapper that renders its
// control strip. The state machine owns the current page and the item
// snapshot; every transition is synchronous and total, clamping rather than
// failing, so callers never see an error or an out-of-range page.
package paginator

import "github.com/macropower/turner/pkg/paging"

// Paginator is the pagination state machine. Items are opaque to it; they
// are only partitioned and sliced, never inspected. The zero value is not
// usable, construct with [New].
//
// A Paginator is owned by a single goroutine; transitions run to completion
// before the next one is processed.
type Paginator[T any] struct {
	cfg          Config
	items        []T
	page         int
	displayCount int
}

// New creates a [Paginator] on page 1 with an empty item set.
func New[T any](opts ...Option) *Paginator[T] {
	return &Paginator[T]{
		cfg:          NewConfig(opts...),
		page:         1,
		displayCount: DefaultDisplayCount,
	}
}

// Refresh replaces the item snapshot wholesale and resyncs the page. This
// is a silent structural recompute: no change notification is produced,
// even when the current page moves due to clamping.
func (p *Paginator[T]) Refresh(items []T) {
	p.items = items
	if p.page < 1 {
		p.page = 1
	}

	p.clampPage()
}

// Reconfigure applies a config delta and clamps the current page to the new
// page count. Like [Paginator.Refresh] it does not notify; only explicit
// navigation does.
func (p *Paginator[T]) Reconfigure(opts ...Option) {
	for _, opt := range opts {
		opt(&p.cfg)
	}

	p.clampPage()
}

// GoToPage navigates to the 1-based page n. Out-of-range targets and the
// current page are rejected silently: the state is left untouched and ok is
// false. On success it returns the [Change] notification payload.
func (p *Paginator[T]) GoToPage(n int) (Change, bool) {
	if n < 1 || n > p.TotalPages() || n == p.page {
		return Change{}, false
	}

	p.page = n

	return p.change(), true
}

// PrevPage navigates one page back, when possible.
func (p *Paginator[T]) PrevPage() (Change, bool) {
	return p.GoToPage(p.page - 1)
}

// NextPage navigates one page forward, when possible.
func (p *Paginator[T]) NextPage() (Change, bool) {
	return p.GoToPage(p.page + 1)
}

// SetDisplayCount sets the size of the page-number window. It never touches
// the current page, so resize signals can interleave with navigation in any
// order. Values below 1 clamp to 1.
func (p *Paginator[T]) SetDisplayCount(n int) {
	if n < 1 {
		n = 1
	}

	p.displayCount = n
}

// CurrentPage returns the 1-based current page. It is always within
// [1, TotalPages].
func (p *Paginator[T]) CurrentPage() int {
	return p.page
}

// TotalPages returns the derived page count, at least 1.
func (p *Paginator[T]) TotalPages() int {
	return paging.TotalPages(len(p.items), p.cfg.ItemsPerPage)
}

// Len returns the number of items in the current snapshot.
func (p *Paginator[T]) Len() int {
	return len(p.items)
}

// Config returns a copy of the active configuration.
func (p *Paginator[T]) Config() Config {
	return p.cfg
}

// DisplayCount returns the active page-number window size.
func (p *Paginator[T]) DisplayCount() int {
	return p.displayCount
}

// VisibleItems returns the slice of items on the current page.
func (p *Paginator[T]) VisibleItems() []T {
	start, end := paging.Bounds(p.page, p.cfg.ItemsPerPage, len(p.items))

	return p.items[start:end]
}

// ViewModel derives the renderer-facing description of the current state.
func (p *Paginator[T]) ViewModel() ViewModel {
	totalPages := p.TotalPages()
	start, end := paging.Bounds(p.page, p.cfg.ItemsPerPage, len(p.items))
	window := paging.Window(p.page, totalPages, p.displayCount)

	buttons := make([]PageButton, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		buttons = append(buttons, PageButton{
			Page:    n,
			Active:  n == p.page,
			Visible: paging.Contains(window, n),
		})
	}

	return ViewModel{
		VisibleStart:    start,
		VisibleEnd:      end,
		Buttons:         buttons,
		PrevEnabled:     p.page > 1,
		NextEnabled:     p.page < totalPages,
		ControlsVisible: totalPages > 1,
	}
}

func (p *Paginator[T]) change() Change {
	start, end := paging.Bounds(p.page, p.cfg.ItemsPerPage, len(p.items))

	return Change{
		CurrentPage:  p.page,
		TotalPages:   p.TotalPages(),
		ItemsPerPage: p.cfg.ItemsPerPage,
		StartIndex:   start,
		EndIndex:     end,
	}
}

func (p *Paginator[T]) clampPage() {
	if totalPages := p.TotalPages(); p.page > totalPages {
		p.page = totalPages
	}
}
