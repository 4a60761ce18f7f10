package paginator

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"finance-view/internal/table"
)

const (
	// AllPages is the page size sentinel meaning every included row is shown
	AllPages = -1

	DefaultPageSize = 50

	pageSizeAllValue = "all"
)

var ErrInvalidPageSize = errors.New("page size must be a positive integer or \"all\"")

// PageInfo is passed to the OnPageChange callback
type PageInfo struct {
	CurrentPage   int `json:"currentPage"`
	PageSize      int `json:"pageSize"`
	TotalPages    int `json:"totalPages"`
	TotalItems    int `json:"totalItems"`
	FilteredItems int `json:"filteredItems"`
	VisibleItems  int `json:"visibleItems"`
}

// Options configures a Paginator
type Options struct {
	DefaultPageSize int
	PageSize        int
	OnPageChange    func(PageInfo)
	// OnScrollTop fires when GoToPage moves to a different page
	OnScrollTop func()
	Logger      *slog.Logger
}

// Paginator computes the visible window over the included rows of a table
type Paginator struct {
	table           *table.Table
	defaultPageSize int
	pageSize        int
	currentPage     int
	totalItems      int
	filteredItems   int
	visibleItems    int
	rows            []*table.Row
	strip           ControlStrip
	onPageChange    func(PageInfo)
	onScrollTop     func()
	logger          *slog.Logger
}

// New creates a paginator over tbl. A nil table yields a paginator whose
// operations are no-ops.
func New(tbl *table.Table, opts Options) *Paginator {
	p := &Paginator{
		table:           tbl,
		defaultPageSize: opts.DefaultPageSize,
		pageSize:        opts.PageSize,
		currentPage:     1,
		onPageChange:    opts.OnPageChange,
		onScrollTop:     opts.OnScrollTop,
		logger:          opts.Logger,
		strip:           ControlStrip{Hidden: true},
	}

	if p.defaultPageSize <= 0 {
		p.defaultPageSize = DefaultPageSize
	}
	if p.pageSize == 0 || p.pageSize < AllPages {
		p.pageSize = p.defaultPageSize
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}

	p.logger.Debug("Paginator initialized",
		"page_size", p.pageSize,
		"default_page_size", p.defaultPageSize,
	)

	return p
}

// ParsePageSize parses a page size selector value: a positive integer or "all"
func ParsePageSize(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == pageSizeAllValue {
		return AllPages, nil
	}

	size, err := strconv.Atoi(value)
	if err != nil || size < 1 {
		return 0, ErrInvalidPageSize
	}
	return size, nil
}

// CurrentPage returns the 1-based current page
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// PageSize returns the page size, AllPages when unbounded
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// IsShowingAll reports whether the unbounded sentinel is active
func (p *Paginator) IsShowingAll() bool {
	return p.pageSize == AllPages
}

// Strip returns the control strip computed by the last visibility update
func (p *Paginator) Strip() ControlStrip {
	return p.strip
}

// Info returns the current pagination figures
func (p *Paginator) Info() PageInfo {
	return PageInfo{
		CurrentPage:   p.currentPage,
		PageSize:      p.pageSize,
		TotalPages:    p.TotalPages(),
		TotalItems:    p.totalItems,
		FilteredItems: p.filteredItems,
		VisibleItems:  p.visibleItems,
	}
}

// TotalPages returns max(1, ceil(filtered/pageSize)); 1 in unbounded mode
func (p *Paginator) TotalPages() int {
	if p.pageSize <= 0 || p.filteredItems <= 0 {
		return 1
	}
	return (p.filteredItems + p.pageSize - 1) / p.pageSize
}

// UpdateVisibility marks the rows of the current page visible and rebuilds the
// control strip. Rows are re-read from the table when the cache is empty or
// forceRecache is set.
func (p *Paginator) UpdateVisibility(forceRecache bool) {
	if p.table == nil {
		return
	}

	p.loadRows(forceRecache)

	p.filteredItems = 0
	for _, row := range p.rows {
		if row.Included {
			p.filteredItems++
		}
	}

	if p.IsShowingAll() {
		for _, row := range p.rows {
			row.Visible = row.Included
		}
		p.currentPage = 1
		p.visibleItems = p.filteredItems
		p.strip = ControlStrip{Hidden: true}
		return
	}

	p.clampCurrentPage()

	startIndex := (p.currentPage - 1) * p.pageSize
	endIndex := startIndex + p.pageSize

	p.visibleItems = 0
	position := 0
	for _, row := range p.rows {
		if !row.Included {
			row.Visible = false
			continue
		}

		row.Visible = position >= startIndex && position < endIndex
		if row.Visible {
			p.visibleItems++
		}
		position++
	}

	p.strip = buildStrip(p.currentPage, p.TotalPages(), p.visibleItems, p.filteredItems)

	if p.onPageChange != nil {
		p.onPageChange(p.Info())
	}
}

// GoToPage moves to page n, clamped to [1, TotalPages]
func (p *Paginator) GoToPage(n int) {
	if p.table == nil {
		return
	}

	total := p.TotalPages()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	if n == p.currentPage {
		return
	}

	p.currentPage = n
	p.UpdateVisibility(false)

	if p.onScrollTop != nil {
		p.onScrollTop()
	}
}

// NextPage moves one page forward
func (p *Paginator) NextPage() {
	p.GoToPage(p.currentPage + 1)
}

// PrevPage moves one page back
func (p *Paginator) PrevPage() {
	p.GoToPage(p.currentPage - 1)
}

// ShowAllPages switches to the unbounded page size: every included row is
// visible and the control strip is hidden
func (p *Paginator) ShowAllPages() {
	if p.table == nil {
		return
	}

	p.pageSize = AllPages
	p.UpdateVisibility(false)

	if p.onPageChange != nil {
		p.onPageChange(PageInfo{
			CurrentPage:   1,
			PageSize:      p.filteredItems,
			TotalPages:    1,
			TotalItems:    p.totalItems,
			FilteredItems: p.filteredItems,
			VisibleItems:  p.filteredItems,
		})
	}
}

// SetPageSize changes the page size and returns to page 1. AllPages behaves
// like ShowAllPages.
func (p *Paginator) SetPageSize(size int) error {
	if size == AllPages {
		p.ShowAllPages()
		return nil
	}
	if size < 1 {
		return ErrInvalidPageSize
	}

	p.pageSize = size
	p.currentPage = 1
	p.UpdateVisibility(false)
	return nil
}

// ApplyFilter sets each row's inclusion from predicate, returns to page 1 and
// recomputes visibility. For callers that filter without a filter engine.
func (p *Paginator) ApplyFilter(predicate func(*table.Row) bool) {
	if p.table == nil || predicate == nil {
		return
	}

	p.loadRows(false)

	for _, row := range p.rows {
		row.Included = predicate(row)
	}

	p.currentPage = 1
	p.UpdateVisibility(false)
}

// ClearFilters marks every row included and returns to page 1
func (p *Paginator) ClearFilters() {
	if p.table == nil {
		return
	}

	p.loadRows(false)
	for _, row := range p.rows {
		row.Included = true
	}

	p.currentPage = 1
	p.UpdateVisibility(false)
}

// Reset returns to page 1 with the default page size, optionally clearing row filters
func (p *Paginator) Reset(resetFilters bool) {
	if p.table == nil {
		return
	}

	p.currentPage = 1
	p.pageSize = p.defaultPageSize

	if resetFilters {
		p.ClearFilters()
		return
	}
	p.UpdateVisibility(false)
}

// FiltersChanged is called by the filter engine after it recomputed inclusion:
// the paginator returns to page 1 and recomputes visibility
func (p *Paginator) FiltersChanged() {
	p.currentPage = 1
	p.UpdateVisibility(false)
}

// ResetPageSize restores the default page size without recomputing visibility
func (p *Paginator) ResetPageSize() {
	p.pageSize = p.defaultPageSize
	p.currentPage = 1
}

// Refresh drops the cached rows and recomputes against the table's current contents
func (p *Paginator) Refresh() {
	p.UpdateVisibility(true)
}

func (p *Paginator) loadRows(force bool) {
	if len(p.rows) == 0 || force {
		p.rows = p.table.Rows()
		p.totalItems = len(p.rows)
	}
}

func (p *Paginator) clampCurrentPage() {
	total := p.TotalPages()
	if p.currentPage > total {
		p.currentPage = total
	}
	if p.currentPage < 1 {
		p.currentPage = 1
	}
}
