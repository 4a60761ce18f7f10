package filter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"finance-view/internal/formatting"
	"finance-view/internal/models"
	"finance-view/internal/table"
)

var (
	ErrCustomRangeIncomplete = errors.New("please select both start and end dates")
	ErrInvalidCustomDate     = errors.New("custom range date could not be parsed")
	ErrCustomRangeOrder      = errors.New("start date must be before end date")
)

// PageController is the part of the paginator the engine drives after each apply
type PageController interface {
	FiltersChanged()
	ResetPageSize()
}

// AppliedFilters describes the predicates used by the last apply
type AppliedFilters struct {
	Search      string  `json:"search"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Type        string  `json:"type"`
	DateRange   *Window `json:"dateRange,omitempty"`
}

// ChangeInfo is passed to the OnFilterChange callback
type ChangeInfo struct {
	TotalRows    int            `json:"totalRows"`
	IncludedRows int            `json:"includedRows"`
	Filters      AppliedFilters `json:"filters"`
}

// Options configures an Engine
type Options struct {
	Controls       Controls
	Store          Store
	Paginator      PageController
	OnFilterChange func(ChangeInfo)
	// Now defaults to time.Now; its location decides calendar-day boundaries
	Now    func() time.Time
	Logger *slog.Logger
}

// Engine evaluates the filter predicates against every row of a table
type Engine struct {
	table          *table.Table
	controls       Controls
	store          Store
	paginator      PageController
	onFilterChange func(ChangeInfo)
	now            func() time.Time
	logger         *slog.Logger

	customDateStart string
	customDateEnd   string
}

// NewEngine creates an engine over tbl and restores persisted state into the controls.
// A nil table or nil controls yield an engine whose operations are no-ops.
func NewEngine(tbl *table.Table, opts Options) *Engine {
	e := &Engine{
		table:          tbl,
		controls:       opts.Controls,
		store:          opts.Store,
		paginator:      opts.Paginator,
		onFilterChange: opts.OnFilterChange,
		now:            opts.Now,
		logger:         opts.Logger,
	}

	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	if e.table == nil {
		e.logger.Error("Filter engine created without a table")
		return e
	}

	e.RestoreFilters()
	return e
}

// State returns the current filter state including the custom range
func (e *Engine) State() State {
	if e.controls == nil {
		return DefaultState()
	}

	state := e.controls.Values().withDefaults()
	state.CustomDateStart = e.customDateStart
	state.CustomDateEnd = e.customDateEnd
	return state
}

// ApplyFilters recomputes every row's inclusion flag from the current control
// values and returns the number of included rows.
func (e *Engine) ApplyFilters() int {
	if e.table == nil || e.controls == nil {
		return 0
	}

	state := e.State()
	window := state.DateWindow(e.now())
	c := newCriteria(state, window)

	rows := e.table.Rows()
	included := 0
	for _, row := range rows {
		row.Included = c.match(row)
		if row.Included {
			included++
		}
	}

	if e.paginator != nil {
		e.paginator.FiltersChanged()
	} else {
		for _, row := range rows {
			row.Visible = row.Included
		}
	}

	e.saveFilters(state)

	if e.onFilterChange != nil {
		e.onFilterChange(ChangeInfo{
			TotalRows:    len(rows),
			IncludedRows: included,
			Filters: AppliedFilters{
				Search:      c.search,
				Date:        state.Date,
				Category:    state.Category,
				Subcategory: state.Subcategory,
				Type:        state.Type,
				DateRange:   window,
			},
		})
	}

	return included
}

// ClearAllFilters resets every control to its default, drops the persisted
// state and reapplies
func (e *Engine) ClearAllFilters() {
	if e.table == nil || e.controls == nil {
		return
	}

	e.controls.SetValues(DefaultState())
	e.customDateStart = ""
	e.customDateEnd = ""
	e.deleteFilters()
	e.ApplyFilters()
}

// ResetFilters clears all filters and restores the paginator's default page size
func (e *Engine) ResetFilters() {
	if e.table == nil || e.controls == nil {
		return
	}

	if e.paginator != nil {
		e.paginator.ResetPageSize()
	}
	e.ClearAllFilters()
}

// SetCustomRange stores a custom start/end pair, labels the custom date option
// with it, selects it and reapplies
func (e *Engine) SetCustomRange(start, end string) error {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	if start == "" || end == "" {
		return ErrCustomRangeIncomplete
	}

	loc := e.now().Location()
	startDate, ok := formatting.ParseDateIn(start, loc)
	if !ok {
		return ErrInvalidCustomDate
	}
	endDate, ok := formatting.ParseDateIn(end, loc)
	if !ok {
		return ErrInvalidCustomDate
	}
	if startDate.After(endDate) {
		return ErrCustomRangeOrder
	}

	if e.table == nil || e.controls == nil {
		return nil
	}

	e.customDateStart = start
	e.customDateEnd = end
	e.controls.SetDateOption(DateCustom, customLabel(start, end))

	state := e.controls.Values()
	state.Date = DateCustom
	e.controls.SetValues(state)

	e.ApplyFilters()
	return nil
}

// CustomRange returns the stored custom start and end values
func (e *Engine) CustomRange() (string, string) {
	return e.customDateStart, e.customDateEnd
}

// RestoreFilters loads persisted state into the controls. Unknown selector
// values are ignored and a corrupt record is discarded.
func (e *Engine) RestoreFilters() {
	if e.store == nil || e.controls == nil {
		return
	}

	data, ok := e.store.Get(StorageKey)
	if !ok || len(data) == 0 {
		return
	}

	var saved State
	if err := json.Unmarshal(data, &saved); err != nil {
		e.logger.Warn("Failed to restore filters", "error", err.Error())
		e.store.Delete(StorageKey)
		return
	}

	current := e.controls.Values().withDefaults()

	if IsValidDateFilter(saved.Date) {
		current.Date = saved.Date
	}

	if IsValidTypeFilter(saved.Type) {
		current.Type = saved.Type
	}

	if saved.Search != "" {
		current.Search = truncateSearch(saved.Search)
	}

	if saved.Category == All || (saved.Category != "" && e.controls.HasCategory(saved.Category)) {
		current.Category = saved.Category
	}

	switch {
	case saved.Subcategory == All, saved.Subcategory == SubcategoryUncategorized:
		current.Subcategory = saved.Subcategory
	case saved.Subcategory != "" && e.controls.HasSubcategory(saved.Subcategory):
		current.Subcategory = saved.Subcategory
	}

	e.customDateStart = saved.CustomDateStart
	e.customDateEnd = saved.CustomDateEnd
	if current.Date == DateCustom && e.customDateStart != "" && e.customDateEnd != "" {
		e.controls.SetDateOption(DateCustom, customLabel(e.customDateStart, e.customDateEnd))
	}

	e.controls.SetValues(current)
}

func (e *Engine) saveFilters(state State) {
	if e.store == nil {
		return
	}

	data, err := json.Marshal(state)
	if err != nil {
		e.logger.Warn("Failed to encode filters", "error", err.Error())
		return
	}

	if err := e.store.Set(StorageKey, data); err != nil {
		e.logger.Warn("Failed to persist filters", "error", err.Error())
	}
}

func (e *Engine) deleteFilters() {
	if e.store != nil {
		e.store.Delete(StorageKey)
	}
}

func customLabel(start, end string) string {
	return formatting.ShortDate(start) + " - " + formatting.ShortDate(end)
}

// criteria is a compiled form of State for evaluating rows
type criteria struct {
	search      string
	category    string
	subcategory string
	txType      string
	window      *Window
}

func newCriteria(state State, window *Window) criteria {
	return criteria{
		search:      strings.ToLower(state.Search),
		category:    state.Category,
		subcategory: state.Subcategory,
		txType:      state.Type,
		window:      window,
	}
}

func (c criteria) match(row *table.Row) bool {
	if c.search != "" && !strings.Contains(row.Text(), c.search) {
		return false
	}

	if c.category != All && row.Category != c.category {
		return false
	}

	if c.subcategory != All {
		if c.subcategory == SubcategoryUncategorized {
			if row.Subcategory != "" && row.Subcategory != models.UncategorizedMarker {
				return false
			}
		} else if row.Subcategory != c.subcategory {
			return false
		}
	}

	if c.txType != All && row.Type() != c.txType {
		return false
	}

	if c.window != nil {
		// Rows without a parsable date fail an active date filter
		day, ok := rowDate(row, c.window.Start.Location())
		if !ok || !c.window.Contains(day) {
			return false
		}
	}

	return true
}

func rowDate(row *table.Row, loc *time.Location) (time.Time, bool) {
	if row.RawDate != "" {
		return formatting.ParseDateIn(row.RawDate, loc)
	}
	return formatting.ParseDateIn(row.Date, loc)
}
