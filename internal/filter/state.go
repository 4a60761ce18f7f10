package filter

import (
	"time"

	"finance-view/internal/formatting"
	"finance-view/internal/models"
)

// Selector values shared by the category, subcategory and type controls
const (
	All                      = "all"
	SubcategoryUncategorized = "uncategorized"
)

// Date selector values
const (
	DateAll    = "all"
	Date30     = "30"
	Date90     = "90"
	Date180    = "180"
	Date365    = "365"
	DateYTD    = "ytd"
	DateCustom = "custom"
)

// StorageKey is the session storage key the filter state is persisted under
const StorageKey = "transactionFilters"

const maxSearchLength = 100

var presetDays = map[string]int{
	Date30:  30,
	Date90:  90,
	Date180: 180,
	Date365: 365,
}

// State is the set of current predicate selections. Custom dates are only
// consulted when Date is DateCustom.
type State struct {
	Search          string `json:"search"`
	Date            string `json:"date"`
	Category        string `json:"category"`
	Subcategory     string `json:"subcategory"`
	Type            string `json:"type"`
	CustomDateStart string `json:"customDateStart"`
	CustomDateEnd   string `json:"customDateEnd"`
}

// DefaultState returns the state with every selector at "all" and no search term
func DefaultState() State {
	return State{
		Date:        DateAll,
		Category:    All,
		Subcategory: All,
		Type:        All,
	}
}

// withDefaults fills empty selectors with "all"
func (s State) withDefaults() State {
	if s.Date == "" {
		s.Date = DateAll
	}
	if s.Category == "" {
		s.Category = All
	}
	if s.Subcategory == "" {
		s.Subcategory = All
	}
	if s.Type == "" {
		s.Type = All
	}
	return s
}

// Window is an inclusive calendar-day range
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether day falls within the window, comparing whole days
func (w *Window) Contains(day time.Time) bool {
	d := formatting.StartOfDay(day.In(w.Start.Location()))
	return !d.Before(w.Start) && !d.After(w.End)
}

// DateWindow computes the window selected by the state relative to now. A nil
// window means no date filtering. A custom selection without both parsable
// dates is unbounded.
func (s State) DateWindow(now time.Time) *Window {
	today := formatting.StartOfDay(now)

	if days, ok := presetDays[s.Date]; ok {
		return &Window{Start: today.AddDate(0, 0, -days), End: today}
	}

	switch s.Date {
	case DateYTD:
		return &Window{
			Start: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()),
			End:   today,
		}
	case DateCustom:
		if s.CustomDateStart == "" || s.CustomDateEnd == "" {
			return nil
		}
		start, ok := formatting.ParseDateIn(s.CustomDateStart, now.Location())
		if !ok {
			return nil
		}
		end, ok := formatting.ParseDateIn(s.CustomDateEnd, now.Location())
		if !ok {
			return nil
		}
		return &Window{Start: formatting.StartOfDay(start), End: formatting.StartOfDay(end)}
	}

	return nil
}

// IsValidDateFilter checks a date selector value
func IsValidDateFilter(value string) bool {
	switch value {
	case DateAll, Date30, Date90, Date180, Date365, DateYTD, DateCustom:
		return true
	default:
		return false
	}
}

// IsValidTypeFilter checks a type selector value
func IsValidTypeFilter(value string) bool {
	switch value {
	case All, models.TransactionTypeExpense, models.TransactionTypeIncome:
		return true
	default:
		return false
	}
}

func truncateSearch(search string) string {
	runes := []rune(search)
	if len(runes) > maxSearchLength {
		return string(runes[:maxSearchLength])
	}
	return search
}
