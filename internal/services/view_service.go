package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"finance-view/internal/dto"
	"finance-view/internal/filter"
	"finance-view/internal/formatting"
	"finance-view/internal/paginator"
	"finance-view/internal/repositories"
	"finance-view/internal/session"
	"finance-view/internal/table"

	"golang.org/x/sync/singleflight"
)

// viewSessionKey is the session cache key of a session's view
const viewSessionKey = "transactionView"

const defaultViewRangeDays = 730

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownSubcategory = errors.New("unknown subcategory")
	ErrInvalidPage        = errors.New("page must be a positive integer")
)

// ViewOptions configures the session views
type ViewOptions struct {
	DefaultPageSize int
	RenderBatchSize int
	// RangeDays bounds the transactions loaded into a view, counted back from today
	RangeDays int
	Location  *time.Location
}

// View is one session's rendered transaction table together with its filter
// engine and paginator. All access goes through mu.
type View struct {
	mu sync.Mutex

	generation    uint64
	table         *table.Table
	controls      *filter.FormControls
	engine        *filter.Engine
	paginator     *paginator.Paginator
	categories    []string
	subcategories []string
	scrollToTop   bool
}

type viewService struct {
	sessions        *session.Manager
	transactionRepo repositories.TransactionRepositoryInterface
	accountService  AccountServiceInterface
	categoryService CategoryServiceInterface
	metrics         MetricsRecorderInterface
	opts            ViewOptions
	now             func() time.Time
	logger          *slog.Logger

	generation atomic.Uint64
	builds     singleflight.Group
	// storeMu orders writes of views into the session cache
	storeMu sync.Mutex
}

// NewViewService creates the view service. Views are kept in the session cache
// and rebuilt from the repositories after Invalidate.
func NewViewService(
	sessions *session.Manager,
	transactionRepo repositories.TransactionRepositoryInterface,
	accountService AccountServiceInterface,
	categoryService CategoryServiceInterface,
	metrics MetricsRecorderInterface,
	opts ViewOptions,
	logger *slog.Logger,
) ViewServiceInterface {
	return newViewService(sessions, transactionRepo, accountService, categoryService, metrics, opts, logger)
}

func newViewService(
	sessions *session.Manager,
	transactionRepo repositories.TransactionRepositoryInterface,
	accountService AccountServiceInterface,
	categoryService CategoryServiceInterface,
	metrics MetricsRecorderInterface,
	opts ViewOptions,
	logger *slog.Logger,
) *viewService {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = paginator.DefaultPageSize
	}
	if opts.RenderBatchSize <= 0 {
		opts.RenderBatchSize = table.DefaultBatchSize
	}
	if opts.RangeDays <= 0 {
		opts.RangeDays = defaultViewRangeDays
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &viewService{
		sessions:        sessions,
		transactionRepo: transactionRepo,
		accountService:  accountService,
		categoryService: categoryService,
		metrics:         metrics,
		opts:            opts,
		now:             time.Now,
		logger:          logger,
	}
}

// Invalidate marks every existing view stale. Stale views rebuild their rows on
// next access and keep their filter state and page size.
func (s *viewService) Invalidate() {
	s.generation.Add(1)
}

// Snapshot returns the current view without changing it
func (s *viewService) Snapshot(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
	return s.do(ctx, sessionID, "", nil)
}

// ApplyFilters sets the filter inputs and reapplies them
func (s *viewService) ApplyFilters(ctx context.Context, sessionID string, req dto.ViewFilterRequest) (*dto.ViewResponse, error) {
	return s.do(ctx, sessionID, "", func(v *View) error {
		state := req.State()

		if state.Category != "" && state.Category != filter.All && !v.controls.HasCategory(state.Category) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, state.Category)
		}
		switch state.Subcategory {
		case "", filter.All, filter.SubcategoryUncategorized:
		default:
			if !v.controls.HasSubcategory(state.Subcategory) {
				return fmt.Errorf("%w: %q", ErrUnknownSubcategory, state.Subcategory)
			}
		}

		v.controls.SetValues(state)
		v.engine.ApplyFilters()
		return nil
	})
}

// SetCustomRange selects a custom date range
func (s *viewService) SetCustomRange(ctx context.Context, sessionID, start, end string) (*dto.ViewResponse, error) {
	return s.do(ctx, sessionID, "", func(v *View) error {
		return v.engine.SetCustomRange(start, end)
	})
}

// ClearFilters resets every filter to its default
func (s *viewService) ClearFilters(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
	return s.do(ctx, sessionID, "", func(v *View) error {
		v.engine.ClearAllFilters()
		return nil
	})
}

// ResetFilters clears the filters and restores the default page size
func (s *viewService) ResetFilters(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
	return s.do(ctx, sessionID, "reset", func(v *View) error {
		v.engine.ResetFilters()
		return nil
	})
}

// SetPageSize accepts a positive integer or "all"
func (s *viewService) SetPageSize(ctx context.Context, sessionID, pageSize string) (*dto.ViewResponse, error) {
	size, err := paginator.ParsePageSize(pageSize)
	if err != nil {
		return nil, err
	}

	return s.do(ctx, sessionID, "page_size", func(v *View) error {
		return v.paginator.SetPageSize(size)
	})
}

// GoToPage moves to page, clamped to the available pages
func (s *viewService) GoToPage(ctx context.Context, sessionID string, page int) (*dto.ViewResponse, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	return s.do(ctx, sessionID, "goto", func(v *View) error {
		v.paginator.GoToPage(page)
		return nil
	})
}

// NextPage moves one page forward
func (s *viewService) NextPage(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
	return s.do(ctx, sessionID, "next", func(v *View) error {
		v.paginator.NextPage()
		return nil
	})
}

// PrevPage moves one page back
func (s *viewService) PrevPage(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
	return s.do(ctx, sessionID, "prev", func(v *View) error {
		v.paginator.PrevPage()
		return nil
	})
}

// ShowAllPages shows every included row on a single page
func (s *viewService) ShowAllPages(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
	return s.do(ctx, sessionID, "all", func(v *View) error {
		v.paginator.ShowAllPages()
		return nil
	})
}

// RenderControls writes the HTML fragment of the page-control strip
func (s *viewService) RenderControls(ctx context.Context, sessionID string, w io.Writer) error {
	v, err := s.view(ctx, sessionID)
	if err != nil {
		return err
	}

	v.mu.Lock()
	strip := v.paginator.Strip()
	v.mu.Unlock()

	return strip.Render(w)
}

// do runs fn on the session's view and returns the resulting snapshot
func (s *viewService) do(ctx context.Context, sessionID, pageAction string, fn func(v *View) error) (*dto.ViewResponse, error) {
	v, err := s.view(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if fn != nil {
		if err := fn(v); err != nil {
			return nil, err
		}
	}

	if pageAction != "" {
		s.metrics.IncrementCounter(MetricPageChanged, map[string]string{"action": pageAction})
	}

	s.refreshView(sessionID, v)

	return v.snapshot(), nil
}

// refreshView re-stores v to extend its expiry. A view that went stale or was
// replaced by a rebuild while in use is left out of the cache.
func (s *viewService) refreshView(sessionID string, v *View) {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	if v.generation != s.generation.Load() {
		return
	}
	if cached, ok := s.cachedView(sessionID); ok && cached != v {
		return
	}
	if err := s.sessions.SetValue(sessionID, viewSessionKey, v); err != nil {
		s.logger.Warn("Failed to refresh session view", "session_id", sessionID, "error", err.Error())
	}
}

func (s *viewService) storeView(sessionID string, v *View) {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	if err := s.sessions.SetValue(sessionID, viewSessionKey, v); err != nil {
		s.logger.Warn("Failed to store session view", "session_id", sessionID, "error", err.Error())
	}
}

// view returns the session's current view, building it when missing or stale.
// Concurrent builds for one session are collapsed into one. The build does not
// inherit the caller's cancellation, so a caller that gives up does not fail
// the others waiting on the same build.
func (s *viewService) view(ctx context.Context, sessionID string) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v, ok := s.cachedView(sessionID); ok && v.generation == s.generation.Load() {
		return v, nil
	}

	buildCtx := context.WithoutCancel(ctx)
	results := s.builds.DoChan(sessionID, func() (interface{}, error) {
		generation := s.generation.Load()
		previous, _ := s.cachedView(sessionID)
		if previous != nil && previous.generation == generation {
			return previous, nil
		}

		v, err := s.build(buildCtx, sessionID, previous, generation)
		if err != nil {
			return nil, err
		}

		s.storeView(sessionID, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*View), nil
	}
}

func (s *viewService) cachedView(sessionID string) (*View, bool) {
	value, ok := s.sessions.Value(sessionID, viewSessionKey)
	if !ok {
		return nil, false
	}
	v, ok := value.(*View)
	return v, ok
}

// build loads the transactions of the configured range, renders them and
// applies the session's persisted filters. A previous view contributes its page size.
func (s *viewService) build(ctx context.Context, sessionID string, previous *View, generation uint64) (*View, error) {
	started := time.Now()
	reason := "new"
	if previous != nil {
		reason = "invalidated"
	}

	v, err := s.render(ctx, sessionID, previous, generation)
	if err != nil {
		s.metrics.IncrementCounter(MetricViewBuildFailed, map[string]string{"reason": reason})
		return nil, err
	}

	s.metrics.IncrementCounter(MetricViewBuilt, map[string]string{"reason": reason})
	s.metrics.RecordProcessingTime(MetricViewBuildDuration, time.Since(started))

	s.logger.Debug("Session view built",
		"session_id", sessionID,
		"reason", reason,
		"rows", v.table.Len(),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return v, nil
}

func (s *viewService) render(ctx context.Context, sessionID string, previous *View, generation uint64) (*View, error) {
	today := formatting.StartOfDay(s.now().In(s.opts.Location))
	start := today.AddDate(0, 0, -s.opts.RangeDays)
	end := today.AddDate(0, 0, 1).Add(-time.Nanosecond)

	transactions, err := s.transactionRepo.GetByDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for view: %w", err)
	}

	names, err := s.accountService.AccountNames()
	if err != nil {
		return nil, err
	}

	categories, subcategories, err := s.categoryService.FilterOptions()
	if err != nil {
		return nil, err
	}

	tbl := table.New()
	if err := tbl.Render(ctx, transactions, names, s.opts.RenderBatchSize); err != nil {
		return nil, err
	}

	pageSize := 0
	if previous != nil {
		previous.mu.Lock()
		pageSize = previous.paginator.PageSize()
		previous.mu.Unlock()
	}

	v := &View{
		generation:    generation,
		table:         tbl,
		controls:      filter.NewFormControls(categories, subcategories),
		categories:    categories,
		subcategories: subcategories,
	}

	v.paginator = paginator.New(tbl, paginator.Options{
		DefaultPageSize: s.opts.DefaultPageSize,
		PageSize:        pageSize,
		OnScrollTop: func() {
			v.scrollToTop = true
		},
		Logger: s.logger,
	})

	v.engine = filter.NewEngine(tbl, filter.Options{
		Controls:  v.controls,
		Store:     s.sessions.Scope(sessionID),
		Paginator: v.paginator,
		OnFilterChange: func(info filter.ChangeInfo) {
			s.metrics.IncrementCounter(MetricFilterApplied, map[string]string{"date": info.Filters.Date})
			s.metrics.RecordGauge(MetricViewRows, float64(info.TotalRows), map[string]string{"kind": "total"})
			s.metrics.RecordGauge(MetricViewRows, float64(info.IncludedRows), map[string]string{"kind": "included"})
		},
		Now: func() time.Time {
			return s.now().In(s.opts.Location)
		},
		Logger: s.logger,
	})

	v.engine.ApplyFilters()
	return v, nil
}

// snapshot copies the visible state of the view. The scroll hint is consumed.
func (v *View) snapshot() *dto.ViewResponse {
	visible := v.table.VisibleRows()
	rows := make([]dto.ViewRow, 0, len(visible))
	for _, row := range visible {
		rows = append(rows, dto.NewViewRow(row))
	}

	resp := &dto.ViewResponse{
		Rows:         rows,
		TotalRows:    v.table.Len(),
		IncludedRows: v.table.IncludedCount(),
		Pagination:   v.paginator.Info(),
		Controls:     v.paginator.Strip(),
		Filters: dto.ViewFilters{
			State:         v.engine.State(),
			DateOptions:   v.controls.DateOptions(),
			Categories:    v.categories,
			Subcategories: v.subcategories,
		},
		ScrollToTop: v.scrollToTop,
	}

	v.scrollToTop = false
	return resp
}

// ParsePage parses a 1-based page number
func ParsePage(value string) (int, error) {
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, ErrInvalidPage
	}
	return page, nil
}
