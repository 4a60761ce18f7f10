package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"finance-view/internal/models"
	"finance-view/internal/repositories"
)

const (
	defaultReportMonths = 6
	defaultReportYears  = 5
	maxReportPeriods    = 120
)

var (
	ErrInvalidReportRange = errors.New("start must not be after end")
	ErrReportRangeTooLong = errors.New("report range is too long")
)

// reportService aggregates signed category totals per month or year
type reportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	location        *time.Location
	now             func() time.Time
	logger          *slog.Logger
}

// NewReportService creates a report service
func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	location *time.Location,
	logger *slog.Logger,
) ReportServiceInterface {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reportService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		location:        location,
		now:             time.Now,
		logger:          logger,
	}
}

// MonthlyTotals returns the totals of every month between the months of start
// and end, inclusive. Zero values default to the last six months.
func (s *reportService) MonthlyTotals(start, end time.Time) (*models.TotalsReport, error) {
	now := s.now().In(s.location)
	if end.IsZero() {
		end = now
	}
	if start.IsZero() {
		start = end.AddDate(0, -defaultReportMonths, 0)
	}

	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, s.location)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, s.location)
	if first.After(last) {
		return nil, ErrInvalidReportRange
	}

	var periods []models.Period
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		if len(periods) == maxReportPeriods {
			return nil, ErrReportRangeTooLong
		}
		periods = append(periods, models.Period{
			Key:   month.Format("2006-01"),
			Label: month.Format("Jan 2006"),
			Start: month,
			End:   month.AddDate(0, 1, 0).Add(-time.Nanosecond),
		})
	}

	return s.aggregate("monthly", periods, func(t time.Time) string {
		return t.In(s.location).Format("2006-01")
	})
}

// AnnualTotals returns the totals of every year from startYear to endYear.
// Zero values default to the current year and the four years before it.
func (s *reportService) AnnualTotals(startYear, endYear int) (*models.TotalsReport, error) {
	if endYear == 0 {
		endYear = s.now().In(s.location).Year()
	}
	if startYear == 0 {
		startYear = endYear - (defaultReportYears - 1)
	}
	if startYear > endYear {
		return nil, ErrInvalidReportRange
	}
	if endYear-startYear+1 > maxReportPeriods {
		return nil, ErrReportRangeTooLong
	}

	periods := make([]models.Period, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		first := time.Date(year, time.January, 1, 0, 0, 0, 0, s.location)
		key := strconv.Itoa(year)
		periods = append(periods, models.Period{
			Key:   key,
			Label: key,
			Start: first,
			End:   first.AddDate(1, 0, 0).Add(-time.Nanosecond),
		})
	}

	return s.aggregate("annual", periods, func(t time.Time) string {
		return strconv.Itoa(t.In(s.location).Year())
	})
}

// aggregate sums signed amounts per period and category. Every known category
// is present for every period, zero when nothing was spent.
func (s *reportService) aggregate(kind string, periods []models.Period, periodKey func(time.Time) string) (*models.TotalsReport, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.GetByDateRange(periods[0].Start, periods[len(periods)-1].End)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for report: %w", err)
	}

	names := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		names[category.Name] = struct{}{}
	}
	for i := range transactions {
		if transactions[i].Category != "" {
			names[transactions[i].Category] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	report := models.NewTotalsReport(periods, sorted)
	skipped := 0
	for i := range transactions {
		tx := &transactions[i]
		if tx.Category == "" || !report.Add(periodKey(tx.Date), tx.Category, tx.SignedAmount()) {
			skipped++
		}
	}

	if skipped > 0 {
		s.logger.Debug("Transactions outside report periods", "kind", kind, "skipped", skipped)
	}

	s.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"kind": kind})
	s.metrics.RecordProcessingTime(MetricReportDuration, time.Since(started))

	return report, nil
}
