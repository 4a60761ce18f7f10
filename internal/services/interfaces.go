package services

import (
	"context"
	"io"
	"time"

	"finance-view/internal/dto"
	"finance-view/internal/models"

	"github.com/google/uuid"
)

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	ListTransactions(params dto.TransactionListParams) (*dto.TransactionListResponse, error)
	GetTransaction(id uuid.UUID) (*dto.TransactionResponse, error)
	CreateTransaction(req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	UpdateTransaction(id uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error)
	DeleteTransaction(id uuid.UUID) error
}

// CategoryServiceInterface defines the category operations and the option lists of the filter controls
type CategoryServiceInterface interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error)

	// FilterOptions returns the category and subcategory names offered by the filter controls
	FilterOptions() (categories []string, subcategories []string, err error)
}

// AccountServiceInterface defines account lookups
type AccountServiceInterface interface {
	ListAccounts() ([]models.Account, error)

	// AccountNames maps account ids to their display names
	AccountNames() (map[uuid.UUID]string, error)
}

// ReportServiceInterface aggregates category totals per month or year
type ReportServiceInterface interface {
	MonthlyTotals(start, end time.Time) (*models.TotalsReport, error)
	AnnualTotals(startYear, endYear int) (*models.TotalsReport, error)
}

// ViewServiceInterface owns the filtered, paginated transaction view of each session.
// Every method serialises on the session's view.
type ViewServiceInterface interface {
	Snapshot(ctx context.Context, sessionID string) (*dto.ViewResponse, error)
	ApplyFilters(ctx context.Context, sessionID string, req dto.ViewFilterRequest) (*dto.ViewResponse, error)
	SetCustomRange(ctx context.Context, sessionID, start, end string) (*dto.ViewResponse, error)
	ClearFilters(ctx context.Context, sessionID string) (*dto.ViewResponse, error)
	ResetFilters(ctx context.Context, sessionID string) (*dto.ViewResponse, error)
	SetPageSize(ctx context.Context, sessionID, pageSize string) (*dto.ViewResponse, error)
	GoToPage(ctx context.Context, sessionID string, page int) (*dto.ViewResponse, error)
	NextPage(ctx context.Context, sessionID string) (*dto.ViewResponse, error)
	PrevPage(ctx context.Context, sessionID string) (*dto.ViewResponse, error)
	ShowAllPages(ctx context.Context, sessionID string) (*dto.ViewResponse, error)
	RenderControls(ctx context.Context, sessionID string, w io.Writer) error
	ViewInvalidator
}

// DemoDataServiceInterface fills an empty development database with realistic history
type DemoDataServiceInterface interface {
	GenerateDemoData(req dto.DemoDataRequest) (*dto.DemoDataResponse, error)
}

// ViewInvalidator is notified when stored transactions change
type ViewInvalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to ViewInvalidator
type InvalidatorFunc func()

func (f InvalidatorFunc) Invalidate() {
	f()
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
