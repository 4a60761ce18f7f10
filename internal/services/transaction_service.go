package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-view/internal/dto"
	"finance-view/internal/formatting"
	"finance-view/internal/models"
	"finance-view/internal/repositories"
	"finance-view/internal/table"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultTransactionPageSize = 50
	MaxTransactionPageSize     = 500
	defaultListRangeDays       = 90
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrInvalidAccountID = errors.New("invalid account id")
	ErrUnknownAccount   = errors.New("account does not exist")
)

// transactionService implements TransactionServiceInterface interface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	accountService  AccountServiceInterface
	invalidator     ViewInvalidator
	metrics         MetricsRecorderInterface
	location        *time.Location
	now             func() time.Time
	logger          *slog.Logger
}

// NewTransactionService creates a transaction service. Every successful
// mutation is reported to invalidator so session views rebuild their rows.
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	accountService AccountServiceInterface,
	invalidator ViewInvalidator,
	metrics MetricsRecorderInterface,
	location *time.Location,
	logger *slog.Logger,
) TransactionServiceInterface {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		accountService:  accountService,
		invalidator:     invalidator,
		metrics:         metrics,
		location:        location,
		now:             time.Now,
		logger:          logger,
	}
}

// ListTransactions returns one page of transactions, newest first. The date
// range defaults to the last 90 days.
func (s *transactionService) ListTransactions(params dto.TransactionListParams) (*dto.TransactionListResponse, error) {
	today := formatting.StartOfDay(s.now().In(s.location))

	start := today.AddDate(0, 0, -defaultListRangeDays)
	if params.StartDate != "" {
		parsed, err := s.parseDate(params.StartDate)
		if err != nil {
			return nil, err
		}
		start = parsed
	}

	end := today
	if params.EndDate != "" {
		parsed, err := s.parseDate(params.EndDate)
		if err != nil {
			return nil, err
		}
		end = parsed
	}

	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	endOfDay := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	filters := models.TransactionFilters{
		StartDate: &start,
		EndDate:   &endOfDay,
		Category:  strings.TrimSpace(params.Category),
	}

	if params.AccountID != "" {
		accountID, err := uuid.Parse(params.AccountID)
		if err != nil {
			return nil, ErrInvalidAccountID
		}
		filters.AccountID = &accountID
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = DefaultTransactionPageSize
	}
	if pageSize > MaxTransactionPageSize {
		pageSize = MaxTransactionPageSize
	}
	filters.Offset = (page - 1) * pageSize
	filters.Limit = pageSize

	transactions, total, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	names, err := s.accountService.AccountNames()
	if err != nil {
		return nil, err
	}

	rows := make([]*table.Row, 0, len(transactions))
	for i := range transactions {
		rows = append(rows, table.NewRow(&transactions[i], names))
	}

	return &dto.TransactionListResponse{
		Transactions: rows,
		Pagination: dto.TransactionPagination{
			TotalCount: total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	}, nil
}

// GetTransaction returns a single transaction with its rendered row
func (s *transactionService) GetTransaction(id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.response(tx)
}

// CreateTransaction records a manual transaction
func (s *transactionService) CreateTransaction(req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    strings.TrimSpace(req.Category),
		Subcategory: strings.TrimSpace(req.Subcategory),
		Merchant:    strings.TrimSpace(req.Merchant),
		Description: strings.TrimSpace(req.Description),
		Manual:      true,
	}

	if err := tx.SetType(req.Type); err != nil {
		return nil, err
	}

	if req.AccountID != "" {
		accountID, err := s.resolveAccount(req.AccountID)
		if err != nil {
			return nil, err
		}
		tx.AccountID = &accountID
	}

	if err := s.transactionRepo.Create(tx); err != nil {
		s.recordMutation("create", "failed")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.recordMutation("create", "success")
	s.invalidate()

	s.logger.Info("Transaction created",
		"transaction_id", tx.ID.String(),
		"manual", tx.Manual,
	)

	return s.response(tx)
}

// UpdateTransaction applies an inline edit to an existing transaction
func (s *transactionService) UpdateTransaction(id uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := s.parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		tx.Date = date
	}
	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		tx.Amount = amount
	}
	if req.Type != nil {
		if err := tx.SetType(*req.Type); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		tx.Category = strings.TrimSpace(*req.Category)
		if tx.Category == "" {
			tx.Category = models.CategoryUncategorized
		}
	}
	if req.Subcategory != nil {
		tx.Subcategory = strings.TrimSpace(*req.Subcategory)
	}
	if req.Merchant != nil {
		tx.Merchant = strings.TrimSpace(*req.Merchant)
	}
	if req.Description != nil {
		tx.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.transactionRepo.Update(tx); err != nil {
		s.recordMutation("update", "failed")
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.recordMutation("update", "success")
	s.invalidate()
	return s.response(tx)
}

// DeleteTransaction soft-deletes a transaction
func (s *transactionService) DeleteTransaction(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		s.recordMutation("delete", "failed")
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.recordMutation("delete", "success")
	s.invalidate()

	s.logger.Info("Transaction deleted", "transaction_id", id.String())
	return nil
}

func (s *transactionService) response(tx *models.Transaction) (*dto.TransactionResponse, error) {
	names, err := s.accountService.AccountNames()
	if err != nil {
		return nil, err
	}
	return &dto.TransactionResponse{
		Transaction: tx,
		Row:         table.NewRow(tx, names),
	}, nil
}

func (s *transactionService) resolveAccount(value string) (uuid.UUID, error) {
	accountID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, ErrInvalidAccountID
	}

	exists, err := s.accountRepo.Exists(accountID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return uuid.Nil, ErrUnknownAccount
	}
	return accountID, nil
}

func (s *transactionService) parseDate(value string) (time.Time, error) {
	date, ok := formatting.ParseDateIn(strings.TrimSpace(value), s.location)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return formatting.StartOfDay(date), nil
}

func (s *transactionService) invalidate() {
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
}

func (s *transactionService) recordMutation(operation, status string) {
	s.metrics.IncrementCounter(MetricTransactionMutation, map[string]string{
		"operation": operation,
		"status":    status,
	})
}

// parseAmount accepts plain and currency formatted amounts; the result must be positive
func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := formatting.ParseCurrency(value)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount.Round(2), nil
}
