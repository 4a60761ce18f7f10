package handlers

import (
	"log/slog"
	"net/http"

	"finance-view/internal/dto"
	"finance-view/internal/errors"
	"finance-view/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface, logger *slog.Logger) *TransactionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// ListTransactions retrieves one page of transactions
// @Summary List transactions
// @Description Server-side filtered transaction list, newest first. The date range defaults to the last 90 days.
// @Tags Transactions
// @Produce json
// @Param start_date query string false "Start date (MM/DD/YYYY or YYYY-MM-DD)"
// @Param end_date query string false "End date (MM/DD/YYYY or YYYY-MM-DD)"
// @Param category query string false "Category name"
// @Param account_id query string false "Account ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 500)" default(50)
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var params dto.TransactionListParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(params); err != nil {
		return SendValidationError(c, err)
	}

	resp, err := h.transactionService.ListTransactions(params)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetTransaction returns a single transaction
// @Summary Get a transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid transaction ID"))
	}

	resp, err := h.transactionService.GetTransaction(id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// CreateTransaction records a manual transaction
// @Summary Create a manual transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Unknown account"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	resp, err := h.transactionService.CreateTransaction(&req)
	if err != nil {
		return SendServiceError(c, err)
	}

	h.logger.Info("Manual transaction recorded",
		"trace_id", getTraceID(c),
		"transaction_id", resp.Transaction.ID.String(),
	)

	return c.JSON(http.StatusCreated, resp)
}

// UpdateTransaction applies an inline edit
// @Summary Update a transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Changed fields"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	resp, err := h.transactionService.UpdateTransaction(id, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteTransaction soft-deletes a transaction
// @Summary Delete a transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}
