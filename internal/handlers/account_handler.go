package handlers

import (
	"net/http"

	"finance-view/internal/dto"
	"finance-view/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts returns every account with its display name
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountListResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountListResponse(accounts))
}
