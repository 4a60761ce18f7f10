package dto

import (
	"finance-view/internal/models"
)

// AccountResponse represents a single account in API responses
type AccountResponse struct {
	*models.Account
	DisplayName string `json:"display_name"`
}

// AccountListResponse represents the list of accounts
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// NewAccountListResponse builds the account list with display names
func NewAccountListResponse(accounts []models.Account) AccountListResponse {
	resp := AccountListResponse{
		Accounts: make([]AccountResponse, 0, len(accounts)),
		Total:    len(accounts),
	}
	for i := range accounts {
		resp.Accounts = append(resp.Accounts, AccountResponse{
			Account:     &accounts[i],
			DisplayName: accounts[i].DisplayName(),
		})
	}
	return resp
}
