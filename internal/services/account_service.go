package services

import (
	"fmt"
	"log/slog"

	"finance-view/internal/models"
	"finance-view/internal/repositories"

	"github.com/google/uuid"
)

// accountService implements AccountServiceInterface interface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	logger      *slog.Logger
}

// NewAccountService creates an account service
func NewAccountService(accountRepo repositories.AccountRepositoryInterface, logger *slog.Logger) AccountServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// ListAccounts returns every account ordered by name
func (s *accountService) ListAccounts() ([]models.Account, error) {
	accounts, err := s.accountRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// AccountNames maps account ids to display names. Rows referring to accounts
// missing from the map fall back to a shortened id.
func (s *accountService) AccountNames() (map[uuid.UUID]string, error) {
	accounts, err := s.accountRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load account names: %w", err)
	}

	names := make(map[uuid.UUID]string, len(accounts))
	for i := range accounts {
		names[accounts[i].ID] = accounts[i].DisplayName()
	}

	s.logger.Debug("Loaded account names", "count", len(names))
	return names, nil
}
