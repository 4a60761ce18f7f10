package repositories

import (
	"testing"
	"time"

	"finance-view/internal/database"
	"finance-view/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    TransactionRepositoryInterface
	account *models.Account
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.account = database.CreateTestAccount(s.T(), s.db, "Checking")
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) newTransaction(date time.Time, category string) *models.Transaction {
	return &models.Transaction{
		AccountID: &s.account.ID,
		Date:      date,
		Amount:    decimal.NewFromFloat(gofakeit.Float64Range(1, 500)).Round(2).Add(decimal.NewFromInt(1)),
		IsDebit:   true,
		Category:  category,
		Merchant:  gofakeit.Company(),
	}
}

func (s *TransactionRepositorySuite) TestCreate() {
	tx := s.newTransaction(day(2024, time.June, 10), models.CategoryDining)

	err := s.repo.Create(tx)
	s.NoError(err)
	s.NotEqual(uuid.Nil, tx.ID)
	s.NotZero(tx.CreatedAt)
}

func (s *TransactionRepositorySuite) TestCreate_DefaultsCategory() {
	tx := s.newTransaction(day(2024, time.June, 10), "")

	s.Require().NoError(s.repo.Create(tx))
	s.Equal(models.CategoryUncategorized, tx.Category)
}

func (s *TransactionRepositorySuite) TestCreate_RejectsNonPositiveAmount() {
	tx := s.newTransaction(day(2024, time.June, 10), models.CategoryDining)
	tx.Amount = decimal.Zero

	err := s.repo.Create(tx)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	batch := []models.Transaction{
		*s.newTransaction(day(2024, time.June, 1), models.CategoryDining),
		*s.newTransaction(day(2024, time.June, 2), models.CategoryTravel),
		*s.newTransaction(day(2024, time.June, 3), models.CategoryGroceries),
	}

	s.Require().NoError(s.repo.CreateBatch(batch))

	var count int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Count(&count).Error)
	s.Equal(int64(3), count)
}

func (s *TransactionRepositorySuite) TestCreateBatch_RollsBackOnInvalidRow() {
	invalid := *s.newTransaction(day(2024, time.June, 2), models.CategoryTravel)
	invalid.Amount = decimal.NewFromInt(-5)
	batch := []models.Transaction{
		*s.newTransaction(day(2024, time.June, 1), models.CategoryDining),
		invalid,
	}

	s.Error(s.repo.CreateBatch(batch))

	var count int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Count(&count).Error)
	s.Zero(count)
}

func (s *TransactionRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	tx, err := s.repo.GetByID(uuid.New())
	s.Nil(tx)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestUpdate() {
	tx := database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.June, 10), "12.50", true, models.CategoryDining, "Blue Bottle")

	tx.Amount = decimal.RequireFromString("15.75")
	tx.IsDebit = false
	tx.Category = models.CategoryIncome
	tx.Merchant = "Refund"
	tx.Subcategory = ""

	s.Require().NoError(s.repo.Update(tx))

	stored, err := s.repo.GetByID(tx.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("15.75").Equal(stored.Amount))
	s.False(stored.IsDebit)
	s.Equal(models.CategoryIncome, stored.Category)
	s.Equal("Refund", stored.Merchant)
}

func (s *TransactionRepositorySuite) TestUpdate_NotFound() {
	tx := s.newTransaction(day(2024, time.June, 10), models.CategoryDining)
	tx.ID = uuid.New()

	err := s.repo.Update(tx)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete_IsSoft() {
	tx := database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.June, 10), "12.50", true, models.CategoryDining, "Blue Bottle")

	s.Require().NoError(s.repo.Delete(tx.ID))

	_, err := s.repo.GetByID(tx.ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	var count int64
	s.Require().NoError(s.db.Unscoped().Model(&models.Transaction{}).Where("id = ?", tx.ID).Count(&count).Error)
	s.Equal(int64(1), count)

	s.ErrorIs(s.repo.Delete(tx.ID), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByDateRange_InclusiveNewestFirst() {
	database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.May, 31), "1.00", true, models.CategoryDining, "Before")
	database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.June, 1), "2.00", true, models.CategoryDining, "First")
	database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.June, 15), "3.00", true, models.CategoryDining, "Middle")
	database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.June, 30), "4.00", true, models.CategoryDining, "Last")
	database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.July, 1), "5.00", true, models.CategoryDining, "After")

	transactions, err := s.repo.GetByDateRange(day(2024, time.June, 1), day(2024, time.June, 30))
	s.Require().NoError(err)
	s.Require().Len(transactions, 3)
	s.Equal("Last", transactions[0].Merchant)
	s.Equal("Middle", transactions[1].Merchant)
	s.Equal("First", transactions[2].Merchant)
}

func (s *TransactionRepositorySuite) TestGetWithFilters() {
	other := database.CreateTestAccount(s.T(), s.db, "Savings")
	for i := 1; i <= 5; i++ {
		database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.June, i), "10.00", true, models.CategoryDining, "Cafe")
	}
	database.CreateTestTransaction(s.T(), s.db, &s.account.ID, day(2024, time.June, 6), "10.00", true, models.CategoryTravel, "Airline")
	database.CreateTestTransaction(s.T(), s.db, &other.ID, day(2024, time.June, 7), "10.00", true, models.CategoryDining, "Diner")

	start := day(2024, time.June, 2)
	end := day(2024, time.June, 30)

	transactions, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		AccountID: &s.account.ID,
		StartDate: &start,
		EndDate:   &end,
		Category:  models.CategoryDining,
		Offset:    1,
		Limit:     2,
	})
	s.Require().NoError(err)
	s.Equal(int64(4), total)
	s.Require().Len(transactions, 2)
	s.True(transactions[0].Date.Equal(day(2024, time.June, 4)))
	s.True(transactions[1].Date.Equal(day(2024, time.June, 3)))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_NoLimitReturnsAll() {
	for i := 1; i <= 4; i++ {
		database.CreateTestTransaction(s.T(), s.db, nil, day(2024, time.June, i), "10.00", false, models.CategoryIncome, "Employer")
	}

	transactions, total, err := s.repo.GetWithFilters(models.TransactionFilters{})
	s.Require().NoError(err)
	s.Equal(int64(4), total)
	s.Len(transactions, 4)
}

func (s *TransactionRepositorySuite) TestGetCategoryNames() {
	database.CreateTestTransaction(s.T(), s.db, nil, day(2024, time.June, 1), "10.00", true, models.CategoryTravel, "Airline")
	database.CreateTestTransaction(s.T(), s.db, nil, day(2024, time.June, 2), "10.00", true, models.CategoryDining, "Cafe")
	database.CreateTestTransaction(s.T(), s.db, nil, day(2024, time.June, 3), "10.00", true, models.CategoryDining, "Diner")

	names, err := s.repo.GetCategoryNames()
	s.Require().NoError(err)
	s.Equal([]string{models.CategoryDining, models.CategoryTravel}, names)
}
