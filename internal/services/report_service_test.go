package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"finance-view/internal/models"
	"finance-view/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	metrics         *recordingMetrics
	service         *reportService
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.metrics = &recordingMetrics{}
	s.service = NewReportService(s.transactionRepo, s.categoryRepo, s.metrics, time.UTC, slog.Default()).(*reportService)
	s.service.now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func txOn(date time.Time, category string, amount int64, debit bool) models.Transaction {
	return models.Transaction{
		Date:     date,
		Amount:   decimal.NewFromInt(amount),
		IsDebit:  debit,
		Category: category,
	}
}

func (s *ReportServiceTestSuite) TestMonthlyTotals_DefaultRange() {
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(start, end time.Time) ([]models.Transaction, error) {
			s.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
			s.Equal(time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC), end)
			return nil, nil
		})
	s.categoryRepo.EXPECT().List().Return([]models.Category{{Name: models.CategoryDining}}, nil)

	report, err := s.service.MonthlyTotals(time.Time{}, time.Time{})
	s.Require().NoError(err)
	s.Len(report.Periods, 7)
	s.Equal("Dec 2023", report.Periods[0].Label)
	s.Equal("2024-06", report.Periods[6].Key)
	s.Equal([]string{models.CategoryDining}, report.Categories)
	s.Len(report.Totals, 7)
	for _, total := range report.Totals {
		s.True(total.TotalAmount.IsZero())
	}
}

func (s *ReportServiceTestSuite) TestMonthlyTotals_SumsSignedAmounts() {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)

	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return([]models.Transaction{
		txOn(jan, models.CategoryDining, 40, true),
		txOn(jan, models.CategoryDining, 10, false),
		txOn(feb, models.CategoryDining, 25, true),
		txOn(feb, models.CategoryIncome, 3000, false),
		txOn(feb, "Side Hustle", 50, false),
	}, nil)
	s.categoryRepo.EXPECT().List().Return([]models.Category{
		{Name: models.CategoryDining},
		{Name: models.CategoryIncome},
		{Name: models.CategoryTravel},
	}, nil)

	report, err := s.service.MonthlyTotals(
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)

	s.Equal([]string{models.CategoryDining, models.CategoryIncome, "Side Hustle", models.CategoryTravel}, report.Categories)
	s.Equal("-30", report.Total("2024-01", models.CategoryDining).String())
	s.Equal("-25", report.Total("2024-02", models.CategoryDining).String())
	s.Equal("3000", report.Total("2024-02", models.CategoryIncome).String())
	s.Equal("50", report.Total("2024-02", "Side Hustle").String())
	s.True(report.Total("2024-01", models.CategoryTravel).IsZero())
	s.Len(report.Totals, 8)

	s.Equal(1, s.metrics.count(MetricReportGenerated, map[string]string{"kind": "monthly"}))
}

func (s *ReportServiceTestSuite) TestMonthlyTotals_InvalidRanges() {
	_, err := s.service.MonthlyTotals(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	s.ErrorIs(err, ErrInvalidReportRange)

	_, err = s.service.MonthlyTotals(
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	s.ErrorIs(err, ErrReportRangeTooLong)
}

func (s *ReportServiceTestSuite) TestAnnualTotals() {
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(start, end time.Time) ([]models.Transaction, error) {
			s.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), start)
			s.Equal(time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC), end)
			return []models.Transaction{
				txOn(time.Date(2021, 7, 4, 0, 0, 0, 0, time.UTC), models.CategoryTravel, 800, true),
				txOn(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), models.CategoryTravel, 200, true),
			}, nil
		})
	s.categoryRepo.EXPECT().List().Return(nil, nil)

	report, err := s.service.AnnualTotals(0, 0)
	s.Require().NoError(err)
	s.Len(report.Periods, 5)
	s.Equal("2020", report.Periods[0].Label)
	s.Equal("-800", report.Total("2021", models.CategoryTravel).String())
	s.Equal("-200", report.Total("2024", models.CategoryTravel).String())
	s.Equal(1, s.metrics.count(MetricReportGenerated, map[string]string{"kind": "annual"}))
}

func (s *ReportServiceTestSuite) TestAnnualTotals_InvalidRange() {
	_, err := s.service.AnnualTotals(2024, 2020)
	s.ErrorIs(err, ErrInvalidReportRange)
}

func (s *ReportServiceTestSuite) TestAggregate_Errors() {
	s.Run("transactions", func() {
		s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := s.service.AnnualTotals(2023, 2024)
		s.ErrorContains(err, "failed to load transactions for report")
	})

	s.Run("categories", func() {
		s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.categoryRepo.EXPECT().List().Return(nil, errors.New("database error"))

		_, err := s.service.AnnualTotals(2023, 2024)
		s.ErrorContains(err, "failed to load categories for report")
	})
}
