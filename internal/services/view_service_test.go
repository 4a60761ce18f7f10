package services

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"finance-view/internal/config"
	"finance-view/internal/dto"
	"finance-view/internal/filter"
	"finance-view/internal/models"
	"finance-view/internal/paginator"
	"finance-view/internal/repositories/repository_mocks"
	"finance-view/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ViewServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	sessions        *session.Manager
	service         *viewService
	account         models.Account
	now             time.Time
	ctx             context.Context
}

func TestViewServiceSuite(t *testing.T) {
	suite.Run(t, new(ViewServiceTestSuite))
}

func (s *ViewServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	sessions, err := session.NewManager(config.SessionConfig{
		TTL:           time.Hour,
		CacheCounters: 1000,
		CacheMaxCost:  100,
	})
	s.Require().NoError(err)
	s.sessions = sessions

	s.account = models.Account{ID: uuid.New(), Name: "Everyday Checking", Mask: "0042"}

	s.accountRepo.EXPECT().List().Return([]models.Account{s.account}, nil).AnyTimes()
	s.categoryRepo.EXPECT().List().Return([]models.Category{
		{Name: models.CategoryDining, Subcategories: []models.Subcategory{{Name: "Coffee Shops"}}},
		{Name: models.CategoryGroceries},
	}, nil).AnyTimes()
	s.transactionRepo.EXPECT().GetCategoryNames().Return([]string{models.CategoryDining, models.CategoryGroceries}, nil).AnyTimes()

	accounts := NewAccountService(s.accountRepo, nil)
	categories := NewCategoryService(s.categoryRepo, s.transactionRepo, nil)
	s.service = newViewService(s.sessions, s.transactionRepo, accounts, categories, nil, ViewOptions{
		DefaultPageSize: 50,
		RenderBatchSize: 25,
		RangeDays:       730,
		Location:        time.UTC,
	}, nil)
	s.service.now = func() time.Time { return s.now }
}

func (s *ViewServiceTestSuite) TearDownTest() {
	s.sessions.Close()
	s.ctrl.Finish()
}

// transactions returns n transactions, one per day going back from today.
// Every tenth is a Dining coffee purchase, the rest are groceries.
func (s *ViewServiceTestSuite) transactions(n int) []models.Transaction {
	txs := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		tx := models.Transaction{
			ID:        uuid.New(),
			AccountID: &s.account.ID,
			Date:      s.now.AddDate(0, 0, -i),
			Amount:    decimal.NewFromInt(int64(10 + i)),
			IsDebit:   true,
			Category:  models.CategoryGroceries,
			Merchant:  fmt.Sprintf("Market %03d", i),
		}
		if i%10 == 0 {
			tx.Category = models.CategoryDining
			tx.Subcategory = "Coffee Shops"
			tx.Merchant = "Blue Coffee"
		}
		txs = append(txs, tx)
	}
	return txs
}

func (s *ViewServiceTestSuite) expectRows(txs []models.Transaction) {
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(txs, nil).Times(1)
}

func (s *ViewServiceTestSuite) TestSnapshot_BuildsFirstPage() {
	s.expectRows(s.transactions(120))

	view, err := s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)

	s.Equal(120, view.TotalRows)
	s.Equal(120, view.IncludedRows)
	s.Len(view.Rows, 50)
	s.Equal(1, view.Pagination.CurrentPage)
	s.Equal(3, view.Pagination.TotalPages)
	s.Equal(50, view.Pagination.VisibleItems)
	s.False(view.Controls.Hidden)
	s.Equal("Showing 50 of 120 items (Page 1 of 3)", view.Controls.Summary)
	s.False(view.ScrollToTop)

	first := view.Rows[0]
	s.Equal("06/15/2024", first.Date)
	s.Equal("$10.00", first.AmountDisplay)
	s.Equal("Everyday Checking ••0042", first.AccountName)

	s.Equal([]string{models.CategoryDining, models.CategoryGroceries}, view.Filters.Categories)
	s.Equal([]string{"Coffee Shops"}, view.Filters.Subcategories)
	s.Equal(filter.DefaultState(), view.Filters.State)
}

func (s *ViewServiceTestSuite) TestSnapshot_ReusesCachedView() {
	s.expectRows(s.transactions(10))

	_, err := s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)
	_, err = s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)
}

func (s *ViewServiceTestSuite) TestSnapshot_LoadErrorIsReturned() {
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

	view, err := s.service.Snapshot(s.ctx, "session-a")
	s.Nil(view)
	s.ErrorContains(err, "connection refused")
}

func (s *ViewServiceTestSuite) TestSnapshot_LoadsConfiguredRange() {
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(start, end time.Time) ([]models.Transaction, error) {
			s.Equal(time.Date(2022, 6, 16, 0, 0, 0, 0, time.UTC), start)
			s.Equal(time.Date(2024, 6, 15, 23, 59, 59, 999999999, time.UTC), end)
			return nil, nil
		})

	view, err := s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Zero(view.TotalRows)
	s.True(view.Controls.Hidden)
}

func (s *ViewServiceTestSuite) TestApplyFilters_SearchResetsToFirstPage() {
	s.expectRows(s.transactions(120))

	view, err := s.service.NextPage(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(2, view.Pagination.CurrentPage)

	view, err = s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Search: "COFFEE"})
	s.Require().NoError(err)
	s.Equal(12, view.IncludedRows)
	s.Len(view.Rows, 12)
	s.Equal(1, view.Pagination.CurrentPage)
	s.True(view.Controls.Hidden)
	for _, row := range view.Rows {
		s.Equal("Blue Coffee", row.Merchant)
	}
}

func (s *ViewServiceTestSuite) TestApplyFilters_Last30Days() {
	s.expectRows(s.transactions(120))

	view, err := s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Date: filter.Date30})
	s.Require().NoError(err)
	s.Equal(31, view.IncludedRows)
	s.Equal("05/16/2024", view.Rows[len(view.Rows)-1].Date)
}

func (s *ViewServiceTestSuite) TestApplyFilters_PersistsState() {
	s.expectRows(s.transactions(20))

	_, err := s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{
		Category: models.CategoryDining,
		Type:     models.TransactionTypeExpense,
	})
	s.Require().NoError(err)

	data, ok := s.sessions.Scope("session-a").Get(filter.StorageKey)
	s.Require().True(ok)
	s.Contains(string(data), `"category":"Dining"`)
	s.Contains(string(data), `"type":"expense"`)
}

func (s *ViewServiceTestSuite) TestApplyFilters_UnknownCategory() {
	s.expectRows(s.transactions(5))

	view, err := s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Category: "Pets"})
	s.Nil(view)
	s.ErrorIs(err, ErrUnknownCategory)

	view, err = s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Subcategory: "Vet"})
	s.Nil(view)
	s.ErrorIs(err, ErrUnknownSubcategory)

	view, err = s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Subcategory: filter.SubcategoryUncategorized})
	s.Require().NoError(err)
	s.Equal(4, view.IncludedRows)
}

func (s *ViewServiceTestSuite) TestSessionsAreIsolated() {
	txs := s.transactions(30)
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(txs, nil).Times(2)

	_, err := s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Category: models.CategoryDining})
	s.Require().NoError(err)

	view, err := s.service.Snapshot(s.ctx, "session-b")
	s.Require().NoError(err)
	s.Equal(30, view.IncludedRows)
	s.Equal(filter.All, view.Filters.State.Category)
}

func (s *ViewServiceTestSuite) TestSetCustomRange() {
	s.expectRows(s.transactions(120))

	view, err := s.service.SetCustomRange(s.ctx, "session-a", "06/01/2024", "06/10/2024")
	s.Require().NoError(err)
	s.Equal(10, view.IncludedRows)
	s.Equal(filter.DateCustom, view.Filters.State.Date)
	s.Equal("06/01/2024", view.Filters.State.CustomDateStart)

	var label string
	for _, option := range view.Filters.DateOptions {
		if option.Value == filter.DateCustom {
			label = option.Label
		}
	}
	s.Equal("06/01/24 - 06/10/24", label)

	_, err = s.service.SetCustomRange(s.ctx, "session-a", "06/10/2024", "")
	s.ErrorIs(err, filter.ErrCustomRangeIncomplete)
}

func (s *ViewServiceTestSuite) TestClearAndResetFilters() {
	s.expectRows(s.transactions(120))

	_, err := s.service.SetPageSize(s.ctx, "session-a", "10")
	s.Require().NoError(err)
	_, err = s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Category: models.CategoryDining})
	s.Require().NoError(err)

	view, err := s.service.ClearFilters(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(120, view.IncludedRows)
	s.Equal(10, view.Pagination.PageSize)
	_, ok := s.sessions.Scope("session-a").Get(filter.StorageKey)
	s.True(ok)

	_, err = s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Category: models.CategoryDining})
	s.Require().NoError(err)

	view, err = s.service.ResetFilters(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(120, view.IncludedRows)
	s.Equal(50, view.Pagination.PageSize)
	s.Equal(filter.DefaultState(), view.Filters.State)
}

func (s *ViewServiceTestSuite) TestPaging() {
	s.expectRows(s.transactions(120))

	view, err := s.service.GoToPage(s.ctx, "session-a", 3)
	s.Require().NoError(err)
	s.Equal(3, view.Pagination.CurrentPage)
	s.Len(view.Rows, 20)
	s.True(view.ScrollToTop)

	view, err = s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)
	s.False(view.ScrollToTop)

	view, err = s.service.NextPage(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(3, view.Pagination.CurrentPage)
	s.False(view.ScrollToTop)

	view, err = s.service.PrevPage(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(2, view.Pagination.CurrentPage)

	view, err = s.service.GoToPage(s.ctx, "session-a", 99)
	s.Require().NoError(err)
	s.Equal(3, view.Pagination.CurrentPage)

	_, err = s.service.GoToPage(s.ctx, "session-a", 0)
	s.ErrorIs(err, ErrInvalidPage)
}

func (s *ViewServiceTestSuite) TestSetPageSize() {
	s.expectRows(s.transactions(120))

	_, err := s.service.GoToPage(s.ctx, "session-a", 2)
	s.Require().NoError(err)

	view, err := s.service.SetPageSize(s.ctx, "session-a", "25")
	s.Require().NoError(err)
	s.Equal(1, view.Pagination.CurrentPage)
	s.Equal(5, view.Pagination.TotalPages)
	s.Len(view.Rows, 25)

	_, err = s.service.SetPageSize(s.ctx, "session-a", "0")
	s.ErrorIs(err, paginator.ErrInvalidPageSize)

	view, err = s.service.SetPageSize(s.ctx, "session-a", "all")
	s.Require().NoError(err)
	s.Len(view.Rows, 120)
	s.True(view.Controls.Hidden)
}

func (s *ViewServiceTestSuite) TestShowAllPages() {
	s.expectRows(s.transactions(120))

	view, err := s.service.ShowAllPages(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Len(view.Rows, 120)
	s.Equal(paginator.AllPages, view.Pagination.PageSize)
	s.Equal(1, view.Pagination.TotalPages)
	s.True(view.Controls.Hidden)
}

func (s *ViewServiceTestSuite) TestInvalidate_RebuildsKeepingFiltersAndPageSize() {
	initial := s.transactions(40)
	s.expectRows(initial)

	_, err := s.service.SetPageSize(s.ctx, "session-a", "2")
	s.Require().NoError(err)
	view, err := s.service.ApplyFilters(s.ctx, "session-a", dto.ViewFilterRequest{Category: models.CategoryDining})
	s.Require().NoError(err)
	s.Equal(4, view.IncludedRows)

	extra := models.Transaction{
		ID:        uuid.New(),
		Date:      s.now,
		Amount:    decimal.NewFromInt(5),
		IsDebit:   true,
		Category:  models.CategoryDining,
		Merchant:  "Corner Cafe",
		AccountID: nil,
	}
	s.expectRows(append([]models.Transaction{extra}, initial...))

	s.service.Invalidate()

	view, err = s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(41, view.TotalRows)
	s.Equal(5, view.IncludedRows)
	s.Equal(2, view.Pagination.PageSize)
	s.Equal(3, view.Pagination.TotalPages)
	s.Equal(models.CategoryDining, view.Filters.State.Category)
	s.Equal("Corner Cafe", view.Rows[0].Merchant)
	s.Equal("No Account", view.Rows[0].AccountName)
}

func (s *ViewServiceTestSuite) TestRenderControls() {
	s.expectRows(s.transactions(120))

	var buf bytes.Buffer
	s.Require().NoError(s.service.RenderControls(s.ctx, "session-a", &buf))
	s.Contains(buf.String(), "Showing 50 of 120 items (Page 1 of 3)")
	s.Contains(buf.String(), `data-page="next"`)
}

func (s *ViewServiceTestSuite) TestConcurrentRequestsShareOneView() {
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(s.transactions(120), nil).MinTimes(1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.NextPage(s.ctx, "session-a")
			s.NoError(err)
		}()
	}
	wg.Wait()

	view, err := s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(3, view.Pagination.CurrentPage)
}

func (s *ViewServiceTestSuite) TestCancelledContextIsRejected() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	view, err := s.service.Snapshot(ctx, "session-a")
	s.Nil(view)
	s.ErrorIs(err, context.Canceled)
}

func (s *ViewServiceTestSuite) TestCancelledCallerDoesNotFailSharedBuild() {
	started := make(chan struct{})
	release := make(chan struct{})
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(start, end time.Time) ([]models.Transaction, error) {
			close(started)
			<-release
			return s.transactions(120), nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := s.service.Snapshot(ctx, "session-a")
		first <- err
	}()
	<-started

	second := make(chan *dto.ViewResponse, 1)
	go func() {
		view, err := s.service.Snapshot(s.ctx, "session-a")
		s.NoError(err)
		second <- view
	}()

	cancel()
	s.ErrorIs(<-first, context.Canceled)

	close(release)
	view := <-second
	s.Require().NotNil(view)
	s.Equal(120, view.TotalRows)
}

func (s *ViewServiceTestSuite) TestStaleViewDoesNotReplaceRebuild() {
	s.expectRows(s.transactions(120))
	_, err := s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)
	stale, ok := s.service.cachedView("session-a")
	s.Require().True(ok)

	s.service.Invalidate()
	s.expectRows(s.transactions(120))
	view, err := s.service.NextPage(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(2, view.Pagination.CurrentPage)

	// a request that fetched the old view before the rebuild finishes now
	s.service.refreshView("session-a", stale)

	view, err = s.service.Snapshot(s.ctx, "session-a")
	s.Require().NoError(err)
	s.Equal(2, view.Pagination.CurrentPage)
	current, ok := s.service.cachedView("session-a")
	s.Require().True(ok)
	s.NotSame(stale, current)
}

func (s *ViewServiceTestSuite) TestParsePage() {
	page, err := ParsePage("4")
	s.NoError(err)
	s.Equal(4, page)

	_, err = ParsePage("0")
	s.ErrorIs(err, ErrInvalidPage)
	_, err = ParsePage("two")
	s.ErrorIs(err, ErrInvalidPage)
}
