package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-view/internal/dto"
	"finance-view/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewService := service_mocks.NewMockViewServiceInterface(ctrl)

	e := echo.New()
	e.Validator = NewValidator()

	session := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(SessionIDContextKey, "router-session")
			return next(c)
		}
	}

	RegisterRoutes(e, Handlers{
		View:        NewViewHandler(viewService, nil),
		Transaction: NewTransactionHandler(service_mocks.NewMockTransactionServiceInterface(ctrl), nil),
		Category:    NewCategoryHandler(service_mocks.NewMockCategoryServiceInterface(ctrl)),
		Account:     NewAccountHandler(service_mocks.NewMockAccountServiceInterface(ctrl)),
		Report:      NewReportHandler(service_mocks.NewMockReportServiceInterface(ctrl), nil),
	}, session)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, route := range []string{
		"GET /api/v1/view",
		"GET /api/v1/view/controls",
		"PUT /api/v1/view/filters",
		"DELETE /api/v1/view/filters",
		"POST /api/v1/view/filters/custom-range",
		"POST /api/v1/view/filters/reset",
		"PUT /api/v1/view/page-size",
		"POST /api/v1/view/pages/next",
		"POST /api/v1/view/pages/prev",
		"POST /api/v1/view/pages/all",
		"POST /api/v1/view/pages/:page",
		"GET /api/v1/transactions",
		"POST /api/v1/transactions",
		"GET /api/v1/transactions/:id",
		"PUT /api/v1/transactions/:id",
		"DELETE /api/v1/transactions/:id",
		"GET /api/v1/categories",
		"POST /api/v1/categories",
		"GET /api/v1/accounts",
		"GET /api/v1/reports/monthly",
		"GET /api/v1/reports/annual",
	} {
		assert.True(t, registered[route], route)
	}

	// Static page actions take precedence over the page number route
	viewService.EXPECT().NextPage(gomock.Any(), "router-session").Return(&dto.ViewResponse{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/view/pages/next", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
