package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the API handlers mounted by RegisterRoutes
type Handlers struct {
	View        *ViewHandler
	Transaction *TransactionHandler
	Category    *CategoryHandler
	Account     *AccountHandler
	Report      *ReportHandler
}

// RegisterRoutes mounts the API under /api/v1. sessionMiddleware guards the
// session-scoped view routes.
func RegisterRoutes(e *echo.Echo, h Handlers, sessionMiddleware echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	view := api.Group("/view", sessionMiddleware)
	view.GET("", h.View.Snapshot)
	view.GET("/controls", h.View.Controls)
	view.PUT("/filters", h.View.ApplyFilters)
	view.DELETE("/filters", h.View.ClearFilters)
	view.POST("/filters/custom-range", h.View.SetCustomRange)
	view.POST("/filters/reset", h.View.ResetFilters)
	view.PUT("/page-size", h.View.SetPageSize)
	view.POST("/pages/next", h.View.NextPage)
	view.POST("/pages/prev", h.View.PrevPage)
	view.POST("/pages/all", h.View.ShowAllPages)
	view.POST("/pages/:page", h.View.GoToPage)

	transactions := api.Group("/transactions")
	transactions.GET("", h.Transaction.ListTransactions)
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.GET("/:id", h.Transaction.GetTransaction)
	transactions.PUT("/:id", h.Transaction.UpdateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)

	api.GET("/categories", h.Category.ListCategories)
	api.POST("/categories", h.Category.CreateCategory)
	api.GET("/accounts", h.Account.ListAccounts)

	reports := api.Group("/reports")
	reports.GET("/monthly", h.Report.MonthlyTotals)
	reports.GET("/annual", h.Report.AnnualTotals)
}
