package handlers

import (
	"log/slog"
	"net/http"

	"finance-view/internal/dto"
	"finance-view/internal/errors"
	"finance-view/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler serves development-only endpoints. It is mounted only when
// the server runs in the development environment.
type DevHandler struct {
	demoDataService services.DemoDataServiceInterface
	logger          *slog.Logger
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoDataService services.DemoDataServiceInterface, logger *slog.Logger) *DevHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DevHandler{demoDataService: demoDataService, logger: logger}
}

// GenerateDemoData fills the database with realistic transaction history
//
// Method: POST /api/v1/dev/demo-data
// Environment: Development only
//
// Query parameters:
//   - days: Days of history ending today (default: 180, max: 730)
//   - seed: Random seed; the same seed produces the same history
//
// Success Response: 201 Created with dto.DemoDataResponse
//
// Error Responses:
//   - 400: Invalid parameters
//   - 500: Internal server error
func (h *DevHandler) GenerateDemoData(c echo.Context) error {
	var req dto.DemoDataRequest
	err := echo.QueryParamsBinder(c).
		Int("days", &req.Days).
		Int64("seed", &req.Seed).
		BindError()
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("days and seed must be integers"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	response, err := h.demoDataService.GenerateDemoData(req)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.logger.Info("Demo data requested",
		"trace_id", getTraceID(c),
		"transactions", response.TransactionsCreated,
	)

	return c.JSON(http.StatusCreated, response)
}

// RegisterDevRoutes mounts the development endpoints under /api/v1/dev
func RegisterDevRoutes(e *echo.Echo, h *DevHandler) {
	dev := e.Group("/api/v1/dev")
	dev.POST("/demo-data", h.GenerateDemoData)
}
