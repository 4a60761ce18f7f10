package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"finance-view/internal/dto"
	"finance-view/internal/errors"
	"finance-view/internal/services"

	"github.com/labstack/echo/v4"
)

// ViewHandler serves the session-scoped transaction view
type ViewHandler struct {
	viewService services.ViewServiceInterface
	logger      *slog.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(viewService services.ViewServiceInterface, logger *slog.Logger) *ViewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewHandler{
		viewService: viewService,
		logger:      logger,
	}
}

type viewOperation func(ctx context.Context, sessionID string) (*dto.ViewResponse, error)

// respond runs op for the request's session and writes the resulting snapshot
func (h *ViewHandler) respond(c echo.Context, op viewOperation) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return SendError(c, errors.SessionInvalid)
	}

	view, err := op(c.Request().Context(), sessionID)
	if err != nil {
		h.logger.Debug("View operation rejected",
			"trace_id", getTraceID(c),
			"path", c.Path(),
			"error", err.Error(),
		)
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// Snapshot returns the current view
// @Summary Get the transaction view
// @Tags View
// @Produce json
// @Success 200 {object} dto.ViewResponse
// @Failure 401 {object} errors.ErrorResponse "SESSION_001 - Missing session"
// @Router /view [get]
func (h *ViewHandler) Snapshot(c echo.Context) error {
	return h.respond(c, h.viewService.Snapshot)
}

// ApplyFilters sets the filter inputs and reapplies them
// @Summary Apply filters
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.ViewFilterRequest true "Filter values"
// @Success 200 {object} dto.ViewResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or VIEW_001 - Invalid filter"
// @Router /view/filters [put]
func (h *ViewHandler) ApplyFilters(c echo.Context) error {
	var req dto.ViewFilterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	return h.respond(c, func(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
		return h.viewService.ApplyFilters(ctx, sessionID, req)
	})
}

// SetCustomRange selects a custom date range
// @Summary Set a custom date range
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.CustomRangeRequest true "Range bounds"
// @Success 200 {object} dto.ViewResponse
// @Failure 400 {object} errors.ErrorResponse "VIEW_002 - Invalid custom range"
// @Router /view/filters/custom-range [post]
func (h *ViewHandler) SetCustomRange(c echo.Context) error {
	var req dto.CustomRangeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	return h.respond(c, func(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
		return h.viewService.SetCustomRange(ctx, sessionID, req.Start, req.End)
	})
}

// ClearFilters resets every filter
// @Summary Clear filters
// @Tags View
// @Produce json
// @Success 200 {object} dto.ViewResponse
// @Router /view/filters [delete]
func (h *ViewHandler) ClearFilters(c echo.Context) error {
	return h.respond(c, h.viewService.ClearFilters)
}

// ResetFilters clears the filters and restores the default page size
// @Summary Reset filters and page size
// @Tags View
// @Produce json
// @Success 200 {object} dto.ViewResponse
// @Router /view/filters/reset [post]
func (h *ViewHandler) ResetFilters(c echo.Context) error {
	return h.respond(c, h.viewService.ResetFilters)
}

// SetPageSize changes the page size
// @Summary Set the page size
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.PageSizeRequest true "A positive number or all"
// @Success 200 {object} dto.ViewResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid page size"
// @Router /view/page-size [put]
func (h *ViewHandler) SetPageSize(c echo.Context) error {
	var req dto.PageSizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	return h.respond(c, func(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
		return h.viewService.SetPageSize(ctx, sessionID, req.PageSize)
	})
}

// GoToPage moves to the page in the path
// @Summary Go to a page
// @Tags View
// @Produce json
// @Param page path int true "1-based page number"
// @Success 200 {object} dto.ViewResponse
// @Failure 400 {object} errors.ErrorResponse "VIEW_004 - Invalid page"
// @Router /view/pages/{page} [post]
func (h *ViewHandler) GoToPage(c echo.Context) error {
	page, err := services.ParsePage(c.Param("page"))
	if err != nil {
		return SendError(c, errors.ViewInvalidPage)
	}

	return h.respond(c, func(ctx context.Context, sessionID string) (*dto.ViewResponse, error) {
		return h.viewService.GoToPage(ctx, sessionID, page)
	})
}

// NextPage moves one page forward
// @Summary Next page
// @Tags View
// @Produce json
// @Success 200 {object} dto.ViewResponse
// @Router /view/pages/next [post]
func (h *ViewHandler) NextPage(c echo.Context) error {
	return h.respond(c, h.viewService.NextPage)
}

// PrevPage moves one page back
// @Summary Previous page
// @Tags View
// @Produce json
// @Success 200 {object} dto.ViewResponse
// @Router /view/pages/prev [post]
func (h *ViewHandler) PrevPage(c echo.Context) error {
	return h.respond(c, h.viewService.PrevPage)
}

// ShowAllPages shows every included row
// @Summary Show all rows
// @Tags View
// @Produce json
// @Success 200 {object} dto.ViewResponse
// @Router /view/pages/all [post]
func (h *ViewHandler) ShowAllPages(c echo.Context) error {
	return h.respond(c, h.viewService.ShowAllPages)
}

// Controls renders the pagination control strip as an HTML fragment
// @Summary Pagination controls
// @Tags View
// @Produce html
// @Success 200 {string} string "HTML fragment"
// @Router /view/controls [get]
func (h *ViewHandler) Controls(c echo.Context) error {
	sessionID, err := getSessionID(c)
	if err != nil {
		return SendError(c, errors.SessionInvalid)
	}

	var buf bytes.Buffer
	if err := h.viewService.RenderControls(c.Request().Context(), sessionID, &buf); err != nil {
		return SendServiceError(c, err)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
