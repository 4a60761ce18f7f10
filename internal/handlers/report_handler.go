package handlers

import (
	"net/http"
	"time"

	"finance-view/internal/dto"
	"finance-view/internal/errors"
	"finance-view/internal/formatting"
	"finance-view/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the monthly and annual category totals
type ReportHandler struct {
	reportService services.ReportServiceInterface
	location      *time.Location
}

// NewReportHandler creates a new report handler. Months are interpreted in location.
func NewReportHandler(reportService services.ReportServiceInterface, location *time.Location) *ReportHandler {
	if location == nil {
		location = time.Local
	}
	return &ReportHandler{
		reportService: reportService,
		location:      location,
	}
}

// MonthlyTotals returns per-month category totals
// @Summary Monthly totals
// @Description Signed category totals for every month between start and end. Defaults to the last six months.
// @Tags Reports
// @Produce json
// @Param start query string false "First month (MM/YYYY)"
// @Param end query string false "Last month (MM/YYYY)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid month"
// @Router /reports/monthly [get]
func (h *ReportHandler) MonthlyTotals(c echo.Context) error {
	var params dto.MonthlyReportParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(params); err != nil {
		return SendValidationError(c, err)
	}

	var start, end time.Time
	if params.Start != "" {
		start, _ = formatting.ParseMonthYear(params.Start, h.location)
	}
	if params.End != "" {
		end, _ = formatting.ParseMonthYear(params.End, h.location)
	}

	report, err := h.reportService.MonthlyTotals(start, end)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewReportResponse(report))
}

// AnnualTotals returns per-year category totals
// @Summary Annual totals
// @Description Signed category totals per year. Defaults to the last five years.
// @Tags Reports
// @Produce json
// @Param start_year query int false "First year"
// @Param end_year query int false "Last year"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid year"
// @Router /reports/annual [get]
func (h *ReportHandler) AnnualTotals(c echo.Context) error {
	var params dto.AnnualReportParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(params); err != nil {
		return SendValidationError(c, err)
	}

	report, err := h.reportService.AnnualTotals(params.StartYear, params.EndYear)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewReportResponse(report))
}
