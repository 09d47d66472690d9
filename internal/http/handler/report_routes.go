package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"trufapro/internal/contract"
	"trufapro/internal/utils/apierror"
)

type ReportService interface {
	GetDashboard() (*contract.DashboardResponse, apierror.ErrorResponse)
	GetMonthlyReport() ([]contract.MonthlyStatResponse, apierror.ErrorResponse)
	GetAnnualReport(year int) (*contract.AnnualReportResponse, apierror.ErrorResponse)
}

type DefaultReportRoute struct {
	ReportService ReportService
}

func NewReportDefault(reportService ReportService) *DefaultReportRoute {
	return &DefaultReportRoute{ReportService: reportService}
}

func (h *DefaultReportRoute) GetDashboard(c echo.Context) error {
	dashboard, apierr := h.ReportService.GetDashboard()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, dashboard)
}

func (h *DefaultReportRoute) GetMonthly(c echo.Context) error {
	months, apierr := h.ReportService.GetMonthlyReport()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"months": months}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultReportRoute) GetAnnual(c echo.Context) error {
	year := time.Now().Year()
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("year", "int"))
		}
		year = parsed
	}

	annual, apierr := h.ReportService.GetAnnualReport(year)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, annual)
}
