package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trufapro/internal/contract"
	"trufapro/internal/utils/apierror"
)

type SaleService interface {
	GetAllSales(channel string) ([]*contract.SaleResponse, apierror.ErrorResponse)
	GetSaleByID(id string) (*contract.SaleResponse, apierror.ErrorResponse)
	CreateSale(req *contract.SaleRequest) (*contract.SaleResponse, apierror.ErrorResponse)
	UpdateSale(id string, req *contract.SaleRequest) (*contract.SaleResponse, apierror.ErrorResponse)
	DeleteSale(id string) apierror.ErrorResponse
	TodayTotal() (float64, apierror.ErrorResponse)
}

type DefaultSaleRoute struct {
	SaleService SaleService
}

func NewSaleDefault(saleService SaleService) *DefaultSaleRoute {
	return &DefaultSaleRoute{SaleService: saleService}
}

func (h *DefaultSaleRoute) GetSales(c echo.Context) error {
	sales, err := h.SaleService.GetAllSales(c.QueryParam("type"))
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"sales": sales}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultSaleRoute) GetSale(c echo.Context) error {
	sale, apierr := h.SaleService.GetSaleByID(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sale)
}

func (h *DefaultSaleRoute) GetToday(c echo.Context) error {
	total, apierr := h.SaleService.TodayTotal()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"today": total}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultSaleRoute) CreateSale(c echo.Context) error {
	var req contract.SaleRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	sale, apierr := h.SaleService.CreateSale(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, sale)
}

func (h *DefaultSaleRoute) UpdateSale(c echo.Context) error {
	var req contract.SaleRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	sale, apierr := h.SaleService.UpdateSale(c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sale)
}

func (h *DefaultSaleRoute) DeleteSale(c echo.Context) error {
	if apierr := h.SaleService.DeleteSale(c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
