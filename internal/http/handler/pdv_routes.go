package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trufapro/internal/contract"
	"trufapro/internal/service"
	"trufapro/internal/utils/apierror"
)

type PDVService interface {
	GetPDVs(query service.PDVListQuery) ([]*contract.PDVResponse, apierror.ErrorResponse)
	GetPDVByID(id string) (*contract.PDVDetailResponse, apierror.ErrorResponse)
	GetCities() ([]*contract.CityResponse, apierror.ErrorResponse)
	CreatePDV(req *contract.PDVRequest) (*contract.PDVResponse, apierror.ErrorResponse)
	UpdatePDV(id string, req *contract.PDVRequest) (*contract.PDVResponse, apierror.ErrorResponse)
	DeletePDV(id string) apierror.ErrorResponse
}

type DefaultPDVRoute struct {
	PDVService PDVService
}

func NewPDVDefault(pdvService PDVService) *DefaultPDVRoute {
	return &DefaultPDVRoute{PDVService: pdvService}
}

func (h *DefaultPDVRoute) GetPDVs(c echo.Context) error {
	query := service.PDVListQuery{
		Sort:       c.QueryParam("sort"),
		Search:     c.QueryParam("search"),
		OnlyFuture: c.QueryParam("future") == "true",
	}

	pdvs, err := h.PDVService.GetPDVs(query)
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"pdvs": pdvs}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultPDVRoute) GetPDV(c echo.Context) error {
	pdv, apierr := h.PDVService.GetPDVByID(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pdv)
}

func (h *DefaultPDVRoute) GetCities(c echo.Context) error {
	cities, err := h.PDVService.GetCities()
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"cities": cities}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultPDVRoute) CreatePDV(c echo.Context) error {
	var req contract.PDVRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	pdv, apierr := h.PDVService.CreatePDV(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, pdv)
}

func (h *DefaultPDVRoute) UpdatePDV(c echo.Context) error {
	var req contract.PDVRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	pdv, apierr := h.PDVService.UpdatePDV(c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pdv)
}

func (h *DefaultPDVRoute) DeletePDV(c echo.Context) error {
	if apierr := h.PDVService.DeletePDV(c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
