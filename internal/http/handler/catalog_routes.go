package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trufapro/internal/contract"
	"trufapro/internal/utils/apierror"
)

type CatalogService interface {
	GetAllTruffles() ([]*contract.TruffleResponse, apierror.ErrorResponse)
	CreateTruffle(req *contract.TruffleRequest) (*contract.TruffleResponse, apierror.ErrorResponse)
	UpdateTruffle(id string, req *contract.TruffleRequest) (*contract.TruffleResponse, apierror.ErrorResponse)
	DeleteTruffle(id string) apierror.ErrorResponse
}

type DefaultCatalogRoute struct {
	CatalogService CatalogService
}

func NewCatalogDefault(catalogService CatalogService) *DefaultCatalogRoute {
	return &DefaultCatalogRoute{CatalogService: catalogService}
}

func (h *DefaultCatalogRoute) GetTruffles(c echo.Context) error {
	truffles, err := h.CatalogService.GetAllTruffles()
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"truffles": truffles}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCatalogRoute) CreateTruffle(c echo.Context) error {
	var req contract.TruffleRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	truffle, apierr := h.CatalogService.CreateTruffle(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, truffle)
}

func (h *DefaultCatalogRoute) UpdateTruffle(c echo.Context) error {
	var req contract.TruffleRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	truffle, apierr := h.CatalogService.UpdateTruffle(c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, truffle)
}

func (h *DefaultCatalogRoute) DeleteTruffle(c echo.Context) error {
	if apierr := h.CatalogService.DeleteTruffle(c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
