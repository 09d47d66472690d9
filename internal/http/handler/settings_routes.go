package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trufapro/internal/contract"
	"trufapro/internal/utils/apierror"
)

type SettingsService interface {
	GetSettings() (*contract.SettingsResponse, apierror.ErrorResponse)
	UpdateSettings(req *contract.SettingsRequest) (*contract.SettingsResponse, apierror.ErrorResponse)
}

type DefaultSettingsRoute struct {
	SettingsService SettingsService
}

func NewSettingsDefault(settingsService SettingsService) *DefaultSettingsRoute {
	return &DefaultSettingsRoute{SettingsService: settingsService}
}

func (h *DefaultSettingsRoute) GetSettings(c echo.Context) error {
	settings, apierr := h.SettingsService.GetSettings()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *DefaultSettingsRoute) UpdateSettings(c echo.Context) error {
	var req contract.SettingsRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	settings, apierr := h.SettingsService.UpdateSettings(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, settings)
}
