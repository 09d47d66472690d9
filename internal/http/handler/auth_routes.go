package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trufapro/internal/contract"
	"trufapro/internal/utils/apierror"
)

type AuthService interface {
	Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse)
}

type DefaultAuthRoute struct {
	AuthService AuthService
}

func NewAuthDefault(authService AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{AuthService: authService}
}

func (h *DefaultAuthRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	session, apierr := h.AuthService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session)
}
