package middleware

import (
	"github.com/labstack/echo/v4"

	"trufapro/internal/utils"
	"trufapro/internal/utils/apierror"
)

type AuthMiddlewareConfig struct {
	Secret []byte
}

// NewAuthMiddleware guards the API behind the PIN session token.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := utils.BearerToken(c)
			if err != nil {
				apierr := apierror.NoTokenError
				return c.JSON(apierr.Code(), apierr)
			}

			if err := utils.ValidateToken(cfg.Secret, raw); err != nil {
				apierr := apierror.BadTokenError
				return c.JSON(apierr.Code(), apierr)
			}
			return next(c)
		}
	}
}
