package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"trufapro/internal/contract"
	"trufapro/internal/utils/apierror"
)

type BackupService interface {
	Export() (*contract.BackupFile, apierror.ErrorResponse)
	Import(raw []byte) apierror.ErrorResponse
}

type DefaultBackupRoute struct {
	BackupService BackupService
}

func NewBackupDefault(backupService BackupService) *DefaultBackupRoute {
	return &DefaultBackupRoute{BackupService: backupService}
}

func (h *DefaultBackupRoute) Export(c echo.Context) error {
	file, apierr := h.BackupService.Export()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="trufapro-backup.json"`)
	return c.JSON(http.StatusOK, file)
}

func (h *DefaultBackupRoute) Import(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		apierr := apierror.MalformedJSONError
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := h.BackupService.Import(raw); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
