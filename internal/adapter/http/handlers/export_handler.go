package handlers

import (
	"fmt"
	"net/http"
	"time"

	"fren_docs/internal/usecase"
	"fren_docs/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves ledger downloads.

type ExportHandler struct {
	usecase usecase.IExportUseCase
	now     func() time.Time
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc, now: time.Now}
}

// CSV streams the ledger as a BOM-prefixed CSV file.
func (h *ExportHandler) CSV(c *gin.Context) {
	data, err := h.usecase.CSV(c.Request.Context())
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", attachmentName("csv", h.now()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// XLSX streams the ledger as a styled workbook.
func (h *ExportHandler) XLSX(c *gin.Context) {
	data, err := h.usecase.XLSX(c.Request.Context())
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", attachmentName("xlsx", h.now()))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func attachmentName(ext string, now time.Time) string {
	return fmt.Sprintf(`attachment; filename="fren_master_export_%s.%s"`, now.Format("2006-01-02"), ext)
}

func mapExportError(err error) *pkg.AppError {
	return pkg.NewDomainError("EXPORT_ERROR", err.Error(), err, http.StatusBadGateway)
}
