package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/HaroonAzizi/hadaf-accounting/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportSvc
}

func registerExportRoutes(rg *gin.RouterGroup, es portssvc.ExportSvc) {
	h := &exportHandler{exportService: es}

	export := rg.Group("/export")
	{
		export.GET("/csv", h.exportCSV)
		export.GET("/backup", h.backup)
		export.GET("/excel", h.exportExcel)
	}
}

// exportCSV godoc
// @Summary Export done entries as CSV
// @Tags export
// @Produce text/csv
// @Param categoryId query int false "Category ID"
// @Param type query string false "in or out"
// @Param currency query string false "AFN, USD, TRY or EUR"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Router /export/csv [get]
func (h *exportHandler) exportCSV(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	params.Status, params.Limit, params.NextToken = nil, 0, nil
	filter, err := ledgerFilter(params)
	if err != nil {
		genericErrors.respond(c, err)
		return
	}

	var buf bytes.Buffer
	n, err := h.exportService.ExportTransactionsCSV(c.Request.Context(), &buf, filter)
	if err != nil {
		genericErrors.respond(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("CSV export", slog.Int("rows", n))
	filename := fmt.Sprintf("transactions-%s.csv", domain.Today())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// backup godoc
// @Summary Download a database snapshot
// @Description SQLite only; other drivers answer 501.
// @Tags export
// @Produce application/octet-stream
// @Success 200 {file} file
// @Failure 501 {object} dto.ErrorResponse
// @Router /export/backup [get]
func (h *exportHandler) backup(c *gin.Context) {
	var buf bytes.Buffer
	filename, err := h.exportService.Backup(c.Request.Context(), &buf)
	if err != nil {
		genericErrors.respond(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, "application/octet-stream", buf.Bytes())
}

// exportExcel godoc
// @Summary Excel export
// @Description Not implemented.
// @Tags export
// @Produce json
// @Failure 501 {object} dto.ErrorResponse
// @Router /export/excel [get]
func (h *exportHandler) exportExcel(c *gin.Context) {
	genericErrors.respond(c, fmt.Errorf("%w: Excel export is not implemented, use CSV", apperrors.ErrNotSupported))
}
