package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/core/services"
	"github.com/SscSPs/ar_statements/internal/dto"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to the outstanding report
type reportingHandler struct {
	reportService    portssvc.OutstandingReportSvc
	defaultCompanyID int64
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.OutstandingReportSvc, defaultCompanyID int64) *reportingHandler {
	return &reportingHandler{
		reportService:    rs,
		defaultCompanyID: defaultCompanyID,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportService portssvc.OutstandingReportSvc, defaultCompanyID int64) {
	h := newReportingHandler(reportService, defaultCompanyID)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/outstanding", h.getOutstandingReport)
		reportingGroup.GET("/outstanding.pdf", h.getOutstandingReportPDF)
	}
}

// getOutstandingReport godoc
// @Summary Outstanding receivables in original currency
// @Description Lists posted customer invoices and credit notes that are not fully paid, grouped by partner and currency. Lines are foldable: currency lines appear under unfolded partners, documents under unfolded currencies.
// @Tags reports
// @Produce json
// @Param date_from query string false "Invoice date lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Invoice date upper bound (YYYY-MM-DD)"
// @Param partner_ids query string false "Comma-separated partner ids"
// @Param selected_partner_ids query string false "Used when partner_ids is empty"
// @Param company_ids query string false "Comma-separated company ids"
// @Param journal_ids query string false "Comma-separated journal ids"
// @Param unfold_all query bool false "Unfold every line"
// @Param unfolded_lines query []string false "Line ids to unfold" collectionFormat(multi)
// @Param show_subtotals query bool false "Append a total row under each currency"
// @Success 200 {object} dto.OutstandingReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/outstanding [get]
func (h *reportingHandler) getOutstandingReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.OutstandingReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind outstanding report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	opts, err := services.NewReportOptions(q, h.defaultCompanyID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate outstanding report")
		return
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), opts)
	if err != nil {
		respondError(c, logger, err, "Failed to generate outstanding report")
		return
	}

	logger.Info("Outstanding report generated", slog.Int("line_count", len(report.Lines)))
	c.JSON(http.StatusOK, dto.ToOutstandingReportResponse(report))
}

// getOutstandingReportPDF godoc
// @Summary Outstanding receivables as PDF
// @Description Renders the fully unfolded outstanding report with the configured engine.
// @Tags reports
// @Produce application/pdf
// @Param date_from query string false "Invoice date lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Invoice date upper bound (YYYY-MM-DD)"
// @Param partner_ids query string false "Comma-separated partner ids"
// @Param company_ids query string false "Comma-separated company ids"
// @Param journal_ids query string false "Comma-separated journal ids"
// @Param show_subtotals query bool false "Append a total row under each currency"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 501 {object} map[string]string "Engine cannot produce PDF"
// @Failure 500 {object} map[string]string "Failed to render report"
// @Security BearerAuth
// @Router /reports/outstanding.pdf [get]
func (h *reportingHandler) getOutstandingReportPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.OutstandingReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	opts, err := services.NewReportOptions(q, h.defaultCompanyID)
	if err != nil {
		respondError(c, logger, err, "Failed to render outstanding report")
		return
	}

	pdf, err := h.reportService.RenderReport(c.Request.Context(), opts, render.FormatPDF)
	if err != nil {
		respondError(c, logger, err, "Failed to render outstanding report")
		return
	}

	fileName := "Outstanding_Receivables_" + time.Now().Format("2006-01-02") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, render.FormatPDF.ContentType(), pdf)
}
