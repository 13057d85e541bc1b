package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/core/services"
	"github.com/SscSPs/ar_statements/internal/dto"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/gin-gonic/gin"
)

type dueStatementHandler struct {
	dueStatementService portssvc.DueStatementSvc
}

func registerDueStatementRoutes(partners *gin.RouterGroup, svc portssvc.DueStatementSvc) {
	h := &dueStatementHandler{dueStatementService: svc}
	partners.GET("/:partnerID/due-statement", h.getDueStatement)
}

// getDueStatement godoc
// @Summary Printable statement of a partner
// @Description Open documents of the commercial partner and its contacts, one section per currency. Returned as JSON, HTML or PDF.
// @Tags statements
// @Produce json
// @Produce html
// @Produce application/pdf
// @Param partnerID path int true "Partner ID"
// @Param date_from query string false "Invoice date lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Invoice date upper bound (YYYY-MM-DD)"
// @Param company_id query int false "Company ID, defaults to the configured company"
// @Param format query string false "json, html or pdf" Enums(json, html, pdf)
// @Success 200 {object} dto.DueStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Partner not found"
// @Failure 501 {object} map[string]string "Engine cannot produce the format"
// @Security BearerAuth
// @Router /partners/{partnerID}/due-statement [get]
func (h *dueStatementHandler) getDueStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	var q dto.DueStatementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	req := domain.DueStatementRequest{PartnerID: partnerID, CompanyID: q.CompanyID}
	var err error
	if req.DateFrom, err = services.ParseQueryDate(q.DateFrom, "date_from"); err != nil {
		respondError(c, logger, err, "Invalid date")
		return
	}
	if req.DateTo, err = services.ParseQueryDate(q.DateTo, "date_to"); err != nil {
		respondError(c, logger, err, "Invalid date")
		return
	}

	logger = logger.With(slog.Int64("partner_id", partnerID))
	if q.Format == "" || q.Format == "json" {
		stmt, err := h.dueStatementService.BuildDueStatement(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err, "Failed to build statement")
			return
		}
		c.JSON(http.StatusOK, dto.ToDueStatementResponse(stmt))
		return
	}

	format := render.Format(q.Format)
	out, err := h.dueStatementService.RenderDueStatement(c.Request.Context(), req, format)
	if err != nil {
		respondError(c, logger, err, "Failed to render statement")
		return
	}
	c.Data(http.StatusOK, format.ContentType(), out)
}
