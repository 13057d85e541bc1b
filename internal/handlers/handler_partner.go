package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/dto"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partnerHandler handles partner statement settings.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
	reportService  portssvc.OutstandingReportSvc
}

func newPartnerHandler(ps portssvc.PartnerSvcFacade, rs portssvc.OutstandingReportSvc) *partnerHandler {
	return &partnerHandler{partnerService: ps, reportService: rs}
}

func registerPartnerRoutes(partners *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade, reportService portssvc.OutstandingReportSvc) {
	h := newPartnerHandler(partnerService, reportService)

	partners.GET("/:partnerID", h.getPartner)
	partners.PUT("/:partnerID/statement-emails", h.updateStatementEmails)
	partners.GET("/:partnerID/statement-targets", h.getStatementTargets)
	partners.GET("/:partnerID/statement-report", h.getStatementReport)
	partners.GET("/:partnerID/messages", h.listMessages)
}

// getPartner godoc
// @Summary Get a partner
// @Description Retrieves a partner with its statement email settings
// @Tags partners
// @Produce json
// @Param partnerID path int true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 400 {object} map[string]string "Invalid partner ID"
// @Failure 404 {object} map[string]string "Partner not found"
// @Security BearerAuth
// @Router /partners/{partnerID} [get]
func (h *partnerHandler) getPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	partner, err := h.partnerService.GetPartner(c.Request.Context(), partnerID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("partner_id", partnerID)), err, "Failed to retrieve partner")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// updateStatementEmails godoc
// @Summary Update statement emails
// @Description Sets the address statements are sent to and the optional copy address. Empty values clear the field.
// @Tags partners
// @Accept json
// @Produce json
// @Param partnerID path int true "Partner ID"
// @Param emails body dto.UpdateStatementEmailsRequest true "Statement addresses"
// @Success 200 {object} dto.PartnerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Partner not found"
// @Failure 500 {object} map[string]string "Failed to update partner"
// @Security BearerAuth
// @Router /partners/{partnerID}/statement-emails [put]
func (h *partnerHandler) updateStatementEmails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateStatementEmailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatementEmails", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("partner_id", partnerID))
	partner, err := h.partnerService.UpdateStatementEmails(c.Request.Context(), partnerID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update statement emails")
		return
	}

	logger.Info("Statement emails updated")
	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// getStatementTargets godoc
// @Summary Resolve statement recipients
// @Description Returns the address and copy address a statement would be sent to
// @Tags partners
// @Produce json
// @Param partnerID path int true "Partner ID"
// @Success 200 {object} dto.StatementTargetsResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Security BearerAuth
// @Router /partners/{partnerID}/statement-targets [get]
func (h *partnerHandler) getStatementTargets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	targets, err := h.partnerService.GetStatementTargets(c.Request.Context(), partnerID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("partner_id", partnerID)), err, "Failed to resolve statement targets")
		return
	}
	c.JSON(http.StatusOK, dto.StatementTargetsResponse{PartnerID: partnerID, EmailTo: targets.EmailTo, EmailCC: targets.EmailCC})
}

// getStatementReport godoc
// @Summary Partner outstanding report
// @Description Outstanding report restricted to the partner, fully unfolded
// @Tags partners
// @Produce json
// @Param partnerID path int true "Partner ID"
// @Success 200 {object} dto.OutstandingReportResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Security BearerAuth
// @Router /partners/{partnerID}/statement-report [get]
func (h *partnerHandler) getStatementReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("partner_id", partnerID))

	opts, err := h.reportService.PartnerReportOptions(c.Request.Context(), partnerID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate statement report")
		return
	}
	report, err := h.reportService.BuildReport(c.Request.Context(), opts)
	if err != nil {
		respondError(c, logger, err, "Failed to generate statement report")
		return
	}
	c.JSON(http.StatusOK, dto.ToOutstandingReportResponse(report))
}

// listMessages godoc
// @Summary List partner messages
// @Description Activity-log notes of the partner, newest first
// @Tags partners
// @Produce json
// @Param partnerID path int true "Partner ID"
// @Param limit query int false "Maximum number of messages (default 20, max 100)"
// @Success 200 {array} dto.PartnerMessageResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Security BearerAuth
// @Router /partners/{partnerID}/messages [get]
func (h *partnerHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
	}

	msgs, err := h.partnerService.ListMessages(c.Request.Context(), partnerID, limit)
	if err != nil {
		respondError(c, logger.With(slog.Int64("partner_id", partnerID)), err, "Failed to list partner messages")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerMessageResponses(msgs))
}
