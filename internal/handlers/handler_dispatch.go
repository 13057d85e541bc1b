package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/dto"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dispatchHandler handles sending statements by email.
type dispatchHandler struct {
	dispatchService portssvc.StatementDispatchSvc
	tracker         middleware.EventTracker
}

func newDispatchHandler(ds portssvc.StatementDispatchSvc, tracker middleware.EventTracker) *dispatchHandler {
	return &dispatchHandler{dispatchService: ds, tracker: tracker}
}

// registerDispatchRoutes registers the send-by-email routes. sendLimits run
// before the send handler only.
func registerDispatchRoutes(partners *gin.RouterGroup, dispatchService portssvc.StatementDispatchSvc, tracker middleware.EventTracker, sendLimits ...gin.HandlerFunc) {
	h := newDispatchHandler(dispatchService, tracker)

	partners.GET("/:partnerID/statement/defaults", h.getComposition)
	partners.POST("/:partnerID/statement/send", append(sendLimits, h.sendStatement)...)
	partners.GET("/:partnerID/attachments/:attachmentID", h.getAttachment)
}

// getComposition godoc
// @Summary Defaults of the send-by-email form
// @Description Returns the recipients, subject and body a statement would be sent with
// @Tags statements
// @Produce json
// @Param partnerID path int true "Partner ID"
// @Success 200 {object} dto.StatementCompositionResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Security BearerAuth
// @Router /partners/{partnerID}/statement/defaults [get]
func (h *dispatchHandler) getComposition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	comp, err := h.dispatchService.DefaultComposition(c.Request.Context(), partnerID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("partner_id", partnerID)), err, "Failed to compose statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementCompositionResponse(comp))
}

// sendStatement godoc
// @Summary Send a statement by email
// @Description Renders the partner's outstanding report to PDF, stores it as an attachment, sends it and logs a note on the partner
// @Tags statements
// @Accept json
// @Produce json
// @Param partnerID path int true "Partner ID"
// @Param statement body dto.SendStatementRequest false "Overrides of the default composition"
// @Success 201 {object} dto.SendStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Partner not found"
// @Failure 422 {object} map[string]string "No address to send the statement to"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to send statement"
// @Security BearerAuth
// @Router /partners/{partnerID}/statement/send [post]
func (h *dispatchHandler) sendStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	var req dto.SendStatementRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for SendStatement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("partner_id", partnerID))
	result, err := h.dispatchService.SendStatement(c.Request.Context(), domain.StatementDispatch{
		PartnerID: partnerID,
		EmailTo:   req.EmailTo,
		EmailCC:   req.EmailCC,
		Subject:   req.Subject,
		BodyHTML:  req.BodyHTML,
		UserID:    userID,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to send statement")
		return
	}

	logger.Info("Statement sent", slog.String("mail_id", result.Mail.ID), slog.String("email_to", result.Mail.EmailTo))
	middleware.TrackEvent(c, h.tracker, "statement_sent", map[string]any{
		"partner_id":    partnerID,
		"mail_id":       result.Mail.ID,
		"attachment_id": result.Attachment.ID,
	})
	c.JSON(http.StatusCreated, dto.ToSendStatementResponse(result))
}

// getAttachment godoc
// @Summary Download a statement attachment
// @Description Returns the PDF stored when a statement was sent to the partner
// @Tags statements
// @Produce application/pdf
// @Param partnerID path int true "Partner ID"
// @Param attachmentID path string true "Attachment ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Attachment not found"
// @Failure 422 {object} map[string]string "Attachment storage not configured"
// @Security BearerAuth
// @Router /partners/{partnerID}/attachments/{attachmentID} [get]
func (h *dispatchHandler) getAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}
	attachmentID := c.Param("attachmentID")

	att, err := h.dispatchService.GetAttachment(c.Request.Context(), partnerID, attachmentID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("partner_id", partnerID), slog.String("attachment_id", attachmentID)), err, "Failed to get attachment")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Name))
	c.Data(http.StatusOK, att.MimeType, att.Content)
}
