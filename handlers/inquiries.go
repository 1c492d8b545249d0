package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vikash1kr1209/bireenamedico/services/inquiry"
	"github.com/vikash1kr1209/bireenamedico/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler encapsulates the dashboard's inquiry endpoints.
type InquiryHandler struct {
	Ledger   inquiry.InquiryLedger
	Notifier notification.NotificationService
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(ledger inquiry.InquiryLedger, notifier notification.NotificationService) *InquiryHandler {
	return &InquiryHandler{Ledger: ledger, Notifier: notifier}
}

// ListInquiriesHandler handles GET /api/admin/inquiries. The search, status
// and service query parameters each narrow the listing on their own, the way
// the dashboard controls do.
func (h *InquiryHandler) ListInquiriesHandler(c *gin.Context) {
	if term := c.Query("search"); term != "" {
		c.JSON(http.StatusOK, h.Ledger.Search(term))
		return
	}
	if status := c.Query("status"); status != "" {
		c.JSON(http.StatusOK, h.Ledger.FilterByStatus(status))
		return
	}
	if service := c.Query("service"); service != "" {
		c.JSON(http.StatusOK, h.Ledger.FilterByService(service))
		return
	}
	c.JSON(http.StatusOK, h.Ledger.Load())
}

// UpdateInquiryStatusHandler handles PUT /api/admin/inquiries/:id/status.
func (h *InquiryHandler) UpdateInquiryStatusHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	updated, err := h.Ledger.SetStatus(id, req.Status)
	if err != nil {
		h.respondLedgerError(c, id, err, "failed to update inquiry status")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ReplyInquiryHandler handles POST /api/admin/inquiries/:id/reply.
func (h *InquiryHandler) ReplyInquiryHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	var req struct {
		Subject   string `json:"subject" binding:"required"`
		Message   string `json:"message" binding:"required"`
		SendEmail bool   `json:"sendEmail"`
		SendSMS   bool   `json:"sendSMS"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	updated, err := h.Notifier.Reply(id, req.Subject, req.Message, req.SendEmail, req.SendSMS)
	if err != nil {
		if errors.Is(err, notification.ErrEmptyReply) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.respondLedgerError(c, id, err, "failed to send reply")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply sent successfully!", "inquiry": updated})
}

// ContactInquiryHandler handles POST /api/admin/inquiries/:id/contact.
func (h *InquiryHandler) ContactInquiryHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	inq, err := h.Notifier.Contact(id)
	if err != nil {
		h.respondLedgerError(c, id, err, "failed to contact customer")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Contacting %s...", inq.FullName),
		"phone":   inq.Phone,
		"email":   inq.Email,
	})
}

// SendProposalHandler handles POST /api/admin/inquiries/:id/proposal.
func (h *InquiryHandler) SendProposalHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	updated, err := h.Notifier.SendProposal(id)
	if err != nil {
		h.respondLedgerError(c, id, err, "failed to send proposal")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Proposal marked as sent to " + updated.FullName,
		"inquiry": updated,
	})
}

// ExportInquiriesHandler handles GET /api/admin/inquiries/export.
func (h *InquiryHandler) ExportInquiriesHandler(c *gin.Context) {
	filename := "inquiries-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.Ledger.ExportCSV(c.Writer); err != nil {
		getLogger(c).Error("ExportInquiriesHandler: export failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}

func (h *InquiryHandler) respondLedgerError(c *gin.Context, id int64, err error, msg string) {
	switch {
	case errors.Is(err, inquiry.ErrInquiryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
	case errors.Is(err, inquiry.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error(msg, zap.Int64("inquiryId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
