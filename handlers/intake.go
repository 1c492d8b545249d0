package handlers

import (
	"net/http"

	"github.com/vikash1kr1209/bireenamedico/models"
	"github.com/vikash1kr1209/bireenamedico/services/inquiry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntakeHandler receives inquiries from the public services page.
type IntakeHandler struct {
	Ledger inquiry.InquiryLedger
}

// NewIntakeHandler creates a new IntakeHandler.
func NewIntakeHandler(ledger inquiry.InquiryLedger) *IntakeHandler {
	return &IntakeHandler{Ledger: ledger}
}

// intakeRequest carries the public inquiry form fields. Required fields
// mirror the form's validation; budget, features and message are optional.
type intakeRequest struct {
	ServiceName  string   `json:"serviceName" binding:"required"`
	FullName     string   `json:"fullName" binding:"required"`
	BusinessName string   `json:"businessName" binding:"required"`
	PharmacyType string   `json:"pharmacyType" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Budget       string   `json:"budget"`
	Features     []string `json:"features"`
	Message      string   `json:"message"`
}

// SubmitInquiryHandler handles POST /api/inquiries.
func (h *IntakeHandler) SubmitInquiryHandler(c *gin.Context) {
	var req intakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Please fill all required fields",
			"message": err.Error(),
		})
		return
	}

	created, err := h.Ledger.AppendFromExternalSource(models.Inquiry{
		ServiceName:  req.ServiceName,
		FullName:     req.FullName,
		BusinessName: req.BusinessName,
		PharmacyType: req.PharmacyType,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		Budget:       req.Budget,
		Features:     req.Features,
		Message:      req.Message,
	})
	if err != nil {
		getLogger(c).Error("SubmitInquiryHandler: failed to save inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save inquiry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you! Your inquiry has been submitted successfully. We will contact you soon!",
		"inquiry": created,
	})
}
