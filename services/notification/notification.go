package notification

import (
	"errors"

	"github.com/vikash1kr1209/bireenamedico/models"
	"github.com/vikash1kr1209/bireenamedico/services/inquiry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyReply is returned when a reply is missing its subject or message.
var ErrEmptyReply = errors.New("reply subject and message are required")

// NotificationService covers the dashboard's customer-facing actions. Actual
// email/SMS delivery is a stub: sends are logged, never transmitted.
type NotificationService interface {
	// Reply records a reply to an inquiry and promotes its status from New
	// to Contacted. Inquiries already past New keep their status.
	Reply(id int64, subject, message string, byEmail, bySMS bool) (*models.Inquiry, error)
	// Contact returns the inquiry so the caller can reach the customer.
	Contact(id int64) (*models.Inquiry, error)
	// SendProposal marks an inquiry as Proposal Sent, whatever its current
	// status.
	SendProposal(id int64) (*models.Inquiry, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Ledger inquiry.InquiryLedger
	Logger *zap.Logger
}

func (s *DefaultNotificationService) Reply(id int64, subject, message string, byEmail, bySMS bool) (*models.Inquiry, error) {
	if subject == "" || message == "" {
		return nil, ErrEmptyReply
	}

	inq := s.find(id)
	if inq == nil {
		return nil, inquiry.ErrInquiryNotFound
	}

	// In production, hand off to an email/SMS gateway here.
	s.Logger.Info("reply recorded",
		zap.String("replyId", uuid.New().String()),
		zap.Int64("inquiryId", inq.ID),
		zap.String("to", inq.Email),
		zap.String("phone", inq.Phone),
		zap.String("subject", subject),
		zap.Bool("sendEmail", byEmail),
		zap.Bool("sendSMS", bySMS),
	)

	if inq.Status == models.InquiryNew {
		return s.Ledger.SetStatus(id, models.InquiryContacted)
	}
	return inq, nil
}

func (s *DefaultNotificationService) Contact(id int64) (*models.Inquiry, error) {
	inq := s.find(id)
	if inq == nil {
		return nil, inquiry.ErrInquiryNotFound
	}

	s.Logger.Info("contact requested",
		zap.Int64("inquiryId", inq.ID),
		zap.String("name", inq.FullName),
		zap.String("phone", inq.Phone),
		zap.String("email", inq.Email),
	)
	return inq, nil
}

func (s *DefaultNotificationService) SendProposal(id int64) (*models.Inquiry, error) {
	updated, err := s.Ledger.SetStatus(id, models.InquiryProposalSent)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("proposal marked as sent",
		zap.Int64("inquiryId", updated.ID),
		zap.String("to", updated.FullName),
	)
	return updated, nil
}

func (s *DefaultNotificationService) find(id int64) *models.Inquiry {
	for _, inq := range s.Ledger.Load() {
		if inq.ID == id {
			found := inq
			return &found
		}
	}
	return nil
}
