package inquiry

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/vikash1kr1209/bireenamedico/database"
	"github.com/vikash1kr1209/bireenamedico/models"
)

var (
	// ErrInquiryNotFound is returned when an ID-based lookup misses.
	ErrInquiryNotFound = errors.New("inquiry not found")
	// ErrInvalidStatus is returned when a status value is outside the
	// defined workflow set.
	ErrInvalidStatus = errors.New("invalid inquiry status")
)

// InquiryLedger defines the status workflow over inquiry records.
//
// The canonical storage key is adminInquiries. The legacy inquiries key is
// the public intake's write channel and is read only as a one-time fallback
// when the canonical key is absent; it is never re-synced. Mutations persist
// to the canonical key exclusively, which is what migrates legacy records
// forward.
type InquiryLedger interface {
	// Load returns all inquiries, falling back to the legacy key when the
	// canonical key is absent. Load never writes back.
	Load() []models.Inquiry
	// SetStatus overwrites an inquiry's status unconditionally. Any status
	// may move to any other; only membership in the workflow set is checked.
	SetStatus(id int64, status string) (*models.Inquiry, error)
	// FilterByStatus returns inquiries with an exact status match. An empty
	// status returns all records.
	FilterByStatus(status string) []models.Inquiry
	// FilterByService returns inquiries whose serviceName matches exactly.
	// An empty name returns all records.
	FilterByService(serviceName string) []models.Inquiry
	// Search matches term case-insensitively against fullName, businessName
	// and email.
	Search(term string) []models.Inquiry
	// AppendFromExternalSource records a new public inquiry on the legacy
	// key with status New and the current timestamp.
	AppendFromExternalSource(input models.Inquiry) (*models.Inquiry, error)
	// ExportCSV writes all inquiries as CSV in dashboard column order.
	ExportCSV(w io.Writer) error
}

// DefaultInquiryLedger is the production implementation.
type DefaultInquiryLedger struct {
	Store *database.Store
}

func (s *DefaultInquiryLedger) Load() []models.Inquiry {
	var inquiries []models.Inquiry
	if !s.Store.Get(database.KeyAdminInquiries, &inquiries) {
		s.Store.Get(database.KeyInquiries, &inquiries)
	}
	return inquiries
}

func (s *DefaultInquiryLedger) SetStatus(id int64, status string) (*models.Inquiry, error) {
	if !models.IsValidInquiryStatus(status) {
		return nil, ErrInvalidStatus
	}

	inquiries := s.Load()
	idx := indexOf(inquiries, id)
	if idx < 0 {
		return nil, ErrInquiryNotFound
	}

	inquiries[idx].Status = status
	if err := s.Store.Put(database.KeyAdminInquiries, inquiries); err != nil {
		return nil, err
	}
	updated := inquiries[idx]
	return &updated, nil
}

func (s *DefaultInquiryLedger) FilterByStatus(status string) []models.Inquiry {
	inquiries := s.Load()
	if status == "" {
		return inquiries
	}
	filtered := make([]models.Inquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		if inq.Status == status {
			filtered = append(filtered, inq)
		}
	}
	return filtered
}

func (s *DefaultInquiryLedger) FilterByService(serviceName string) []models.Inquiry {
	inquiries := s.Load()
	if serviceName == "" {
		return inquiries
	}
	filtered := make([]models.Inquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		if inq.ServiceName == serviceName {
			filtered = append(filtered, inq)
		}
	}
	return filtered
}

func (s *DefaultInquiryLedger) Search(term string) []models.Inquiry {
	inquiries := s.Load()
	term = strings.ToLower(term)
	if term == "" {
		return inquiries
	}
	filtered := make([]models.Inquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		if strings.Contains(strings.ToLower(inq.FullName), term) ||
			strings.Contains(strings.ToLower(inq.BusinessName), term) ||
			strings.Contains(strings.ToLower(inq.Email), term) {
			filtered = append(filtered, inq)
		}
	}
	return filtered
}

func (s *DefaultInquiryLedger) AppendFromExternalSource(input models.Inquiry) (*models.Inquiry, error) {
	// The public intake writes to the legacy key only; it never touches the
	// canonical admin key.
	var inquiries []models.Inquiry
	s.Store.Get(database.KeyInquiries, &inquiries)

	input.ID = nextID(inquiries)
	input.Status = models.InquiryNew
	input.Timestamp = time.Now().Format(models.TimestampLayout)
	if input.Features == nil {
		input.Features = []string{}
	}

	inquiries = append(inquiries, input)
	if err := s.Store.Put(database.KeyInquiries, inquiries); err != nil {
		return nil, err
	}
	return &input, nil
}

func indexOf(inquiries []models.Inquiry, id int64) int {
	for i, inq := range inquiries {
		if inq.ID == id {
			return i
		}
	}
	return -1
}

func nextID(inquiries []models.Inquiry) int64 {
	id := time.Now().UnixMilli()
	for indexOf(inquiries, id) >= 0 {
		id++
	}
	return id
}
