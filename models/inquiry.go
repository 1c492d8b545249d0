package models

// Inquiry workflow statuses. Any status may be set directly from any other;
// the workflow order below is display order, not a transition graph.
const (
	InquiryNew          = "New"
	InquiryContacted    = "Contacted"
	InquiryProposalSent = "Proposal Sent"
	InquiryInProgress   = "In Progress"
	InquiryCompleted    = "Completed"
)

// InquiryStatuses lists all valid statuses in workflow order.
var InquiryStatuses = []string{
	InquiryNew,
	InquiryContacted,
	InquiryProposalSent,
	InquiryInProgress,
	InquiryCompleted,
}

// IsValidInquiryStatus reports whether s is one of the defined workflow statuses.
func IsValidInquiryStatus(s string) bool {
	for _, status := range InquiryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// TimestampLayout renders creation times the way the dashboard displays them.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Inquiry is a customer-submitted request for a service, tracked through the
// status workflow. ServiceName references a Service by name, not by ID.
type Inquiry struct {
	ID           int64    `json:"id"`
	ServiceName  string   `json:"serviceName"`
	FullName     string   `json:"fullName"`
	BusinessName string   `json:"businessName"`
	PharmacyType string   `json:"pharmacyType"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	City         string   `json:"city"`
	Budget       string   `json:"budget,omitempty"`
	Features     []string `json:"features"`
	Message      string   `json:"message,omitempty"`
	Status       string   `json:"status"`
	Timestamp    string   `json:"timestamp"` // Immutable after creation.
}
