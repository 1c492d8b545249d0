package stats

import (
	"github.com/vikash1kr1209/bireenamedico/models"
	"github.com/vikash1kr1209/bireenamedico/services/catalog"
	"github.com/vikash1kr1209/bireenamedico/services/inquiry"
)

// Summary is the dashboard stat strip: totals plus a per-status breakdown.
type Summary struct {
	TotalServices  int `json:"totalServices"`
	TotalInquiries int `json:"totalInquiries"`
	New            int `json:"new"`
	Contacted      int `json:"contacted"`
	ProposalSent   int `json:"proposalSent"`
	InProgress     int `json:"inProgress"`
	Completed      int `json:"completed"`
}

// StatsAggregator derives counts from the catalog and the ledger. It is pure
// and recomputes on every call; nothing is cached.
type StatsAggregator interface {
	ServiceCount() int
	InquiryCount() int
	CountByStatus(status string) int
	// Pending counts inquiries still in the New status.
	Pending() int
	Completed() int
	Summary() Summary
}

// DefaultStatsAggregator is the production implementation.
type DefaultStatsAggregator struct {
	Catalog catalog.ServiceCatalog
	Ledger  inquiry.InquiryLedger
}

func (s *DefaultStatsAggregator) ServiceCount() int {
	return len(s.Catalog.List())
}

func (s *DefaultStatsAggregator) InquiryCount() int {
	return len(s.Ledger.Load())
}

func (s *DefaultStatsAggregator) CountByStatus(status string) int {
	count := 0
	for _, inq := range s.Ledger.Load() {
		if inq.Status == status {
			count++
		}
	}
	return count
}

func (s *DefaultStatsAggregator) Pending() int {
	return s.CountByStatus(models.InquiryNew)
}

func (s *DefaultStatsAggregator) Completed() int {
	return s.CountByStatus(models.InquiryCompleted)
}

func (s *DefaultStatsAggregator) Summary() Summary {
	summary := Summary{
		TotalServices: s.ServiceCount(),
	}
	for _, inq := range s.Ledger.Load() {
		summary.TotalInquiries++
		switch inq.Status {
		case models.InquiryNew:
			summary.New++
		case models.InquiryContacted:
			summary.Contacted++
		case models.InquiryProposalSent:
			summary.ProposalSent++
		case models.InquiryInProgress:
			summary.InProgress++
		case models.InquiryCompleted:
			summary.Completed++
		}
	}
	return summary
}
