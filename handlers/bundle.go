package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every handler the router needs.
type HandlerBundle struct {
	// Public endpoints (services page).
	PublicServicesHandler gin.HandlerFunc
	SubmitInquiryHandler  gin.HandlerFunc

	// Admin service catalog endpoints.
	ListServicesHandler  gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc

	// Inquiry dashboard endpoints.
	ListInquiriesHandler       gin.HandlerFunc
	UpdateInquiryStatusHandler gin.HandlerFunc
	ReplyInquiryHandler        gin.HandlerFunc
	ContactInquiryHandler      gin.HandlerFunc
	SendProposalHandler        gin.HandlerFunc
	ExportInquiriesHandler     gin.HandlerFunc

	// Settings endpoints.
	ListCategoriesHandler gin.HandlerFunc
	AddCategoryHandler    gin.HandlerFunc
	RemoveCategoryHandler gin.HandlerFunc

	// Statistics.
	GetStatsHandler gin.HandlerFunc
}
