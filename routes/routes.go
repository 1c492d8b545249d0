package routes

import (
	"net/http"
	"time"

	"github.com/vikash1kr1209/bireenamedico/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the services-page endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.PublicServicesHandler)
		api.POST("/inquiries", hb.SubmitInquiryHandler)
	}
}

// RegisterAdminRoutes registers the admin panel and inquiry dashboard endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.GET("/services", hb.ListServicesHandler)
		admin.POST("/services", hb.CreateServiceHandler)
		admin.PUT("/services/:id", hb.UpdateServiceHandler)
		admin.DELETE("/services/:id", hb.DeleteServiceHandler)

		admin.GET("/inquiries", hb.ListInquiriesHandler)
		admin.GET("/inquiries/export", hb.ExportInquiriesHandler)
		admin.PUT("/inquiries/:id/status", hb.UpdateInquiryStatusHandler)
		admin.POST("/inquiries/:id/reply", hb.ReplyInquiryHandler)
		admin.POST("/inquiries/:id/contact", hb.ContactInquiryHandler)
		admin.POST("/inquiries/:id/proposal", hb.SendProposalHandler)

		admin.GET("/categories", hb.ListCategoriesHandler)
		admin.POST("/categories", hb.AddCategoryHandler)
		admin.DELETE("/categories/:name", hb.RemoveCategoryHandler)

		admin.GET("/stats", hb.GetStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Bireena Medico"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
