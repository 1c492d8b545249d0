// File: bireenamedico/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vikash1kr1209/bireenamedico/config"
	"github.com/vikash1kr1209/bireenamedico/database"
	"github.com/vikash1kr1209/bireenamedico/handlers"
	"github.com/vikash1kr1209/bireenamedico/middleware"
	"github.com/vikash1kr1209/bireenamedico/routes"
	"github.com/vikash1kr1209/bireenamedico/services/catalog"
	"github.com/vikash1kr1209/bireenamedico/services/category"
	"github.com/vikash1kr1209/bireenamedico/services/inquiry"
	"github.com/vikash1kr1209/bireenamedico/services/notification"
	"github.com/vikash1kr1209/bireenamedico/services/stats"
	"github.com/vikash1kr1209/bireenamedico/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The store is the single boundary to durable storage; every service
	// routes through it.
	store := database.NewStore(database.BoltDB)

	// services.
	catalogService := &catalog.DefaultServiceCatalog{
		Store: store,
	}
	ledgerService := &inquiry.DefaultInquiryLedger{
		Store: store,
	}
	registryService := &category.DefaultCategoryRegistry{
		Store: store,
	}
	statsService := &stats.DefaultStatsAggregator{
		Catalog: catalogService,
		Ledger:  ledgerService,
	}
	notificationService := &notification.DefaultNotificationService{
		Ledger: ledgerService,
		Logger: logger,
	}

	serviceHandler := handlers.NewServiceHandler(catalogService)
	inquiryHandler := handlers.NewInquiryHandler(ledgerService, notificationService)
	intakeHandler := handlers.NewIntakeHandler(ledgerService)
	categoryHandler := handlers.NewCategoryHandler(registryService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public endpoints.
		PublicServicesHandler: serviceHandler.PublicServicesHandler,
		SubmitInquiryHandler:  intakeHandler.SubmitInquiryHandler,

		// Admin service catalog endpoints.
		ListServicesHandler:  serviceHandler.ListServicesHandler,
		CreateServiceHandler: serviceHandler.CreateServiceHandler,
		UpdateServiceHandler: serviceHandler.UpdateServiceHandler,
		DeleteServiceHandler: serviceHandler.DeleteServiceHandler,

		// Inquiry dashboard endpoints.
		ListInquiriesHandler:       inquiryHandler.ListInquiriesHandler,
		UpdateInquiryStatusHandler: inquiryHandler.UpdateInquiryStatusHandler,
		ReplyInquiryHandler:        inquiryHandler.ReplyInquiryHandler,
		ContactInquiryHandler:      inquiryHandler.ContactInquiryHandler,
		SendProposalHandler:        inquiryHandler.SendProposalHandler,
		ExportInquiriesHandler:     inquiryHandler.ExportInquiriesHandler,

		// Settings endpoints.
		ListCategoriesHandler: categoryHandler.ListCategoriesHandler,
		AddCategoryHandler:    categoryHandler.AddCategoryHandler,
		RemoveCategoryHandler: categoryHandler.RemoveCategoryHandler,

		// Statistics.
		GetStatsHandler: statsHandler.GetStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
