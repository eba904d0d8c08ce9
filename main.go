// File: homely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homely/config"
	"homely/cron"
	"homely/database"
	availabilityRepo "homely/database/repository/availability"
	catalogRepo "homely/database/repository/catalog"
	"homely/handlers"
	"homely/middleware"
	"homely/routes"
	"homely/services/availability"
	"homely/services/pricing"
	"homely/services/quote"
	"homely/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()

	// services.
	pricingEngine := pricing.NewDefaultEngine()

	quoteService := &quote.DefaultQuoteService{
		Engine:      pricingEngine,
		CatalogRepo: catRepo,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Repo:  availRepo,
		Cache: utils.GetCacheClient(),
	}

	quoteHandler := handlers.NewQuoteHandler(quoteService, logger)
	catalogHandler := handlers.NewCatalogHandler(catRepo, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Quote endpoints.
		CreateQuote: quoteHandler.CreateQuote,

		// Catalog endpoints.
		ListServices:  catalogHandler.ListServices,
		GetService:    catalogHandler.GetService,
		CreateService: catalogHandler.CreateService,
		UpdateService: catalogHandler.UpdateService,
		DeleteService: catalogHandler.DeleteService,

		// Availability endpoints.
		GetCalendar: availabilityHandler.GetCalendar,
		GetSlots:    availabilityHandler.GetSlots,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background cache refresh: worker plus nightly scheduler.
	cron.InitRefreshWorker(availabilityService)
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()
	cron.ScheduleNightlyRefresh(taskClient, catRepo)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
