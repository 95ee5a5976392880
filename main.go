// File: easyappointment/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easyappointment/config"
	"easyappointment/cron"
	"easyappointment/database"
	bookingRepo "easyappointment/database/repository/booking"
	branchRepo "easyappointment/database/repository/branch"
	providerRepo "easyappointment/database/repository/provider"
	slotRepo "easyappointment/database/repository/slot"
	"easyappointment/handlers"
	"easyappointment/middleware"
	"easyappointment/routes"
	"easyappointment/services/booking"
	"easyappointment/services/branch"
	"easyappointment/services/provider"
	"easyappointment/services/schedule"
	"easyappointment/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	brRepo := branchRepo.NewMongoBranchRepo()
	slRepo := slotRepo.NewMongoSlotRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Providers:     provRepo,
		Branches:      brRepo,
		Slots:         slRepo,
		Cache:         utils.GetCacheClient(),
		HorizonMonths: config.AppConfig.ScheduleHorizonMonths,
	}

	enqueuer := cron.NewScheduleEnqueuer()
	defer enqueuer.Close()
	cron.InitScheduleWorker(scheduleService)

	providerService := &provider.DefaultProviderService{
		Repo:     provRepo,
		Branches: brRepo,
		Slots:    slRepo,
		Dispatch: enqueuer,
	}

	branchService := &branch.DefaultBranchService{
		Repo: brRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Slots:    slRepo,
		Bookings: bkRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Branch:   handlers.NewBranchHandler(branchService),
		Provider: handlers.NewProviderHandler(providerService),
		Slot:     handlers.NewSlotHandler(scheduleService),
		Booking:  handlers.NewBookingHandler(bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
