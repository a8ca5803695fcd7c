package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportcenter/internal/booking"
	"sportcenter/internal/config"
	"sportcenter/internal/customer"
	"sportcenter/internal/logger"
	"sportcenter/internal/server"
)

// @title Sports Center Booking API
// @version 1.0
// @description In-memory booking registry for a small sports facility:
// @description six sports, six two-hour slots per day, three customers per slot.
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	logger.Info("Starting sports center booking service")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	customers := customer.NewRepository()
	bookings := booking.NewRepository()

	customerService := customer.NewService(customers)
	bookingService := booking.NewService(bookings, customers)

	srv, err := server.New(cfg, customerService, bookingService)
	if err != nil {
		logger.Fatalf("Failed to build server: %v", err)
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
