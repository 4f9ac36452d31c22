package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	// Application Layer
	appService "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/service"

	// Infrastructure Layer
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/database/sqlite"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/onesignal"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/scheduler"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/zoho"

	// Interfaces Layer
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/interfaces/api/handler"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/interfaces/api/router"

	// Packages
	appLogger "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"gorm.io/gorm"
)

func gracefulShutdown(apiServer *http.Server, schedulerService appService.SchedulerService, db *gorm.DB, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first so no deliveries fire during teardown
	log.Println("Stopping scheduler...")
	schedulerService.Stop()
	log.Println("Scheduler stopped.")

	// Close database connection
	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(db); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// Shutdown HTTP server
	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	// Load Environment Variables (using autoload)
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // Default port
		appLog.Warn("PORT environment variable not set, defaulting to 8080")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		appLog.Error("Invalid PORT environment variable", err)
		os.Exit(1)
	}
	// Other env vars (DB_URL, provider credentials) are loaded by their
	// respective modules

	// --- Infrastructure ---
	db := sqlite.NewDB()
	playerRepo := sqlite.NewPlayerRepository(db)
	appLog.Info("Database and repositories initialized.")

	mailConfig := zoho.ConfigFromEnv()
	if err := mailConfig.Validate(); err != nil {
		appLog.Warn(fmt.Sprintf("Zoho Mail not fully configured, email sending will fail: %v", err))
	}
	mailClient := zoho.NewClient(mailConfig, appLog)

	pushConfig := onesignal.ConfigFromEnv()
	if err := pushConfig.Validate(); err != nil {
		appLog.Warn(fmt.Sprintf("OneSignal not fully configured, push sending will fail: %v", err))
	}
	pushClient := onesignal.NewClient(pushConfig, appLog)

	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Application Services ---
	emailSvc := appService.NewEmailService(mailClient, appLog)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, emailSvc, appLog)
	pushSvc := appService.NewPushService(pushClient, appLog)
	playerSvc := appService.NewPlayerService(playerRepo, appLog)
	appLog.Info("Application services initialized.")

	// --- API Handlers ---
	emailHandler := handler.NewEmailHandler(emailSvc, schedulerSvc, mailConfig, appLog)
	pushHandler := handler.NewPushHandler(pushSvc, pushConfig, appLog)
	playerHandler := handler.NewPlayerHandler(playerSvc, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		EmailHandler:  emailHandler,
		PushHandler:   pushHandler,
		PlayerHandler: playerHandler,
		Logger:        appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, db, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
