package router

import (
	"fmt"
	"net/http"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/interfaces/api/handler"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	EmailHandler  *handler.EmailHandler
	PushHandler   *handler.PushHandler
	PlayerHandler *handler.PlayerHandler
	Logger        logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"service": "communication",
			"status":  "running",
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
	})

	// Email sending and scheduling
	email := e.Group("/api/email")
	email.POST("/send", cfg.EmailHandler.Send)
	email.POST("/schedule", cfg.EmailHandler.Schedule)
	email.GET("/schedule", cfg.EmailHandler.ListSchedules)
	email.GET("/schedule/:id", cfg.EmailHandler.GetSchedule)
	email.DELETE("/schedule/:id", cfg.EmailHandler.CancelSchedule)
	email.GET("/health", cfg.EmailHandler.Health)

	// Push notifications
	push := e.Group("/api/push")
	push.POST("/send", cfg.PushHandler.Send)
	push.GET("/health", cfg.PushHandler.Health)

	// Device registration
	players := e.Group("/players")
	players.POST("/register", cfg.PlayerHandler.Register)
	players.GET("/user/:user_id", cfg.PlayerHandler.ListByUser)
	players.GET("/:id", cfg.PlayerHandler.Get)
	players.PUT("/:id", cfg.PlayerHandler.Update)
	players.DELETE("/:id", cfg.PlayerHandler.Delete)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
