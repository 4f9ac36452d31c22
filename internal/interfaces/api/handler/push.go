package handler

import (
	"errors"
	"net/http"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/service"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/onesignal"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PushHandler handles push notification requests.
type PushHandler struct {
	pushService service.PushService
	pushConfig  onesignal.Config
	log         logger.Logger
}

// NewPushHandler creates a new PushHandler.
func NewPushHandler(pushService service.PushService, pushConfig onesignal.Config, log logger.Logger) *PushHandler {
	return &PushHandler{
		pushService: pushService,
		pushConfig:  pushConfig,
		log:         log,
	}
}

// Send handles POST /api/push/send.
func (h *PushHandler) Send(c echo.Context) error {
	var req dto.PushNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.PushNotificationResponse{
			Message: "Failed to send push notification",
			Error:   "invalid request body",
		})
	}

	resp, err := h.pushService.Send(c.Request().Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, appErrors.ErrInvalidPush):
			status = http.StatusBadRequest
		case errors.Is(err, appErrors.ErrPushAPI):
			status = http.StatusBadGateway
		}
		return c.JSON(status, dto.PushNotificationResponse{
			Message: "Failed to send push notification",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Health handles GET /api/push/health.
func (h *PushHandler) Health(c echo.Context) error {
	configured := h.pushConfig.Validate() == nil
	status := "healthy"
	if !configured {
		status = "degraded"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"service":    "push",
		"status":     status,
		"configured": configured,
	})
}
