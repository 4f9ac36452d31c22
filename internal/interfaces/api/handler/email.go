package handler

import (
	"errors"
	"net/http"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/service"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/zoho"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// EmailHandler handles email sending and scheduling requests.
type EmailHandler struct {
	emailService     service.EmailService
	schedulerService service.SchedulerService
	mailConfig       zoho.Config
	log              logger.Logger
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(
	emailService service.EmailService,
	schedulerService service.SchedulerService,
	mailConfig zoho.Config,
	log logger.Logger,
) *EmailHandler {
	return &EmailHandler{
		emailService:     emailService,
		schedulerService: schedulerService,
		mailConfig:       mailConfig,
		log:              log,
	}
}

// Send handles POST /api/email/send.
func (h *EmailHandler) Send(c echo.Context) error {
	var req dto.EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.EmailResponse{
			Message: "Failed to send email",
			Error:   "invalid request body",
		})
	}

	resp, err := h.emailService.Send(c.Request().Context(), req)
	if err != nil {
		return c.JSON(emailErrorStatus(err), dto.EmailResponse{
			Message: "Failed to send email",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Schedule handles POST /api/email/schedule.
func (h *EmailHandler) Schedule(c echo.Context) error {
	var req dto.ScheduledEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ScheduleResponse{
			Message: "Failed to schedule email",
			Error:   "invalid request body",
		})
	}

	resp, err := h.schedulerService.ScheduleEmail(c.Request().Context(), req.Email, req.Schedule)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, appErrors.ErrInvalidSchedule) || errors.Is(err, appErrors.ErrInvalidEmail) {
			status = http.StatusBadRequest
		}
		return c.JSON(status, dto.ScheduleResponse{
			Message: "Failed to schedule email",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// CancelSchedule handles DELETE /api/email/schedule/:id.
func (h *EmailHandler) CancelSchedule(c echo.Context) error {
	scheduleID := c.Param("id")

	resp, err := h.schedulerService.CancelSchedule(c.Request().Context(), scheduleID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, appErrors.ErrScheduleNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, dto.ScheduleResponse{
			Message: "Failed to cancel schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetSchedule handles GET /api/email/schedule/:id.
func (h *EmailHandler) GetSchedule(c echo.Context) error {
	scheduleID := c.Param("id")

	info, err := h.schedulerService.GetSchedule(c.Request().Context(), scheduleID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, appErrors.ErrScheduleNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, dto.ScheduleResponse{
			Message: "Failed to get schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, info)
}

// ListSchedules handles GET /api/email/schedule.
func (h *EmailHandler) ListSchedules(c echo.Context) error {
	schedules := h.schedulerService.ListSchedules(c.Request().Context())
	return c.JSON(http.StatusOK, dto.ScheduleListResponse{
		Schedules: schedules,
		Count:     len(schedules),
	})
}

// Health handles GET /api/email/health.
func (h *EmailHandler) Health(c echo.Context) error {
	configured := h.mailConfig.Validate() == nil
	status := "healthy"
	if !configured {
		status = "degraded"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"service":    "email",
		"status":     status,
		"configured": configured,
	})
}

// emailErrorStatus maps email service errors to HTTP status codes.
func emailErrorStatus(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrInvalidEmail), errors.Is(err, appErrors.ErrTemplate):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrEmailAPI):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
