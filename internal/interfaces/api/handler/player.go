package handler

import (
	"errors"
	"net/http"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/service"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PlayerHandler handles device registration requests.
type PlayerHandler struct {
	playerService service.PlayerService
	log           logger.Logger
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(playerService service.PlayerService, log logger.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		log:           log,
	}
}

// Register handles POST /players/register.
func (h *PlayerHandler) Register(c echo.Context) error {
	var req dto.RegisterPlayerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	resp, err := h.playerService.Register(c.Request().Context(), req)
	if err != nil {
		return c.JSON(playerErrorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get handles GET /players/:id.
func (h *PlayerHandler) Get(c echo.Context) error {
	resp, err := h.playerService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(playerErrorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByUser handles GET /players/user/:user_id.
func (h *PlayerHandler) ListByUser(c echo.Context) error {
	players, err := h.playerService.ListByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(playerErrorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"players": players,
		"count":   len(players),
	})
}

// Update handles PUT /players/:id.
func (h *PlayerHandler) Update(c echo.Context) error {
	var req dto.UpdatePlayerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	resp, err := h.playerService.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return c.JSON(playerErrorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /players/:id.
func (h *PlayerHandler) Delete(c echo.Context) error {
	if err := h.playerService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(playerErrorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Player deleted successfully"})
}

// playerErrorStatus maps player service errors to HTTP status codes.
func playerErrorStatus(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrInvalidPlayer):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrPlayerNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
