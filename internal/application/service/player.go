package service

import (
	"context"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
)

// PlayerService defines the interface for device registration operations.
type PlayerService interface {
	// Register registers a device for push notifications. A device with
	// an already-known push token is updated in place instead of being
	// duplicated.
	Register(ctx context.Context, req dto.RegisterPlayerRequest) (*dto.PlayerResponse, error)
	// Get retrieves a registered device by its player ID.
	Get(ctx context.Context, playerID string) (*dto.PlayerResponse, error)
	// ListByUser retrieves all registered devices for a user.
	ListByUser(ctx context.Context, userID string) ([]dto.PlayerResponse, error)
	// Update applies a partial update to a registered device.
	Update(ctx context.Context, playerID string, req dto.UpdatePlayerRequest) (*dto.PlayerResponse, error)
	// Delete removes a device registration.
	Delete(ctx context.Context, playerID string) error
}
