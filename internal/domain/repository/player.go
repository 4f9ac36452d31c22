package repository

import (
	"context"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/entity"
)

// PlayerRepository defines the interface for player (device) data operations.
type PlayerRepository interface {
	// FindByID retrieves a player by its player ID.
	FindByID(ctx context.Context, playerID string) (*entity.Player, error)
	// FindByPushToken retrieves a player by its push token (used for upsert on registration).
	FindByPushToken(ctx context.Context, pushToken string) (*entity.Player, error)
	// FindByUserID retrieves all registered devices for a specific user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Player, error)
	// Create creates a new player registration.
	Create(ctx context.Context, player *entity.Player) error
	// Update updates an existing player registration.
	Update(ctx context.Context, player *entity.Player) error
	// Delete deletes a player registration by its player ID.
	Delete(ctx context.Context, playerID string) error
}
