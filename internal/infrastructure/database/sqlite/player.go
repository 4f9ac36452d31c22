package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/entity"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/repository"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"

	"gorm.io/gorm"
)

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

// FindByID retrieves a player by its player ID.
func (r *playerRepository) FindByID(ctx context.Context, playerID string) (*entity.Player, error) {
	var player entity.Player
	if err := r.db.WithContext(ctx).Where("player_id = ?", playerID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: player %s", appErrors.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to find player by id %s: %w", playerID, err)
	}
	return &player, nil
}

// FindByPushToken retrieves a player by its push token.
func (r *playerRepository) FindByPushToken(ctx context.Context, pushToken string) (*entity.Player, error) {
	var player entity.Player
	if err := r.db.WithContext(ctx).Where("push_token = ?", pushToken).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: push token not registered", appErrors.ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("failed to find player by push token: %w", err)
	}
	return &player, nil
}

// FindByUserID retrieves all registered devices for a specific user.
func (r *playerRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Player, error) {
	var players []*entity.Player
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("last_login_at desc").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to find players by user_id %s: %w", userID, err)
	}
	return players, nil
}

// Create creates a new player registration.
func (r *playerRepository) Create(ctx context.Context, player *entity.Player) error {
	if err := r.db.WithContext(ctx).Create(player).Error; err != nil {
		return fmt.Errorf("failed to create player for user %s: %w", player.UserID, err)
	}
	return nil
}

// Update updates an existing player registration.
func (r *playerRepository) Update(ctx context.Context, player *entity.Player) error {
	if err := r.db.WithContext(ctx).Save(player).Error; err != nil {
		return fmt.Errorf("failed to update player %s: %w", player.PlayerID, err)
	}
	return nil
}

// Delete deletes a player registration by its player ID.
func (r *playerRepository) Delete(ctx context.Context, playerID string) error {
	result := r.db.WithContext(ctx).Where("player_id = ?", playerID).Delete(&entity.Player{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete player %s: %w", playerID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: player %s", appErrors.ErrPlayerNotFound, playerID)
	}
	return nil
}
