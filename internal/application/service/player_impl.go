package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/constant"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/entity"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/repository"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/google/uuid"
)

type playerService struct {
	playerRepo repository.PlayerRepository
	log        logger.Logger
}

// NewPlayerService creates a new instance of PlayerService implementation.
func NewPlayerService(playerRepo repository.PlayerRepository, log logger.Logger) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		log:        log,
	}
}

// Register registers a device, upserting on push token.
func (s *playerService) Register(ctx context.Context, req dto.RegisterPlayerRequest) (*dto.PlayerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	existing, err := s.playerRepo.FindByPushToken(ctx, req.PushToken)
	switch {
	case err == nil:
		existing.UserID = req.UserID
		existing.DeviceType = string(req.DeviceType)
		existing.DeviceModel = req.DeviceModel
		existing.OSVersion = req.OSVersion
		existing.AppVersion = req.AppVersion
		existing.LastLoginAt = now
		existing.SetStatus(constant.DeviceActive)
		existing.UpdatedAt = now
		if err := s.playerRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		s.log.Info(fmt.Sprintf("Updated existing player %s for user %s", existing.PlayerID, req.UserID))
		resp := dto.ToPlayerResponse(existing)
		return &resp, nil

	case errors.Is(err, appErrors.ErrPlayerNotFound):
		player := &entity.Player{
			PlayerID:    uuid.NewString(),
			UserID:      req.UserID,
			DeviceType:  string(req.DeviceType),
			PushToken:   req.PushToken,
			DeviceModel: req.DeviceModel,
			OSVersion:   req.OSVersion,
			AppVersion:  req.AppVersion,
			LastLoginAt: now,
			Status:      string(constant.DeviceActive),
			UpdatedAt:   now,
		}
		if err := s.playerRepo.Create(ctx, player); err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		s.log.Info(fmt.Sprintf("Registered new player %s for user %s", player.PlayerID, req.UserID))
		resp := dto.ToPlayerResponse(player)
		return &resp, nil

	default:
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
}

// Get retrieves a registered device by its player ID.
func (s *playerService) Get(ctx context.Context, playerID string) (*dto.PlayerResponse, error) {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToPlayerResponse(player)
	return &resp, nil
}

// ListByUser retrieves all registered devices for a user.
func (s *playerService) ListByUser(ctx context.Context, userID string) ([]dto.PlayerResponse, error) {
	players, err := s.playerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToPlayerResponseList(players), nil
}

// Update applies a partial update to a registered device.
func (s *playerService) Update(ctx context.Context, playerID string, req dto.UpdatePlayerRequest) (*dto.PlayerResponse, error) {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if req.PushToken != nil {
		player.PushToken = *req.PushToken
	}
	if req.DeviceModel != nil {
		player.DeviceModel = req.DeviceModel
	}
	if req.OSVersion != nil {
		player.OSVersion = req.OSVersion
	}
	if req.AppVersion != nil {
		player.AppVersion = req.AppVersion
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", appErrors.ErrInvalidPlayer, *req.Status)
		}
		player.SetStatus(*req.Status)
		// A device coming back to active counts as a fresh login.
		if *req.Status == constant.DeviceActive {
			player.LastLoginAt = time.Now()
		}
	}
	player.UpdatedAt = time.Now()

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToPlayerResponse(player)
	return &resp, nil
}

// Delete removes a device registration.
func (s *playerService) Delete(ctx context.Context, playerID string) error {
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return err
	}
	s.log.Info(fmt.Sprintf("Deleted player %s", playerID))
	return nil
}
