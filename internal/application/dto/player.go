package dto

import (
	"fmt"
	"time"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/constant"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/entity"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
)

// RegisterPlayerRequest is the DTO for registering a device for push
// notifications. Registration is an upsert keyed by push_token.
type RegisterPlayerRequest struct {
	UserID      string              `json:"user_id"`
	DeviceType  constant.DeviceType `json:"device_type"`
	PushToken   string              `json:"push_token"`
	DeviceModel *string             `json:"device_model,omitempty"`
	OSVersion   *string             `json:"os_version,omitempty"`
	AppVersion  *string             `json:"app_version,omitempty"`
}

// Validate checks the required registration fields.
func (r *RegisterPlayerRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("%w: user_id is required", appErrors.ErrInvalidPlayer)
	}
	if r.PushToken == "" {
		return fmt.Errorf("%w: push_token is required", appErrors.ErrInvalidPlayer)
	}
	if !r.DeviceType.Valid() {
		return fmt.Errorf("%w: unknown device_type %q", appErrors.ErrInvalidPlayer, r.DeviceType)
	}
	return nil
}

// UpdatePlayerRequest is the DTO for updating a registered device.
// Only the provided fields are changed.
type UpdatePlayerRequest struct {
	PushToken   *string                `json:"push_token,omitempty"`
	DeviceModel *string                `json:"device_model,omitempty"`
	OSVersion   *string                `json:"os_version,omitempty"`
	AppVersion  *string                `json:"app_version,omitempty"`
	Status      *constant.DeviceStatus `json:"status,omitempty"`
}

// PlayerResponse is the DTO for returning device registration details.
type PlayerResponse struct {
	PlayerID    string                `json:"player_id"`
	UserID      string                `json:"user_id"`
	DeviceType  constant.DeviceType   `json:"device_type"`
	PushToken   string                `json:"push_token"`
	DeviceModel *string               `json:"device_model,omitempty"`
	OSVersion   *string               `json:"os_version,omitempty"`
	AppVersion  *string               `json:"app_version,omitempty"`
	LastLoginAt time.Time             `json:"last_login_at"`
	Status      constant.DeviceStatus `json:"status"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// ToPlayerResponse converts an entity.Player to a PlayerResponse DTO.
func ToPlayerResponse(p *entity.Player) PlayerResponse {
	return PlayerResponse{
		PlayerID:    p.PlayerID,
		UserID:      p.UserID,
		DeviceType:  constant.DeviceType(p.DeviceType),
		PushToken:   p.PushToken,
		DeviceModel: p.DeviceModel,
		OSVersion:   p.OSVersion,
		AppVersion:  p.AppVersion,
		LastLoginAt: p.LastLoginAt,
		Status:      p.GetStatus(),
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPlayerResponseList converts a slice of entity.Player to PlayerResponse DTOs.
func ToPlayerResponseList(players []*entity.Player) []PlayerResponse {
	list := make([]PlayerResponse, len(players))
	for i, p := range players {
		list[i] = ToPlayerResponse(p)
	}
	return list
}
