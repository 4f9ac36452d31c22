package entity

import (
	"time"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/constant"
)

// Player represents a registered device that can receive push
// notifications via OneSignal.
type Player struct {
	PlayerID    string    `gorm:"column:player_id;primaryKey;size:36"`
	UserID      string    `gorm:"column:user_id;size:36;index"`
	DeviceType  string    `gorm:"column:device_type"`
	PushToken   string    `gorm:"column:push_token;type:text"`
	DeviceModel *string   `gorm:"column:device_model;type:text"`
	OSVersion   *string   `gorm:"column:os_version;type:text"`
	AppVersion  *string   `gorm:"column:app_version;type:text"`
	LastLoginAt time.Time `gorm:"column:last_login_at"`
	Status      string    `gorm:"column:status"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for the Player entity.
func (Player) TableName() string {
	return "players"
}

// GetStatus returns the device status as a DeviceStatus type.
func (p *Player) GetStatus() constant.DeviceStatus {
	return constant.DeviceStatus(p.Status)
}

// SetStatus sets the device status.
func (p *Player) SetStatus(status constant.DeviceStatus) {
	p.Status = string(status)
}
