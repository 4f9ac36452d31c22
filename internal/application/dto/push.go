package dto

import (
	"fmt"

	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
)

// DefaultPushPriority is used when a push request omits the priority.
const DefaultPushPriority = 10

// PushNotificationRequest is the DTO for sending a push notification.
// At least one targeting method (player_ids or segments) is required.
type PushNotificationRequest struct {
	PlayerIDs []string               `json:"player_ids,omitempty"`
	Segments  []string               `json:"segments,omitempty"`
	Headings  map[string]string      `json:"headings"`
	Contents  map[string]string      `json:"contents"`
	Data      map[string]interface{} `json:"data,omitempty"`
	URL       string                 `json:"url,omitempty"`
	SendAfter string                 `json:"send_after,omitempty"`
	Priority  *int                   `json:"priority,omitempty"`
}

// EffectivePriority returns the requested priority, defaulting to
// DefaultPushPriority when omitted.
func (r *PushNotificationRequest) EffectivePriority() int {
	if r.Priority == nil {
		return DefaultPushPriority
	}
	return *r.Priority
}

// Validate checks targeting and priority bounds. All errors wrap
// ErrInvalidPush.
func (r *PushNotificationRequest) Validate() error {
	if len(r.PlayerIDs) == 0 && len(r.Segments) == 0 {
		return fmt.Errorf("%w: either player_ids or segments must be provided", appErrors.ErrInvalidPush)
	}
	if r.Priority != nil && (*r.Priority < 0 || *r.Priority > 10) {
		return fmt.Errorf("%w: priority must be between 0 and 10", appErrors.ErrInvalidPush)
	}
	return nil
}

// PushNotificationResponse is the DTO for push notification operations.
type PushNotificationResponse struct {
	Success         bool   `json:"success"`
	NotificationID  string `json:"notification_id,omitempty"`
	RecipientsCount int    `json:"recipients_count"`
	Message         string `json:"message"`
	Error           string `json:"error,omitempty"`
}
