package service

import (
	"context"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/onesignal"
)

// PushSender is the narrow slice of the OneSignal client used by the
// push service.
type PushSender interface {
	Send(ctx context.Context, n onesignal.Notification) (*onesignal.Result, error)
}

// PushService defines the interface for push notification operations.
type PushService interface {
	// Send delivers a push notification to the targeted players or
	// segments.
	Send(ctx context.Context, req dto.PushNotificationRequest) (*dto.PushNotificationResponse, error)
}
