package service

import (
	"context"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/onesignal"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"
)

type pushService struct {
	push PushSender
	log  logger.Logger
}

// NewPushService creates a new instance of PushService implementation.
func NewPushService(push PushSender, log logger.Logger) PushService {
	return &pushService{
		push: push,
		log:  log,
	}
}

// Send delivers a push notification via the OneSignal API.
func (s *pushService) Send(ctx context.Context, req dto.PushNotificationRequest) (*dto.PushNotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.push.Send(ctx, onesignal.Notification{
		PlayerIDs: req.PlayerIDs,
		Segments:  req.Segments,
		Headings:  req.Headings,
		Contents:  req.Contents,
		Data:      req.Data,
		URL:       req.URL,
		SendAfter: req.SendAfter,
		Priority:  req.EffectivePriority(),
	})
	if err != nil {
		s.log.Error("Failed to send push notification", err)
		return nil, err
	}

	message := "Push notification sent successfully"
	if result.RecipientsCount == 0 {
		message += " (but no recipients were found - player_ids may not exist in OneSignal)"
	}

	return &dto.PushNotificationResponse{
		Success:         true,
		NotificationID:  result.NotificationID,
		RecipientsCount: result.RecipientsCount,
		Message:         message,
	}, nil
}
