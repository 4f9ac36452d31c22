package service

import (
	"context"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/zoho"
)

// MailSender is the narrow slice of the Zoho client used by the email
// service.
type MailSender interface {
	Send(ctx context.Context, msg zoho.Message) (string, error)
}

// EmailService defines the interface for email sending operations.
type EmailService interface {
	// Send delivers an email immediately, rendering a template when the
	// request references one.
	Send(ctx context.Context, req dto.EmailRequest) (*dto.EmailResponse, error)
}
