package service

import (
	"context"
	"fmt"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/zoho"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/template"
)

type emailService struct {
	mail MailSender
	log  logger.Logger
}

// NewEmailService creates a new instance of EmailService implementation.
func NewEmailService(mail MailSender, log logger.Logger) EmailService {
	return &emailService{
		mail: mail,
		log:  log,
	}
}

// Send delivers an email via the Zoho Mail API.
func (s *emailService) Send(ctx context.Context, req dto.EmailRequest) (*dto.EmailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	subject := req.Subject
	body := req.Body
	isHTML := req.HTML()

	if req.TemplateType != "" {
		renderedSubject, renderedBody, err := template.Render(req.TemplateType, req.TemplateContext)
		if err != nil {
			return nil, err
		}
		if subject == "" {
			subject = renderedSubject
		}
		body = renderedBody
		isHTML = true // Templates are always HTML
	}

	messageID, err := s.mail.Send(ctx, zoho.Message{
		To:      req.To,
		CC:      req.CC,
		BCC:     req.BCC,
		Subject: subject,
		Content: body,
		HTML:    isHTML,
		ReplyTo: req.ReplyTo,
	})
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to send email to %v", req.To), err)
		return nil, err
	}

	return &dto.EmailResponse{
		Success:   true,
		MessageID: messageID,
		Message:   "Email sent successfully",
	}, nil
}
