package dto

import (
	"fmt"

	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/template"
)

// EmailRequest is the DTO for sending an email. Either a template
// reference (template_type + template_context) or direct content
// (subject + body) must be provided.
type EmailRequest struct {
	To []string `json:"to"`

	// Template-based email (preferred).
	TemplateType    template.Type          `json:"template_type,omitempty"`
	TemplateContext map[string]interface{} `json:"template_context,omitempty"`

	// Direct email content (alternative to template).
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`

	CC          []string `json:"cc,omitempty"`
	BCC         []string `json:"bcc,omitempty"`
	IsHTML      *bool    `json:"is_html,omitempty"`
	ReplyTo     string   `json:"reply_to,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// HTML reports whether the body should be sent as HTML. Defaults to
// true when the field is omitted.
func (r *EmailRequest) HTML() bool {
	if r.IsHTML == nil {
		return true
	}
	return *r.IsHTML
}

// Validate checks that recipients and either template or direct content
// are present. All errors wrap ErrInvalidEmail.
func (r *EmailRequest) Validate() error {
	if len(r.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", appErrors.ErrInvalidEmail)
	}
	if r.TemplateType != "" {
		if len(r.TemplateContext) == 0 {
			return fmt.Errorf("%w: template_context is required when template_type is provided", appErrors.ErrInvalidEmail)
		}
		return nil
	}
	if r.Subject == "" || r.Body == "" {
		return fmt.Errorf("%w: subject and body are required when template_type is not provided", appErrors.ErrInvalidEmail)
	}
	return nil
}

// EmailResponse is the DTO for email sending operations.
type EmailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}
