package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/zoho"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailSender struct {
	sent []zoho.Message
	err  error
}

func (f *fakeMailSender) Send(ctx context.Context, msg zoho.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg-42", nil
}

func TestEmailSendDirectContent(t *testing.T) {
	mail := &fakeMailSender{}
	svc := NewEmailService(mail, logger.New())

	resp, err := svc.Send(context.Background(), dto.EmailRequest{
		To:      []string{"a@example.com"},
		CC:      []string{"c@example.com"},
		Subject: "hello",
		Body:    "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "msg-42", resp.MessageID)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "hello", mail.sent[0].Subject)
	assert.True(t, mail.sent[0].HTML, "is_html defaults to true")
}

func TestEmailSendPlainText(t *testing.T) {
	mail := &fakeMailSender{}
	svc := NewEmailService(mail, logger.New())

	isHTML := false
	_, err := svc.Send(context.Background(), dto.EmailRequest{
		To:      []string{"a@example.com"},
		Subject: "hello",
		Body:    "hi",
		IsHTML:  &isHTML,
	})
	require.NoError(t, err)
	assert.False(t, mail.sent[0].HTML)
}

func TestEmailSendTemplate(t *testing.T) {
	mail := &fakeMailSender{}
	svc := NewEmailService(mail, logger.New())

	_, err := svc.Send(context.Background(), dto.EmailRequest{
		To:              []string{"a@example.com"},
		TemplateType:    template.TypeWelcome,
		TemplateContext: map[string]interface{}{"user_name": "John Doe"},
	})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Welcome!", mail.sent[0].Subject)
	assert.Contains(t, mail.sent[0].Content, "John Doe")
	assert.True(t, mail.sent[0].HTML, "templates are always HTML")
}

func TestEmailSendTemplateSubjectOverride(t *testing.T) {
	mail := &fakeMailSender{}
	svc := NewEmailService(mail, logger.New())

	_, err := svc.Send(context.Background(), dto.EmailRequest{
		To:              []string{"a@example.com"},
		Subject:         "Custom subject",
		TemplateType:    template.TypeWelcome,
		TemplateContext: map[string]interface{}{"user_name": "John"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Custom subject", mail.sent[0].Subject)
}

func TestEmailSendValidation(t *testing.T) {
	mail := &fakeMailSender{}
	svc := NewEmailService(mail, logger.New())

	tests := []struct {
		name string
		req  dto.EmailRequest
	}{
		{name: "no recipients", req: dto.EmailRequest{Subject: "s", Body: "b"}},
		{name: "no content", req: dto.EmailRequest{To: []string{"a@example.com"}}},
		{name: "template without context", req: dto.EmailRequest{To: []string{"a@example.com"}, TemplateType: template.TypeWelcome}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, appErrors.ErrInvalidEmail))
		})
	}
	assert.Empty(t, mail.sent)
}

func TestEmailSendProviderError(t *testing.T) {
	mail := &fakeMailSender{err: errors.New("boom")}
	svc := NewEmailService(mail, logger.New())

	_, err := svc.Send(context.Background(), dto.EmailRequest{
		To:      []string{"a@example.com"},
		Subject: "s",
		Body:    "b",
	})
	require.Error(t, err)
}
