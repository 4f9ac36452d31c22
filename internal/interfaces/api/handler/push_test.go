package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/onesignal"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPushService struct {
	resp *dto.PushNotificationResponse
	err  error
}

func (s *stubPushService) Send(ctx context.Context, req dto.PushNotificationRequest) (*dto.PushNotificationResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newPushTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/push/send", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPushSendHandlerSuccess(t *testing.T) {
	h := NewPushHandler(&stubPushService{resp: &dto.PushNotificationResponse{
		Success:         true,
		NotificationID:  "n-1",
		RecipientsCount: 3,
		Message:         "Push notification sent successfully",
	}}, onesignal.Config{AppID: "app", RESTAPIKey: "key"}, logger.New())

	c, rec := newPushTestContext(t, `{"player_ids":["p1"],"contents":{"en":"hello"}}`)
	require.NoError(t, h.Send(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notification_id":"n-1"`)
}

func TestPushSendHandlerValidationError(t *testing.T) {
	h := NewPushHandler(&stubPushService{
		err: fmt.Errorf("%w: either player_ids or segments must be provided", appErrors.ErrInvalidPush),
	}, onesignal.Config{AppID: "app", RESTAPIKey: "key"}, logger.New())

	c, rec := newPushTestContext(t, `{"contents":{"en":"hello"}}`)
	require.NoError(t, h.Send(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushSendHandlerProviderError(t *testing.T) {
	h := NewPushHandler(&stubPushService{
		err: fmt.Errorf("%w: status 500", appErrors.ErrPushAPI),
	}, onesignal.Config{AppID: "app", RESTAPIKey: "key"}, logger.New())

	c, rec := newPushTestContext(t, `{"player_ids":["p1"],"contents":{"en":"hello"}}`)
	require.NoError(t, h.Send(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPushHealthHandlerDegraded(t *testing.T) {
	h := NewPushHandler(&stubPushService{}, onesignal.Config{}, logger.New())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/push/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
}
