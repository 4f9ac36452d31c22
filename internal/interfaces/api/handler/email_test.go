package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/constant"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/infrastructure/zoho"
	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmailService struct {
	resp *dto.EmailResponse
	err  error
}

func (s *stubEmailService) Send(ctx context.Context, req dto.EmailRequest) (*dto.EmailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type stubSchedulerService struct {
	schedules map[string]dto.ScheduleInfo
	scheduled *dto.ScheduleResponse
	err       error
}

func (s *stubSchedulerService) ScheduleEmail(ctx context.Context, email dto.EmailRequest, schedule dto.ScheduleRequest) (*dto.ScheduleResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.scheduled, nil
}

func (s *stubSchedulerService) CancelSchedule(ctx context.Context, scheduleID string) (*dto.ScheduleResponse, error) {
	if _, ok := s.schedules[scheduleID]; !ok {
		return nil, fmt.Errorf("%w: %s", appErrors.ErrScheduleNotFound, scheduleID)
	}
	delete(s.schedules, scheduleID)
	return &dto.ScheduleResponse{Success: true, ScheduleID: scheduleID, Message: "Schedule cancelled"}, nil
}

func (s *stubSchedulerService) GetSchedule(ctx context.Context, scheduleID string) (*dto.ScheduleInfo, error) {
	info, ok := s.schedules[scheduleID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", appErrors.ErrScheduleNotFound, scheduleID)
	}
	return &info, nil
}

func (s *stubSchedulerService) ListSchedules(ctx context.Context) []dto.ScheduleInfo {
	list := make([]dto.ScheduleInfo, 0, len(s.schedules))
	for _, info := range s.schedules {
		list = append(list, info)
	}
	return list
}

func (s *stubSchedulerService) Stop() {}

func testMailConfig() zoho.Config {
	return zoho.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RefreshToken: "refresh",
		AccountID:    "account",
		FromEmail:    "noreply@example.com",
	}
}

func newEmailTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestEmailSendHandlerSuccess(t *testing.T) {
	h := NewEmailHandler(
		&stubEmailService{resp: &dto.EmailResponse{Success: true, MessageID: "m-1", Message: "Email sent successfully"}},
		&stubSchedulerService{},
		testMailConfig(),
		logger.New(),
	)

	c, rec := newEmailTestContext(t, http.MethodPost, "/api/email/send",
		`{"to":["a@example.com"],"subject":"s","body":"b"}`)
	require.NoError(t, h.Send(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message_id":"m-1"`)
}

func TestEmailSendHandlerValidationError(t *testing.T) {
	h := NewEmailHandler(
		&stubEmailService{err: fmt.Errorf("%w: at least one recipient is required", appErrors.ErrInvalidEmail)},
		&stubSchedulerService{},
		testMailConfig(),
		logger.New(),
	)

	c, rec := newEmailTestContext(t, http.MethodPost, "/api/email/send", `{"subject":"s","body":"b"}`)
	require.NoError(t, h.Send(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmailSendHandlerProviderError(t *testing.T) {
	h := NewEmailHandler(
		&stubEmailService{err: fmt.Errorf("%w: status 500", appErrors.ErrEmailAPI)},
		&stubSchedulerService{},
		testMailConfig(),
		logger.New(),
	)

	c, rec := newEmailTestContext(t, http.MethodPost, "/api/email/send",
		`{"to":["a@example.com"],"subject":"s","body":"b"}`)
	require.NoError(t, h.Send(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestScheduleHandlerSuccess(t *testing.T) {
	at := time.Date(2030, 1, 2, 15, 4, 0, 0, time.UTC)
	h := NewEmailHandler(
		&stubEmailService{},
		&stubSchedulerService{scheduled: &dto.ScheduleResponse{
			Success:      true,
			ScheduleID:   "sched-1",
			ScheduledFor: &at,
			Message:      "Email scheduled",
		}},
		testMailConfig(),
		logger.New(),
	)

	c, rec := newEmailTestContext(t, http.MethodPost, "/api/email/schedule",
		`{"email":{"to":["a@example.com"],"subject":"s","body":"b"},"schedule":{"schedule_type":"once","send_at":"2030-01-02T15:04:00Z"}}`)
	require.NoError(t, h.Schedule(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"schedule_id":"sched-1"`)
}

func TestScheduleHandlerInvalidSchedule(t *testing.T) {
	h := NewEmailHandler(
		&stubEmailService{},
		&stubSchedulerService{err: fmt.Errorf("%w: send_at is required for 'once' schedule type", appErrors.ErrInvalidSchedule)},
		testMailConfig(),
		logger.New(),
	)

	c, rec := newEmailTestContext(t, http.MethodPost, "/api/email/schedule",
		`{"email":{"to":["a@example.com"],"subject":"s","body":"b"},"schedule":{"schedule_type":"once"}}`)
	require.NoError(t, h.Schedule(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelScheduleHandlerNotFound(t *testing.T) {
	h := NewEmailHandler(
		&stubEmailService{},
		&stubSchedulerService{schedules: map[string]dto.ScheduleInfo{}},
		testMailConfig(),
		logger.New(),
	)

	c, rec := newEmailTestContext(t, http.MethodDelete, "/api/email/schedule/unknown", "")
	c.SetParamNames("id")
	c.SetParamValues("unknown")
	require.NoError(t, h.CancelSchedule(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetScheduleHandler(t *testing.T) {
	h := NewEmailHandler(
		&stubEmailService{},
		&stubSchedulerService{schedules: map[string]dto.ScheduleInfo{
			"sched-1": {
				ScheduleID:   "sched-1",
				ScheduleType: constant.ScheduleDaily,
				ScheduledFor: time.Date(2030, 1, 2, 9, 0, 0, 0, time.UTC),
			},
		}},
		testMailConfig(),
		logger.New(),
	)

	c, rec := newEmailTestContext(t, http.MethodGet, "/api/email/schedule/sched-1", "")
	c.SetParamNames("id")
	c.SetParamValues("sched-1")
	require.NoError(t, h.GetSchedule(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"schedule_type":"daily"`)
}

func TestListSchedulesHandler(t *testing.T) {
	h := NewEmailHandler(
		&stubEmailService{},
		&stubSchedulerService{schedules: map[string]dto.ScheduleInfo{
			"sched-1": {ScheduleID: "sched-1", ScheduleType: constant.ScheduleOnce},
		}},
		testMailConfig(),
		logger.New(),
	)

	c, rec := newEmailTestContext(t, http.MethodGet, "/api/email/schedule", "")
	require.NoError(t, h.ListSchedules(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}
