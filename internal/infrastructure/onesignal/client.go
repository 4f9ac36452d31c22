package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"
)

// Config holds the OneSignal application credentials.
type Config struct {
	AppID      string
	RESTAPIKey string
	APIURL     string
}

// ConfigFromEnv reads the OneSignal configuration from environment variables.
func ConfigFromEnv() Config {
	cfg := Config{
		AppID:      strings.TrimSpace(os.Getenv("ONESIGNAL_APP_ID")),
		RESTAPIKey: strings.TrimSpace(os.Getenv("ONESIGNAL_REST_API_KEY")),
		APIURL:     strings.TrimSpace(os.Getenv("ONESIGNAL_API_URL")),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = "https://onesignal.com/api/v1"
	}
	return cfg
}

// Validate checks that the credentials required for sending are present.
func (c Config) Validate() error {
	if c.AppID == "" || c.RESTAPIKey == "" {
		return fmt.Errorf("%w: ONESIGNAL_APP_ID and ONESIGNAL_REST_API_KEY must be set", appErrors.ErrPushAPI)
	}
	return nil
}

// Notification is the outbound push handed to the OneSignal API.
type Notification struct {
	PlayerIDs []string
	Segments  []string
	Headings  map[string]string
	Contents  map[string]string
	Data      map[string]interface{}
	URL       string
	SendAfter string
	Priority  int
}

// Result carries the provider's identifiers for a delivered notification.
type Result struct {
	NotificationID  string
	RecipientsCount int
}

// Client sends push notifications via the OneSignal REST API using
// REST key authentication.
type Client struct {
	cfg  Config
	http *http.Client
	log  logger.Logger
}

// NewClient creates a new OneSignal client. Configuration is validated
// lazily on the first send.
func NewClient(cfg Config, log logger.Logger) *Client {
	if err := cfg.Validate(); err != nil {
		log.Warn("OneSignal configuration is incomplete; push sending will fail until it is provided")
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log,
	}
}

// Send delivers the notification and returns the provider identifiers.
// A notification with zero recipients is still a successful send; the
// caller decides how to report it.
func (c *Client) Send(ctx context.Context, n Notification) (*Result, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"app_id":   c.cfg.AppID,
		"headings": n.Headings,
		"contents": n.Contents,
		"priority": n.Priority,
	}
	if len(n.Headings) == 0 {
		payload["headings"] = map[string]string{"en": "Notification"}
	}
	if len(n.Contents) == 0 {
		payload["contents"] = map[string]string{"en": "You have a new notification"}
	}
	if len(n.PlayerIDs) > 0 {
		payload["include_player_ids"] = n.PlayerIDs
	} else if len(n.Segments) > 0 {
		payload["included_segments"] = n.Segments
	}
	if len(n.Data) > 0 {
		payload["data"] = n.Data
	}
	if n.URL != "" {
		payload["url"] = n.URL
	}
	if n.SendAfter != "" {
		payload["send_after"] = n.SendAfter
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrPushAPI, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/notifications", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrPushAPI, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.cfg.RESTAPIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrPushAPI, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: authentication failed, verify the REST API key", appErrors.ErrPushAPI)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d - %s", appErrors.ErrPushAPI, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	// OneSignal has used several spellings for these fields across API
	// versions.
	var parsed struct {
		ID              string `json:"id"`
		NotificationID  string `json:"notification_id"`
		Recipients      int    `json:"recipients"`
		RecipientsCount int    `json:"recipients_count"`
		Errors          any    `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", appErrors.ErrPushAPI, err)
	}

	result := &Result{
		NotificationID:  parsed.ID,
		RecipientsCount: parsed.Recipients,
	}
	if result.NotificationID == "" {
		result.NotificationID = parsed.NotificationID
	}
	if result.RecipientsCount == 0 {
		result.RecipientsCount = parsed.RecipientsCount
	}

	if result.RecipientsCount == 0 && len(n.PlayerIDs) > 0 {
		c.log.Warn("Notification accepted but recipients_count is 0; the targeted player IDs may not exist in OneSignal")
	}
	c.log.Info(fmt.Sprintf("Push notification sent. Notification ID: %s, Recipients: %d", result.NotificationID, result.RecipientsCount))
	return result, nil
}
