package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"
)

// Config holds the Zoho Mail API credentials and endpoints.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	AccountID    string
	FromEmail    string
	FromName     string
	APIDomain    string
	AccountsURL  string
}

// ConfigFromEnv reads the Zoho configuration from environment variables.
func ConfigFromEnv() Config {
	cfg := Config{
		ClientID:     os.Getenv("ZOHO_CLIENT_ID"),
		ClientSecret: os.Getenv("ZOHO_CLIENT_SECRET"),
		RefreshToken: os.Getenv("ZOHO_REFRESH_TOKEN"),
		AccountID:    os.Getenv("ZOHO_ACCOUNT_ID"),
		FromEmail:    os.Getenv("ZOHO_FROM_EMAIL"),
		FromName:     os.Getenv("ZOHO_FROM_NAME"),
		APIDomain:    os.Getenv("ZOHO_API_DOMAIN"),
		AccountsURL:  os.Getenv("ZOHO_ACCOUNTS_URL"),
	}
	if cfg.APIDomain == "" {
		cfg.APIDomain = "https://mail.zoho.in"
	}
	if cfg.AccountsURL == "" {
		cfg.AccountsURL = "https://accounts.zoho.in"
	}
	return cfg
}

// Validate checks that the credentials required for sending are present.
func (c Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "" || c.AccountID == "" || c.FromEmail == "" {
		return fmt.Errorf("%w: ZOHO_CLIENT_ID, ZOHO_CLIENT_SECRET, ZOHO_REFRESH_TOKEN, ZOHO_ACCOUNT_ID and ZOHO_FROM_EMAIL must be set", appErrors.ErrEmailAPI)
	}
	return nil
}

// Message is the outbound email handed to the Zoho Mail API.
type Message struct {
	To      []string
	CC      []string
	BCC     []string
	Subject string
	Content string
	HTML    bool
	ReplyTo string
}

// Client sends emails via the Zoho Mail API, refreshing its OAuth2
// access token from the configured refresh token as needed.
type Client struct {
	cfg  Config
	http *http.Client
	log  logger.Logger

	mu          sync.Mutex
	accessToken string
}

// NewClient creates a new Zoho Mail client. Configuration is validated
// lazily on the first send so the process can start without mail
// credentials.
func NewClient(cfg Config, log logger.Logger) *Client {
	if err := cfg.Validate(); err != nil {
		log.Warn("Zoho configuration is incomplete; email sending will fail until it is provided")
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log,
	}
}

// Send delivers the message and returns the provider message ID. On an
// authentication failure the cached access token is dropped and the
// send is retried once with a fresh token.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if err := c.cfg.Validate(); err != nil {
		return "", err
	}

	messageID, status, err := c.send(ctx, msg)
	if status == http.StatusUnauthorized {
		c.invalidateToken()
		c.log.Warn("Zoho access token rejected, refreshing and retrying send")
		messageID, _, err = c.send(ctx, msg)
	}
	if err != nil {
		return "", err
	}
	c.log.Info(fmt.Sprintf("Email sent successfully. Message ID: %s", messageID))
	return messageID, nil
}

func (c *Client) send(ctx context.Context, msg Message) (messageID string, status int, err error) {
	token, err := c.token(ctx)
	if err != nil {
		return "", 0, err
	}

	payload := map[string]string{
		"fromAddress": c.cfg.FromEmail,
		"toAddress":   strings.Join(msg.To, ","),
		"subject":     msg.Subject,
		"content":     msg.Content,
	}
	if msg.HTML {
		payload["mailFormat"] = "html"
	} else {
		payload["mailFormat"] = "text"
	}
	if len(msg.CC) > 0 {
		payload["ccAddress"] = strings.Join(msg.CC, ",")
	}
	if len(msg.BCC) > 0 {
		payload["bccAddress"] = strings.Join(msg.BCC, ",")
	}
	if msg.ReplyTo != "" {
		payload["replyToAddress"] = msg.ReplyTo
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", appErrors.ErrEmailAPI, err)
	}

	endpoint := fmt.Sprintf("%s/api/accounts/%s/messages", c.cfg.APIDomain, c.cfg.AccountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", appErrors.ErrEmailAPI, err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", appErrors.ErrEmailAPI, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", resp.StatusCode, fmt.Errorf("%w: status %d - %s", appErrors.ErrEmailAPI, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	// The message ID shows up either nested under data or at the top
	// level depending on the API version.
	var parsed struct {
		Data struct {
			MessageID interface{} `json:"messageId"`
		} `json:"data"`
		MessageID interface{} `json:"messageId"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", resp.StatusCode, fmt.Errorf("%w: malformed response: %v", appErrors.ErrEmailAPI, err)
	}
	id := parsed.Data.MessageID
	if id == nil {
		id = parsed.MessageID
	}
	if id == nil {
		return "", resp.StatusCode, nil
	}
	return fmt.Sprint(id), resp.StatusCode, nil
}

// token returns the cached access token, obtaining a fresh one from the
// refresh token when the cache is empty.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"refresh_token": {c.cfg.RefreshToken},
	}
	endpoint := c.cfg.AccountsURL + "/oauth/v2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", appErrors.ErrEmailAPI, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to authenticate with Zoho: %v", appErrors.ErrEmailAPI, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token refresh failed with status %d", appErrors.ErrEmailAPI, resp.StatusCode)
	}

	var tokenData struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBody, &tokenData); err != nil {
		return "", fmt.Errorf("%w: malformed token response: %v", appErrors.ErrEmailAPI, err)
	}
	if tokenData.AccessToken == "" {
		return "", fmt.Errorf("%w: failed to obtain access token from Zoho", appErrors.ErrEmailAPI)
	}

	c.log.Info("Successfully obtained Zoho access token")
	c.accessToken = tokenData.AccessToken
	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
}
