package zoho

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(serverURL string) Config {
	return Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RefreshToken: "refresh",
		AccountID:    "acc",
		FromEmail:    "noreply@example.com",
		APIDomain:    serverURL,
		AccountsURL:  serverURL,
	}
}

func TestSendSuccess(t *testing.T) {
	var tokenCalls, sendCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v2/token":
			tokenCalls.Add(1)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
		case "/api/accounts/acc/messages":
			sendCalls.Add(1)
			assert.Equal(t, "Zoho-oauthtoken tok-1", r.Header.Get("Authorization"))

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "noreply@example.com", payload["fromAddress"])
			assert.Equal(t, "a@example.com,b@example.com", payload["toAddress"])
			assert.Equal(t, "html", payload["mailFormat"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"messageId": 123456789},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.New())
	id, err := c.Send(context.Background(), Message{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "hello",
		Content: "<p>hi</p>",
		HTML:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "123456789", id)

	// Second send reuses the cached token.
	_, err = c.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "s", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load())
	assert.Equal(t, int32(2), sendCalls.Load())
}

func TestSendRetriesOnceOnAuthFailure(t *testing.T) {
	var tokenCalls, sendCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v2/token":
			n := tokenCalls.Add(1)
			json.NewEncoder(w).Encode(map[string]string{"access_token": map[int32]string{1: "stale", 2: "fresh"}[n]})
		case "/api/accounts/acc/messages":
			sendCalls.Add(1)
			if r.Header.Get("Authorization") == "Zoho-oauthtoken stale" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"messageId": "m-1"})
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.New())
	id, err := c.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "s", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, "m-1", id)
	assert.Equal(t, int32(2), tokenCalls.Load())
	assert.Equal(t, int32(2), sendCalls.Load())
}

func TestSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v2/token" {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
			return
		}
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.New())
	_, err := c.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "s", Content: "b"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrEmailAPI))
	assert.Contains(t, err.Error(), "429")
}

func TestSendIncompleteConfig(t *testing.T) {
	c := NewClient(Config{}, logger.New())
	_, err := c.Send(context.Background(), Message{To: []string{"a@example.com"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrEmailAPI))
}
