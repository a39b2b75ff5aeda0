package emailjs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/degokisss/CS5709/internal/domain"
	portmocks "github.com/degokisss/CS5709/internal/ports/mocks"
)

func testMessage() domain.ContactMessage {
	return domain.ContactMessage{
		SenderName: "Ada Lovelace",
		ReplyTo:    "ada@example.com",
		Body:       "I enjoyed the projects page.",
	}
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:    baseURL,
		ServiceID:  "service_folio",
		TemplateID: "template_contact",
		PublicKey:  "public-key-123",
		ToName:     "Deniz",
	}
}

func TestMailerSendPostsTemplateParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "service_folio", payload["service_id"])
		assert.Equal(t, "template_contact", payload["template_id"])
		assert.Equal(t, "public-key-123", payload["user_id"])
		_, hasToken := payload["accessToken"]
		assert.False(t, hasToken)

		params, ok := payload["template_params"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada Lovelace", params["from_name"])
		assert.Equal(t, "ada@example.com", params["reply_to"])
		assert.Equal(t, "I enjoyed the projects page.", params["message"])
		assert.Equal(t, "Deniz", params["to_name"])

		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(server.Close)

	mailer := Mailer{Config: testConfig(server.URL), HTTPClient: server.Client()}

	err := mailer.Send(context.Background(), testMessage())
	require.NoError(t, err)
}

func TestMailerSendIncludesPrivateKeyWhenAvailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "private-key-456", payload["accessToken"])
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(server.Close)

	secrets := portmocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, PrivateKeySecretRef).Return("private-key-456", nil).Once()

	mailer := Mailer{Config: testConfig(server.URL), Secrets: secrets, HTTPClient: server.Client()}

	err := mailer.Send(context.Background(), testMessage())
	require.NoError(t, err)
}

func TestMailerSendProceedsWithoutPrivateKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, hasToken := payload["accessToken"]
		assert.False(t, hasToken)
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(server.Close)

	secrets := portmocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, PrivateKeySecretRef).Return("", domain.ErrSecretNotFound).Once()

	mailer := Mailer{Config: testConfig(server.URL), Secrets: secrets, HTTPClient: server.Client()}

	err := mailer.Send(context.Background(), testMessage())
	require.NoError(t, err)
}

func TestMailerSendSurfacesRelayErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("API calls are disabled for non-browser applications"))
	}))
	t.Cleanup(server.Close)

	mailer := Mailer{Config: testConfig(server.URL), HTTPClient: server.Client()}

	err := mailer.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Contains(t, err.Error(), "API calls are disabled")
}

func TestMailerSendTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(server.Close)

	mailer := Mailer{
		Config:         testConfig(server.URL),
		HTTPClient:     server.Client(),
		RequestTimeout: 20 * time.Millisecond,
	}

	err := mailer.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send contact message")
}

func TestMailerSendValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "missing service id", mutate: func(c *Config) { c.ServiceID = "" }, wantErr: "service id is required"},
		{name: "missing template id", mutate: func(c *Config) { c.TemplateID = "" }, wantErr: "template id is required"},
		{name: "missing public key", mutate: func(c *Config) { c.PublicKey = "" }, wantErr: "public key is required"},
		{name: "bad base url scheme", mutate: func(c *Config) { c.BaseURL = "ftp://relay.example.com" }, wantErr: "http or https"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig("https://relay.example.com")
			tc.mutate(&cfg)
			mailer := Mailer{Config: cfg}

			err := mailer.Send(context.Background(), testMessage())
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
