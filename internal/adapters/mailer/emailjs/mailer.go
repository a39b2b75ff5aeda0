package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

const (
	// DefaultBaseURL is the public EmailJS REST endpoint.
	DefaultBaseURL = "https://api.emailjs.com"

	// PrivateKeySecretRef is the secret store key holding the account's
	// private key. The key is optional; accounts without one authenticate
	// with the public key alone.
	PrivateKeySecretRef = "emailjs/private_key"

	sendPath              = "/api/v1.0/email/send"
	maxRelayResponseBytes = 1 << 20
)

// Config identifies the EmailJS account and template a message is sent
// through. ToName fills the template's recipient placeholder.
type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToName     string
}

// Mailer relays contact messages through the EmailJS send API.
type Mailer struct {
	Config         Config
	Secrets        ports.SecretStore
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Log            *zap.Logger
}

var _ ports.Mailer = Mailer{}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	FromName string `json:"from_name"`
	ReplyTo  string `json:"reply_to"`
	Message  string `json:"message"`
	ToName   string `json:"to_name,omitempty"`
}

func (m Mailer) Send(ctx context.Context, msg domain.ContactMessage) error {
	if m.Config.ServiceID == "" {
		return errors.New("relay service id is required")
	}
	if m.Config.TemplateID == "" {
		return errors.New("relay template id is required")
	}
	if m.Config.PublicKey == "" {
		return errors.New("relay public key is required")
	}

	endpoint, err := buildRelayURL(m.baseURL(), sendPath)
	if err != nil {
		return err
	}

	payload := sendRequest{
		ServiceID:  m.Config.ServiceID,
		TemplateID: m.Config.TemplateID,
		UserID:     m.Config.PublicKey,
		TemplateParams: templateParams{
			FromName: msg.SenderName,
			ReplyTo:  msg.ReplyTo,
			Message:  msg.Body,
			ToName:   m.Config.ToName,
		},
	}
	payload.AccessToken = m.privateKey(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode send request: %w", err)
	}

	requestCtx, cancel := m.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return relayError(resp)
	}

	return nil
}

// privateKey resolves the optional private key. Absence is normal; anything
// else worth knowing about is logged and the send proceeds without the key,
// letting the relay decide whether it was required.
func (m Mailer) privateKey(ctx context.Context) string {
	if m.Secrets == nil {
		return ""
	}

	value, err := m.Secrets.Get(ctx, PrivateKeySecretRef)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			m.logger().Warn("resolve relay private key", zap.Error(err))
		}
		return ""
	}

	return value
}

func (m Mailer) httpClient() *http.Client {
	if m.HTTPClient != nil {
		return m.HTTPClient
	}
	return http.DefaultClient
}

func (m Mailer) logger() *zap.Logger {
	if m.Log != nil {
		return m.Log
	}
	return zap.NewNop()
}

func (m Mailer) baseURL() string {
	if m.Config.BaseURL != "" {
		return m.Config.BaseURL
	}
	return DefaultBaseURL
}

func (m Mailer) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := m.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// relayError surfaces the EmailJS error body, which is plain text.
func relayError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRelayResponseBytes))
	if err != nil {
		return fmt.Errorf("send contact message: status %d", resp.StatusCode)
	}

	detail := strings.TrimSpace(string(body))
	if detail == "" {
		return fmt.Errorf("send contact message: status %d", resp.StatusCode)
	}

	return fmt.Errorf("send contact message: status %d: %s", resp.StatusCode, detail)
}

func buildRelayURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("relay base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse relay base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("relay base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("relay base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse relay path: %w", err)
	}
	return endpoint.String(), nil
}
