// Package daraja talks to the Safaricom Daraja API: OAuth token exchange and
// C2B webhook URL registration. Calls are single-shot; a failure propagates
// to the caller without retrying.
package daraja

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tunafinance/pesaboard/internal/domain"
	"github.com/tunafinance/pesaboard/internal/infrastructure/metrics"
)

const (
	tokenPath       = "/oauth/v1/generate?grant_type=client_credentials"
	registerURLPath = "/mpesa/c2b/v1/registerurl"

	// The provider calls back once per completed payment.
	responseTypeCompleted = "Completed"

	timestampLayout = "20060102150405"
)

// Config holds provider credentials and endpoints.
type Config struct {
	BaseURL         string
	ConsumerKey     string
	ConsumerSecret  string
	Shortcode       string
	Passkey         string
	CallbackBaseURL string
}

// Client is an HTTP client for the Daraja API. It implements
// usecase.ProviderClient.
type Client struct {
	cfg        Config
	httpClient *http.Client
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewClient creates a new Client. httpClient may be nil, in which case a
// default client is used; metrics may be nil.
func NewClient(cfg Config, httpClient *http.Client, m *metrics.Metrics) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CredentialStatus reports which credentials are configured, keyed the way the
// dashboard's credential check displays them.
func (c *Client) CredentialStatus() map[string]bool {
	return map[string]bool{
		"hasConsumerKey":    c.cfg.ConsumerKey != "",
		"hasConsumerSecret": c.cfg.ConsumerSecret != "",
		"hasShortcode":      c.cfg.Shortcode != "",
		"hasPasskey":        c.cfg.Passkey != "",
	}
}

// Token performs the Basic-authenticated token exchange. The token is not
// cached; every call re-fetches.
func (c *Client) Token(ctx context.Context) (token *domain.ProviderToken, err error) {
	defer func() { c.metrics.IncProviderRequest("token", err) }()

	if c.cfg.ConsumerKey == "" || c.cfg.ConsumerSecret == "" {
		return nil, domain.ErrMissingCredentials
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+tokenPath, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading token response: %v", domain.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError("token exchange", resp.StatusCode, body)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed token response: %v", domain.ErrUpstream, err)
	}
	if parsed.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response without access_token", domain.ErrUpstream)
	}

	return &domain.ProviderToken{
		AccessToken: parsed.AccessToken,
		ExpiresIn:   parsed.ExpiresIn,
	}, nil
}

// RegisterURLs tells the provider where to POST confirmation and validation
// events for the configured shortcode.
func (c *Client) RegisterURLs(ctx context.Context) (reg *domain.URLRegistration, err error) {
	defer func() { c.metrics.IncProviderRequest("register_urls", err) }()

	if err := c.requireAllCredentials(); err != nil {
		return nil, err
	}

	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	ts := c.now().Format(timestampLayout)
	payload, err := json.Marshal(map[string]string{
		"ShortCode":       c.cfg.Shortcode,
		"ResponseType":    responseTypeCompleted,
		"ConfirmationURL": c.cfg.CallbackBaseURL + "/api/confirmation",
		"ValidationURL":   c.cfg.CallbackBaseURL + "/api/validation",
		"Password":        derivePassword(c.cfg.Shortcode, c.cfg.Passkey, ts),
		"Timestamp":       ts,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+registerURLPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading registration response: %v", domain.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError("url registration", resp.StatusCode, body)
	}

	var parsed struct {
		OriginatorCoversationID string `json:"OriginatorCoversationID"`
		ConversationID          string `json:"ConversationID"`
		ResponseDescription     string `json:"ResponseDescription"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed registration response: %v", domain.ErrUpstream, err)
	}

	return &domain.URLRegistration{
		OriginatorConversationID: parsed.OriginatorCoversationID,
		ConversationID:           parsed.ConversationID,
		ResponseDescription:      parsed.ResponseDescription,
	}, nil
}

// VerifyCredentials checks the configured credentials by performing a token
// exchange and deriving the registration password. Only a redacted preview of
// the password is returned.
func (c *Client) VerifyCredentials(ctx context.Context) (*domain.CredentialCheck, error) {
	if err := c.requireAllCredentials(); err != nil {
		return nil, err
	}

	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	ts := c.now().Format(timestampLayout)
	password := derivePassword(c.cfg.Shortcode, c.cfg.Passkey, ts)
	preview := password
	if len(preview) > 10 {
		preview = preview[:10] + "..."
	}

	return &domain.CredentialCheck{
		AccessToken:     token.AccessToken,
		Timestamp:       ts,
		PasswordPreview: preview,
	}, nil
}

func (c *Client) requireAllCredentials() error {
	if c.cfg.ConsumerKey == "" || c.cfg.ConsumerSecret == "" || c.cfg.Shortcode == "" || c.cfg.Passkey == "" {
		return domain.ErrMissingCredentials
	}
	return nil
}

// derivePassword computes base64(shortcode + passkey + timestamp) as required
// by the registration endpoint.
func derivePassword(shortcode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
}

func upstreamError(op string, status int, body []byte) error {
	if len(body) > 0 {
		return fmt.Errorf("%w: %s returned %d: %s", domain.ErrUpstream, op, status, body)
	}
	return fmt.Errorf("%w: %s returned %d", domain.ErrUpstream, op, status)
}
