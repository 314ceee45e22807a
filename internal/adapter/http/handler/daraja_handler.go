package handler

import (
	"errors"
	"net/http"

	"github.com/tunafinance/pesaboard/internal/adapter/http/dto"
	"github.com/tunafinance/pesaboard/internal/domain"
	"github.com/tunafinance/pesaboard/internal/usecase"
)

// CredentialReporter reports which provider credentials are configured.
type CredentialReporter interface {
	CredentialStatus() map[string]bool
}

// DarajaHandler exposes the provider proxy endpoints: token fetch, webhook
// URL registration and credential verification.
type DarajaHandler struct {
	client      usecase.ProviderClient
	credentials CredentialReporter
	env         string
}

// NewDarajaHandler creates a new DarajaHandler. credentials may be nil when
// the client does not report configuration state.
func NewDarajaHandler(client usecase.ProviderClient, credentials CredentialReporter, env string) *DarajaHandler {
	return &DarajaHandler{client: client, credentials: credentials, env: env}
}

// Token fetches a bearer token and passes the provider response through.
func (h *DarajaHandler) Token(w http.ResponseWriter, r *http.Request) {
	token, err := h.client.Token(r.Context())
	if err != nil {
		h.writeProviderError(w, "failed to fetch token", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenFromDomain(token))
}

// RegisterURLs registers the confirmation and validation callbacks with the
// provider.
func (h *DarajaHandler) RegisterURLs(w http.ResponseWriter, r *http.Request) {
	registration, err := h.client.RegisterURLs(r.Context())
	if err != nil {
		h.writeProviderError(w, "failed to register webhook URLs", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RegistrationFromDomain(registration))
}

// TestCredentials verifies the configured credentials against the provider.
// Missing credentials return 400 with a per-field presence breakdown.
func (h *DarajaHandler) TestCredentials(w http.ResponseWriter, r *http.Request) {
	check, err := h.client.VerifyCredentials(r.Context())
	if err != nil {
		h.writeProviderError(w, "failed to validate credentials", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CredentialCheckFromDomain(check))
}

func (h *DarajaHandler) writeProviderError(w http.ResponseWriter, message string, err error) {
	if errors.Is(err, domain.ErrMissingCredentials) && h.credentials != nil {
		writeJSON(w, http.StatusBadRequest, dto.MissingCredentialsResponse{
			Error:   "Missing credentials",
			Details: h.credentials.CredentialStatus(),
		})
		return
	}

	status := mapDomainError(err)
	details := errorDetails(h.env, err)
	if errors.Is(err, domain.ErrUpstream) {
		// The provider's error body is part of the wrapped error and is
		// surfaced to the caller regardless of environment.
		details = err.Error()
	}
	writeError(w, status, message, details)
}
