package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunafinance/pesaboard/internal/adapter/daraja"
	adaptershttp "github.com/tunafinance/pesaboard/internal/adapter/http"
	"github.com/tunafinance/pesaboard/internal/adapter/http/dto"
	"github.com/tunafinance/pesaboard/internal/adapter/http/handler"
	"github.com/tunafinance/pesaboard/internal/adapter/repository/memory"
	"github.com/tunafinance/pesaboard/internal/adapter/repository/postgres"
	"github.com/tunafinance/pesaboard/internal/usecase"
)

// fakeProvider mimics the upstream OAuth and registration endpoints.
func fakeProvider(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errorMessage":"Invalid credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "upstream-token",
			"expires_in":   "3599",
		})
	})
	mux.HandleFunc("/mpesa/c2b/v1/registerurl", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer upstream-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "600999", body["ShortCode"])
		require.Equal(t, "Completed", body["ResponseType"])
		json.NewEncoder(w).Encode(map[string]string{
			"OriginatorCoversationID": "7619-37765134-1",
			"ResponseDescription":     "Success",
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newProviderBackedServer(t *testing.T, cfg daraja.Config) *httptest.Server {
	t.Helper()

	repo := memory.NewTransactionRepository()
	client := daraja.NewClient(cfg, &http.Client{Timeout: 5 * time.Second}, nil)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		WebhookHandler:     handler.NewWebhookHandler(usecase.NewIngestionUseCase(repo, postgres.NewULIDGenerator(), nil)),
		TransactionHandler: handler.NewTransactionHandler(usecase.NewTransactionUseCase(repo), "test"),
		StatisticsHandler:  handler.NewStatisticsHandler(usecase.NewStatisticsUseCase(repo), "test"),
		DarajaHandler:      handler.NewDarajaHandler(client, client, "test"),
		HealthHandler:      handler.NewHealthHandler("test", nil, nil),
		Logger:             zerolog.Nop(),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestTokenPassthrough(t *testing.T) {
	upstream := fakeProvider(t)
	server := newProviderBackedServer(t, daraja.Config{
		BaseURL:         upstream.URL,
		ConsumerKey:     "key",
		ConsumerSecret:  "secret",
		Shortcode:       "600999",
		Passkey:         "passkey",
		CallbackBaseURL: "https://api.example.com",
	})

	var token dto.TokenResponse
	resp := getJSON(t, server, "/api/token", &token)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "upstream-token", token.AccessToken)
	assert.Equal(t, "3599", token.ExpiresIn)
}

func TestRegisterURLs(t *testing.T) {
	upstream := fakeProvider(t)
	server := newProviderBackedServer(t, daraja.Config{
		BaseURL:         upstream.URL,
		ConsumerKey:     "key",
		ConsumerSecret:  "secret",
		Shortcode:       "600999",
		Passkey:         "passkey",
		CallbackBaseURL: "https://api.example.com",
	})

	resp, err := http.Post(server.URL+"/api/register-url", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reg dto.RegistrationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reg))
	assert.Equal(t, "Webhook URLs registered", reg.Message)
	assert.Equal(t, "Success", reg.Data.ResponseDescription)
}

func TestMissingCredentialsReported(t *testing.T) {
	server := newProviderBackedServer(t, daraja.Config{
		BaseURL:     "http://unused.invalid",
		ConsumerKey: "key",
		// ConsumerSecret deliberately unset.
		Shortcode: "600999",
	})

	resp, err := http.Get(server.URL + "/api/token")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.MissingCredentialsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Missing credentials", body.Error)
	assert.True(t, body.Details["hasConsumerKey"])
	assert.False(t, body.Details["hasConsumerSecret"])
}

func TestUpstreamRejectionSurfaced(t *testing.T) {
	upstream := fakeProvider(t)
	server := newProviderBackedServer(t, daraja.Config{
		BaseURL:         upstream.URL,
		ConsumerKey:     "key",
		ConsumerSecret:  "wrong",
		Shortcode:       "600999",
		Passkey:         "passkey",
		CallbackBaseURL: "https://api.example.com",
	})

	resp, err := http.Get(server.URL + "/api/token")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Message, "Invalid credentials")
}
