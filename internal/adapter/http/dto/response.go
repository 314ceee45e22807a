package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tunafinance/pesaboard/internal/domain"
	"github.com/tunafinance/pesaboard/internal/usecase"
)

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WebhookAck is the provider-mandated acknowledgment. ResultCode 0 accepts
// the event and stops provider retries; nonzero rejects it.
type WebhookAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// TransactionResponse represents a stored transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	ReceivedAt      time.Time       `json:"receivedAt"`
	Amount          decimal.Decimal `json:"amount"`
	RawAmount       string          `json:"rawAmount,omitempty"`
	MSISDN          string          `json:"msisdn"`
	BillRefNumber   string          `json:"billRefNumber"`
	TransactionType string          `json:"transactionType"`
	TransID         string          `json:"transID"`
	TransTime       string          `json:"transTime"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		ReceivedAt:      t.ReceivedAt,
		Amount:          t.Amount,
		RawAmount:       t.RawAmount,
		MSISDN:          t.MSISDN,
		BillRefNumber:   t.BillRefNumber,
		TransactionType: t.TransactionType,
		TransID:         t.TransID,
		TransTime:       t.TransTime,
	}
}

// TransactionsFromDomain converts domain transactions to responses. The
// result is never nil so an empty store serializes as [].
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// StatisticsResponse is the summary statistics body.
type StatisticsResponse struct {
	Total           decimal.Decimal      `json:"total"`
	Count           int                  `json:"count"`
	Average         decimal.Decimal      `json:"average"`
	LastTransaction *TransactionResponse `json:"lastTransaction"`
}

// StatisticsFromSummary converts a domain summary to a response.
func StatisticsFromSummary(s domain.Summary) StatisticsResponse {
	resp := StatisticsResponse{
		Total:   s.Total,
		Count:   s.Count,
		Average: s.Average,
	}
	if s.Last != nil {
		resp.LastTransaction = TransactionFromDomain(s.Last)
	}
	return resp
}

// BucketResponse is one time window in a cash flow report.
type BucketResponse struct {
	Label        string                 `json:"label"`
	Total        decimal.Decimal        `json:"total"`
	Transactions []*TransactionResponse `json:"transactions"`
}

// FloatPointResponse is one point of the float trend.
type FloatPointResponse struct {
	Label  string          `json:"label"`
	Value  decimal.Decimal `json:"value"`
	Status string          `json:"status"`
}

// CashFlowResponse is the bucketed cash flow report.
type CashFlowResponse struct {
	Timeframe    string               `json:"timeframe"`
	Buckets      []BucketResponse     `json:"buckets"`
	FloatTrend   []FloatPointResponse `json:"floatTrend"`
	CurrentFloat decimal.Decimal      `json:"currentFloat"`
	FloatAlert   string               `json:"floatAlert"`
}

// CashFlowFromReport converts a use case report to a response.
func CashFlowFromReport(r *usecase.CashFlowReport) CashFlowResponse {
	resp := CashFlowResponse{
		Timeframe:    string(r.Timeframe),
		Buckets:      make([]BucketResponse, len(r.Buckets)),
		FloatTrend:   make([]FloatPointResponse, len(r.FloatTrend)),
		CurrentFloat: r.CurrentFloat,
		FloatAlert:   string(r.FloatAlert),
	}
	for i, b := range r.Buckets {
		resp.Buckets[i] = BucketResponse{
			Label:        b.Label,
			Total:        b.Total,
			Transactions: TransactionsFromDomain(b.Transactions),
		}
	}
	for i, p := range r.FloatTrend {
		resp.FloatTrend[i] = FloatPointResponse{
			Label:  p.Label,
			Value:  p.Value,
			Status: string(p.Status),
		}
	}
	return resp
}

// CreditScoreResponse is the heuristic credit score body.
type CreditScoreResponse struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"`
}

// RiskAlertResponse is one rule-based alert.
type RiskAlertResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RiskAlertsResponse is the alert list body. Alerts is never nil.
type RiskAlertsResponse struct {
	Alerts []RiskAlertResponse `json:"alerts"`
}

// RiskAlertsFromDomain converts domain alerts to a response.
func RiskAlertsFromDomain(alerts []domain.RiskAlert) RiskAlertsResponse {
	resp := RiskAlertsResponse{Alerts: make([]RiskAlertResponse, len(alerts))}
	for i, a := range alerts {
		resp.Alerts[i] = RiskAlertResponse{Code: a.Code, Message: a.Message}
	}
	return resp
}

// TokenResponse is the provider token passthrough body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// TokenFromDomain converts a provider token to a response.
func TokenFromDomain(t *domain.ProviderToken) TokenResponse {
	return TokenResponse{AccessToken: t.AccessToken, ExpiresIn: t.ExpiresIn}
}

// RegistrationResponse is the URL registration result body.
type RegistrationResponse struct {
	Message string              `json:"message"`
	Data    RegistrationDetails `json:"data"`
}

// RegistrationDetails mirrors the provider's registration response fields.
type RegistrationDetails struct {
	OriginatorConversationID string `json:"originatorConversationID,omitempty"`
	ConversationID           string `json:"conversationID,omitempty"`
	ResponseDescription      string `json:"responseDescription,omitempty"`
}

// RegistrationFromDomain converts a registration result to a response.
func RegistrationFromDomain(r *domain.URLRegistration) RegistrationResponse {
	return RegistrationResponse{
		Message: "Webhook URLs registered",
		Data: RegistrationDetails{
			OriginatorConversationID: r.OriginatorConversationID,
			ConversationID:           r.ConversationID,
			ResponseDescription:      r.ResponseDescription,
		},
	}
}

// CredentialCheckResponse is the credential verification body.
type CredentialCheckResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Details CredentialCheckDetails `json:"details"`
}

// CredentialCheckDetails carries the redacted verification artifacts.
type CredentialCheckDetails struct {
	AccessToken     string `json:"accessToken"`
	Timestamp       string `json:"timestamp"`
	PasswordPreview string `json:"password"`
}

// CredentialCheckFromDomain converts a credential check to a response.
func CredentialCheckFromDomain(c *domain.CredentialCheck) CredentialCheckResponse {
	return CredentialCheckResponse{
		Status:  "success",
		Message: "Credentials are valid",
		Details: CredentialCheckDetails{
			AccessToken:     c.AccessToken,
			Timestamp:       c.Timestamp,
			PasswordPreview: c.PasswordPreview,
		},
	}
}

// MissingCredentialsResponse is the 400 body when provider credentials are
// not configured.
type MissingCredentialsResponse struct {
	Error   string          `json:"error"`
	Details map[string]bool `json:"details"`
}

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Env       string    `json:"env"`
	Timestamp time.Time `json:"timestamp"`
}
