package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tunafinance/pesaboard/internal/adapter/http/dto"
	"github.com/tunafinance/pesaboard/internal/domain"
	"github.com/tunafinance/pesaboard/internal/usecase"
)

// IngestionService defines the behavior needed by WebhookHandler.
type IngestionService interface {
	RecordConfirmation(ctx context.Context, input usecase.ConfirmationInput) (*domain.Transaction, error)
	ValidatePayment(rawAmount string) bool
}

// WebhookHandler handles the provider's confirmation and validation webhooks.
type WebhookHandler struct {
	ingestionUC IngestionService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(ingestionUC IngestionService) *WebhookHandler {
	return &WebhookHandler{ingestionUC: ingestionUC}
}

// Confirmation receives a completed payment notification. It always
// acknowledges with ResultCode 0: any non-zero code makes the provider retry
// the delivery, so malformed payloads and internal failures are absorbed
// rather than surfaced.
func (h *WebhookHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	var req dto.C2BCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("confirmation payload did not decode, acknowledging anyway")
		writeJSON(w, http.StatusOK, dto.WebhookAck{ResultCode: 0, ResultDesc: "Success"})
		return
	}

	if _, err := h.ingestionUC.RecordConfirmation(r.Context(), req.ToUseCaseInput()); err != nil {
		log.Error().Err(err).Str("trans_id", req.TransID).Msg("failed to store confirmation")
	}

	writeJSON(w, http.StatusOK, dto.WebhookAck{ResultCode: 0, ResultDesc: "Success"})
}

// Validation gates a pending payment: the amount must parse and be strictly
// positive. No store side effect.
func (h *WebhookHandler) Validation(w http.ResponseWriter, r *http.Request) {
	var req dto.C2BCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, dto.WebhookAck{ResultCode: 1, ResultDesc: "Invalid amount"})
		return
	}

	if h.ingestionUC.ValidatePayment(string(req.TransAmount)) {
		writeJSON(w, http.StatusOK, dto.WebhookAck{ResultCode: 0, ResultDesc: "Success"})
		return
	}

	writeJSON(w, http.StatusOK, dto.WebhookAck{ResultCode: 1, ResultDesc: "Invalid amount"})
}
