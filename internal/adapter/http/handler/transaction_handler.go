package handler

import (
	"context"
	"net/http"

	"github.com/tunafinance/pesaboard/internal/adapter/http/dto"
	"github.com/tunafinance/pesaboard/internal/domain"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	ListTransactions(ctx context.Context) ([]*domain.Transaction, error)
}

// TransactionHandler handles transaction listing requests.
type TransactionHandler struct {
	transactionUC TransactionService
	env           string
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService, env string) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC, env: env}
}

// List returns all stored transactions, newest-first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionUC.ListTransactions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", errorDetails(h.env, err))
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}
