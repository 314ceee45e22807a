package usecase

import (
	"context"

	"github.com/tunafinance/pesaboard/internal/domain"
)

// TransactionUseCase exposes read access to the stored transaction history.
type TransactionUseCase struct {
	repo TransactionRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(repo TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// ListTransactions returns all stored records, newest-first.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return uc.repo.List(ctx)
}
