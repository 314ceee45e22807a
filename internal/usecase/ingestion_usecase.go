package usecase

import (
	"context"
	"time"

	"github.com/tunafinance/pesaboard/internal/domain"
	"github.com/tunafinance/pesaboard/internal/infrastructure/metrics"
)

// IngestionUseCase handles provider webhook deliveries.
type IngestionUseCase struct {
	repo    TransactionRepository
	idGen   IDGenerator
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewIngestionUseCase creates a new IngestionUseCase. metrics may be nil.
func NewIngestionUseCase(repo TransactionRepository, idGen IDGenerator, m *metrics.Metrics) *IngestionUseCase {
	return &IngestionUseCase{
		repo:    repo,
		idGen:   idGen,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ConfirmationInput carries the provider's confirmation payload. The provider
// does not guarantee field presence; missing fields arrive empty.
type ConfirmationInput struct {
	TransAmount     string
	MSISDN          string
	BillRefNumber   string
	TransactionType string
	TransID         string
	TransTime       string
}

// RecordConfirmation normalizes a confirmation payload into a transaction and
// appends it to the store. Unparseable amounts are kept as raw text with a
// zero parsed value rather than rejected; the provider retries on any
// non-zero result code, so ingestion must not fail on payload content.
func (uc *IngestionUseCase) RecordConfirmation(ctx context.Context, input ConfirmationInput) (*domain.Transaction, error) {
	amount, parsed := domain.ParseAmount(input.TransAmount)

	transaction := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		ReceivedAt:      uc.now(),
		Amount:          amount,
		RawAmount:       input.TransAmount,
		MSISDN:          input.MSISDN,
		BillRefNumber:   input.BillRefNumber,
		TransactionType: input.TransactionType,
		TransID:         input.TransID,
		TransTime:       input.TransTime,
	}

	if err := uc.repo.Append(ctx, transaction); err != nil {
		return nil, err
	}

	uc.metrics.ObserveIngestion(amount, parsed)
	if count, err := uc.repo.Count(ctx); err == nil {
		uc.metrics.SetStoreSize(count)
	}

	return transaction, nil
}

// ValidatePayment applies the pre-delivery validation gate: the amount must
// parse and be strictly positive. No store side effect.
func (uc *IngestionUseCase) ValidatePayment(rawAmount string) bool {
	amount, ok := domain.ParseAmount(rawAmount)
	accepted := ok && amount.IsPositive()
	uc.metrics.IncValidation(accepted)
	return accepted
}
