package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one payment notification received from the provider.
// Records are immutable once stored.
type Transaction struct {
	ID              string
	ReceivedAt      time.Time
	Amount          decimal.Decimal
	RawAmount       string
	MSISDN          string
	BillRefNumber   string
	TransactionType string
	TransID         string
	TransTime       string
}

// IsExpense reports whether the transaction moves money out.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// ParseAmount parses a provider-supplied amount string. The provider does not
// guarantee a numeric TransAmount, so a failed parse yields zero and ok=false;
// callers keep the raw string alongside the parsed value.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
