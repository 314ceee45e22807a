package memory

import (
	"context"
	"sync"

	"github.com/tunafinance/pesaboard/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository with a
// process-lifetime, newest-first slice. Appends are serialized; List returns
// a snapshot copy so readers never observe a concurrent append. The store
// grows unbounded for the process lifetime.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
}

// NewTransactionRepository creates an empty in-memory store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Append inserts the transaction at the head.
func (r *TransactionRepository) Append(_ context.Context, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, nil)
	copy(r.transactions[1:], r.transactions)
	r.transactions[0] = transaction
	return nil
}

// List returns a newest-first snapshot of all stored transactions.
func (r *TransactionRepository) List(_ context.Context) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// Count returns the number of stored transactions.
func (r *TransactionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions), nil
}
