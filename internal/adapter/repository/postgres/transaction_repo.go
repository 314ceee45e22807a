package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tunafinance/pesaboard/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository on
// PostgreSQL. It is selected instead of the in-memory store when a database
// URL is configured, keeping the ingestion history across restarts.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Append inserts the transaction. Newest-first ordering is established on
// read via received_at with the ULID as a tiebreaker.
func (r *TransactionRepository) Append(ctx context.Context, transaction *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO transactions (
			id, received_at, amount, raw_amount, msisdn,
			bill_ref_number, transaction_type, trans_id, trans_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		transaction.ID,
		transaction.ReceivedAt,
		transaction.Amount.String(),
		transaction.RawAmount,
		transaction.MSISDN,
		transaction.BillRefNumber,
		transaction.TransactionType,
		transaction.TransID,
		transaction.TransTime,
	)
	return err
}

// List returns all transactions, newest-first.
func (r *TransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, received_at, amount::text, raw_amount, msisdn,
		       bill_ref_number, transaction_type, trans_id, trans_time
		FROM transactions
		ORDER BY received_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		var (
			tx     domain.Transaction
			amount string
		)
		if err := rows.Scan(
			&tx.ID,
			&tx.ReceivedAt,
			&amount,
			&tx.RawAmount,
			&tx.MSISDN,
			&tx.BillRefNumber,
			&tx.TransactionType,
			&tx.TransID,
			&tx.TransTime,
		); err != nil {
			return nil, err
		}
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// Count returns the number of stored transactions.
func (r *TransactionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	return count, err
}
