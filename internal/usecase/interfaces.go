package usecase

import (
	"context"
	"time"

	"github.com/tunafinance/pesaboard/internal/domain"
)

// TransactionRepository defines data access for received transactions.
// List returns a newest-first snapshot that is safe to read while appends
// continue.
type TransactionRepository interface {
	Append(ctx context.Context, transaction *domain.Transaction) error
	List(ctx context.Context) ([]*domain.Transaction, error)
	Count(ctx context.Context) (int, error)
}

// ProviderClient talks to the payment provider's API.
type ProviderClient interface {
	Token(ctx context.Context) (*domain.ProviderToken, error)
	RegisterURLs(ctx context.Context) (*domain.URLRegistration, error)
	VerifyCredentials(ctx context.Context) (*domain.CredentialCheck, error)
}

// Cache stores serialized responses with a TTL.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
