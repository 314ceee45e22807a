package mocks

import (
	"context"
	"strconv"
	"sync"

	"github.com/tunafinance/pesaboard/internal/domain"
)

// MockTransactionRepository is a mock implementation of
// usecase.TransactionRepository backed by a newest-first slice.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	AppendFunc func(ctx context.Context, transaction *domain.Transaction) error
	ListFunc   func(ctx context.Context) ([]*domain.Transaction, error)
	CountFunc  func(ctx context.Context) (int, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Append(ctx context.Context, transaction *domain.Transaction) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, transaction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append([]*domain.Transaction{transaction}, m.transactions...)
	return nil
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out, nil
}

func (m *MockTransactionRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transactions), nil
}

// Seed replaces the stored snapshot, newest-first.
func (m *MockTransactionRepository) Seed(transactions ...*domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = transactions
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator returning
// sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "tx-" + strconv.Itoa(m.next)
}

// MockProviderClient is a mock implementation of usecase.ProviderClient.
type MockProviderClient struct {
	TokenFunc             func(ctx context.Context) (*domain.ProviderToken, error)
	RegisterURLsFunc      func(ctx context.Context) (*domain.URLRegistration, error)
	VerifyCredentialsFunc func(ctx context.Context) (*domain.CredentialCheck, error)
}

func (m *MockProviderClient) Token(ctx context.Context) (*domain.ProviderToken, error) {
	if m.TokenFunc != nil {
		return m.TokenFunc(ctx)
	}
	return &domain.ProviderToken{AccessToken: "test-token", ExpiresIn: "3599"}, nil
}

func (m *MockProviderClient) RegisterURLs(ctx context.Context) (*domain.URLRegistration, error) {
	if m.RegisterURLsFunc != nil {
		return m.RegisterURLsFunc(ctx)
	}
	return &domain.URLRegistration{ResponseDescription: "Success"}, nil
}

func (m *MockProviderClient) VerifyCredentials(ctx context.Context) (*domain.CredentialCheck, error) {
	if m.VerifyCredentialsFunc != nil {
		return m.VerifyCredentialsFunc(ctx)
	}
	return &domain.CredentialCheck{AccessToken: "test-token"}, nil
}
