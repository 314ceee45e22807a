package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tunafinance/pesaboard/internal/domain"
)

// StatisticsUseCase derives dashboard statistics from the current store
// snapshot. Everything is recomputed per read; memoization, when enabled, sits
// at the HTTP layer.
type StatisticsUseCase struct {
	repo TransactionRepository
	now  func() time.Time
}

// NewStatisticsUseCase creates a new StatisticsUseCase.
func NewStatisticsUseCase(repo TransactionRepository) *StatisticsUseCase {
	return &StatisticsUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Summary returns count, total, average and the last transaction.
func (uc *StatisticsUseCase) Summary(ctx context.Context) (domain.Summary, error) {
	transactions, err := uc.repo.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(transactions), nil
}

// CashFlowReport is a time-bucketed view of the transaction history with the
// derived float trend.
type CashFlowReport struct {
	Timeframe    domain.Timeframe
	Buckets      []domain.Bucket
	FloatTrend   []domain.FloatPoint
	CurrentFloat decimal.Decimal
	FloatAlert   domain.FloatAlertLevel
}

// CashFlow groups the history into trailing buckets for the given timeframe
// and computes the float trend across them.
func (uc *StatisticsUseCase) CashFlow(ctx context.Context, tf domain.Timeframe) (*CashFlowReport, error) {
	transactions, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	buckets := domain.GroupByTimeframe(transactions, tf, uc.now())
	trend := domain.FloatTrend(buckets)

	current := decimal.Zero
	if len(trend) > 0 {
		current = trend[len(trend)-1].Value
	}

	return &CashFlowReport{
		Timeframe:    tf,
		Buckets:      buckets,
		FloatTrend:   trend,
		CurrentFloat: current,
		FloatAlert:   domain.ClassifyFloat(current),
	}, nil
}

// CreditScoreResult pairs the heuristic score with its dashboard rating.
type CreditScoreResult struct {
	Score  int
	Rating string
}

// CreditScore computes the heuristic credit score over the full history.
func (uc *StatisticsUseCase) CreditScore(ctx context.Context) (CreditScoreResult, error) {
	transactions, err := uc.repo.List(ctx)
	if err != nil {
		return CreditScoreResult{}, err
	}
	score := domain.CreditScore(transactions)
	return CreditScoreResult{Score: score, Rating: domain.CreditRating(score)}, nil
}

// RiskAlerts evaluates the rule-based alert set over the full history.
func (uc *StatisticsUseCase) RiskAlerts(ctx context.Context) ([]domain.RiskAlert, error) {
	transactions, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.EvaluateRiskAlerts(transactions), nil
}
