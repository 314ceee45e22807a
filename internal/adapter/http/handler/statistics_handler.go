package handler

import (
	"context"
	"net/http"

	"github.com/tunafinance/pesaboard/internal/adapter/http/dto"
	"github.com/tunafinance/pesaboard/internal/domain"
	"github.com/tunafinance/pesaboard/internal/usecase"
)

// StatisticsService defines the behavior needed by StatisticsHandler.
type StatisticsService interface {
	Summary(ctx context.Context) (domain.Summary, error)
	CashFlow(ctx context.Context, tf domain.Timeframe) (*usecase.CashFlowReport, error)
	CreditScore(ctx context.Context) (usecase.CreditScoreResult, error)
	RiskAlerts(ctx context.Context) ([]domain.RiskAlert, error)
}

// StatisticsHandler handles dashboard statistics requests.
type StatisticsHandler struct {
	statisticsUC StatisticsService
	env          string
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(statisticsUC StatisticsService, env string) *StatisticsHandler {
	return &StatisticsHandler{statisticsUC: statisticsUC, env: env}
}

// Summary returns count, total, average and the last transaction.
func (h *StatisticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statisticsUC.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute statistics", errorDetails(h.env, err))
		return
	}

	writeJSON(w, http.StatusOK, dto.StatisticsFromSummary(summary))
}

// CashFlow returns the time-bucketed report for the requested timeframe.
// Timeframe defaults to daily.
func (h *StatisticsHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	tf, err := domain.ParseTimeframe(r.URL.Query().Get("timeframe"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid timeframe", err.Error())
		return
	}

	report, err := h.statisticsUC.CashFlow(r.Context(), tf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute cash flow", errorDetails(h.env, err))
		return
	}

	writeJSON(w, http.StatusOK, dto.CashFlowFromReport(report))
}

// CreditScore returns the heuristic credit score and its rating.
func (h *StatisticsHandler) CreditScore(w http.ResponseWriter, r *http.Request) {
	result, err := h.statisticsUC.CreditScore(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute credit score", errorDetails(h.env, err))
		return
	}

	writeJSON(w, http.StatusOK, dto.CreditScoreResponse{Score: result.Score, Rating: result.Rating})
}

// RiskAlerts returns the rule-based alerts for the current history.
func (h *StatisticsHandler) RiskAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.statisticsUC.RiskAlerts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to evaluate risk alerts", errorDetails(h.env, err))
		return
	}

	writeJSON(w, http.StatusOK, dto.RiskAlertsFromDomain(alerts))
}
