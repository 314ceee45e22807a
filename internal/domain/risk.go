package domain

// RiskAlert is one rule-based warning derived from the transaction history.
type RiskAlert struct {
	Code    string
	Message string
}

// Risk alert codes. Rules are evaluated independently; any subset may fire.
const (
	RiskSpendingMonitor     = "spending_monitor"
	RiskNegativeCashFlow    = "negative_cash_flow"
	RiskConsecutiveExpenses = "consecutive_expenses"
)

// consecutiveExpenseWindow is the number of most recent records that must all
// be expenses for the consecutive-expense rule to fire.
const consecutiveExpenseWindow = 5

// EvaluateRiskAlerts runs the rule set over a newest-first snapshot.
// An empty history produces no alerts.
func EvaluateRiskAlerts(transactions []*Transaction) []RiskAlert {
	if len(transactions) == 0 {
		return nil
	}

	var alerts []RiskAlert

	if transactions[0].IsExpense() {
		alerts = append(alerts, RiskAlert{
			Code:    RiskSpendingMonitor,
			Message: "Recent transaction was an expense. Monitor your spending.",
		})
	}

	if Net(transactions).IsNegative() {
		alerts = append(alerts, RiskAlert{
			Code:    RiskNegativeCashFlow,
			Message: "Warning: Your net cash flow is negative.",
		})
	}

	if len(transactions) >= consecutiveExpenseWindow {
		allExpenses := true
		for _, t := range transactions[:consecutiveExpenseWindow] {
			if !t.IsExpense() {
				allExpenses = false
				break
			}
		}
		if allExpenses {
			alerts = append(alerts, RiskAlert{
				Code:    RiskConsecutiveExpenses,
				Message: "Alert: 5 consecutive expenses detected.",
			})
		}
	}

	return alerts
}
