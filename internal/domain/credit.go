package domain

import "github.com/shopspring/decimal"

// Credit score bounds and anchors. An empty history scores 500; otherwise the
// score starts at 600 and moves 10 points per 1000 KES of net cash flow,
// clamped to the standard 300-850 range.
const (
	creditScoreEmpty = 500
	creditScoreBase  = 600
	creditScoreMin   = 300
	creditScoreMax   = 850
)

var creditScoreStep = decimal.NewFromInt(1000)

// CreditScore computes the heuristic credit score over the full history.
// Deterministic, a pure function of the net transaction total.
func CreditScore(transactions []*Transaction) int {
	if len(transactions) == 0 {
		return creditScoreEmpty
	}
	net := Net(transactions)
	steps := net.Div(creditScoreStep).Floor().IntPart()
	score := creditScoreBase + int(steps)*10
	if score > creditScoreMax {
		score = creditScoreMax
	}
	if score < creditScoreMin {
		score = creditScoreMin
	}
	return score
}

// CreditRating maps a score to its dashboard label.
func CreditRating(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 650:
		return "Good"
	case score >= 600:
		return "Fair"
	default:
		return "Poor"
	}
}
