package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds aggregate figures over the full transaction history.
type Summary struct {
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
	Last    *Transaction
}

// Summarize computes count, total, average and the most recent record over a
// newest-first snapshot. Average is zero when the snapshot is empty.
func Summarize(transactions []*Transaction) Summary {
	s := Summary{
		Count:   len(transactions),
		Total:   decimal.Zero,
		Average: decimal.Zero,
	}
	for _, t := range transactions {
		s.Total = s.Total.Add(t.Amount)
	}
	if s.Count > 0 {
		s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count)))
		s.Last = transactions[0]
	}
	return s
}

// Net returns the sum of all transaction amounts.
func Net(transactions []*Transaction) decimal.Decimal {
	net := decimal.Zero
	for _, t := range transactions {
		net = net.Add(t.Amount)
	}
	return net
}

// Timeframe selects a trailing bucketing window for cash flow reports.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeYearly  Timeframe = "yearly"
)

// Bucket counts per timeframe: 7 days, 4 weeks, 6 months, 3 years.
const (
	dailyBuckets   = 7
	weeklyBuckets  = 4
	monthlyBuckets = 6
	yearlyBuckets  = 3
)

// ParseTimeframe parses a timeframe query value.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeYearly:
		return Timeframe(s), nil
	case "":
		return TimeframeDaily, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeframe, s)
	}
}

// Bucket is one time window of a cash flow report.
type Bucket struct {
	Label        string
	Total        decimal.Decimal
	Transactions []*Transaction
}

// GroupByTimeframe partitions transactions into trailing buckets anchored at
// now, oldest bucket first. Transactions outside every window are dropped.
func GroupByTimeframe(transactions []*Transaction, tf Timeframe, now time.Time) []Bucket {
	switch tf {
	case TimeframeWeekly:
		return groupWeekly(transactions, now)
	case TimeframeMonthly:
		return groupMonthly(transactions, now)
	case TimeframeYearly:
		return groupYearly(transactions, now)
	default:
		return groupDaily(transactions, now)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func groupDaily(transactions []*Transaction, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, dailyBuckets)
	for i := dailyBuckets - 1; i >= 0; i-- {
		day := startOfDay(now.AddDate(0, 0, -i))
		b := Bucket{Label: day.Format("Mon"), Total: decimal.Zero}
		for _, t := range transactions {
			at := t.ReceivedAt.In(now.Location())
			if at.Year() == day.Year() && at.YearDay() == day.YearDay() {
				b.Total = b.Total.Add(t.Amount)
				b.Transactions = append(b.Transactions, t)
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func groupWeekly(transactions []*Transaction, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, weeklyBuckets)
	for i := weeklyBuckets - 1; i >= 0; i-- {
		// Seven-day window ending today for i=0, the seven days before
		// that for i=1, and so on.
		start := startOfDay(now).AddDate(0, 0, -(i*7)-6)
		end := start.AddDate(0, 0, 7)
		b := Bucket{Label: fmt.Sprintf("Wk %d", weeklyBuckets-i), Total: decimal.Zero}
		for _, t := range transactions {
			at := t.ReceivedAt.In(now.Location())
			if !at.Before(start) && at.Before(end) {
				b.Total = b.Total.Add(t.Amount)
				b.Transactions = append(b.Transactions, t)
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func groupMonthly(transactions []*Transaction, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, monthlyBuckets)
	for i := monthlyBuckets - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		b := Bucket{Label: month.Format("Jan"), Total: decimal.Zero}
		for _, t := range transactions {
			at := t.ReceivedAt.In(now.Location())
			if at.Year() == month.Year() && at.Month() == month.Month() {
				b.Total = b.Total.Add(t.Amount)
				b.Transactions = append(b.Transactions, t)
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func groupYearly(transactions []*Transaction, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, yearlyBuckets)
	for i := yearlyBuckets - 1; i >= 0; i-- {
		year := now.Year() - i
		b := Bucket{Label: strconv.Itoa(year), Total: decimal.Zero}
		for _, t := range transactions {
			if t.ReceivedAt.In(now.Location()).Year() == year {
				b.Total = b.Total.Add(t.Amount)
				b.Transactions = append(b.Transactions, t)
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// FloatStatus classifies one float trend point for display.
type FloatStatus string

const (
	FloatSafe   FloatStatus = "safe"
	FloatDanger FloatStatus = "danger"
)

// FloatPoint is the running cash position at the end of one bucket.
type FloatPoint struct {
	Label  string
	Value  decimal.Decimal
	Status FloatStatus
}

// FloatTrend computes the running prefix sum of bucket totals across the
// ordered bucket sequence. Each point is classified safe (non-negative) or
// danger (negative); there is no interpolation across the sign change.
func FloatTrend(buckets []Bucket) []FloatPoint {
	points := make([]FloatPoint, 0, len(buckets))
	running := decimal.Zero
	for _, b := range buckets {
		running = running.Add(b.Total)
		status := FloatSafe
		if running.IsNegative() {
			status = FloatDanger
		}
		points = append(points, FloatPoint{Label: b.Label, Value: running, Status: status})
	}
	return points
}

// FloatAlertLevel grades the current float for the dashboard banner.
type FloatAlertLevel string

const (
	FloatAlertNone     FloatAlertLevel = "none"
	FloatAlertLow      FloatAlertLevel = "low"
	FloatAlertNegative FloatAlertLevel = "negative"
)

// lowFloatThreshold is the KES balance under which the dashboard warns the
// merchant to watch spending.
var lowFloatThreshold = decimal.NewFromInt(1000)

// ClassifyFloat grades the current float: negative balance, low balance
// (under 1000 KES), or none.
func ClassifyFloat(current decimal.Decimal) FloatAlertLevel {
	switch {
	case current.IsNegative():
		return FloatAlertNegative
	case current.LessThan(lowFloatThreshold):
		return FloatAlertLow
	default:
		return FloatAlertNone
	}
}
