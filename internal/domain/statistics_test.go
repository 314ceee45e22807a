package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func tx(amount string, receivedAt time.Time) *Transaction {
	return &Transaction{
		Amount:     decimal.RequireFromString(amount),
		RawAmount:  amount,
		ReceivedAt: receivedAt,
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if s.Count != 0 {
		t.Fatalf("expected count 0, got %d", s.Count)
	}
	if !s.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", s.Total)
	}
	if !s.Average.IsZero() {
		t.Fatalf("expected zero average, got %s", s.Average)
	}
	if s.Last != nil {
		t.Fatalf("expected nil last transaction, got %+v", s.Last)
	}
}

func TestSummarize(t *testing.T) {
	now := time.Now().UTC()
	// Newest-first snapshot.
	transactions := []*Transaction{
		tx("-200", now),
		tx("500", now.Add(-time.Hour)),
		tx("300", now.Add(-2*time.Hour)),
	}

	s := Summarize(transactions)

	if s.Count != 3 {
		t.Fatalf("expected count 3, got %d", s.Count)
	}
	if !s.Total.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected total 600, got %s", s.Total)
	}
	if !s.Average.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected average 200, got %s", s.Average)
	}
	if s.Last != transactions[0] {
		t.Fatalf("expected last transaction to be the head record")
	}
	if !s.Average.Mul(decimal.NewFromInt(int64(s.Count))).Equal(s.Total) {
		t.Fatalf("expected average*count == total")
	}
}

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		input       string
		want        Timeframe
		expectError bool
	}{
		{input: "daily", want: TimeframeDaily},
		{input: "weekly", want: TimeframeWeekly},
		{input: "monthly", want: TimeframeMonthly},
		{input: "yearly", want: TimeframeYearly},
		{input: "", want: TimeframeDaily},
		{input: "hourly", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeframe(tt.input)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestGroupByTimeframe_Daily(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	transactions := []*Transaction{
		tx("100", now.Add(-time.Hour)),              // today
		tx("-50", now.AddDate(0, 0, -1)),            // yesterday
		tx("25", now.AddDate(0, 0, -6)),             // oldest visible day
		tx("9999", now.AddDate(0, 0, -7)),           // outside the window
		tx("40", now.AddDate(0, 0, -1).Add(-time.Hour)), // yesterday as well
	}

	buckets := GroupByTimeframe(transactions, TimeframeDaily, now)

	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	if !buckets[0].Total.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected oldest bucket total 25, got %s", buckets[0].Total)
	}
	if !buckets[5].Total.Equal(decimal.NewFromInt(-10)) {
		t.Fatalf("expected yesterday total -10, got %s", buckets[5].Total)
	}
	if !buckets[6].Total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected today total 100, got %s", buckets[6].Total)
	}
	if len(buckets[5].Transactions) != 2 {
		t.Fatalf("expected 2 transactions yesterday, got %d", len(buckets[5].Transactions))
	}
	if buckets[6].Label != "Sun" {
		t.Fatalf("expected label Sun for 2026-08-30, got %s", buckets[6].Label)
	}
}

func TestGroupByTimeframe_Weekly(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	transactions := []*Transaction{
		tx("100", now),                      // current week
		tx("-30", now.AddDate(0, 0, -8)),    // previous week
		tx("70", now.AddDate(0, 0, -27)),    // oldest week
		tx("5000", now.AddDate(0, 0, -28)),  // outside all windows
	}

	buckets := GroupByTimeframe(transactions, TimeframeWeekly, now)

	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Wk 1" || buckets[3].Label != "Wk 4" {
		t.Fatalf("unexpected labels: %s .. %s", buckets[0].Label, buckets[3].Label)
	}
	if !buckets[0].Total.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("expected oldest week total 70, got %s", buckets[0].Total)
	}
	if !buckets[2].Total.Equal(decimal.NewFromInt(-30)) {
		t.Fatalf("expected previous week total -30, got %s", buckets[2].Total)
	}
	if !buckets[3].Total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected current week total 100, got %s", buckets[3].Total)
	}
}

func TestGroupByTimeframe_Monthly(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	transactions := []*Transaction{
		tx("100", now),
		tx("-40", time.Date(2026, time.July, 2, 8, 0, 0, 0, time.UTC)),
		tx("10", time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)),
		tx("777", time.Date(2026, time.February, 15, 8, 0, 0, 0, time.UTC)), // outside
	}

	buckets := GroupByTimeframe(transactions, TimeframeMonthly, now)

	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Mar" || buckets[5].Label != "Aug" {
		t.Fatalf("unexpected labels: %s .. %s", buckets[0].Label, buckets[5].Label)
	}
	if !buckets[0].Total.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected March total 10, got %s", buckets[0].Total)
	}
	if !buckets[4].Total.Equal(decimal.NewFromInt(-40)) {
		t.Fatalf("expected July total -40, got %s", buckets[4].Total)
	}
}

func TestGroupByTimeframe_Yearly(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	transactions := []*Transaction{
		tx("100", now),
		tx("-40", time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)),
		tx("30", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		tx("999", time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)), // outside
	}

	buckets := GroupByTimeframe(transactions, TimeframeYearly, now)

	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "2024" || buckets[2].Label != "2026" {
		t.Fatalf("unexpected labels: %s .. %s", buckets[0].Label, buckets[2].Label)
	}
	if !buckets[1].Total.Equal(decimal.NewFromInt(-40)) {
		t.Fatalf("expected 2025 total -40, got %s", buckets[1].Total)
	}
}

func TestFloatTrend(t *testing.T) {
	buckets := []Bucket{
		{Label: "Mon", Total: decimal.NewFromInt(100)},
		{Label: "Tue", Total: decimal.NewFromInt(-300)},
		{Label: "Wed", Total: decimal.NewFromInt(50)},
		{Label: "Thu", Total: decimal.NewFromInt(200)},
	}

	points := FloatTrend(buckets)

	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}

	wantValues := []int64{100, -200, -150, 50}
	wantStatus := []FloatStatus{FloatSafe, FloatDanger, FloatDanger, FloatSafe}
	for i, p := range points {
		if !p.Value.Equal(decimal.NewFromInt(wantValues[i])) {
			t.Fatalf("point %d: expected %d, got %s", i, wantValues[i], p.Value)
		}
		if p.Status != wantStatus[i] {
			t.Fatalf("point %d: expected status %s, got %s", i, wantStatus[i], p.Status)
		}
	}
}

func TestClassifyFloat(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  FloatAlertLevel
	}{
		{name: "negative", value: -1, want: FloatAlertNegative},
		{name: "zero is low", value: 0, want: FloatAlertLow},
		{name: "under threshold", value: 999, want: FloatAlertLow},
		{name: "at threshold", value: 1000, want: FloatAlertNone},
		{name: "healthy", value: 25000, want: FloatAlertNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFloat(decimal.NewFromInt(tt.value)); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "integer", input: "500", want: "500", ok: true},
		{name: "decimal", input: "120.50", want: "120.5", ok: true},
		{name: "negative", input: "-75", want: "-75", ok: true},
		{name: "padded", input: " 10 ", want: "10", ok: true},
		{name: "empty", input: "", want: "0", ok: false},
		{name: "garbage", input: "abc", want: "0", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got.String() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
