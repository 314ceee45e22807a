package dto

import (
	"encoding/json"
	"testing"
)

func TestC2BCallbackRequest_AmountDecodesBothTypes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string amount", `{"TransAmount":"250.50"}`, "250.50"},
		{"number amount", `{"TransAmount":250.5}`, "250.5"},
		{"integer amount", `{"TransAmount":500}`, "500"},
		{"negative number", `{"TransAmount":-75}`, "-75"},
		{"missing amount", `{}`, ""},
		{"null amount", `{"TransAmount":null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req C2BCallbackRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if got := string(req.TransAmount); got != tt.want {
				t.Fatalf("expected amount %q, got %q", tt.want, got)
			}
			if got := req.ToUseCaseInput().TransAmount; got != tt.want {
				t.Fatalf("expected input amount %q, got %q", tt.want, got)
			}
		})
	}
}

func TestC2BCallbackRequest_NonNumericAmountStillDecodes(t *testing.T) {
	var req C2BCallbackRequest
	body := `{"TransAmount":"not-a-number","TransID":"X1"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if string(req.TransAmount) != "not-a-number" {
		t.Fatalf("expected raw text to survive, got %q", req.TransAmount)
	}
}
