package dto

import (
	"encoding/json"

	"github.com/tunafinance/pesaboard/internal/usecase"
)

// AmountString is a transaction amount as delivered by the provider. The
// provider sends TransAmount as a JSON string or a JSON number depending on
// the channel, so both decode to the raw text.
type AmountString string

func (a *AmountString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AmountString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = AmountString(n.String())
	return nil
}

// C2BCallbackRequest is the provider's webhook payload, shared by the
// confirmation and validation endpoints. Field presence is not guaranteed;
// missing fields decode to empty strings and are never a reason to reject.
type C2BCallbackRequest struct {
	TransactionType   string       `json:"TransactionType"`
	TransID           string       `json:"TransID"`
	TransTime         string       `json:"TransTime"`
	TransAmount       AmountString `json:"TransAmount"`
	BusinessShortCode string       `json:"BusinessShortCode"`
	BillRefNumber     string       `json:"BillRefNumber"`
	MSISDN            string       `json:"MSISDN"`
	FirstName         string       `json:"FirstName"`
}

// ToUseCaseInput converts to use case input.
func (r *C2BCallbackRequest) ToUseCaseInput() usecase.ConfirmationInput {
	return usecase.ConfirmationInput{
		TransAmount:     string(r.TransAmount),
		MSISDN:          r.MSISDN,
		BillRefNumber:   r.BillRefNumber,
		TransactionType: r.TransactionType,
		TransID:         r.TransID,
		TransTime:       r.TransTime,
	}
}
