package entities

import "time"

const (
	StepPersonalInfo = 1
	StepTourDetails  = 2
	StepPriceSummary = 3
	StepPayment      = 4
)

type ResultKind string

const (
	ResultPending ResultKind = "pending"
	ResultSuccess ResultKind = "success"
	ResultError   ResultKind = "error"
)

type ResultMessage struct {
	Kind ResultKind `json:"kind"`
	Text string     `json:"text"`
}

// WizardState is the booking wizard of a single visitor session.
type WizardState struct {
	ID             string           `json:"id"`
	Step           int              `json:"step"`
	Personal       PersonalInfo     `json:"personal"`
	Selection      BookingSelection `json:"selection"`
	Payment        PaymentDetails   `json:"payment"`
	Result         *ResultMessage   `json:"result,omitempty"`
	ConfirmationID string           `json:"confirmation_id,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Pending reports whether a submission is still waiting for the booking service.
func (s *WizardState) Pending() bool {
	return s.Result != nil && s.Result.Kind == ResultPending
}

// WizardView is what the API returns: the state with the card masked and the
// derived price attached.
type WizardView struct {
	ID             string           `json:"id"`
	Step           int              `json:"step"`
	Personal       PersonalInfo     `json:"personal"`
	Selection      BookingSelection `json:"selection"`
	Payment        PaymentDetails   `json:"payment"`
	Price          float64          `json:"price"`
	Result         *ResultMessage   `json:"result,omitempty"`
	ConfirmationID string           `json:"confirmation_id,omitempty"`
}
