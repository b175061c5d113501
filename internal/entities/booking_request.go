package entities

type TourType string

const (
	DayTour   TourType = "day_tour"
	RoundTour TourType = "round_tour"
)

func (t TourType) Valid() bool {
	return t == DayTour || t == RoundTour
}

// BookingSelection is what the customer picks in the tour details step.
// Days only applies to round tours.
type BookingSelection struct {
	TourType    TourType `json:"tour_type"`
	TourName    string   `json:"tour_name"`
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Adults      int      `json:"adults"`
	Children    int      `json:"children"`
}

type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	Notes      string `json:"notes"`
}

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Language string `json:"language"`
}

type BookingRequest struct {
	Personal  PersonalInfo     `json:"personal"`
	Selection BookingSelection `json:"selection"`
	Payment   PaymentDetails   `json:"payment"`
}

type BookingConfirmation struct {
	ConfirmationID string  `json:"confirmation_id"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
}
