package entities

type BookingEmailData struct {
	FullName       string
	ConfirmationID string
	TourName       string
	Destination    string
	Travellers     string
	TotalPrice     string
	CurrentYear    int
	Status         string
}
