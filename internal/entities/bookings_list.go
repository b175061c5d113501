package entities

import "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"

type BookingsList struct {
	Total    int64        `json:"total"`
	Limit    int          `json:"limit"`
	Offset   int          `json:"offset"`
	Bookings []db.Booking `json:"bookings"`
}

type BookingFilter struct {
	Status   string
	TourType string
	Date     string
	Limit    int
	Offset   int
}
