package db

import "time"

type Booking struct {
	ID             int       `db:"id" json:"id"`
	ConfirmationID string    `db:"confirmation_id" json:"confirmation_id"`
	TourType       string    `db:"tour_type" json:"tour_type"`
	TourName       string    `db:"tour_name" json:"tour_name"`
	Destination    string    `db:"destination" json:"destination"`
	Days           int       `db:"days" json:"days"`
	Adults         int       `db:"adults" json:"adults"`
	Children       int       `db:"children" json:"children"`
	FullName       string    `db:"full_name" json:"full_name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	Language       string    `db:"language" json:"language"`
	Notes          string    `db:"notes" json:"notes"`
	TotalPrice     float64   `db:"total_price" json:"total_price"`
	CardLast4      string    `db:"card_last4" json:"card_last4"`
	Status         string    `db:"status" json:"status"`
	PaymentStatus  string    `db:"payment_status" json:"payment_status"`
	SetupIntentID  string    `db:"setup_intent_id" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type Admin struct {
	ID           int    `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
}
