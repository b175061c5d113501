package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/jmoiron/sqlx"
)

type BookingRepository struct {
	DB *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

const bookingColumns = `id, confirmation_id, tour_type, tour_name, destination, days, adults, children,
	full_name, email, phone, language, notes, total_price, card_last4, status, payment_status,
	setup_intent_id, created_at, updated_at`

func (r *BookingRepository) CreateBooking(ctx context.Context, b *db.Booking) error {
	query := `
	INSERT INTO bookings (confirmation_id, tour_type, tour_name, destination, days, adults, children,
		full_name, email, phone, language, notes, total_price, card_last4, status, payment_status, setup_intent_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowxContext(ctx, query,
		b.ConfirmationID, b.TourType, b.TourName, b.Destination, b.Days, b.Adults, b.Children,
		b.FullName, b.Email, b.Phone, b.Language, b.Notes, b.TotalPrice, b.CardLast4, b.Status,
		b.PaymentStatus, b.SetupIntentID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting booking %s: %w", b.ConfirmationID, err)
	}
	return nil
}

func (r *BookingRepository) GetByConfirmationID(ctx context.Context, confirmationID string) (*db.Booking, error) {
	var b db.Booking
	err := r.DB.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE confirmation_id = $1`, confirmationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error loading booking %s: %w", confirmationID, err)
	}
	return &b, nil
}

func (r *BookingRepository) ListBookings(ctx context.Context, f entities.BookingFilter) ([]db.Booking, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	idx := 1

	if f.Status != "" {
		where += " AND status = $" + strconv.Itoa(idx)
		args = append(args, f.Status)
		idx++
	}
	if f.TourType != "" {
		where += " AND tour_type = $" + strconv.Itoa(idx)
		args = append(args, f.TourType)
		idx++
	}
	if f.Date != "" {
		where += " AND DATE(created_at) = $" + strconv.Itoa(idx)
		args = append(args, f.Date)
		idx++
	}

	var total int64
	if err := r.DB.GetContext(ctx, &total, "SELECT COUNT(*) FROM bookings"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}

	query := "SELECT " + bookingColumns + " FROM bookings" + where +
		" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(idx) + " OFFSET $" + strconv.Itoa(idx+1)
	args = append(args, f.Limit, f.Offset)

	bookings := []db.Booking{}
	if err := r.DB.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("error listing bookings: %w", err)
	}
	return bookings, total, nil
}

// UpdatePaymentStatusBySetupIntent is driven by the Stripe webhook.
func (r *BookingRepository) UpdatePaymentStatusBySetupIntent(ctx context.Context, setupIntentID, paymentStatus string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE bookings SET payment_status = $1, updated_at = NOW() WHERE setup_intent_id = $2`,
		paymentStatus, setupIntentID)
	if err != nil {
		return fmt.Errorf("error updating payment status for setup intent %s: %w", setupIntentID, err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) UpdateBookingResult(ctx context.Context, id int, status, paymentStatus, setupIntentID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE bookings SET status = $1, payment_status = $2, setup_intent_id = $3, updated_at = NOW() WHERE id = $4`,
		status, paymentStatus, setupIntentID, id)
	if err != nil {
		return fmt.Errorf("error updating booking %d: %w", id, err)
	}
	return nil
}
