package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/events"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/utils"
	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusExpired   = "expired"

	PaymentStatusPending  = "pending"
	PaymentStatusVerified = "verified"
	PaymentStatusFailed   = "failed"
)

// BookingService accepts a completed wizard and answers with a confirmation
// id, or a ValidationError, PaymentError or ServiceUnavailable error.
type BookingService interface {
	Submit(ctx context.Context, req entities.BookingRequest) (*entities.BookingConfirmation, error)
}

type BookingStore interface {
	CreateBooking(ctx context.Context, b *db.Booking) error
	UpdateBookingResult(ctx context.Context, id int, status, paymentStatus, setupIntentID string) error
}

// CardVerifier checks a card with the payment provider without charging it
// and returns the provider reference of the verification.
type CardVerifier interface {
	VerifyCard(ctx context.Context, card entities.PaymentDetails, personal entities.PersonalInfo, reference string) (string, error)
}

type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, booking db.Booking)
}

type bookingService struct {
	prices   PriceSource
	cards    CardVerifier
	store    BookingStore
	events   events.Publisher
	notifier BookingNotifier
	newID    func() string
}

func NewBookingService(prices PriceSource, cards CardVerifier, store BookingStore, publisher events.Publisher, notifier BookingNotifier) BookingService {
	return &bookingService{
		prices:   prices,
		cards:    cards,
		store:    store,
		events:   publisher,
		notifier: notifier,
		newID:    func() string { return uuid.NewString() },
	}
}

func (s *bookingService) Submit(ctx context.Context, req entities.BookingRequest) (*entities.BookingConfirmation, error) {
	if err := ValidateSubmission(req); err != nil {
		return nil, err
	}
	table, err := s.prices.Table(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("price table", err)
	}
	if err := validateSelection(req.Selection, table); err != nil {
		return nil, err
	}

	sel := req.Selection
	booking := &db.Booking{
		ConfirmationID: s.newID(),
		TourType:       string(sel.TourType),
		TourName:       sel.TourName,
		Destination:    strings.TrimSpace(sel.Destination),
		Adults:         sel.Adults,
		Children:       sel.Children,
		FullName:       strings.TrimSpace(req.Personal.FullName),
		Email:          strings.TrimSpace(req.Personal.Email),
		Phone:          strings.TrimSpace(req.Personal.Phone),
		Language:       req.Personal.Language,
		Notes:          req.Payment.Notes,
		TotalPrice:     CalculatePrice(sel, table),
		CardLast4:      utils.CardLast4(req.Payment.CardNumber),
		Status:         BookingStatusPending,
		PaymentStatus:  PaymentStatusPending,
	}
	if sel.TourType == entities.RoundTour {
		booking.Days = sel.Days
	}
	if booking.Language == "" {
		booking.Language = "en"
	}

	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, apperrors.Unavailable("booking store", err)
	}

	setupIntentID, err := s.cards.VerifyCard(ctx, req.Payment, req.Personal, booking.ConfirmationID)
	if err != nil {
		if uerr := s.store.UpdateBookingResult(ctx, booking.ID, BookingStatusCancelled, PaymentStatusFailed, ""); uerr != nil {
			log.Printf("Booking %s: could not record failed card verification: %v", booking.ConfirmationID, uerr)
		}
		return nil, err
	}

	if err := s.store.UpdateBookingResult(ctx, booking.ID, BookingStatusConfirmed, PaymentStatusVerified, setupIntentID); err != nil {
		return nil, apperrors.Unavailable("booking store", err)
	}
	booking.Status = BookingStatusConfirmed
	booking.PaymentStatus = PaymentStatusVerified
	booking.SetupIntentID = setupIntentID

	event := events.BookingConfirmed{
		ConfirmationID: booking.ConfirmationID,
		TourType:       booking.TourType,
		TourName:       booking.TourName,
		Destination:    booking.Destination,
		Days:           booking.Days,
		Adults:         booking.Adults,
		Children:       booking.Children,
		TotalPrice:     booking.TotalPrice,
		Email:          booking.Email,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.events.PublishBookingConfirmed(ctx, event); err != nil {
		log.Printf("Booking %s confirmed, but the event was not published: %v", booking.ConfirmationID, err)
	}
	s.notifier.BookingConfirmed(ctx, *booking)

	return &entities.BookingConfirmation{
		ConfirmationID: booking.ConfirmationID,
		TotalPrice:     booking.TotalPrice,
		Status:         booking.Status,
	}, nil
}

// MissingFields lists the empty required fields of a submission, using the
// JSON field names.
func MissingFields(sel entities.BookingSelection, pay entities.PaymentDetails) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"tour_name", sel.TourName},
		{"destination", sel.Destination},
		{"card_number", pay.CardNumber},
		{"expiry", pay.Expiry},
		{"cvv", pay.CVV},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func ValidateSubmission(req entities.BookingRequest) error {
	if missing := MissingFields(req.Selection, req.Payment); len(missing) > 0 {
		return apperrors.NewValidationError(missing...)
	}
	return nil
}

func validateSelection(sel entities.BookingSelection, table entities.PriceTable) error {
	var fields []string
	if !sel.TourType.Valid() {
		fields = append(fields, "tour_type")
	}
	if sel.Adults < 1 {
		fields = append(fields, "adults")
	}
	if sel.Children < 0 {
		fields = append(fields, "children")
	}
	if sel.TourType == entities.RoundTour && sel.Days < 1 {
		fields = append(fields, "days")
	}
	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields, Message: "invalid booking details: " + strings.Join(fields, ", ")}
	}
	if _, ok := table.UnitPrice(sel.TourType, sel.TourName); !ok {
		return &apperrors.ValidationError{
			Fields:  []string{"tour_name"},
			Message: fmt.Sprintf("unknown tour %q", sel.TourName),
		}
	}
	return nil
}
