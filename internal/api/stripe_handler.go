package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

type PaymentStatusUpdater interface {
	UpdatePaymentStatusBySetupIntent(ctx context.Context, setupIntentID, paymentStatus string) error
}

// StripeWebhookHandler records card verification results that Stripe reports
// after the booking request returned.
type StripeWebhookHandler struct {
	StripeSecret string
	bookings     PaymentStatusUpdater
}

func NewStripeWebhookHandler(stripeSecret string, bookings PaymentStatusUpdater) *StripeWebhookHandler {
	return &StripeWebhookHandler{StripeSecret: stripeSecret, bookings: bookings}
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, h.StripeSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var paymentStatus string
	switch event.Type {
	case "setup_intent.succeeded":
		paymentStatus = service.PaymentStatusVerified
	case "setup_intent.setup_failed":
		paymentStatus = service.PaymentStatusFailed
	default:
		log.Printf("Unhandled event type: %s", event.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	var si stripe.SetupIntent
	if err := json.Unmarshal(event.Data.Raw, &si); err != nil || si.ID == "" {
		log.Printf("Error parsing %s: %v", event.Type, err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.bookings.UpdatePaymentStatusBySetupIntent(r.Context(), si.ID, paymentStatus)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		// the intent was created outside the booking flow
		log.Printf("No booking for SetupIntent %s", si.ID)
	case err != nil:
		log.Printf("DB error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	default:
		log.Printf("SetupIntent %s: payment status %s", si.ID, paymentStatus)
	}

	w.WriteHeader(http.StatusOK)
}
