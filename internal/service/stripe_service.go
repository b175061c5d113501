package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/utils"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentmethod"
	"github.com/stripe/stripe-go/v82/setupintent"
)

// StripeService verifies cards with a confirmed off-session SetupIntent.
// Nothing is charged.
type StripeService struct {
	configured bool
}

func NewStripeService(secretKey string) *StripeService {
	if secretKey != "" {
		stripe.Key = secretKey
	}
	return &StripeService{configured: secretKey != ""}
}

func (s *StripeService) VerifyCard(ctx context.Context, card entities.PaymentDetails, personal entities.PersonalInfo, reference string) (string, error) {
	if !s.configured {
		return "", apperrors.Unavailable("payment provider not configured", nil)
	}
	month, year, err := utils.ParseExpiry(card.Expiry)
	if err != nil {
		return "", &apperrors.PaymentError{Reason: "invalid card expiry"}
	}

	pmParams := &stripe.PaymentMethodParams{
		Type: stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(utils.DigitsOnly(card.CardNumber)),
			ExpMonth: stripe.Int64(month),
			ExpYear:  stripe.Int64(year),
			CVC:      stripe.String(card.CVV),
		},
	}
	if personal.FullName != "" || personal.Email != "" {
		pmParams.BillingDetails = &stripe.PaymentMethodBillingDetailsParams{}
		if personal.FullName != "" {
			pmParams.BillingDetails.Name = stripe.String(personal.FullName)
		}
		if personal.Email != "" {
			pmParams.BillingDetails.Email = stripe.String(personal.Email)
		}
	}
	pmParams.Context = ctx
	pm, err := paymentmethod.New(pmParams)
	if err != nil {
		return "", mapStripeError(err)
	}

	siParams := &stripe.SetupIntentParams{
		PaymentMethod:      stripe.String(pm.ID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
		Usage:              stripe.String(string(stripe.SetupIntentUsageOffSession)),
		Description:        stripe.String("Tour booking " + reference),
	}
	siParams.AddMetadata("confirmation_id", reference)
	siParams.Context = ctx
	si, err := setupintent.New(siParams)
	if err != nil {
		return "", mapStripeError(err)
	}

	switch si.Status {
	case stripe.SetupIntentStatusSucceeded:
		log.Printf("SetupIntent %s succeeded for booking %s", si.ID, reference)
		return si.ID, nil
	case stripe.SetupIntentStatusRequiresAction:
		return "", &apperrors.PaymentError{Reason: "card requires additional authentication"}
	}
	return "", &apperrors.PaymentError{Reason: fmt.Sprintf("card could not be verified (%s)", si.Status)}
}

// mapStripeError turns card errors into PaymentError and everything else
// (network, auth, rate limits, outages) into ServiceUnavailable.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		reason := stripeErr.Msg
		if reason == "" {
			reason = string(stripeErr.Code)
		}
		return &apperrors.PaymentError{Reason: reason}
	}
	return apperrors.Unavailable("stripe", err)
}
