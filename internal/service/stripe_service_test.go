package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func TestMapStripeError(t *testing.T) {
	t.Run("card error becomes payment error", func(t *testing.T) {
		err := mapStripeError(&stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."})
		var paymentErr *apperrors.PaymentError
		require.True(t, errors.As(err, &paymentErr))
		assert.Equal(t, "Your card was declined.", paymentErr.Reason)
	})

	t.Run("api error becomes unavailable", func(t *testing.T) {
		err := mapStripeError(&stripe.Error{Type: stripe.ErrorTypeAPI, HTTPStatusCode: 500})
		assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
	})

	t.Run("network error becomes unavailable", func(t *testing.T) {
		err := mapStripeError(errors.New("dial tcp: i/o timeout"))
		assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
	})
}

func TestStripeService_NotConfigured(t *testing.T) {
	svc := &StripeService{}
	_, err := svc.VerifyCard(context.Background(), entities.PaymentDetails{
		CardNumber: "4242424242424242", Expiry: "12/30", CVV: "123",
	}, entities.PersonalInfo{}, "ref")
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}

func TestStripeService_InvalidExpiry(t *testing.T) {
	svc := &StripeService{configured: true}
	_, err := svc.VerifyCard(context.Background(), entities.PaymentDetails{
		CardNumber: "4242424242424242", Expiry: "next year", CVV: "123",
	}, entities.PersonalInfo{}, "ref")
	var paymentErr *apperrors.PaymentError
	assert.True(t, errors.As(err, &paymentErr))
}
