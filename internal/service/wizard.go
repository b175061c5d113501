package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/cache"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/utils"
	"github.com/google/uuid"
)

// NextStep moves forward one step; the payment step is the last.
func NextStep(step int) int {
	if step >= entities.StepPayment {
		return entities.StepPayment
	}
	if step < entities.StepPersonalInfo {
		return entities.StepPersonalInfo
	}
	return step + 1
}

// PreviousStep moves back one step; personal info is the first.
func PreviousStep(step int) int {
	if step <= entities.StepPersonalInfo {
		return entities.StepPersonalInfo
	}
	if step > entities.StepPayment {
		return entities.StepPayment
	}
	return step - 1
}

// WizardService drives the booking wizard of each visitor session.
type WizardService struct {
	store         cache.WizardStore
	prices        PriceSource
	booking       BookingService
	submitTimeout time.Duration
	now           func() time.Time
}

func NewWizardService(store cache.WizardStore, prices PriceSource, booking BookingService, submitTimeout time.Duration) *WizardService {
	return &WizardService{
		store:         store,
		prices:        prices,
		booking:       booking,
		submitTimeout: submitTimeout,
		now:           time.Now,
	}
}

func (s *WizardService) Start(ctx context.Context) (*entities.WizardState, error) {
	now := s.now().UTC()
	state := &entities.WizardState{
		ID:   uuid.NewString(),
		Step: entities.StepPersonalInfo,
		Selection: entities.BookingSelection{
			TourType: entities.DayTour,
			Adults:   1,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, state); err != nil {
		return nil, apperrors.Unavailable("wizard store", err)
	}
	return state, nil
}

func (s *WizardService) Get(ctx context.Context, id string) (*entities.WizardState, error) {
	state, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Unavailable("wizard store", err)
	}
	if state == nil {
		return nil, fmt.Errorf("booking session %s: %w", id, apperrors.ErrNotFound)
	}
	return state, nil
}

func (s *WizardService) Discard(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return apperrors.Unavailable("wizard store", err)
	}
	return nil
}

func (s *WizardService) UpdatePersonal(ctx context.Context, id string, personal entities.PersonalInfo) (*entities.WizardState, error) {
	return s.mutate(ctx, id, func(state *entities.WizardState) {
		state.Personal = personal
	})
}

// UpdateSelection replaces the tour details. Switching the tour type clears
// the tour name, since names are only valid within their own table.
func (s *WizardService) UpdateSelection(ctx context.Context, id string, sel entities.BookingSelection) (*entities.WizardState, error) {
	return s.mutate(ctx, id, func(state *entities.WizardState) {
		if sel.TourType != state.Selection.TourType && sel.TourName == state.Selection.TourName {
			sel.TourName = ""
		}
		if sel.TourType != entities.RoundTour {
			sel.Days = 0
		}
		state.Selection = sel
	})
}

func (s *WizardService) UpdatePayment(ctx context.Context, id string, payment entities.PaymentDetails) (*entities.WizardState, error) {
	return s.mutate(ctx, id, func(state *entities.WizardState) {
		state.Payment = payment
	})
}

func (s *WizardService) Next(ctx context.Context, id string) (*entities.WizardState, error) {
	return s.mutate(ctx, id, func(state *entities.WizardState) {
		state.Step = NextStep(state.Step)
	})
}

func (s *WizardService) Previous(ctx context.Context, id string) (*entities.WizardState, error) {
	return s.mutate(ctx, id, func(state *entities.WizardState) {
		state.Step = PreviousStep(state.Step)
	})
}

func (s *WizardService) Price(ctx context.Context, id string) (entities.PriceSummary, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return entities.PriceSummary{}, err
	}
	table, err := s.prices.Table(ctx)
	if err != nil {
		return entities.PriceSummary{}, apperrors.Unavailable("price table", err)
	}
	return SummarizePrice(state.Selection, table), nil
}

// Submit sends the wizard to the booking service. It is only accepted on the
// payment step. Missing required fields set an error message and leave the
// step untouched; a session can only have one submission in flight and is
// booked at most once.
func (s *WizardService) Submit(ctx context.Context, id string) (*entities.WizardState, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.ConfirmationID != "" {
		return state, apperrors.ErrAlreadySubmitted
	}

	if state.Step != entities.StepPayment {
		verr := &apperrors.ValidationError{Fields: []string{"step"}, Message: "the booking can only be submitted from the payment step"}
		return s.rejectSubmit(ctx, state, "Please complete every step before submitting.", verr)
	}
	if missing := MissingFields(state.Selection, state.Payment); len(missing) > 0 {
		verr := apperrors.NewValidationError(missing...)
		return s.rejectSubmit(ctx, state, "Please fill in all required fields: "+strings.Join(missing, ", "), verr)
	}

	acquired, err := s.store.AcquireSubmit(ctx, id, s.submitTimeout+5*time.Second)
	if err != nil {
		return nil, apperrors.Unavailable("wizard store", err)
	}
	if !acquired {
		return state, apperrors.ErrSubmissionInFlight
	}
	defer func() {
		if err := s.store.ReleaseSubmit(context.WithoutCancel(ctx), id); err != nil {
			log.Printf("Booking session %s: could not release submit lock: %v", id, err)
		}
	}()

	// A submission that finished between the read above and the lock.
	if state, err = s.Get(ctx, id); err != nil {
		return nil, err
	}
	if state.ConfirmationID != "" {
		return state, apperrors.ErrAlreadySubmitted
	}

	state.Result = &entities.ResultMessage{Kind: entities.ResultPending, Text: "Submitting your booking..."}
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	// The booking must finish even if the visitor closes the page mid-request.
	submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.submitTimeout)
	defer cancel()
	conf, submitErr := s.booking.Submit(submitCtx, entities.BookingRequest{
		Personal:  state.Personal,
		Selection: state.Selection,
		Payment:   state.Payment,
	})

	latest, err := s.store.Get(submitCtx, id)
	if err != nil || latest == nil {
		latest = state
	}
	if submitErr != nil {
		latest.Result = &entities.ResultMessage{Kind: entities.ResultError, Text: submitFailureText(submitErr)}
	} else {
		latest.ConfirmationID = conf.ConfirmationID
		latest.Result = &entities.ResultMessage{
			Kind: entities.ResultSuccess,
			Text: fmt.Sprintf("Booking confirmed! Your confirmation number is %s.", conf.ConfirmationID),
		}
	}
	scrubCard(&latest.Payment, submitErr == nil)
	if err := s.save(submitCtx, latest); err != nil {
		log.Printf("Booking session %s: could not store submission result: %v", id, err)
	}
	return latest, submitErr
}

func (s *WizardService) rejectSubmit(ctx context.Context, state *entities.WizardState, text string, cause error) (*entities.WizardState, error) {
	state.Result = &entities.ResultMessage{Kind: entities.ResultError, Text: text}
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, cause
}

// scrubCard drops card data once the provider has seen it. A confirmed
// booking keeps the last four digits for display; a failed one must be
// re-entered.
func scrubCard(p *entities.PaymentDetails, confirmed bool) {
	p.CVV = ""
	if confirmed {
		p.CardNumber = utils.CardLast4(p.CardNumber)
	} else {
		p.CardNumber = ""
	}
}

// View masks the card and attaches the current price.
func (s *WizardService) View(ctx context.Context, state *entities.WizardState) entities.WizardView {
	view := entities.WizardView{
		ID:             state.ID,
		Step:           state.Step,
		Personal:       state.Personal,
		Selection:      state.Selection,
		Payment:        state.Payment,
		Result:         state.Result,
		ConfirmationID: state.ConfirmationID,
	}
	if last4 := utils.CardLast4(state.Payment.CardNumber); last4 != "" {
		view.Payment.CardNumber = "**** **** **** " + last4
	}
	if view.Payment.CVV != "" {
		view.Payment.CVV = "***"
	}
	if table, err := s.prices.Table(ctx); err == nil {
		view.Price = CalculatePrice(state.Selection, table)
	} else {
		log.Printf("Booking session %s: price table unavailable: %v", state.ID, err)
	}
	return view
}

func (s *WizardService) mutate(ctx context.Context, id string, change func(state *entities.WizardState)) (*entities.WizardState, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	change(state)
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *WizardService) save(ctx context.Context, state *entities.WizardState) error {
	state.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, state); err != nil {
		return apperrors.Unavailable("wizard store", err)
	}
	return nil
}

func submitFailureText(err error) string {
	switch apperrors.StatusFor(err) {
	case http.StatusBadRequest, http.StatusPaymentRequired:
		return err.Error()
	case http.StatusServiceUnavailable:
		return "Booking service is temporarily unavailable. Please try again."
	}
	return "Booking failed. Please try again."
}
