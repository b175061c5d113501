package mocks

import (
	"context"
	"io"
	"time"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Submit(ctx context.Context, req entities.BookingRequest) (*entities.BookingConfirmation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BookingConfirmation), args.Error(1)
}

type MockPriceSource struct {
	mock.Mock
}

func (m *MockPriceSource) Table(ctx context.Context) (entities.PriceTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.PriceTable), args.Error(1)
}

type MockCardVerifier struct {
	mock.Mock
}

func (m *MockCardVerifier) VerifyCard(ctx context.Context, card entities.PaymentDetails, personal entities.PersonalInfo, reference string) (string, error) {
	args := m.Called(ctx, card, personal, reference)
	return args.String(0), args.Error(1)
}

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) CreateBooking(ctx context.Context, b *db.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingStore) UpdateBookingResult(ctx context.Context, id int, status, paymentStatus, setupIntentID string) error {
	args := m.Called(ctx, id, status, paymentStatus, setupIntentID)
	return args.Error(0)
}

type MockBookingNotifier struct {
	mock.Mock
}

func (m *MockBookingNotifier) BookingConfirmed(ctx context.Context, booking db.Booking) {
	m.Called(ctx, booking)
}

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishBookingConfirmed(ctx context.Context, event events.BookingConfirmed) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEmail(toEmail, toName, subject, plainTextContent, htmlContent string) error {
	args := m.Called(toEmail, toName, subject, plainTextContent, htmlContent)
	return args.Error(0)
}

type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) SendSMS(to, body string) error {
	args := m.Called(to, body)
	return args.Error(0)
}

type MockAlerter struct {
	mock.Mock
}

func (m *MockAlerter) Alert(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Forward(ctx context.Context, address string) (entities.LatLng, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(entities.LatLng), args.Error(1)
}

func (m *MockGeocoder) Reverse(ctx context.Context, point entities.LatLng) (string, error) {
	args := m.Called(ctx, point)
	return args.String(0), args.Error(1)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	args := m.Called(ctx, file, filename, folder)
	return args.String(0), args.Error(1)
}

type MockStaleBookingStore struct {
	mock.Mock
}

func (m *MockStaleBookingStore) GetPendingBookingIDsOlderThan(ctx context.Context, before time.Time) ([]int, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockStaleBookingStore) UpdateBookingStatuses(ctx context.Context, ids []int, status string) error {
	args := m.Called(ctx, ids, status)
	return args.Error(0)
}

type MockBookingLister struct {
	mock.Mock
}

func (m *MockBookingLister) ListBookings(ctx context.Context, filter entities.BookingFilter) ([]db.Booking, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]db.Booking), args.Get(1).(int64), args.Error(2)
}
