package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/auth"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/cache"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service/mocks"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/ws"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	router    *mux.Router
	booking   *mocks.MockBookingService
	prices    *mocks.MockContentRepository[entities.TourPrice]
	home      *mocks.MockContentRepository[entities.HomeConfig]
	blogs     *mocks.MockContentRepository[entities.Blog]
	taxis     *mocks.MockContentRepository[entities.Taxi]
	sections  *mocks.MockContentRepository[entities.AllowedSections]
	comments  *mocks.MockCommentRepository
	adminRepo *mocks.MockAdminAuthRepository
	blobs     *mocks.MockBlobStore
	geo       *mocks.MockGeocoder
}

type stubBookings struct{}

func (stubBookings) GetByConfirmationID(_ context.Context, id string) (*db.Booking, error) {
	if id != "conf-1" {
		return nil, apperrors.ErrNotFound
	}
	return &db.Booking{ConfirmationID: "conf-1", Email: "Guest@Example.com"}, nil
}

type noopPayments struct{}

func (noopPayments) UpdatePaymentStatusBySetupIntent(context.Context, string, string) error {
	return nil
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		booking:   new(mocks.MockBookingService),
		prices:    new(mocks.MockContentRepository[entities.TourPrice]),
		home:      new(mocks.MockContentRepository[entities.HomeConfig]),
		blogs:     new(mocks.MockContentRepository[entities.Blog]),
		taxis:     new(mocks.MockContentRepository[entities.Taxi]),
		sections:  new(mocks.MockContentRepository[entities.AllowedSections]),
		comments:  new(mocks.MockCommentRepository),
		adminRepo: new(mocks.MockAdminAuthRepository),
		blobs:     new(mocks.MockBlobStore),
		geo:       new(mocks.MockGeocoder),
	}
	env.prices.On("List", mock.Anything, mock.Anything).Return([]entities.TourPrice{
		{TourType: entities.DayTour, Name: "Kandy Day Tour", UnitPrice: 15000},
	}, nil).Maybe()

	prices := service.NewPriceService(env.prices, nil)
	notifications := service.NewNotificationService(
		service.NewContentService[entities.Notification]("notification", new(mocks.MockContentRepository[entities.Notification])), nil)
	services := Services{
		Home:          service.NewContentService[entities.HomeConfig]("home", env.home),
		Destinations:  service.NewContentService[entities.Destination]("destination", new(mocks.MockContentRepository[entities.Destination])),
		DayTours:      service.NewContentService[entities.DayTour]("day tour", new(mocks.MockContentRepository[entities.DayTour])),
		Blogs:         service.NewBlogService(service.NewContentService[entities.Blog]("blog", env.blogs), env.comments),
		Contact:       service.NewContentService[entities.ContactInfo]("contact", new(mocks.MockContentRepository[entities.ContactInfo])),
		Taxis:         service.NewContentService[entities.Taxi]("taxi", env.taxis),
		Notifications: notifications,
		Prices:        prices,
		Wizard:        service.NewWizardService(cache.NewMemoryWizardStore(time.Hour), prices, env.booking, 5*time.Second),
		Booking:       env.booking,
		AdminAuth:     service.NewAdminAuthService(env.adminRepo, testJWTSecret),
		Admin:         service.NewAdminService(service.NewContentService[entities.AllowedSections]("allowed sections", env.sections), nil),
		Blobs:         env.blobs,
		Geocoder:      env.geo,
		Payments:      noopPayments{},
		Bookings:      stubBookings{},
		WS:            NewWSHandler(ws.NewHub(), nil),
	}
	env.router = NewRouter(RouterConfig{JWTSecret: testJWTSecret, StripeWebhookSecret: "whsec_test"}, services)
	return env
}

func (env *testEnv) do(t *testing.T, method, path, role string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, err := auth.IssueToken(testJWTSecret, 1, role+"@example.com", role, time.Now())
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAccess(t *testing.T) {
	env := setupTestEnv(t)
	env.sections.On("First", mock.Anything).Return(&entities.AllowedSections{Sections: []string{"blogs"}}, nil)
	env.blogs.On("List", mock.Anything, mock.Anything).Return([]entities.Blog{}, nil)
	env.taxis.On("List", mock.Anything, mock.Anything).Return([]entities.Taxi{}, nil)

	tests := []struct {
		name     string
		method   string
		path     string
		role     string
		expected int
	}{
		{"no token", http.MethodGet, "/admin/blogs", "", http.StatusUnauthorized},
		{"admin on allowed section", http.MethodGet, "/admin/blogs", auth.RoleAdmin, http.StatusOK},
		{"admin on hidden section", http.MethodGet, "/admin/taxis", auth.RoleAdmin, http.StatusForbidden},
		{"super-admin on any section", http.MethodGet, "/admin/taxis", auth.RoleSuperAdmin, http.StatusOK},
		{"admin on section editor", http.MethodGet, "/admin/allowed-sections", auth.RoleAdmin, http.StatusForbidden},
		{"super-admin on section editor", http.MethodGet, "/admin/allowed-sections", auth.RoleSuperAdmin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, tt.role, nil)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestAdminMe(t *testing.T) {
	env := setupTestEnv(t)
	env.sections.On("First", mock.Anything).Return(&entities.AllowedSections{Sections: []string{"blogs", "taxis"}}, nil)

	rec := env.do(t, http.MethodGet, "/admin/me", auth.RoleAdmin, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var me MeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&me))
	assert.Equal(t, []string{"blogs", "taxis"}, me.Sections)
	assert.Equal(t, "/admin/home", me.Dashboard)
}

func TestCreateTaxi_RedirectFollowsRole(t *testing.T) {
	env := setupTestEnv(t)
	env.taxis.On("Create", mock.Anything, mock.AnythingOfType("*entities.Taxi")).
		Return(&entities.Taxi{Name: "Prius", Seats: 3}, nil)

	rec := env.do(t, http.MethodPost, "/admin/taxis", auth.RoleSuperAdmin, entities.Taxi{Name: "Prius", Seats: 3})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp SavedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "/super-admin/taxis", resp.Redirect)
}

func TestEditHomeSlides(t *testing.T) {
	env := setupTestEnv(t)
	env.home.On("First", mock.Anything).Return(&entities.HomeConfig{
		Slides: []entities.GallerySlide{{Title: "Sigiriya"}},
	}, nil)
	env.home.On("Upsert", mock.Anything, mock.Anything).Return(&entities.HomeConfig{}, nil)

	rec := env.do(t, http.MethodPatch, "/admin/home/slides", auth.RoleSuperAdmin,
		map[string]interface{}{"op": "remove", "index": 4})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/admin/home/slides", auth.RoleSuperAdmin,
		map[string]interface{}{"op": "update", "index": 0, "field": "title", "value": "Lion Rock"})
	assert.Equal(t, http.StatusOK, rec.Code)
	env.home.AssertCalled(t, "Upsert", mock.Anything, mock.MatchedBy(func(h *entities.HomeConfig) bool {
		return h.Slides[0].Title == "Lion Rock"
	}))
}

func TestPublicBlogsListOnlyPublished(t *testing.T) {
	env := setupTestEnv(t)
	env.blogs.On("List", mock.Anything, map[string]interface{}{"published": true, "author": "Ann"}).
		Return([]entities.Blog{{Title: "Kandy in a day", Published: true}}, nil)

	rec := env.do(t, http.MethodGet, "/api/blogs?author=Ann&published=false", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	env.blogs.AssertExpectations(t)
}

func TestAddComment(t *testing.T) {
	env := setupTestEnv(t)
	env.comments.On("AddComment", mock.Anything, "b1", mock.Anything).Return(nil)

	rec := env.do(t, http.MethodPost, "/api/blogs/b1/comments", "", CommentRequest{Name: "Ann", Message: "Great"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/blogs/b1/comments", "", CommentRequest{Name: "Ann"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWizardFlow(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/booking-wizard", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var view entities.WizardView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	base := "/api/booking-wizard/" + view.ID

	rec = env.do(t, http.MethodPost, base+"/submit", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var failed WizardErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&failed))
	assert.Equal(t, entities.ResultError, failed.Wizard.Result.Kind)
	assert.Equal(t, entities.StepPersonalInfo, failed.Wizard.Step)
	env.booking.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)

	rec = env.do(t, http.MethodPut, base+"/selection", "", entities.BookingSelection{
		TourType: entities.DayTour, TourName: "Kandy Day Tour", Destination: "Kandy", Adults: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, 30000.0, view.Price)

	rec = env.do(t, http.MethodPut, base+"/payment", "", entities.PaymentDetails{
		CardNumber: "4242424242424242", Expiry: "12/30", CVV: "123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "**** **** **** 4242", view.Payment.CardNumber)

	rec = env.do(t, http.MethodPost, base+"/submit", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env.booking.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)

	for i := 0; i < 3; i++ {
		rec = env.do(t, http.MethodPost, base+"/next", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	env.booking.On("Submit", mock.Anything, mock.Anything).
		Return(&entities.BookingConfirmation{ConfirmationID: "conf-7", TotalPrice: 30000, Status: "confirmed"}, nil).
		Once()
	rec = env.do(t, http.MethodPost, base+"/submit", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "conf-7", view.ConfirmationID)
	assert.Equal(t, entities.ResultSuccess, view.Result.Kind)
	assert.Equal(t, "**** **** **** 4242", view.Payment.CardNumber)
	assert.Empty(t, view.Payment.CVV)

	rec = env.do(t, http.MethodPost, base+"/submit", "", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	env.booking.AssertNumberOfCalls(t, "Submit", 1)

	rec = env.do(t, http.MethodGet, "/api/booking-wizard/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatelessBooking(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"confirmed", nil, http.StatusCreated},
		{"declined", &apperrors.PaymentError{Reason: "card declined"}, http.StatusPaymentRequired},
		{"invalid", apperrors.NewValidationError("cvv"), http.StatusBadRequest},
		{"provider down", apperrors.Unavailable("stripe", nil), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			if tt.err != nil {
				env.booking.On("Submit", mock.Anything, mock.Anything).Return(nil, tt.err)
			} else {
				env.booking.On("Submit", mock.Anything, mock.Anything).
					Return(&entities.BookingConfirmation{ConfirmationID: "c1"}, nil)
			}
			rec := env.do(t, http.MethodPost, "/api/bookings", "", entities.BookingRequest{})
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)
	env.adminRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	rec := env.do(t, http.MethodPost, "/api/admin/login", "", LoginRequest{Email: "nobody@example.com", Password: "x"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpload(t *testing.T) {
	env := setupTestEnv(t)
	env.blobs.On("Upload", mock.Anything, mock.Anything, "hero.jpg", "blogs").
		Return("https://res.cloudinary.com/demo/hero.jpg", nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("folder", "blogs"))
	part, err := mw.CreateFormFile("file", "hero.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	token, err := auth.IssueToken(testJWTSecret, 1, "a@example.com", auth.RoleAdmin, time.Now())
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "res.cloudinary.com")
}

func TestGeocode(t *testing.T) {
	env := setupTestEnv(t)
	env.geo.On("Forward", mock.Anything, "Nowhere").Return(entities.LatLng{}, apperrors.ErrNotFound)

	rec := env.do(t, http.MethodGet, "/api/geocode?address=Nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/geocode/reverse?lat=abc&lng=1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripeWebhook_BadSignature(t *testing.T) {
	env := setupTestEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewBufferString(`{"type":"setup_intent.succeeded"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bad")
	rec := httptest.NewRecorder()

	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingLookup(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{"matching email", "/api/bookings/conf-1?email=guest@example.com", http.StatusOK},
		{"other email", "/api/bookings/conf-1?email=someone@example.com", http.StatusNotFound},
		{"no email", "/api/bookings/conf-1", http.StatusBadRequest},
		{"unknown booking", "/api/bookings/conf-2?email=guest@example.com", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestPriceTable(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/prices/table", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp entities.PricesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 15000.0, resp.DayTours["Kandy Day Tour"])
	assert.Equal(t, []string{"Kandy Day Tour"}, resp.DayTourNames)
	assert.Empty(t, resp.RoundTourNames)
}
