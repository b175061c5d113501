package api

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/auth"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
)

// Services is everything the router needs to build its handlers.
type Services struct {
	Home          *service.ContentService[entities.HomeConfig]
	Destinations  *service.ContentService[entities.Destination]
	DayTours      *service.ContentService[entities.DayTour]
	Blogs         *service.BlogService
	Contact       *service.ContentService[entities.ContactInfo]
	Taxis         *service.ContentService[entities.Taxi]
	Notifications *service.NotificationService
	Prices        *service.PriceService
	Wizard        *service.WizardService
	Booking       service.BookingService
	AdminAuth     service.AdminAuthService
	Admin         *service.AdminService
	Blobs         service.BlobStore
	Geocoder      service.Geocoder
	Payments      PaymentStatusUpdater
	Bookings      BookingLookup
	WS            *WSHandler
}

type RouterConfig struct {
	JWTSecret           string
	StripeWebhookSecret string
	AllowedOrigins      []string
}

func NewRouter(cfg RouterConfig, s Services) *mux.Router {
	home := NewSingletonHandler(s.Home, service.SectionHome)
	contact := NewSingletonHandler(s.Contact, service.SectionContact)
	destinations := NewContentHandler(s.Destinations, service.SectionDestinations).
		WithFilters(map[string]string{"name": "name"})
	dayTours := NewContentHandler(s.DayTours, service.SectionDayTours).
		WithFilters(map[string]string{"location": "location"})
	blogs := NewContentHandler(s.Blogs.Blogs, service.SectionBlogs).
		WithFilters(map[string]string{"author": "author", "published": "published"})
	taxis := NewContentHandler(s.Taxis, service.SectionTaxis).
		WithFilters(map[string]string{"ac": "ac"})
	notifications := NewContentHandler(s.Notifications.Store, service.SectionNotifications).
		WithFilters(map[string]string{"kind": "kind", "read": "read"})
	prices := NewContentHandler(s.Prices.Prices, service.SectionPrices).
		WithFilters(map[string]string{"tour_type": "tourType"})

	blogHandler := NewBlogHandler(s.Blogs)
	wizard := NewWizardHandler(s.Wizard)
	booking := NewBookingHandler(s.Booking, s.Bookings)
	adminAuth := NewAdminAuthHandler(s.AdminAuth)
	admin := NewAdminHandler(s.Admin, s.Notifications)
	uploads := NewUploadHandler(s.Blobs)
	geocode := NewGeocodeHandler(s.Geocoder)
	stripeWebhook := NewStripeWebhookHandler(cfg.StripeWebhookSecret, s.Payments)
	priceTable := NewPriceTableHandler(s.Prices)

	r := mux.NewRouter()

	// Public endpoints
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", Health).Methods("GET")
	api.HandleFunc("/home", home.Get).Methods("GET")
	api.HandleFunc("/destinations", destinations.List).Methods("GET")
	api.HandleFunc("/destinations/{id}", destinations.Get).Methods("GET")
	api.HandleFunc("/day-tours", dayTours.List).Methods("GET")
	api.HandleFunc("/day-tours/{id}", dayTours.Get).Methods("GET")
	publicBlogs := blogs.Public(map[string]interface{}{"published": true})
	api.HandleFunc("/blogs", publicBlogs.List).Methods("GET")
	api.HandleFunc("/blogs/{id}", blogs.Get).Methods("GET")
	api.HandleFunc("/blogs/{id}/comments", blogHandler.AddComment).Methods("POST")
	api.HandleFunc("/contact", contact.Get).Methods("GET")
	api.HandleFunc("/taxis", taxis.List).Methods("GET")
	api.HandleFunc("/prices", prices.List).Methods("GET")
	api.HandleFunc("/prices/table", priceTable.Get).Methods("GET")

	api.HandleFunc("/booking-wizard", wizard.Start).Methods("POST")
	api.HandleFunc("/booking-wizard/{id}", wizard.Get).Methods("GET")
	api.HandleFunc("/booking-wizard/{id}", wizard.Discard).Methods("DELETE")
	api.HandleFunc("/booking-wizard/{id}/personal", wizard.UpdatePersonal).Methods("PUT")
	api.HandleFunc("/booking-wizard/{id}/selection", wizard.UpdateSelection).Methods("PUT")
	api.HandleFunc("/booking-wizard/{id}/payment", wizard.UpdatePayment).Methods("PUT")
	api.HandleFunc("/booking-wizard/{id}/next", wizard.Next).Methods("POST")
	api.HandleFunc("/booking-wizard/{id}/previous", wizard.Previous).Methods("POST")
	api.HandleFunc("/booking-wizard/{id}/price", wizard.Price).Methods("GET")
	api.HandleFunc("/booking-wizard/{id}/submit", wizard.Submit).Methods("POST")
	api.HandleFunc("/bookings", booking.Submit).Methods("POST")
	api.HandleFunc("/bookings/{confirmationId}", booking.Get).Methods("GET")

	api.HandleFunc("/geocode", geocode.Forward).Methods("GET")
	api.HandleFunc("/geocode/reverse", geocode.Reverse).Methods("GET")
	api.HandleFunc("/stripe/webhook", stripeWebhook.HandleWebhook).Methods("POST")
	api.HandleFunc("/admin/login", adminAuth.Login).Methods("POST")

	// Admin endpoints (protected)
	adminRouter := r.PathPrefix("/admin").Subrouter()
	adminRouter.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	adminRouter.HandleFunc("/me", admin.Me).Methods("GET")
	adminRouter.HandleFunc("/ws", s.WS.Serve).Methods("GET")
	adminRouter.HandleFunc("/uploads", uploads.Upload).Methods("POST")

	section := func(name string) *mux.Router {
		sub := adminRouter.PathPrefix("/" + name).Subrouter()
		sub.Use(auth.RequireSection(s.Admin, name))
		return sub
	}

	homeRoutes := section(service.SectionHome)
	homeRoutes.HandleFunc("", home.Get).Methods("GET")
	homeRoutes.HandleFunc("", home.Save).Methods("PUT")
	homeRoutes.HandleFunc("/slides", ListEditHandler(s.Home, service.SectionHome,
		func(h *entities.HomeConfig) *[]entities.GallerySlide { return &h.Slides })).Methods("PATCH")

	contactRoutes := section(service.SectionContact)
	contactRoutes.HandleFunc("", contact.Get).Methods("GET")
	contactRoutes.HandleFunc("", contact.Save).Methods("PUT")
	contactRoutes.HandleFunc("/social-links", ListEditHandler(s.Contact, service.SectionContact,
		func(c *entities.ContactInfo) *[]entities.SocialLink { return &c.SocialLinks })).Methods("PATCH")
	contactRoutes.HandleFunc("/offices", ListEditHandler(s.Contact, service.SectionContact,
		func(c *entities.ContactInfo) *[]entities.OfficeLocation { return &c.Offices })).Methods("PATCH")

	registerCRUD(section(service.SectionDestinations), destinations)
	dayTourRoutes := section(service.SectionDayTours)
	registerCRUD(dayTourRoutes, dayTours)
	dayTourRoutes.HandleFunc("/{id}/gallery", ListEditHandler(s.DayTours, service.SectionDayTours,
		func(d *entities.DayTour) *[]entities.GallerySlide { return &d.Detail.Gallery })).Methods("PATCH")
	blogRoutes := section(service.SectionBlogs)
	registerCRUD(blogRoutes, blogs)
	blogRoutes.HandleFunc("/{id}/comments/{commentId}", blogHandler.DeleteComment).Methods("DELETE")
	registerCRUD(section(service.SectionTaxis), taxis)
	notificationRoutes := section(service.SectionNotifications)
	notificationRoutes.HandleFunc("/unread", admin.UnreadNotifications).Methods("GET")
	registerCRUD(notificationRoutes, notifications)
	notificationRoutes.HandleFunc("/{id}/read", admin.MarkNotificationRead).Methods("PATCH")
	registerCRUD(section(service.SectionPrices), prices)
	section(service.SectionBookings).HandleFunc("", admin.ListBookings).Methods("GET")

	superAdmin := adminRouter.NewRoute().Subrouter()
	superAdmin.Use(auth.RequireRole(auth.RoleSuperAdmin))
	superAdmin.HandleFunc("/allowed-sections", admin.GetAllowedSections).Methods("GET")
	superAdmin.HandleFunc("/allowed-sections", admin.SetAllowedSections).Methods("PUT")
	superAdmin.HandleFunc("/admins", adminAuth.CreateAdmin).Methods("POST")

	return r
}

// crudHandler is the method set shared by every ContentHandler instantiation.
type crudHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func registerCRUD(r *mux.Router, h crudHandler) {
	r.HandleFunc("", h.List).Methods("GET")
	r.HandleFunc("", h.Create).Methods("POST")
	r.HandleFunc("/{id}", h.Get).Methods("GET")
	r.HandleFunc("/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/{id}", h.Delete).Methods("DELETE")
}

// WithMiddleware adds CORS and the access log around the router.
func WithMiddleware(r http.Handler, allowedOrigins []string) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "Stripe-Signature"}),
	)
	return handlers.LoggingHandler(os.Stdout, cors(r))
}

func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
