package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/api"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/cache"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/config"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/events"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/repository"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/service"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/ws"
)

const (
	wizardTTL     = 2 * time.Hour
	priceCacheTTL = 15 * time.Minute
	submitTimeout = 30 * time.Second
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlx.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()

	mongoClient, mongoDB, err := repository.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	// Redis is optional: without it sessions live in memory and prices are not cached.
	var wizardStore cache.WizardStore
	var priceCache service.PriceCacher
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		wizardStore = cache.NewRedisWizardStore(redisClient, wizardTTL)
		priceCache = cache.NewPriceCache(redisClient, priceCacheTTL)
	} else {
		log.Println("REDIS_ADDR not set, keeping booking sessions in memory")
		wizardStore = cache.NewMemoryWizardStore(wizardTTL)
	}

	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaBookingTopic)
	} else {
		log.Println("KAFKA_BROKERS not set, booking events are only logged")
		publisher = events.NewLogPublisher()
	}
	defer publisher.Close()

	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	geocoder, err := service.NewGoogleGeocoder(cfg.GoogleMapsAPIKey)
	if err != nil {
		log.Fatalf("Failed to configure geocoding: %v", err)
	}
	blobs, err := service.NewCloudinaryStore(cfg.CloudinaryURL, cfg.CloudinaryFolder)
	if err != nil {
		log.Fatalf("Failed to configure media storage: %v", err)
	}

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	jobRepo := repository.NewJobRepository(db)
	adminRepo := repository.NewAdminAuthRepository(db.DB)

	// Content
	home := service.NewContentService("home",
		repository.NewContentRepository[entities.HomeConfig](mongoDB, repository.CollectionHome))
	destinations := service.NewContentService("destination",
		repository.NewContentRepository[entities.Destination](mongoDB, repository.CollectionDestinations),
		service.WithBeforeSave(service.GeocodeDestination(geocoder)))
	dayTours := service.NewContentService("day tour",
		repository.NewContentRepository[entities.DayTour](mongoDB, repository.CollectionDayTours))
	blogs := service.NewBlogService(
		service.NewContentService("blog", repository.NewContentRepository[entities.Blog](mongoDB, repository.CollectionBlogs, repository.FieldComments)),
		repository.NewCommentRepository(mongoDB))
	contact := service.NewContentService("contact",
		repository.NewContentRepository[entities.ContactInfo](mongoDB, repository.CollectionContact),
		service.WithBeforeSave(service.GeocodeOffices(geocoder)))
	taxis := service.NewContentService("taxi",
		repository.NewContentRepository[entities.Taxi](mongoDB, repository.CollectionTaxis))
	notifications := service.NewNotificationService(
		service.NewContentService("notification",
			repository.NewContentRepository[entities.Notification](mongoDB, repository.CollectionNotifications)),
		hub)
	sections := service.NewContentService("allowed sections",
		repository.NewContentRepository[entities.AllowedSections](mongoDB, repository.CollectionAllowedSections))
	prices := service.NewPriceService(
		repository.NewContentRepository[entities.TourPrice](mongoDB, repository.CollectionTourPrices),
		priceCache)

	// Notifications
	var sms service.SMSSender
	if s := service.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber); s != nil {
		sms = s
	}
	var alerts service.Alerter
	if a := service.NewTelegramAlerter(cfg.TelegramBotToken, cfg.TelegramChatID); a != nil {
		alerts = a
	}
	mailer := service.NewMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName,
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	sender := service.NewSenderService(mailer, sms, alerts, notifications)

	// Booking
	stripeService := service.NewStripeService(cfg.StripeSecretKey)
	bookingService := service.NewBookingService(prices, stripeService, bookingRepo, publisher, sender)
	wizardService := service.NewWizardService(wizardStore, prices, bookingService, submitTimeout)

	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Printf("WARNING: %v", err)
	}
	if _, err := prices.EnsureDefaultPrices(ctx); err != nil {
		log.Printf("Could not seed default tour prices: %v", err)
	}

	// Admin
	adminAuth := service.NewAdminAuthService(adminRepo, cfg.JWTSecret)
	if err := adminAuth.EnsureSuperAdmin(ctx, cfg.SuperAdminEmail, cfg.SuperAdminPassword); err != nil {
		log.Printf("Could not create the initial super-admin: %v", err)
	}
	adminService := service.NewAdminService(sections, bookingRepo)

	jobs := service.NewJobService(jobRepo, prices)
	scheduler, err := jobs.Start(ctx)
	if err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}
	defer scheduler.Stop()

	r := api.NewRouter(api.RouterConfig{
		JWTSecret:           cfg.JWTSecret,
		StripeWebhookSecret: cfg.StripeWebhookSecret,
		AllowedOrigins:      cfg.AllowedOrigins,
	}, api.Services{
		Home:          home,
		Destinations:  destinations,
		DayTours:      dayTours,
		Blogs:         blogs,
		Contact:       contact,
		Taxis:         taxis,
		Notifications: notifications,
		Prices:        prices,
		Wizard:        wizardService,
		Booking:       bookingService,
		AdminAuth:     adminAuth,
		Admin:         adminService,
		Blobs:         blobs,
		Geocoder:      geocoder,
		Payments:      bookingRepo,
		Bookings:      bookingRepo,
		WS:            api.NewWSHandler(hub, cfg.AllowedOrigins),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.WithMiddleware(r, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}
	log.Println("Server stopped")
}
