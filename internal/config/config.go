package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DatabaseURL string
	MongoURI    string
	MongoDB     string

	RedisAddr     string
	RedisPassword string

	KafkaBrokers      []string
	KafkaBookingTopic string

	JWTSecret          string
	SuperAdminEmail    string
	SuperAdminPassword string

	StripeSecretKey     string
	StripeWebhookSecret string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	TelegramBotToken string
	TelegramChatID   string

	CloudinaryURL    string
	CloudinaryFolder string
	GoogleMapsAPIKey string

	AllowedOrigins []string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	return &Config{
		Port:                getenvOrDefault("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		MongoURI:            getenvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:             getenvOrDefault("MONGO_DB", "tour_website"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:        splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaBookingTopic:   getenvOrDefault("KAFKA_BOOKING_TOPIC", "booking.confirmed"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		SuperAdminEmail:     os.Getenv("SUPERADMIN_EMAIL"),
		SuperAdminPassword:  os.Getenv("SUPERADMIN_PASSWORD"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		SendGridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail:   os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:    getenvOrDefault("SENDGRID_FROM_NAME", "Lanka Tours"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            getenvOrDefault("SMTP_PORT", "587"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:    os.Getenv("TWILIO_FROM_NUMBER"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:      os.Getenv("TELEGRAM_CHAT_ID"),
		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder:    getenvOrDefault("CLOUDINARY_FOLDER", "tours"),
		GoogleMapsAPIKey:    os.Getenv("GOOGLE_MAPS_API_KEY"),
		AllowedOrigins:      splitList(getenvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
