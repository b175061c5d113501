package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
)

//go:embed templates/booking_email.html
var bookingEmailHTML string

var bookingEmailTemplate = template.Must(template.New("booking_email").Parse(bookingEmailHTML))

// SenderService tells the customer and the agency about a confirmed booking.
// Every channel is optional and failures are only logged.
type SenderService struct {
	mailer        Mailer
	sms           SMSSender
	alerts        Alerter
	notifications *NotificationService
	async         bool
}

func NewSenderService(mailer Mailer, sms SMSSender, alerts Alerter, notifications *NotificationService) *SenderService {
	return &SenderService{mailer: mailer, sms: sms, alerts: alerts, notifications: notifications, async: true}
}

func (s *SenderService) BookingConfirmed(ctx context.Context, booking db.Booking) {
	if s.notifications != nil {
		title := "New booking: " + booking.TourName
		message := fmt.Sprintf("%s booked %s for %s", nameOrGuest(booking.FullName), booking.TourName, travellers(booking))
		if _, err := s.notifications.Notify(ctx, "booking", title, message, "/admin/bookings?confirmation_id="+booking.ConfirmationID); err != nil {
			log.Printf("ALERT: booking %s confirmed, but the admin notification failed: %v", booking.ConfirmationID, err)
		}
	}

	status := statusTranslation(BookingStatusConfirmed, booking.Language)
	s.SendBookingEmail(booking, status)
	s.SendBookingSMS(booking, status)

	if s.alerts != nil {
		text := fmt.Sprintf("New booking %s\n%s (%s)\n%s\nTotal: %s\n%s %s",
			booking.ConfirmationID, booking.TourName, booking.Destination, travellers(booking),
			formatPrice(booking.TotalPrice), nameOrGuest(booking.FullName), booking.Phone)
		if err := s.alerts.Alert(text); err != nil {
			log.Printf("ALERT: %v", err)
		}
	}
}

func (s *SenderService) SendBookingEmail(booking db.Booking, status string) {
	if s.mailer == nil || booking.Email == "" {
		return
	}

	emailData := entities.BookingEmailData{
		FullName:       nameOrGuest(booking.FullName),
		ConfirmationID: booking.ConfirmationID,
		TourName:       booking.TourName,
		Destination:    booking.Destination,
		Travellers:     travellers(booking),
		TotalPrice:     formatPrice(booking.TotalPrice),
		CurrentYear:    time.Now().Year(),
		Status:         status,
	}

	var subject, plainTextBody string
	switch booking.Language {
	case "de":
		subject = fmt.Sprintf("Ihre Buchung ist %s - Nummer: %s", status, emailData.ConfirmationID)
		plainTextBody = fmt.Sprintf("Hallo %s,\n\nIhre Buchung ist %s.\n\nBuchungsnummer: %s\nTour: %s\nZiel: %s\nReisende: %s\nGesamt: %s\n",
			emailData.FullName, status, emailData.ConfirmationID, emailData.TourName, emailData.Destination,
			emailData.Travellers, emailData.TotalPrice)
	case "fr":
		subject = fmt.Sprintf("Votre réservation est %s - Numéro : %s", status, emailData.ConfirmationID)
		plainTextBody = fmt.Sprintf("Bonjour %s,\n\nVotre réservation est %s.\n\nNuméro : %s\nCircuit : %s\nDestination : %s\nVoyageurs : %s\nTotal : %s\n",
			emailData.FullName, status, emailData.ConfirmationID, emailData.TourName, emailData.Destination,
			emailData.Travellers, emailData.TotalPrice)
	default:
		subject = fmt.Sprintf("Your booking is %s - Confirmation: %s", status, emailData.ConfirmationID)
		plainTextBody = fmt.Sprintf("Hello %s,\n\nYour booking is %s.\n\nConfirmation number: %s\nTour: %s\nDestination: %s\nTravellers: %s\nTotal: %s\n",
			emailData.FullName, status, emailData.ConfirmationID, emailData.TourName, emailData.Destination,
			emailData.Travellers, emailData.TotalPrice)
	}

	var htmlBody bytes.Buffer
	if err := bookingEmailTemplate.Execute(&htmlBody, emailData); err != nil {
		log.Printf("ALERT: could not render the HTML email for booking %s: %v", booking.ConfirmationID, err)
	}

	send := func() {
		if err := s.mailer.SendEmail(booking.Email, emailData.FullName, subject, plainTextBody, htmlBody.String()); err != nil {
			log.Printf("ALERT (async): email for booking %s failed: %v", booking.ConfirmationID, err)
		}
	}
	if s.async {
		go send()
	} else {
		send()
	}
}

func (s *SenderService) SendBookingSMS(booking db.Booking, status string) {
	if s.sms == nil || booking.Phone == "" {
		return
	}

	var smsMessage string
	switch booking.Language {
	case "de":
		smsMessage = fmt.Sprintf("Ihre Buchung %s (%s) ist %s! Details per E-Mail.", booking.ConfirmationID, booking.TourName, status)
	case "fr":
		smsMessage = fmt.Sprintf("Votre réservation %s (%s) est %s ! Détails par e-mail.", booking.ConfirmationID, booking.TourName, status)
	default:
		smsMessage = fmt.Sprintf("Your booking %s (%s) is %s! More details in your email.", booking.ConfirmationID, booking.TourName, status)
	}

	if err := s.sms.SendSMS(booking.Phone, smsMessage); err != nil {
		log.Printf("ALERT: booking %s was confirmed, but the SMS to %s failed: %v", booking.ConfirmationID, booking.Phone, err)
	}
}

// statusTranslation translates a booking status for the customer's language.
func statusTranslation(status, lang string) string {
	switch lang {
	case "de":
		switch status {
		case BookingStatusPending:
			return "ausstehend"
		case BookingStatusConfirmed:
			return "bestätigt"
		case BookingStatusCancelled:
			return "storniert"
		case BookingStatusExpired:
			return "abgelaufen"
		}
	case "fr":
		switch status {
		case BookingStatusPending:
			return "en attente"
		case BookingStatusConfirmed:
			return "confirmée"
		case BookingStatusCancelled:
			return "annulée"
		case BookingStatusExpired:
			return "expirée"
		}
	}
	return status
}

func nameOrGuest(name string) string {
	if name == "" {
		return "Guest"
	}
	return name
}

func travellers(b db.Booking) string {
	s := fmt.Sprintf("%d adult(s)", b.Adults)
	if b.Children > 0 {
		s += fmt.Sprintf(", %d child(ren)", b.Children)
	}
	if b.Days > 0 {
		s += fmt.Sprintf(", %d day(s)", b.Days)
	}
	return s
}

func formatPrice(p float64) string {
	return fmt.Sprintf("LKR %.2f", p)
}
