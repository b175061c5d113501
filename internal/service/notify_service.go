package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendEmail(toEmail, toName, subject, plainTextContent, htmlContent string) error
}

type SMSSender interface {
	SendSMS(toNumber, messageBody string) error
}

// Alerter posts short operational messages to the agency staff chat.
type Alerter interface {
	Alert(text string) error
}

type SendGridMailer struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func (m *SendGridMailer) SendEmail(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	from := mail.NewEmail(m.FromName, m.FromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(m.APIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email via SendGrid to %s: %v", toEmailAddress, err)
		return fmt.Errorf("sending email through SendGrid failed: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Email sent to %s (Subject: %s). Status: %d", toEmailAddress, subject, response.StatusCode)
		return nil
	}

	log.Printf("Error sending email to %s via SendGrid. Status: %d, Body: %s", toEmailAddress, response.StatusCode, response.Body)
	return fmt.Errorf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
}

// SMTPMailer is used when no SendGrid key is configured.
type SMTPMailer struct {
	Host string
	Port int
	User string
	Pass string
}

func (m *SMTPMailer) SendEmail(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.User)
	msg.SetAddressHeader("To", toEmailAddress, toName)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainTextContent)
	if htmlContent != "" {
		msg.AddAlternative("text/html", htmlContent)
	}

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("Email sent to %s over SMTP (Subject: %s)", toEmailAddress, subject)
	return nil
}

// NewMailer prefers SendGrid, then SMTP. It returns nil when neither is configured.
func NewMailer(sendGridKey, fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass string) Mailer {
	if sendGridKey != "" && fromEmail != "" {
		return &SendGridMailer{APIKey: sendGridKey, FromEmail: fromEmail, FromName: fromName}
	}
	if smtpHost != "" && smtpUser != "" {
		port, err := strconv.Atoi(smtpPort)
		if err != nil {
			port = 587
		}
		return &SMTPMailer{Host: smtpHost, Port: port, User: smtpUser, Pass: smtpPass}
	}
	log.Println("WARNING: no SendGrid or SMTP settings, booking emails will not be sent.")
	return nil
}

type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioSender returns nil when credentials are incomplete.
func NewTwilioSender(accountSid, authToken, fromNumber string) *TwilioSender {
	if accountSid == "" || authToken == "" || fromNumber == "" {
		log.Println("WARNING: Twilio credentials (SID, Token or From Number) are not configured. SMS will not be sent.")
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})
	return &TwilioSender{client: client, fromNumber: fromNumber}
}

func (s *TwilioSender) SendSMS(toNumber string, messageBody string) error {
	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("WARNING: destination number '%s' is not in E.164 format (must start with '+'). The SMS may fail.", toNumber)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.fromNumber)
	params.SetBody(messageBody)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Error sending SMS to %s via Twilio: %v", toNumber, err)
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("SMS sent to %s. Message SID: %s", toNumber, *resp.Sid)
	}
	return nil
}

type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramAlerter returns nil when the bot is not configured or unreachable.
func NewTelegramAlerter(token, chatID string) *TelegramAlerter {
	if token == "" || chatID == "" {
		return nil
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		log.Printf("WARNING: TELEGRAM_CHAT_ID %q is not numeric, Telegram alerts disabled", chatID)
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("WARNING: Telegram bot unavailable, alerts disabled: %v", err)
		return nil
	}
	log.Printf("Telegram alerts via bot %s", bot.Self.UserName)
	return &TelegramAlerter{bot: bot, chatID: id}
}

func (a *TelegramAlerter) Alert(text string) error {
	if _, err := a.bot.Send(tgbotapi.NewMessage(a.chatID, text)); err != nil {
		return fmt.Errorf("failed to send Telegram alert: %w", err)
	}
	return nil
}
