package mailer

import (
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/koinonia-app/koinonia/pkg/mailer Mailer

// Mailer is the interface for sending emails
type Mailer interface {
	// SendAccountActivated tells a pending member that an admin approved their account
	SendAccountActivated(email, name string) error
	// SendLeaderWelcome tells a member they were promoted to group leader
	SendLeaderWelcome(email, name, gcID string) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	SiteURL      string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// SendAccountActivated tells a pending member that an admin approved their account
func (m *SMTPMailer) SendAccountActivated(email, name string) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	subject := "Your account has been activated"
	msg.Subject(subject)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>Welcome, %s!</h1>
			<p>Your account has been activated. You can now sign in:</p>
			<p><a href="%s">%s</a></p>
		</body>
	</html>`, name, m.config.SiteURL, m.config.SiteURL)

	plainBody := fmt.Sprintf(
		"Welcome, %s!\n\nYour account has been activated. You can now sign in: %s\n",
		name, m.config.SiteURL)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	return m.send(msg, email, subject)
}

// SendLeaderWelcome tells a member they were promoted to group leader
func (m *SMTPMailer) SendLeaderWelcome(email, name, gcID string) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	subject := "You are now a group leader"
	msg.Subject(subject)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>Congratulations, %s!</h1>
			<p>You are now leading the group <strong>%s</strong>.</p>
			<p>Sign in to manage your group: <a href="%s">%s</a></p>
		</body>
	</html>`, name, gcID, m.config.SiteURL, m.config.SiteURL)

	plainBody := fmt.Sprintf(
		"Congratulations, %s!\n\nYou are now leading the group %s.\nSign in to manage your group: %s\n",
		name, gcID, m.config.SiteURL)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	return m.send(msg, email, subject)
}

func (m *SMTPMailer) send(msg *mail.Msg, email, subject string) error {
	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// For testing - log information if client is nil
	if client == nil {
		log.Printf("Sending email to: %s", email)
		log.Printf("From: %s <%s>", m.config.FromName, m.config.FromEmail)
		log.Printf("Subject: %s", subject)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Only add authentication if username and password are provided
	// This allows for unauthenticated SMTP servers (e.g., local relays, port 25)
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}
