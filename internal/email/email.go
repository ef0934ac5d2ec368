package email

import (
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
	"github.com/yummyrecipes/yummyrecipes-go/internal/config"
)

// Mailer sends password-reset emails via SMTP.
type Mailer struct {
	cfg     config.SMTPConfig
	baseURL string
}

// NewMailer creates a new Mailer.
func NewMailer(cfg config.SMTPConfig, baseURL string) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	return &Mailer{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// SendPasswordReset emails the reset link for the given token.
func (m *Mailer) SendPasswordReset(to, token string) error {
	resetURL := fmt.Sprintf("%s/auth/new-password/%s", m.baseURL, token)

	body := fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below to choose a new password. The link expires in 10 minutes.\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.\n",
		resetURL,
	)

	return m.send(to, "Reset your password", body)
}

// send sends an email via SMTP using go-mail.
func (m *Mailer) send(to, subject, body string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
	}
	if m.cfg.Username != "" && m.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
