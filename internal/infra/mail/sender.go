// Package mail provides outbound delivery for signup validation emails.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"waitline/config"
	"waitline/internal/domain/service"

	"github.com/pkg/errors"
)

// noopSender logs the validation link instead of delivering it. Used when no
// SMTP relay is configured, typically in development.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) SendValidationMail(_ context.Context, to string, validationURL string) error {
	s.logger.Info("[NoopMail] Mail delivery disabled, skipping",
		slog.String("to", to),
		slog.String("validation_url", validationURL),
	)

	return nil
}

// smtpSender delivers validation emails through a plain SMTP relay.
type smtpSender struct {
	host     string
	port     int
	from     string
	username string
	password string
	logger   *slog.Logger
}

// NewMailSender creates a MailSender based on configuration.
func NewMailSender(cfg *config.Config, logger *slog.Logger) service.MailSender {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Info("Mail not configured, using no-op sender")

		return &noopSender{logger: logger}
	}

	return &smtpSender{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		from:     cfg.Mail.From,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
		logger:   logger,
	}
}

// SendValidationMail sends the validation link to the address.
func (s *smtpSender) SendValidationMail(_ context.Context, to string, validationURL string) error {
	var msg strings.Builder
	msg.WriteString("From: " + s.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: Confirm your spot in line\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("Confirm your email to get launch updates:\r\n\r\n")
	msg.WriteString(validationURL + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrap(err, "failed to send validation mail")
	}

	s.logger.Info("Validation mail sent", slog.String("to", to))

	return nil
}
