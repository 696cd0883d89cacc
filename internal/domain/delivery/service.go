// Package delivery mails rendered documents through an authenticated relay.
package delivery

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/gomail.v2"
)

const (
	SuccessMessage = "Success"
	attachmentMIME = "application/pdf"
	attachmentExt  = ".pdf"
)

// Dialer submits assembled messages to the relay. *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Sender interface {
	Send(ctx context.Context, to, subject, body string, attachment []byte, name string) (bool, string)
}

type RelayConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type Service struct {
	from   string
	dialer Dialer
	log    *slog.Logger
}

// NewSMTPService dials the relay over implicit TLS when Port is 465, and
// upgrades with STARTTLS otherwise.
func NewSMTPService(cfg RelayConfig, log *slog.Logger) *Service {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.Port == 465
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}

	return NewService(cfg.Username, d, log)
}

func NewService(from string, dialer Dialer, log *slog.Logger) *Service {
	return &Service{
		from:   from,
		dialer: dialer,
		log:    log.With("component", "delivery"),
	}
}

// Send makes exactly one synchronous delivery attempt. Failures are reported
// as (false, diagnostic) and never returned as errors.
func (s *Service) Send(ctx context.Context, to, subject, body string, attachment []byte, name string) (bool, string) {
	if err := s.send(ctx, to, subject, body, attachment, name); err != nil {
		s.log.Warn("delivery failed", "to", to, "error", err)
		return false, diagnostic(err)
	}

	s.log.Info("document delivered", "to", to, "attachment", name+attachmentExt)
	return true, SuccessMessage
}

func (s *Service) send(ctx context.Context, to, subject, body string, attachment []byte, name string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrNoRecipient
	}

	msg, err := s.build(to, subject, body, attachment, name)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// build assembles and serialises the whole message before any network I/O,
// so a broken attachment never reaches the relay.
func (s *Service) build(to, subject, body string, attachment []byte, name string) (*gomail.Message, error) {
	if len(attachment) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrAttachment)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: attachment name is required", ErrAttachment)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	data := attachment
	msg.Attach(name+attachmentExt,
		gomail.SetHeader(map[string][]string{"Content-Type": {attachmentMIME}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
	)

	if _, err := msg.WriteTo(io.Discard); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAttachment, err)
	}

	return msg, nil
}

func diagnostic(err error) string {
	switch {
	case errors.Is(err, ErrNoRecipient):
		return ErrNoRecipient.Error()
	case errors.Is(err, ErrAttachment):
		return "Attachment Error: " + strings.TrimPrefix(err.Error(), ErrAttachment.Error()+": ")
	default:
		return strings.TrimPrefix(err.Error(), ErrDelivery.Error()+": ")
	}
}
