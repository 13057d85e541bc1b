package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/wneessen/go-mail"
)

// Sender defines the interface for sending emails.
// rawMessage holds the full MIME message, headers included; to is the
// envelope recipient list.
type Sender interface {
	Send(ctx context.Context, to []string, subject string, rawMessage []byte) error
}

// SMTPOptions configures SMTPSender.
type SMTPOptions struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	Timeout     time.Duration
}

// SMTPSender implements Sender with a go-mail SMTP client. STARTTLS is used
// when the server offers it.
type SMTPSender struct {
	client *mail.Client
	from   string
}

// NewSMTPSender creates a new SMTPSender. Authentication is skipped when no
// username is configured, e.g. for a local relay.
func NewSMTPSender(opts SMTPOptions) (*SMTPSender, error) {
	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, mail.WithTimeout(opts.Timeout))
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.Username),
			mail.WithPassword(opts.Password),
		)
	}
	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client for %s:%d: %w", opts.Host, opts.Port, err)
	}
	return &SMTPSender{client: client, from: opts.FromAddress}, nil
}

// Send delivers rawMessage over SMTP. The envelope recipients are taken from
// the To and Cc headers of the message, which Mailer builds from the same list as to.
func (s *SMTPSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	msg, err := mail.EMLToMsgFromReader(bytes.NewReader(rawMessage))
	if err != nil {
		return fmt.Errorf("smtp error: %w", err)
	}
	if s.from != "" {
		if err := msg.EnvelopeFrom(s.from); err != nil {
			return fmt.Errorf("invalid envelope sender %q: %w", s.from, err)
		}
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp error: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Email sent via SMTP",
		slog.Any("to", to), slog.String("subject", subject))
	return nil
}

// LoggingSender only logs the email. Useful for development.
type LoggingSender struct{}

func (LoggingSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	middleware.GetLoggerFromCtx(ctx).Info("Email logged instead of sent",
		slog.Any("to", to),
		slog.String("subject", subject),
		slog.Int("size", len(rawMessage)),
	)
	return nil
}

// CompositeSender delegates sending to several senders and reports every failure.
type CompositeSender struct {
	senders []Sender
}

func NewCompositeSender(senders ...Sender) *CompositeSender {
	return &CompositeSender{senders: senders}
}

func (cs *CompositeSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	if len(cs.senders) == 0 {
		return fmt.Errorf("no senders configured in CompositeSender")
	}

	var allErrors []string
	for _, sender := range cs.senders {
		if err := sender.Send(ctx, to, subject, rawMessage); err != nil {
			allErrors = append(allErrors, err.Error())
		}
	}
	if len(allErrors) > 0 {
		return fmt.Errorf("composite email send failed: [ %s ]", strings.Join(allErrors, "; "))
	}
	return nil
}
