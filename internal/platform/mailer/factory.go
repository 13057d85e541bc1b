package mailer

import (
	"context"
	"fmt"

	"github.com/SscSPs/ar_statements/internal/platform/config"
)

// NewSenderFromConfig selects the transport named by MAIL_TRANSPORT.
// When an archive path is configured every message is also appended to it.
func NewSenderFromConfig(ctx context.Context, cfg *config.Config) (Sender, error) {
	var primary Sender
	switch cfg.MailTransport {
	case config.MailTransportSMTP:
		ss, err := NewSMTPSender(SMTPOptions{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			Username:    cfg.SMTPUsername,
			Password:    cfg.SMTPPassword,
			FromAddress: cfg.MailFromAddress,
		})
		if err != nil {
			return nil, err
		}
		primary = ss
	case config.MailTransportGmail:
		gs, err := NewGmailSender(ctx, GmailOptions{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RefreshToken: cfg.GmailRefreshToken,
		})
		if err != nil {
			return nil, err
		}
		primary = gs
	case config.MailTransportLog:
		primary = LoggingSender{}
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.MailTransport)
	}

	if cfg.MailArchivePath == "" {
		return primary, nil
	}
	archive, err := NewFileSender(cfg.MailArchivePath)
	if err != nil {
		return nil, err
	}
	return NewCompositeSender(primary, archive), nil
}
