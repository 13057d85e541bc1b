package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ar_statements/internal/middleware"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailOptions configures GmailSender. The refresh token belongs to the
// mailbox statements are sent from.
type GmailOptions struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// GmailSender sends raw MIME messages through the Gmail API.
type GmailSender struct {
	svc *gmail.Service
}

// NewGmailSender builds a Gmail client that refreshes its own access tokens.
func NewGmailSender(ctx context.Context, opts GmailOptions) (*GmailSender, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: opts.RefreshToken})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &GmailSender{svc: svc}, nil
}

// Send uploads the message as-is; Gmail reads recipients from its headers.
func (s *GmailSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(rawMessage)}
	sent, err := s.svc.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail send error: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Email sent via Gmail",
		slog.Any("to", to), slog.String("subject", subject), slog.String("gmail_id", sent.Id))
	return nil
}
