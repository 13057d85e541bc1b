package services

import (
	"context"

	"github.com/SscSPs/ar_statements/internal/platform/mailer"
	"github.com/SscSPs/ar_statements/internal/platform/render"
)

// DocumentRenderer exports engine-neutral documents.
type DocumentRenderer interface {
	Supports(format render.Format) bool
	Render(ctx context.Context, doc render.Document, format render.Format) ([]byte, error)
}

// MailDeliverer hands a composed message to the mail transport.
type MailDeliverer interface {
	Deliver(ctx context.Context, msg mailer.Message) error
}
