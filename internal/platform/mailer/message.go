package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Attachment is a file carried by a Message.
type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

// Message is an HTML email with optional attachments.
type Message struct {
	From        string
	To          []string
	CC          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Recipients returns the envelope recipients: To followed by CC.
func (m Message) Recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.CC))
	out = append(out, m.To...)
	return append(out, m.CC...)
}

// Compose renders the message as RFC 5322 bytes.
func Compose(m Message) ([]byte, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", m.From, err)
	}
	if err := msg.To(m.To...); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	if len(m.CC) > 0 {
		if err := msg.Cc(m.CC...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextHTML, m.HTMLBody)

	for _, a := range m.Attachments {
		ct := a.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		if err := msg.AttachReader(a.Name, bytes.NewReader(a.Content), mail.WithFileContentType(mail.ContentType(ct))); err != nil {
			return nil, fmt.Errorf("failed to attach %s: %w", a.Name, err)
		}
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write message: %w", err)
	}
	return buf.Bytes(), nil
}

// Mailer composes messages and hands them to a Sender.
type Mailer struct {
	sender Sender
	from   string
}

func NewMailer(sender Sender, fromAddress string) *Mailer {
	return &Mailer{sender: sender, from: fromAddress}
}

// Deliver sends m once. The configured from address is used when m.From is empty.
func (ml *Mailer) Deliver(ctx context.Context, m Message) error {
	if m.From == "" {
		m.From = ml.from
	}
	raw, err := Compose(m)
	if err != nil {
		return err
	}
	return ml.sender.Send(ctx, m.Recipients(), m.Subject, raw)
}
