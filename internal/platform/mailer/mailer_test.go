package mailer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	to      []string
	subject string
	raw     []byte
	err     error
}

func (r *recordingSender) Send(_ context.Context, to []string, subject string, raw []byte) error {
	r.to, r.subject, r.raw = to, subject, raw
	return r.err
}

func TestMailer_Deliver(t *testing.T) {
	rec := &recordingSender{}
	ml := NewMailer(rec, "ar@company.test")

	err := ml.Deliver(context.Background(), Message{
		To:       []string{"billing@acme.test"},
		CC:       []string{"cfo@acme.test"},
		Subject:  "Account statement - Acme",
		HTMLBody: "<p>Dear Acme</p>",
		Attachments: []Attachment{
			{Name: "Account_Statement_Acme_2024-03-07.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.3")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"billing@acme.test", "cfo@acme.test"}, rec.to)
	assert.Equal(t, "Account statement - Acme", rec.subject)
	raw := string(rec.raw)
	assert.Contains(t, raw, "ar@company.test")
	assert.Contains(t, raw, "Account_Statement_Acme_2024-03-07.pdf")
	assert.Contains(t, raw, "application/pdf")
}

func TestMailer_DeliverPropagatesTransportError(t *testing.T) {
	rec := &recordingSender{err: errors.New("connection refused")}
	ml := NewMailer(rec, "ar@company.test")

	err := ml.Deliver(context.Background(), Message{To: []string{"a@acme.test"}, Subject: "s", HTMLBody: "b"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestCompose_RejectsInvalidAddress(t *testing.T) {
	_, err := Compose(Message{From: "ar@company.test", To: []string{"not an address"}, Subject: "s"})
	assert.Error(t, err)
}

func TestCompositeSender_CollectsErrors(t *testing.T) {
	ok := &recordingSender{}
	bad := &recordingSender{err: errors.New("boom")}
	cs := NewCompositeSender(ok, bad)

	err := cs.Send(context.Background(), []string{"a@acme.test"}, "s", []byte("raw"))
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []byte("raw"), ok.raw)
}

func TestFileSender_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mail", "archive.log")
	fs, err := NewFileSender(path)
	require.NoError(t, err)

	require.NoError(t, fs.Send(context.Background(), []string{"a@acme.test"}, "first", []byte("one")))
	require.NoError(t, fs.Send(context.Background(), []string{"a@acme.test"}, "second", []byte("two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "End archived email"))
}

func TestNewSMTPSender_RequiresHost(t *testing.T) {
	_, err := NewSMTPSender(SMTPOptions{Port: 587})
	assert.Error(t, err)

	_, err = NewSMTPSender(SMTPOptions{Host: "smtp.company.test", Port: 70000})
	assert.Error(t, err)
}

func TestSMTPSender_SendHonoursCancelledContext(t *testing.T) {
	s, err := NewSMTPSender(SMTPOptions{
		Host:        "127.0.0.1",
		Port:        2525,
		Username:    "ar",
		Password:    "secret",
		FromAddress: "ar@company.test",
		Timeout:     time.Second,
	})
	require.NoError(t, err)

	raw, err := Compose(Message{From: "ar@company.test", To: []string{"billing@acme.test"}, Subject: "s", HTMLBody: "<p>b</p>"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Send(ctx, []string{"billing@acme.test"}, "s", raw)
	assert.ErrorContains(t, err, "dial failed")
}

func TestSMTPSender_RejectsUnparseableMessage(t *testing.T) {
	s, err := NewSMTPSender(SMTPOptions{Host: "127.0.0.1", Port: 2525})
	require.NoError(t, err)

	err = s.Send(context.Background(), []string{"billing@acme.test"}, "s", []byte{})
	assert.Error(t, err)
}
