package services

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/SscSPs/ar_statements/internal/utils"
)

var defaultBodyTemplate = template.Must(template.New("statement_body").Parse(
	`<p>Dear {{.PartnerName}},</p>
<p>Please find attached your account statement as of {{.Date}}.</p>
<p>Do not hesitate to contact us if you have any questions.</p>
<p>Best regards</p>`))

var sentNoteTemplate = template.Must(template.New("statement_note").Parse(
	`<p>Account statement sent by email.</p>
<ul>
<li>To: {{.To}}</li>
<li>CC: {{.CC}}</li>
<li>Subject: {{.Subject}}</li>
</ul>`))

// DefaultStatementSubject is the subject offered for a partner's statement.
func DefaultStatementSubject(partnerName string) string {
	return "Account statement - " + partnerName
}

// DefaultStatementBody renders the greeting offered for a partner's statement.
func DefaultStatementBody(partnerName string, asOf time.Time) (string, error) {
	var buf bytes.Buffer
	err := defaultBodyTemplate.Execute(&buf, struct {
		PartnerName string
		Date        string
	}{partnerName, utils.FormatDate(&asOf)})
	return buf.String(), err
}

// StatementSentNote renders the activity-log note of a sent statement.
// Empty fields are shown as "-".
func StatementSentNote(to, cc, subject string) (string, error) {
	dash := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "-"
		}
		return v
	}
	var buf bytes.Buffer
	err := sentNoteTemplate.Execute(&buf, struct {
		To, CC, Subject string
	}{dash(to), dash(cc), dash(subject)})
	return buf.String(), err
}

// StatementFileName builds the attachment name,
// e.g. "Account_Statement_Acme-Europe_2024-03-07.pdf".
func StatementFileName(partnerName string, on time.Time) string {
	name := strings.ReplaceAll(partnerName, "/", "-")
	return "Account_Statement_" + name + "_" + on.Format("2006-01-02") + ".pdf"
}
