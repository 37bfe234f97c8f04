// Package export holds the consumers of a rendered report: the mail
// composition hand-off, the hardware register export, and the paginated
// PDF writer.
package export

import (
	"fmt"
	"net/smtp"
	"net/url"
	"strings"

	"fsr/internal/config"
	"fsr/internal/models"
)

// SMTPSendFunc is the function used to send emails. Override in tests.
var SMTPSendFunc = smtp.SendMail

// Subject builds the fixed email subject line for a report.
func Subject(r models.ServiceReport) string {
	return fmt.Sprintf("Site Report: %s | REF: %s", r.CustomerName, r.SlNo)
}

// Body serializes the report subset that travels by email: identity,
// fault and remarks, the hardware register one line per item, status
// and engineer. Plain text, ready for a mail composer.
func Body(r models.ServiceReport, org config.Org) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nSITE INTERVENTION REPORT\n\n", strings.ToUpper(org.Name))
	fmt.Fprintf(&b, "REFERENCE: %s\n", r.SlNo)
	fmt.Fprintf(&b, "DATE/TIME: %s %s\n\n", r.Date, r.Time)
	fmt.Fprintf(&b, "CUSTOMER: %s\n", r.CustomerName)
	fmt.Fprintf(&b, "ADDRESS: %s\n", r.Location)
	fmt.Fprintf(&b, "CLIENT REP: %s (%s)\n", r.ClientName, r.ClientMobile)
	fmt.Fprintf(&b, "PANEL ID: %s\n\n", orNA(r.PanelID))
	fmt.Fprintf(&b, "FAULT: %s\n\n", r.NatureOfFault)

	if len(r.Hardware) > 0 {
		b.WriteString("HARDWARE:\n")
		for _, item := range r.Hardware {
			fmt.Fprintf(&b, "- %s %s | %s | Qty %d | %s\n",
				item.Type, strings.TrimSpace(item.Make+" "+item.Model),
				orNA(item.Rating), item.Quantity, item.Condition)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "ACTION TAKEN:\n%s\n\n", r.Observations)
	fmt.Fprintf(&b, "STATUS: %s\n", r.Status)
	fmt.Fprintf(&b, "ENGINEER: %s (%s)", r.EngineerName, r.TechnicianMobile)

	return b.String()
}

// MailtoURL builds the mailto: hand-off link with percent-encoded
// subject and body. The address must already be validated.
func MailtoURL(to string, r models.ServiceReport, org config.Org) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		strings.TrimSpace(to), encodeComponent(Subject(r)), encodeComponent(Body(r, org)))
}

// encodeComponent percent-encodes for a mailto query component. Query
// escaping alone would leave literal '+' for spaces, which mail clients
// do not decode.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// Mailer sends report emails through the configured SMTP relay. The
// product works without one; mailto composition stays the default
// hand-off and direct send is offered only when a relay is configured.
type Mailer struct {
	cfg config.SMTP
	org string
}

// NewMailer creates a mailer for the deployment's SMTP block.
func NewMailer(cfg config.SMTP, orgName string) *Mailer {
	return &Mailer{cfg: cfg, org: orgName}
}

// Enabled reports whether a relay is configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != ""
}

// Send delivers one plain-text message through the relay.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		return fmt.Errorf("no SMTP relay configured")
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.org, from, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	return SMTPSendFunc(addr, auth, from, []string{to}, []byte(msg))
}
