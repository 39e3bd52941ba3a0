package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
)

const messageBoundary = "=_welcome_alt_boundary_="

// SMTPTransport delivers messages over plain SMTP. Works against Mailhog in
// development (no auth) and any credentialed SMTP relay in production.
type SMTPTransport struct {
	cfg SMTPConfig
}

// NewSMTPTransport creates a transport from explicit configuration; nothing
// is read from ambient/global state so tests can substitute a fake.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SMTPTransport{cfg: cfg}
}

// Send submits the message and blocks until the server accepts or rejects
// it, or the deadline passes. net/smtp has no context support, so the
// blocking call runs on its own goroutine and deadline expiry is reported
// as a delivery failure rather than a hang.
func (t *SMTPTransport) Send(ctx context.Context, msg domain.Message) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.Timeout)
		defer cancel()
	}

	addr := fmt.Sprintf("%s:%d", t.cfg.Host, t.cfg.Port)
	var auth smtp.Auth
	if t.cfg.Username != "" && t.cfg.Password != "" {
		auth = smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
	}
	raw := t.buildMessage(msg)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, t.cfg.From, []string{msg.To}, raw)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}

// buildMessage assembles a multipart/alternative MIME message so clients
// without HTML rendering still get the text part.
func (t *SMTPTransport) buildMessage(msg domain.Message) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", t.cfg.FromName, t.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", messageBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", messageBoundary)
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(msg.TextBody)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", messageBoundary)
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	buf.WriteString(msg.HTMLBody)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s--\r\n", messageBoundary)
	return buf.Bytes()
}
