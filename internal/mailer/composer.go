package mailer

import (
	"fmt"
	"html"
	"net/url"
	"os"
	"strings"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
)

// Template placeholders the composer substitutes. The tracking URL is
// mandatory: a welcome mail without a beacon cannot be attributed.
const (
	placeholderName        = "{{name}}"
	placeholderEmail       = "{{email}}"
	placeholderTrackingURL = "{{tracking_url}}"
)

// Composer turns a contact into a rendered welcome message. It holds the
// template text and the public base URL the beacon link points back to.
// Compose is deterministic and side-effect free.
type Composer struct {
	subject  string
	template string
	baseURL  string
}

// NewComposer loads the HTML template from disk and validates it. A missing
// file or a template without the tracking placeholder is a configuration
// error and fails startup, never a per-request one.
func NewComposer(subject, templatePath, baseURL string) (*Composer, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("read welcome template: %w", err)
	}
	tpl := string(raw)
	if !strings.Contains(tpl, placeholderTrackingURL) {
		return nil, fmt.Errorf("welcome template %s: missing %s placeholder", templatePath, placeholderTrackingURL)
	}
	if subject == "" {
		return nil, fmt.Errorf("welcome subject must not be empty")
	}
	return &Composer{
		subject:  subject,
		template: tpl,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Compose renders the welcome message for a contact. The contact's
// normalized email doubles as the tracking token, so a later beacon fetch
// can be attributed without a separate token table.
func (c *Composer) Compose(contact domain.Contact) domain.Message {
	token := url.QueryEscape(contact.Email)
	trackingURL := fmt.Sprintf("%s/api/track-open?email=%s", c.baseURL, token)

	repl := strings.NewReplacer(
		placeholderName, html.EscapeString(contact.FullName),
		placeholderEmail, html.EscapeString(contact.Email),
		placeholderTrackingURL, trackingURL,
	)

	return domain.Message{
		To:            contact.Email,
		Subject:       c.subject,
		HTMLBody:      repl.Replace(c.template),
		TextBody:      c.textBody(contact),
		TrackingToken: token,
	}
}

func (c *Composer) textBody(contact domain.Contact) string {
	return fmt.Sprintf("Hi %s,\n\nWelcome aboard! Your early-bird offer is live: "+
		"200 offers free for 2 weeks plus 20%% off premium plans.\n\nVisit %s to get started.\n",
		contact.FullName, c.baseURL)
}
