package mailer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
)

const testTemplate = `<html><body>
<p>Hello {{name}}, this went to {{email}}.</p>
<img src="{{tracking_url}}" width="1" height="1" />
</body></html>`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "welcome.html")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestComposeSubstitutesPlaceholders(t *testing.T) {
	c, err := NewComposer("Welcome!", writeTemplate(t, testTemplate), "https://mail.example.com/")
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}

	msg := c.Compose(domain.Contact{Email: "ann@x.com", FullName: "Ann"})

	if msg.To != "ann@x.com" || msg.Subject != "Welcome!" {
		t.Errorf("envelope = %q / %q", msg.To, msg.Subject)
	}
	if !strings.Contains(msg.HTMLBody, "Hello Ann,") {
		t.Errorf("body missing name substitution: %s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "went to ann@x.com") {
		t.Errorf("body missing email substitution: %s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, `src="https://mail.example.com/api/track-open?email=ann%40x.com"`) {
		t.Errorf("body missing tracking URL: %s", msg.HTMLBody)
	}
	if strings.Contains(msg.HTMLBody, "{{") {
		t.Errorf("unsubstituted placeholder left in body: %s", msg.HTMLBody)
	}
}

func TestComposeEscapesUserInput(t *testing.T) {
	c, err := NewComposer("Welcome!", writeTemplate(t, testTemplate), "https://mail.example.com")
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}

	msg := c.Compose(domain.Contact{Email: "ann@x.com", FullName: `<script>alert("x")</script>`})
	if strings.Contains(msg.HTMLBody, "<script>") {
		t.Errorf("name not HTML-escaped: %s", msg.HTMLBody)
	}
}

func TestComposeEscapesTrackingToken(t *testing.T) {
	c, err := NewComposer("Welcome!", writeTemplate(t, testTemplate), "https://mail.example.com")
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}

	msg := c.Compose(domain.Contact{Email: "a+tag@x.com", FullName: "A"})
	if msg.TrackingToken != "a%2Btag%40x.com" {
		t.Errorf("token = %q, want query-escaped email", msg.TrackingToken)
	}
	if !strings.Contains(msg.HTMLBody, "email=a%2Btag%40x.com") {
		t.Errorf("tracking URL not escaped: %s", msg.HTMLBody)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	c, err := NewComposer("Welcome!", writeTemplate(t, testTemplate), "https://mail.example.com")
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}

	contact := domain.Contact{Email: "ann@x.com", FullName: "Ann"}
	first := c.Compose(contact)
	second := c.Compose(contact)
	if first != second {
		t.Errorf("Compose not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestNewComposerRejectsMissingTemplate(t *testing.T) {
	if _, err := NewComposer("Welcome!", filepath.Join(t.TempDir(), "nope.html"), "https://x"); err == nil {
		t.Error("want error for missing template file")
	}
}

func TestNewComposerRejectsTemplateWithoutBeacon(t *testing.T) {
	path := writeTemplate(t, "<html><body>Hello {{name}}</body></html>")
	if _, err := NewComposer("Welcome!", path, "https://x"); err == nil {
		t.Error("want error for template without tracking placeholder")
	}
}

func TestNewComposerRejectsEmptySubject(t *testing.T) {
	if _, err := NewComposer("", writeTemplate(t, testTemplate), "https://x"); err == nil {
		t.Error("want error for empty subject")
	}
}
