package logger

import "testing"

func TestRedactEmail(t *testing.T) {
	cases := map[string]string{
		"john.doe@example.com": "jo***@example.com",
		"ab@example.com":       "***@example.com",
		"a@example.com":        "***@example.com",
		"not-an-email":         "***@***",
		"a@b@c":                "***@***",
	}
	for in, want := range cases {
		if got := RedactEmail(in); got != want {
			t.Errorf("RedactEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRedactField(t *testing.T) {
	cases := []struct {
		key, val, want string
	}{
		{"email", "john.doe@example.com", "jo***@example.com"},
		{"contact_id", "john.doe@example.com", "jo***@example.com"},
		{"error", "delivery to john.doe@example.com refused", "delivery to jo***@example.com refused"},
		{"status", "sent", "sent"},
	}
	for _, tc := range cases {
		if got := redactField(tc.key, tc.val); got != tc.want {
			t.Errorf("redactField(%q, %q) = %q, want %q", tc.key, tc.val, got, tc.want)
		}
	}
}
