package domain

import (
	"errors"
	"strings"
	"time"
)

// DeliveryState tracks whether the welcome notification was attempted for a
// contact. A contact starts at pending, moves to sent only after the mail
// transport confirms acceptance, and to failed when the transport rejects.
type DeliveryState string

const (
	DeliveryPending DeliveryState = "pending"
	DeliverySent    DeliveryState = "sent"
	DeliveryFailed  DeliveryState = "failed"
)

// Contact is a single signup record. The normalized email is the natural key;
// the row is the source of truth for whether the welcome email was attempted.
type Contact struct {
	ID        string        `json:"id" db:"id"`
	Email     string        `json:"email" db:"email"`
	FullName  string        `json:"full_name" db:"full_name"`
	EmailSent DeliveryState `json:"email_sent" db:"email_sent"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// NormalizeEmail produces the canonical form used as the store key.
// Comparisons are case-insensitive and whitespace is never significant.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DispatchRequest is the transient intake value. It must pass Validate
// before it is allowed to touch the contact store.
type DispatchRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks structural validity of the request. It is a pure function;
// it does not consult the store or the network.
func (r DispatchRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	email := NormalizeEmail(r.Email)
	if email == "" {
		return errors.New("email is required")
	}
	if strings.Count(email, "@") != 1 {
		return errors.New("email must contain exactly one @")
	}
	local, dom, _ := strings.Cut(email, "@")
	if local == "" {
		return errors.New("email is missing the part before @")
	}
	if dom == "" {
		return errors.New("email is missing the domain")
	}
	return nil
}
