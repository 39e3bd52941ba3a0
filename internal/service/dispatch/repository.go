package dispatch

import (
	"context"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
)

// Repository defines the data access contract for contacts.
// Implementations must be safe for concurrent use and must provide per-key
// atomicity through the store's own conflict semantics (insert, and on
// conflict update) — never in-process locking, because the store may be
// shared by multiple process instances.
type Repository interface {
	// Upsert writes the contact keyed by normalized email. If absent it is
	// created with delivery state pending and inserted=true; otherwise only
	// full_name is updated in place, preserving the existing delivery state.
	// The returned contact reflects the row after the write.
	Upsert(ctx context.Context, email, fullName string) (*domain.Contact, bool, error)

	// ClaimRetry atomically flips a failed contact back to pending,
	// reporting whether this caller won the claim. Used to re-attempt
	// delivery without two dispatchers sending for the same contact.
	ClaimRetry(ctx context.Context, email string) (bool, error)

	// SetDeliveryState records the outcome of a send attempt. Returns
	// ErrContactNotFound for an unknown email.
	SetDeliveryState(ctx context.Context, email string, state domain.DeliveryState) error

	// Get returns the contact for a normalized email, or ErrContactNotFound.
	Get(ctx context.Context, email string) (*domain.Contact, error)
}
