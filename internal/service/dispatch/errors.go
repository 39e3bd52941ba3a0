package dispatch

import "errors"

// Sentinel errors for the dispatch engine. Handlers classify with errors.Is
// and map each kind to a status code; raw downstream detail is logged here
// and never propagated to callers.
var (
	// ErrValidation means the caller's input was malformed. Nothing was
	// written and nothing was sent. Never retried.
	ErrValidation = errors.New("invalid dispatch request")

	// ErrStore means the contact store was unavailable. Nothing was sent;
	// the whole Dispatch call is safe to retry because the upsert is
	// idempotent.
	ErrStore = errors.New("contact store unavailable")

	// ErrDelivery means the mail transport explicitly rejected or timed
	// out. The contact row exists; the send was attempted and failed.
	ErrDelivery = errors.New("mail transport rejected the message")

	// ErrContactNotFound is returned by repositories for unknown emails.
	// On SetDeliveryState it is a logic error, not a transient one, and
	// must not be retried.
	ErrContactNotFound = errors.New("contact not found")
)
