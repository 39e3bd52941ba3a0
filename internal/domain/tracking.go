package domain

import "time"

// OpenEvent is the beacon-fetch event relayed to the analytics webhook.
// It is forwarded opaquely and never persisted locally.
type OpenEvent struct {
	Email      string    `json:"email"`
	ReceivedAt time.Time `json:"received_at"`
	Unique     bool      `json:"unique"`
}
