package dispatch

import (
	"context"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
)

// Composer renders the notification for a contact. Composition is pure and
// deterministic; it cannot fail for a valid contact (template problems are
// startup-time configuration errors).
type Composer interface {
	Compose(contact domain.Contact) domain.Message
}

// Transport delivers a rendered message. Implementations must honor the
// context deadline; exceeding it counts as a delivery failure, not a hang.
type Transport interface {
	Send(ctx context.Context, msg domain.Message) error
}
