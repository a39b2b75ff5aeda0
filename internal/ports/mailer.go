package ports

import (
	"context"

	"github.com/degokisss/CS5709/internal/domain"
)

// Mailer delivers one contact message through the configured relay. The call
// is opaque: it either succeeds or returns an error, and there is no
// cancellation once the request is on the wire.
type Mailer interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}
