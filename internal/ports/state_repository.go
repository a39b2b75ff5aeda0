package ports

import (
	"context"

	"github.com/degokisss/CS5709/internal/domain"
)

// StateRepository persists the small client-side state that outlives a run:
// the contact-form submission log and the theme preference. Implementations
// must degrade reads of missing or corrupt state to the empty value instead of
// failing; only genuine I/O errors on writes are reported.
type StateRepository interface {
	LoadSubmissions(ctx context.Context) (domain.SubmissionLog, error)
	SaveSubmissions(ctx context.Context, log domain.SubmissionLog) error

	// LoadTheme returns domain.ErrThemeNotSet when no preference was saved.
	LoadTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
