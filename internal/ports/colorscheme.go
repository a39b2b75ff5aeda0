package ports

import "github.com/degokisss/CS5709/internal/domain"

// ColorSchemeDetector reports the host's preferred color scheme. ok is false
// when no trustworthy signal exists (output is not a terminal), in which case
// theme resolution falls through to the fixed default.
type ColorSchemeDetector interface {
	Preferred() (theme domain.Theme, ok bool)
}
