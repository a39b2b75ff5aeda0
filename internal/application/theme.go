package application

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

// ThemeService resolves the startup theme and persists toggles. The detector
// is optional; without one resolution falls straight through to the fallback.
type ThemeService struct {
	state    ports.StateRepository
	detector ports.ColorSchemeDetector
	fallback domain.Theme
	log      *zap.Logger
}

// NewThemeService wires a theme service. An invalid fallback becomes dark.
func NewThemeService(state ports.StateRepository, detector ports.ColorSchemeDetector, fallback domain.Theme, log *zap.Logger) (*ThemeService, error) {
	if state == nil {
		return nil, fmt.Errorf("theme config: state repository is required")
	}
	if !fallback.Valid() {
		fallback = domain.ThemeDark
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ThemeService{state: state, detector: detector, fallback: fallback, log: log}, nil
}

// Resolve picks the startup theme: a persisted choice wins, then the
// terminal's detected scheme, then the fallback. The detector is only probed
// when no usable preference was persisted.
func (s *ThemeService) Resolve(ctx context.Context) domain.Theme {
	persisted, err := s.state.LoadTheme(ctx)
	if err == nil && persisted.Valid() {
		return persisted
	}
	if err != nil && !errors.Is(err, domain.ErrThemeNotSet) {
		s.log.Warn("load theme preference", zap.Error(err))
	}

	if s.detector != nil {
		if preferred, ok := s.detector.Preferred(); ok && preferred.Valid() {
			return preferred
		}
	}

	return s.fallback
}

// Toggle flips current and persists the result. The flip is authoritative
// even when persistence fails; the failure is only logged.
func (s *ThemeService) Toggle(ctx context.Context, current domain.Theme) domain.Theme {
	next := current.Toggled()
	if err := s.state.SaveTheme(ctx, next); err != nil {
		s.log.Warn("save theme preference", zap.Error(err))
	}
	return next
}
