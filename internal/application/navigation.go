package application

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

// Navigation defaults, in viewport rows and wall-clock time. The offset
// threshold matches the sticky header height so detection tracks the line a
// reader actually sees below it.
const (
	DefaultScrollThreshold   = 2
	DefaultOffsetThreshold   = 3
	DefaultBottomTolerance   = 1
	DefaultSuppressionWindow = time.Second
)

// NavigationConfig describes the section list and the thresholds the spy
// evaluates against. Sections must be in document order; the last entry is
// the one the bottom-of-page override selects.
type NavigationConfig struct {
	Sections          []domain.SectionID
	InitialSection    domain.SectionID
	ScrollThreshold   int
	OffsetThreshold   int
	BottomTolerance   int
	SuppressionWindow time.Duration
}

// NavState is the observable output of the spy: what the nav highlights,
// whether the chrome is past its scroll threshold, and whether detection is
// currently suppressed by a programmatic jump.
type NavState struct {
	Active       domain.SectionID
	ScrolledPast bool
	Suppressed   bool
}

// NavigationService owns scroll-spy detection and programmatic navigation.
// It is not safe for concurrent use; drive it from a single event loop.
type NavigationService struct {
	cfg      NavigationConfig
	geometry ports.Geometry
	scroller ports.Scroller
	log      *zap.Logger

	tracked map[domain.SectionID]struct{}

	active       domain.SectionID
	scrolledPast bool
	suppressed   bool
	generation   int
}

// NewNavigationService validates the config and returns a service primed on
// the initial section. Zero thresholds are honored; negative ones are
// configuration mistakes and rejected.
func NewNavigationService(cfg NavigationConfig, geometry ports.Geometry, scroller ports.Scroller, log *zap.Logger) (*NavigationService, error) {
	if len(cfg.Sections) == 0 {
		return nil, fmt.Errorf("navigation config: at least one section is required")
	}
	if cfg.ScrollThreshold < 0 || cfg.OffsetThreshold < 0 || cfg.BottomTolerance < 0 {
		return nil, fmt.Errorf("navigation config: thresholds must not be negative")
	}
	if geometry == nil {
		return nil, fmt.Errorf("navigation config: geometry is required")
	}
	if scroller == nil {
		return nil, fmt.Errorf("navigation config: scroller is required")
	}
	if cfg.SuppressionWindow <= 0 {
		cfg.SuppressionWindow = DefaultSuppressionWindow
	}
	if cfg.InitialSection == "" {
		cfg.InitialSection = cfg.Sections[0]
	}
	if log == nil {
		log = zap.NewNop()
	}

	tracked := make(map[domain.SectionID]struct{}, len(cfg.Sections))
	for _, id := range cfg.Sections {
		tracked[id] = struct{}{}
	}
	if _, ok := tracked[cfg.InitialSection]; !ok {
		return nil, fmt.Errorf("navigation config: initial section %q is not in the section list", cfg.InitialSection)
	}

	return &NavigationService{
		cfg:      cfg,
		geometry: geometry,
		scroller: scroller,
		log:      log,
		tracked:  tracked,
		active:   cfg.InitialSection,
	}, nil
}

// Tick reevaluates the spy against current geometry. Call it once after the
// first layout and again on every scroll movement.
//
// The scrolled-past flag always updates. Detection only runs when not
// suppressed: first the bottom-of-content override selects the last section,
// otherwise the first section in document order whose bounds cross the offset
// threshold wins. When nothing crosses it the previous selection is retained.
func (s *NavigationService) Tick() {
	offset := s.geometry.ScrollOffset()
	s.scrolledPast = offset > s.cfg.ScrollThreshold

	if s.suppressed {
		return
	}

	if s.geometry.ViewportHeight()+offset >= s.geometry.ContentHeight()-s.cfg.BottomTolerance {
		s.active = s.cfg.Sections[len(s.cfg.Sections)-1]
		return
	}

	for _, id := range s.cfg.Sections {
		bounds, err := s.geometry.SectionBounds(id)
		if err != nil {
			s.log.Debug("section bounds unavailable", zap.String("section", string(id)), zap.Error(err))
			continue
		}
		if bounds.Crosses(s.cfg.OffsetThreshold) {
			s.active = id
			return
		}
	}
}

// Navigate jumps to target: the highlight moves immediately, detection is
// suppressed, and the scroller is asked to bring the section into view. The
// returned generation must be handed back to ExpireSuppression after
// SuppressionWindow elapses.
//
// A target outside the configured list is a caller bug and returns
// domain.ErrSectionNotFound with no state change. A scroller failure is not:
// the jump already happened visually, so it is logged and the suppression
// cycle completes normally.
func (s *NavigationService) Navigate(target domain.SectionID) (int, error) {
	if _, ok := s.tracked[target]; !ok {
		return 0, fmt.Errorf("navigate to %q: %w", target, domain.ErrSectionNotFound)
	}

	s.active = target
	s.suppressed = true
	s.generation++

	if err := s.scroller.ScrollTo(target); err != nil {
		s.log.Warn("scroll target unavailable",
			zap.String("section", string(target)),
			zap.Error(err))
	}

	return s.generation, nil
}

// ExpireSuppression lifts suppression if gen still names the most recent
// Navigate. A stale generation is ignored, which is what gives a rapid
// second jump its full window instead of inheriting the first jump's timer.
func (s *NavigationService) ExpireSuppression(gen int) {
	if gen != s.generation {
		return
	}
	s.suppressed = false
}

// State returns the current observable spy state.
func (s *NavigationService) State() NavState {
	return NavState{
		Active:       s.active,
		ScrolledPast: s.scrolledPast,
		Suppressed:   s.suppressed,
	}
}

// SuppressionWindow reports how long callers should wait before calling
// ExpireSuppression with the generation Navigate returned.
func (s *NavigationService) SuppressionWindow() time.Duration {
	return s.cfg.SuppressionWindow
}

// Sections returns the configured section order.
func (s *NavigationService) Sections() []domain.SectionID {
	out := make([]domain.SectionID, len(s.cfg.Sections))
	copy(out, s.cfg.Sections)
	return out
}
