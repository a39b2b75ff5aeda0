package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

// Rate limit defaults: three messages per rolling ten minutes.
const (
	DefaultMaxSubmissions = 3
	DefaultTimeWindow     = 10 * time.Minute
)

// ContactConfig bounds how often the contact form may relay a message.
type ContactConfig struct {
	MaxSubmissions int
	TimeWindow     time.Duration
}

// ContactService relays contact messages through the mailer, enforcing a
// client-side sliding-window rate limit backed by the state repository.
type ContactService struct {
	cfg    ContactConfig
	state  ports.StateRepository
	mailer ports.Mailer
	clock  ports.Clock
	log    *zap.Logger
}

// NewContactService wires a contact service. A nil clock falls back to the
// system clock and a nil logger to a no-op one.
func NewContactService(cfg ContactConfig, state ports.StateRepository, mailer ports.Mailer, clock ports.Clock, log *zap.Logger) (*ContactService, error) {
	if state == nil {
		return nil, fmt.Errorf("contact config: state repository is required")
	}
	if mailer == nil {
		return nil, fmt.Errorf("contact config: mailer is required")
	}
	if cfg.MaxSubmissions <= 0 {
		cfg.MaxSubmissions = DefaultMaxSubmissions
	}
	if cfg.TimeWindow <= 0 {
		cfg.TimeWindow = DefaultTimeWindow
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactService{cfg: cfg, state: state, mailer: mailer, clock: clock, log: log}, nil
}

// Submit validates the message, checks the sliding window, relays the
// message, and records the attempt. The order matters: a rate-limited
// attempt never reaches the mailer, and only a successful send consumes a
// slot. A failure to persist the consumed slot is logged and otherwise
// ignored; the message already went out.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("validate message: %w", err)
	}

	attempt := uuid.NewString()
	now := s.clock.Now()

	history, err := s.state.LoadSubmissions(ctx)
	if err != nil {
		return fmt.Errorf("load submission history: %w", err)
	}
	recent := history.Prune(now, s.cfg.TimeWindow)

	if len(recent) >= s.cfg.MaxSubmissions {
		wait := s.cfg.TimeWindow - now.Sub(recent.Oldest())
		s.log.Info("submission rate limited",
			zap.String("attempt", attempt),
			zap.Int("recent", len(recent)),
			zap.Duration("retry_after", wait))
		return &domain.RateLimitError{RetryAfter: wait}
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.Error("relay send failed",
			zap.String("attempt", attempt),
			zap.Error(err))
		return fmt.Errorf("send message: %w", err)
	}

	recent = append(recent, now)
	if err := s.state.SaveSubmissions(ctx, recent); err != nil {
		s.log.Warn("record submission",
			zap.String("attempt", attempt),
			zap.Error(err))
	}

	s.log.Info("message relayed",
		zap.String("attempt", attempt),
		zap.Int("recent", len(recent)))
	return nil
}
