// Package chain layers two secret backends behind one ports.SecretStore.
package chain

import (
	"context"
	"errors"
	"fmt"

	envstore "github.com/degokisss/CS5709/internal/adapters/secrets/env"
	filestore "github.com/degokisss/CS5709/internal/adapters/secrets/file"
	"github.com/degokisss/CS5709/internal/ports"
)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

// Store consults a primary backend and falls through to a second one. The
// default wiring is environment first, file store second, so an injected
// relay key wins over one stored on disk. A context-canceled primary error
// stops the chain; anything else tries the fallback.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func New(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewEnvFirstWithFileFallback is the production chain: FOLIO_* environment
// variables first, files under fileRoot second.
func NewEnvFirstWithFileFallback(fileRoot string) (*Store, error) {
	return New(envstore.NewStore(envstore.DefaultPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil || contextDone(err) {
		return value, err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.writeThrough("put", func(backend ports.SecretStore) error {
		return backend.Put(ctx, key, value)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.writeThrough("delete", func(backend ports.SecretStore) error {
		return backend.Delete(ctx, key)
	})
}

// writeThrough runs a mutation against the primary and, when it fails for a
// reason other than a done context, against the fallback.
func (s *Store) writeThrough(verb string, op func(ports.SecretStore) error) error {
	err := op(s.primary)
	if err == nil || contextDone(err) {
		return err
	}

	if fallbackErr := op(s.fallback); fallbackErr != nil {
		return fmt.Errorf("primary backend %s failed: %w; fallback backend %s failed: %w", verb, err, verb, fallbackErr)
	}

	return nil
}

func contextDone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
