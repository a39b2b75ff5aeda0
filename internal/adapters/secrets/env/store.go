package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

// DefaultPrefix is prepended to every mapped variable name.
const DefaultPrefix = "FOLIO_"

// Store resolves secrets from process environment variables, mapping a key
// like "emailjs/private_key" to FOLIO_EMAILJS_PRIVATE_KEY. It sits first in
// the default chain so deployments can inject the relay key without touching
// the filesystem. The store is read-only; writes belong to the fallback.
type Store struct {
	prefix string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	return &Store{prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := s.varForKey(key)
	if err != nil {
		return "", err
	}

	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("environment secret %s: %w", name, domain.ErrSecretNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return errors.New("environment secret store is read-only")
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return errors.New("environment secret store is read-only")
}

func (s *Store) varForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	mapped := strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(trimmed)
	return s.prefix + strings.ToUpper(mapped), nil
}
