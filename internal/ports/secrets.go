package ports

import "context"

// SecretStore holds the mail relay's private key outside the config file.
// Lookups that find nothing return domain.ErrSecretNotFound.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
