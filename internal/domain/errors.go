package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrThemeNotSet     = errors.New("theme preference not set")
	ErrSecretNotFound  = errors.New("secret not found")
)

// RateLimitError rejects a contact-form submission while the sliding window
// is full. RetryAfter is how long until the oldest recorded send expires.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("submission limit reached, retry in %s", e.RetryAfter.Round(time.Second))
}
