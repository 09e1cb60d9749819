// Package storage provides storage abstractions for the kaza tracker.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwulff/kaza-go/internal/domain"
)

// Well-known setting keys.
const (
	KeyCityName = "cityName"
	KeyTheme    = "theme"
)

// Store is the interface for persistent storage.
type Store interface {
	// Missed prayers
	AddMissedPrayer(ctx context.Context, prayer *domain.MissedPrayer) (int64, error)
	ListMissedPrayers(ctx context.Context) ([]domain.MissedPrayer, error)
	DeleteMissedPrayer(ctx context.Context, id int64) error
	CountMissedPrayers(ctx context.Context) (int, error)

	// Settings
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	// Lifecycle
	Close() error
}

// ErrNotInitialized is returned when a store is used before it was opened
// or after it was closed.
var ErrNotInitialized = errors.New("storage not initialized")

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}

// ValidationError reports input that was rejected before reaching storage.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
