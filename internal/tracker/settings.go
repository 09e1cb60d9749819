package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwulff/kaza-go/internal/storage"
	"github.com/jwulff/kaza-go/internal/vakit"
)

// Theme is the persisted colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Setting looks up key. A missing key or a failed read reports absent; only
// an unopened or closed store is returned as an error.
func (t *Tracker) Setting(ctx context.Context, key string) (string, bool, error) {
	value, err := t.store.GetSetting(ctx, key)
	switch {
	case err == nil:
		return value, true, nil
	case errors.Is(err, storage.ErrNotInitialized):
		return "", false, err
	case !storage.IsNotFound(err):
		t.log.Warn().Err(err).Str("key", key).Msg("read setting failed")
	}
	return "", false, nil
}

// SetSetting stores value under key, replacing any previous value.
func (t *Tracker) SetSetting(ctx context.Context, key, value string) error {
	if err := t.store.SetSetting(ctx, key, value); err != nil {
		t.log.Error().Err(err).Str("key", key).Msg("write setting failed")
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// CityName returns the selected city.
func (t *Tracker) CityName(ctx context.Context) (string, bool, error) {
	return t.Setting(ctx, storage.KeyCityName)
}

// SetCityName persists the selected city as given.
func (t *Tracker) SetCityName(ctx context.Context, city string) error {
	if city == "" {
		return storage.ValidationError{Field: "city", Value: city, Reason: "must not be empty"}
	}
	return t.SetSetting(ctx, storage.KeyCityName, city)
}

// ClearCityName forgets the selected city. Clearing when none is set is a
// no-op.
func (t *Tracker) ClearCityName(ctx context.Context) error {
	if err := t.store.DeleteSetting(ctx, storage.KeyCityName); err != nil {
		t.log.Error().Err(err).Str("key", storage.KeyCityName).Msg("delete setting failed")
		return fmt.Errorf("clear %s: %w", storage.KeyCityName, err)
	}
	return nil
}

// Theme returns the stored theme, defaulting to light.
func (t *Tracker) Theme(ctx context.Context) (Theme, error) {
	value, ok, err := t.Setting(ctx, storage.KeyTheme)
	if err != nil {
		return "", err
	}
	if !ok || Theme(value) != ThemeDark {
		return ThemeLight, nil
	}
	return ThemeDark, nil
}

// SetTheme persists the theme preference.
func (t *Tracker) SetTheme(ctx context.Context, theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return storage.ValidationError{Field: "theme", Value: string(theme), Reason: "expected light or dark"}
	}
	return t.SetSetting(ctx, storage.KeyTheme, string(theme))
}

// PrayerTimes fetches today's times for the selected city and returns the
// city alongside them.
func (t *Tracker) PrayerTimes(ctx context.Context) (string, []vakit.Time, error) {
	city, ok, err := t.CityName(ctx)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, ErrNoCity
	}
	if t.times == nil {
		return city, nil, vakit.ErrNotConfigured
	}

	times, err := t.times.FetchTimes(ctx, city)
	if err != nil {
		t.log.Warn().Err(err).Str("city", city).Msg("fetch prayer times failed")
		return city, nil, fmt.Errorf("fetch prayer times: %w", err)
	}
	return city, times, nil
}
