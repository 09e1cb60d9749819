// Package tracker is the missed prayer repository used by the CLI and the
// HTTP API. It owns the error policy: reads degrade to an empty, zero or
// absent result so the UI stays usable, while writes return their error to
// the caller.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jwulff/kaza-go/internal/domain"
	"github.com/jwulff/kaza-go/internal/storage"
	"github.com/jwulff/kaza-go/internal/vakit"
)

// ErrNoCity is returned when prayer times are requested before a city was
// chosen.
var ErrNoCity = errors.New("no city selected")

// TimesFetcher provides daily prayer times for a city.
type TimesFetcher interface {
	FetchTimes(ctx context.Context, city string) ([]vakit.Time, error)
}

// Tracker wraps a storage.Store with the missed prayer operations.
type Tracker struct {
	store storage.Store
	times TimesFetcher
	log   zerolog.Logger
}

// New creates a Tracker. times may be nil when no feed is configured.
func New(store storage.Store, times TimesFetcher, logger zerolog.Logger) *Tracker {
	return &Tracker{
		store: store,
		times: times,
		log:   logger.With().Str("component", "tracker").Logger(),
	}
}

// AddMissedPrayer records a missed prayer and returns its id. The date must
// be YYYY-MM-DD; a bad date or unknown type fails with a
// storage.ValidationError before storage is touched. The id is 0 if the
// store could not report one.
func (t *Tracker) AddMissedPrayer(ctx context.Context, prayerType domain.PrayerType, date string) (int64, error) {
	if !prayerType.Valid() {
		return 0, storage.ValidationError{Field: "prayer type", Value: string(prayerType), Reason: "expected one of fajr, dhuhr, asr, maghrib, isha"}
	}
	if !domain.IsValidDate(date) {
		return 0, storage.ValidationError{Field: "date", Value: date, Reason: "expected YYYY-MM-DD"}
	}

	id, err := t.store.AddMissedPrayer(ctx, domain.NewMissedPrayer(prayerType, date))
	if err != nil {
		t.log.Error().Err(err).Str("type", string(prayerType)).Str("date", date).Msg("add missed prayer failed")
		return 0, fmt.Errorf("add missed prayer: %w", err)
	}
	if id == 0 {
		t.log.Warn().Str("type", string(prayerType)).Msg("store did not report new row id")
	}
	return id, nil
}

// MissedPrayers returns the non-empty per-type aggregates in canonical
// order. A storage failure yields an empty slice.
func (t *Tracker) MissedPrayers(ctx context.Context) []domain.Aggregate {
	rows, err := t.store.ListMissedPrayers(ctx)
	if err != nil {
		t.log.Warn().Err(err).Msg("list missed prayers failed")
		return []domain.Aggregate{}
	}
	return domain.BuildAggregates(rows)
}

// DeleteMissedPrayer removes a missed prayer. Unknown ids are a no-op.
func (t *Tracker) DeleteMissedPrayer(ctx context.Context, id int64) error {
	if err := t.store.DeleteMissedPrayer(ctx, id); err != nil {
		t.log.Error().Err(err).Int64("id", id).Msg("delete missed prayer failed")
		return fmt.Errorf("delete missed prayer: %w", err)
	}
	return nil
}

// TotalCount returns the number of missed prayers, or 0 on failure.
func (t *Tracker) TotalCount(ctx context.Context) int {
	count, err := t.store.CountMissedPrayers(ctx)
	if err != nil {
		t.log.Warn().Err(err).Msg("count missed prayers failed")
		return 0
	}
	return count
}
