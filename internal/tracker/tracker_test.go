package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwulff/kaza-go/internal/domain"
	"github.com/jwulff/kaza-go/internal/storage"
	"github.com/jwulff/kaza-go/internal/storage/sqlite"
	"github.com/jwulff/kaza-go/internal/vakit"
)

var errDisk = errors.New("disk I/O error")

// failingStore fails every call with err.
type failingStore struct {
	err   error
	calls int
}

func (f *failingStore) AddMissedPrayer(context.Context, *domain.MissedPrayer) (int64, error) {
	f.calls++
	return 0, f.err
}

func (f *failingStore) ListMissedPrayers(context.Context) ([]domain.MissedPrayer, error) {
	f.calls++
	return nil, f.err
}

func (f *failingStore) DeleteMissedPrayer(context.Context, int64) error {
	f.calls++
	return f.err
}

func (f *failingStore) CountMissedPrayers(context.Context) (int, error) {
	f.calls++
	return 0, f.err
}

func (f *failingStore) GetSetting(context.Context, string) (string, error) {
	f.calls++
	return "", f.err
}

func (f *failingStore) SetSetting(context.Context, string, string) error {
	f.calls++
	return f.err
}

func (f *failingStore) DeleteSetting(context.Context, string) error {
	f.calls++
	return f.err
}

func (f *failingStore) Close() error { return nil }

type stubTimes struct {
	city  string
	times []vakit.Time
	err   error
}

func (s *stubTimes) FetchTimes(_ context.Context, city string) ([]vakit.Time, error) {
	s.city = city
	return s.times, s.err
}

func newTestTracker(t *testing.T) *Tracker {
	store, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return New(store, nil, zerolog.Nop())
}

func mustAdd(t *testing.T, tr *Tracker, pt domain.PrayerType, date string) int64 {
	t.Helper()
	id, err := tr.AddMissedPrayer(context.Background(), pt, date)
	require.NoError(t, err)
	require.NotZero(t, id)
	return id
}

func TestAddMissedPrayerRejectsBadDate(t *testing.T) {
	for _, date := range []string{"2024-1-5", "05-01-2024", "", "yesterday"} {
		t.Run(date, func(t *testing.T) {
			store := &failingStore{err: errDisk}
			tr := New(store, nil, zerolog.Nop())

			_, err := tr.AddMissedPrayer(context.Background(), domain.PrayerFajr, date)

			require.Error(t, err)
			assert.True(t, storage.IsValidation(err))
			assert.NotErrorIs(t, err, errDisk)
			assert.Zero(t, store.calls, "validation must happen before storage access")
		})
	}
}

func TestAddMissedPrayerRejectsUnknownType(t *testing.T) {
	tr := newTestTracker(t)

	_, err := tr.AddMissedPrayer(context.Background(), "witr", "2024-03-01")
	assert.True(t, storage.IsValidation(err))
	assert.Zero(t, tr.TotalCount(context.Background()))
}

func TestAddMissedPrayerPropagatesStorageError(t *testing.T) {
	tr := New(&failingStore{err: errDisk}, nil, zerolog.Nop())

	_, err := tr.AddMissedPrayer(context.Background(), domain.PrayerFajr, "2024-03-01")
	assert.ErrorIs(t, err, errDisk)
	assert.False(t, storage.IsValidation(err))
}

func TestMissedPrayersScenario(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	mustAdd(t, tr, domain.PrayerFajr, "2024-03-01")
	mustAdd(t, tr, domain.PrayerFajr, "2024-03-05")
	mustAdd(t, tr, domain.PrayerIsha, "2024-03-02")

	aggs := tr.MissedPrayers(ctx)
	require.Len(t, aggs, 2)

	assert.Equal(t, domain.PrayerFajr, aggs[0].Type)
	assert.Equal(t, 2, aggs[0].Count)
	assert.Equal(t, "2024-03-05", aggs[0].Items[0].Date)
	assert.Equal(t, "2024-03-01", aggs[0].Items[1].Date)

	assert.Equal(t, domain.PrayerIsha, aggs[1].Type)
	require.Len(t, aggs[1].Items, 1)
	assert.Equal(t, "2024-03-02", aggs[1].Items[0].Date)

	assert.Equal(t, 3, tr.TotalCount(ctx))
}

func TestMissedPrayersCanonicalOrderAllTypes(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	// Insert in reverse type order with dates that would sort isha first.
	mustAdd(t, tr, domain.PrayerIsha, "2024-05-01")
	mustAdd(t, tr, domain.PrayerAsr, "2024-04-01")
	mustAdd(t, tr, domain.PrayerDhuhr, "2024-03-01")
	mustAdd(t, tr, domain.PrayerAsr, "2024-02-01")

	aggs := tr.MissedPrayers(ctx)
	require.Len(t, aggs, 3)

	assert.Equal(t, domain.PrayerDhuhr, aggs[0].Type)
	assert.Equal(t, domain.PrayerAsr, aggs[1].Type)
	assert.Equal(t, domain.PrayerIsha, aggs[2].Type)
	for _, agg := range aggs {
		assert.Equal(t, len(agg.Items), agg.Count)
	}
}

func TestMissedPrayersSameDateTieBreak(t *testing.T) {
	tr := newTestTracker(t)

	first := mustAdd(t, tr, domain.PrayerAsr, "2024-03-01")
	second := mustAdd(t, tr, domain.PrayerAsr, "2024-03-01")
	third := mustAdd(t, tr, domain.PrayerAsr, "2024-03-01")

	aggs := tr.MissedPrayers(context.Background())
	require.Len(t, aggs, 1)

	assert.Equal(t, []domain.Item{
		{ID: third, Date: "2024-03-01"},
		{ID: second, Date: "2024-03-01"},
		{ID: first, Date: "2024-03-01"},
	}, aggs[0].Items)
}

func TestMissedPrayersSwallowsStorageError(t *testing.T) {
	tr := New(&failingStore{err: errDisk}, nil, zerolog.Nop())

	aggs := tr.MissedPrayers(context.Background())
	assert.NotNil(t, aggs)
	assert.Empty(t, aggs)
}

func TestDeleteMissedPrayer(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	id := mustAdd(t, tr, domain.PrayerMaghrib, "2024-03-01")
	mustAdd(t, tr, domain.PrayerMaghrib, "2024-03-02")
	before := tr.TotalCount(ctx)

	require.NoError(t, tr.DeleteMissedPrayer(ctx, id))
	assert.Equal(t, before-1, tr.TotalCount(ctx))

	require.NoError(t, tr.DeleteMissedPrayer(ctx, 424242))
	assert.Equal(t, before-1, tr.TotalCount(ctx))
}

func TestDeleteMissedPrayerPropagatesError(t *testing.T) {
	tr := New(&failingStore{err: errDisk}, nil, zerolog.Nop())

	err := tr.DeleteMissedPrayer(context.Background(), 1)
	assert.ErrorIs(t, err, errDisk)
}

func TestTotalCountAfterInsertsAndDeletes(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	var ids []int64
	for i, pt := range domain.PrayerTypes {
		for n := 0; n < 2; n++ {
			ids = append(ids, mustAdd(t, tr, pt, fmt.Sprintf("2024-03-%02d", i+1)))
		}
	}
	require.Len(t, ids, 10)

	for _, id := range ids[:4] {
		require.NoError(t, tr.DeleteMissedPrayer(ctx, id))
	}

	assert.Equal(t, 6, tr.TotalCount(ctx))
	assert.Equal(t, 6, domain.TotalItems(tr.MissedPrayers(ctx)))
}

func TestTotalCountSwallowsError(t *testing.T) {
	tr := New(&failingStore{err: errDisk}, nil, zerolog.Nop())
	assert.Zero(t, tr.TotalCount(context.Background()))
}

func TestClosedStore(t *testing.T) {
	store, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	tr := New(store, nil, zerolog.Nop())
	require.NoError(t, store.Close())

	ctx := context.Background()
	assert.Empty(t, tr.MissedPrayers(ctx))
	assert.Zero(t, tr.TotalCount(ctx))

	_, ok, err := tr.CityName(ctx)
	assert.ErrorIs(t, err, storage.ErrNotInitialized)
	assert.False(t, ok)

	_, err = tr.AddMissedPrayer(ctx, domain.PrayerFajr, "2024-03-01")
	assert.ErrorIs(t, err, storage.ErrNotInitialized)
	assert.ErrorIs(t, tr.DeleteMissedPrayer(ctx, 1), storage.ErrNotInitialized)
	assert.ErrorIs(t, tr.ClearCityName(ctx), storage.ErrNotInitialized)
	assert.ErrorIs(t, tr.SetCityName(ctx, "Ankara"), storage.ErrNotInitialized)
}
