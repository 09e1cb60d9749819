package domain

import (
	"regexp"
	"time"
)

// DateLayout is the textual form of a missed prayer's original date.
const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate checks the fixed-width YYYY-MM-DD shape. It does not check
// that the date exists on the calendar.
func IsValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// FormatDate renders t as YYYY-MM-DD in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MissedPrayer is a persisted missed prayer record.
type MissedPrayer struct {
	ID        int64
	Type      PrayerType
	Date      string
	CreatedAt time.Time
}

// NewMissedPrayer creates an unsaved record. ID and CreatedAt are assigned
// by the store on insert.
func NewMissedPrayer(t PrayerType, date string) *MissedPrayer {
	return &MissedPrayer{Type: t, Date: date}
}

// Item is a single entry inside an Aggregate.
type Item struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

// Aggregate groups the missed prayers of one type for list display.
type Aggregate struct {
	Type      PrayerType `json:"type"`
	Name      string     `json:"name"`
	Count     int        `json:"count"`
	Items     []Item     `json:"items"`
	Icon      string     `json:"icon"`
	IconBg    string     `json:"iconBg"`
	IconColor string     `json:"iconColor"`
}

// BuildAggregates buckets rows by prayer type. Buckets come back in
// canonical type order with empty ones removed; inside a bucket rows keep
// the order they were given in. Rows with an unknown type, a zero id or an
// empty date are skipped.
func BuildAggregates(rows []MissedPrayer) []Aggregate {
	buckets := make(map[PrayerType]*Aggregate, len(PrayerTypes))
	for _, t := range PrayerTypes {
		d := t.Display()
		buckets[t] = &Aggregate{
			Type:      t,
			Name:      d.Name,
			Items:     []Item{},
			Icon:      d.Icon,
			IconBg:    d.IconBg,
			IconColor: d.IconColor,
		}
	}

	for _, row := range rows {
		agg, ok := buckets[row.Type]
		if !ok || row.ID == 0 || row.Date == "" {
			continue
		}
		agg.Items = append(agg.Items, Item{ID: row.ID, Date: row.Date})
		agg.Count = len(agg.Items)
	}

	out := make([]Aggregate, 0, len(PrayerTypes))
	for _, t := range PrayerTypes {
		if agg := buckets[t]; agg.Count > 0 {
			out = append(out, *agg)
		}
	}
	return out
}

// TotalItems sums the counts across aggregates.
func TotalItems(aggs []Aggregate) int {
	total := 0
	for _, a := range aggs {
		total += a.Count
	}
	return total
}
