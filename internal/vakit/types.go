// Package vakit fetches daily prayer times for a city from the remote
// prayer-time feed.
package vakit

import (
	"strings"
	"unicode"

	"github.com/jwulff/kaza-go/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Entry is one raw row of the feed response.
type Entry struct {
	Vakit string `json:"vakit"` // Turkish label, e.g. "İmsak"
	Saat  string `json:"saat"`  // Clock time, e.g. "05:42"
}

// Response is the feed's response body.
type Response struct {
	Result []Entry `json:"result"`
}

// Time is a prayer time ready for display.
type Time struct {
	ID   int               `json:"id"`
	Type domain.PrayerType `json:"type"`
	Name string            `json:"name"`
	Time string            `json:"time"`
	Icon string            `json:"icon"`
}

// ToTimes keeps the entries whose label names one of the five prayers, in
// feed order, numbering them from 1.
func ToTimes(entries []Entry) []Time {
	times := make([]Time, 0, len(entries))
	for _, e := range entries {
		pt, ok := domain.PrayerTypeForLabel(e.Vakit)
		if !ok {
			continue
		}
		times = append(times, Time{
			ID:   len(times) + 1,
			Type: pt,
			Name: e.Vakit,
			Time: e.Saat,
			Icon: pt.Display().Icon,
		})
	}
	return times
}

// NormalizeCity lower-cases name with Turkish rules and strips diacritics,
// so "İstanbul" becomes "istanbul" and "Çanakkale" becomes "canakkale".
// Dotless ı has no decomposition and is kept.
func NormalizeCity(name string) string {
	lower := cases.Lower(language.Turkish).String(strings.TrimSpace(name))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}
