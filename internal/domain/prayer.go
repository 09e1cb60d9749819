// Package domain holds the prayer types and missed-prayer records.
package domain

// PrayerType identifies one of the five daily obligatory prayers.
type PrayerType string

const (
	PrayerFajr    PrayerType = "fajr"
	PrayerDhuhr   PrayerType = "dhuhr"
	PrayerAsr     PrayerType = "asr"
	PrayerMaghrib PrayerType = "maghrib"
	PrayerIsha    PrayerType = "isha"
)

// PrayerTypes lists every prayer type in canonical display order.
var PrayerTypes = [...]PrayerType{
	PrayerFajr,
	PrayerDhuhr,
	PrayerAsr,
	PrayerMaghrib,
	PrayerIsha,
}

// Display holds the static presentation data for a prayer type.
type Display struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	IconBg    string `json:"iconBg"`
	IconColor string `json:"iconColor"`
}

// Icon identifiers.
const (
	IconSun  = "sunny-outline"
	IconMoon = "moon-outline"
)

// Display returns the presentation data for t, or the zero Display if t is
// not a known prayer type.
func (t PrayerType) Display() Display {
	switch t {
	case PrayerFajr:
		return Display{Name: "İmsak", Icon: IconSun, IconBg: "#fed7aa", IconColor: "#fb923c"}
	case PrayerDhuhr:
		return Display{Name: "Öğle", Icon: IconSun, IconBg: "#fef3c7", IconColor: "#f59e0b"}
	case PrayerAsr:
		return Display{Name: "İkindi", Icon: IconSun, IconBg: "#dbeafe", IconColor: "#3b82f6"}
	case PrayerMaghrib:
		return Display{Name: "Akşam", Icon: IconSun, IconBg: "#e9d5ff", IconColor: "#a855f7"}
	case PrayerIsha:
		return Display{Name: "Yatsı", Icon: IconMoon, IconBg: "#e0e7ff", IconColor: "#6366f1"}
	}
	return Display{}
}

// Valid reports whether t is one of the five recognized prayer types.
func (t PrayerType) Valid() bool {
	for _, known := range PrayerTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParsePrayerType converts a raw string into a PrayerType.
func ParsePrayerType(s string) (PrayerType, bool) {
	t := PrayerType(s)
	return t, t.Valid()
}

// PrayerTypeForLabel finds the prayer type whose display name is label.
func PrayerTypeForLabel(label string) (PrayerType, bool) {
	for _, t := range PrayerTypes {
		if t.Display().Name == label {
			return t, true
		}
	}
	return "", false
}
