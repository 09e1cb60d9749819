package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrayerTypesCanonicalOrder(t *testing.T) {
	assert.Equal(t, [...]PrayerType{"fajr", "dhuhr", "asr", "maghrib", "isha"}, PrayerTypes)
}

func TestParsePrayerType(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"fajr", true},
		{"dhuhr", true},
		{"asr", true},
		{"maghrib", true},
		{"isha", true},
		{"Fajr", false},
		{"tahajjud", false},
		{"", false},
	}

	for _, tt := range tests {
		pt, ok := ParsePrayerType(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, PrayerType(tt.input), pt)
	}
}

func TestDisplay(t *testing.T) {
	d := PrayerFajr.Display()
	assert.Equal(t, "İmsak", d.Name)
	assert.Equal(t, IconSun, d.Icon)
	assert.Equal(t, "#fed7aa", d.IconBg)
	assert.Equal(t, "#fb923c", d.IconColor)

	assert.Equal(t, IconMoon, PrayerIsha.Display().Icon)
	assert.Equal(t, "Yatsı", PrayerIsha.Display().Name)
}

func TestDisplayUnknown(t *testing.T) {
	assert.Equal(t, Display{}, PrayerType("witr").Display())
}

func TestEveryTypeHasDisplay(t *testing.T) {
	for _, pt := range PrayerTypes {
		d := pt.Display()
		assert.NotEmpty(t, d.Name, pt)
		assert.NotEmpty(t, d.Icon, pt)
		assert.NotEmpty(t, d.IconBg, pt)
		assert.NotEmpty(t, d.IconColor, pt)
	}
}

func TestPrayerTypeForLabel(t *testing.T) {
	pt, ok := PrayerTypeForLabel("Akşam")
	assert.True(t, ok)
	assert.Equal(t, PrayerMaghrib, pt)

	_, ok = PrayerTypeForLabel("Güneş")
	assert.False(t, ok)
}
