package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwulff/kaza-go/internal/domain"
	"github.com/jwulff/kaza-go/internal/vakit"
)

// displayDateLayout is the dd.mm.yyyy form used on screen.
const displayDateLayout = "02.01.2006"

// DisplayDate turns a stored YYYY-MM-DD date into dd.mm.yyyy, returning the
// input unchanged if it does not parse.
func DisplayDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(displayDateLayout)
}

// MissedPrayers renders the aggregates followed by the total line.
func MissedPrayers(p Palette, aggs []domain.Aggregate, total int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	muted := lipgloss.NewStyle().Foreground(p.Muted)
	count := lipgloss.NewStyle().Bold(true).Foreground(p.Primary)

	var b strings.Builder
	if len(aggs) == 0 {
		b.WriteString(muted.Render("No missed prayers recorded."))
		b.WriteString("\n")
		return b.String()
	}

	for _, agg := range aggs {
		d := domain.Display{Name: agg.Name, Icon: agg.Icon, IconBg: agg.IconBg, IconColor: agg.IconColor}
		fmt.Fprintf(&b, "%s %s\n", Badge(d), count.Render(fmt.Sprintf("%d", agg.Count)))
		for _, item := range agg.Items {
			fmt.Fprintf(&b, "  %s %s\n", muted.Render(fmt.Sprintf("#%-5d", item.ID)), DisplayDate(item.Date))
		}
	}
	b.WriteString("\n")
	b.WriteString(title.Render(fmt.Sprintf("Total: %d", total)))
	b.WriteString("\n")
	return b.String()
}

// NextTime returns the index of the first time later than now's clock, or
// -1 when all of today's times have passed.
func NextTime(times []vakit.Time, now time.Time) int {
	clock := now.Format("15:04")
	for i, t := range times {
		if t.Time > clock {
			return i
		}
	}
	return -1
}

// PrayerTimes renders a city's daily times, marking the next one.
func PrayerTimes(p Palette, city string, times []vakit.Time, now time.Time) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	next := lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Background(p.Highlight)
	muted := lipgloss.NewStyle().Foreground(p.Muted)

	var b strings.Builder
	b.WriteString(title.Render(fmt.Sprintf("Prayer times (%s)", city)))
	b.WriteString("\n")
	if len(times) == 0 {
		b.WriteString(muted.Render("No prayer times available."))
		b.WriteString("\n")
		return b.String()
	}

	upcoming := NextTime(times, now)
	for i, t := range times {
		line := fmt.Sprintf("%s %-8s %s", Glyph(t.Icon), t.Name, t.Time)
		if i == upcoming {
			b.WriteString(next.Render(line + "  ←"))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// PrayerTypes renders the type keys with their display badges.
func PrayerTypes() string {
	var b strings.Builder
	for _, t := range domain.PrayerTypes {
		fmt.Fprintf(&b, "%-8s %s\n", t, Badge(t.Display()))
	}
	return b.String()
}
