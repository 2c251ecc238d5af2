package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
)

// Panel colors.
const (
	colorSun     = "#FFD700" // gold
	colorMoon    = "#B0C4DE" // light steel blue
	colorUp      = "#7CFC00" // lawn green - above horizon
	colorBelow   = "#444444" // dark gray - below horizon
	colorTwilite = "#FF8C00" // dark orange - twilight band
)

var (
	sunLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSun)).Bold(true)
	moonLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoon)).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	upStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(colorUp))
	belowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBelow))
	twiliteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorTwilite))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)
)

// RenderSunPanel renders the sun's current position and today's events.
func RenderSunPanel(r almanac.DayReport) string {
	pos := fmt.Sprintf("Az %6.1f°   Alt %6.1f°",
		almanac.CompassAzimuthDeg(r.Sun.Azimuth), almanac.Deg(r.Sun.Altitude))

	events := strings.Join([]string{
		eventCell("Dawn", r.SunTimes.Dawn),
		eventCell("Sunrise", r.SunTimes.Sunrise),
		eventCell("Noon", r.SunTimes.SolarNoon),
		eventCell("Sunset", r.SunTimes.Sunset),
		eventCell("Dusk", r.SunTimes.Dusk),
	}, "   ")

	golden := strings.Join([]string{
		eventCell("Golden end", r.SunTimes.GoldenHourEnd),
		eventCell("Golden", r.SunTimes.GoldenHour),
		eventCell("Night end", r.SunTimes.NightEnd),
		eventCell("Night", r.SunTimes.Night),
	}, "   ")

	body := sunLabelStyle.Render("Sun ") + altitudeStyle(almanac.Deg(r.Sun.Altitude)).Render(pos) +
		"\n" + events + "\n" + golden

	return panelStyle.Render(body)
}

// RenderMoonPanel renders the moon's position, illumination and rise/set.
func RenderMoonPanel(r almanac.DayReport) string {
	pos := fmt.Sprintf("Az %6.1f°   Alt %6.1f°   %s km",
		almanac.CompassAzimuthDeg(r.Moon.Azimuth),
		almanac.Deg(r.Moon.Altitude),
		formatDistance(r.Moon.DistanceKm))

	illum := fmt.Sprintf("%s %s   %.0f%% lit   phase %.3f",
		phaseGlyph(r.Illum.Phase), r.PhaseName, r.Illum.Fraction*100, r.Illum.Phase)

	var times string
	switch {
	case r.MoonTimes.AlwaysUp:
		times = upStyle.Render("Above horizon all day")
	case r.MoonTimes.AlwaysDown:
		times = belowStyle.Render("Below horizon all day")
	default:
		var parts []string
		if r.MoonTimes.HasRise {
			parts = append(parts, "Rise "+r.MoonTimes.Rise.Format("15:04"))
		}
		if r.MoonTimes.HasSet {
			parts = append(parts, "Set "+r.MoonTimes.Set.Format("15:04"))
		}
		times = strings.Join(parts, "   ")
	}

	body := moonLabelStyle.Render("Moon ") + altitudeStyle(almanac.Deg(r.Moon.Altitude)).Render(pos) +
		"\n" + illum + "\n" + times

	return panelStyle.Render(body)
}

// sparkRunes map normalized altitude to bar heights.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// RenderAltitudeStrip renders sun and moon altitude sparklines across the
// report day, with a marker column at the current instant.
func RenderAltitudeStrip(trace *almanac.AltitudeTrace, now time.Time) string {
	if trace == nil || len(trace.Samples) == 0 {
		return ""
	}

	sunRow := make([]string, 0, len(trace.Samples))
	moonRow := make([]string, 0, len(trace.Samples))
	markRow := make([]string, 0, len(trace.Samples))

	closest := trace.Closest(now)

	for i := range trace.Samples {
		s := &trace.Samples[i]
		sunRow = append(sunRow, sparkCell(s.SunAltDeg))
		moonRow = append(moonRow, sparkCell(s.MoonAltDeg))
		if closest != nil && s.Time.Equal(closest.Time) {
			markRow = append(markRow, "▲")
		} else {
			markRow = append(markRow, " ")
		}
	}

	return sunLabelStyle.Render("Sun  ") + strings.Join(sunRow, "") + "\n" +
		moonLabelStyle.Render("Moon ") + strings.Join(moonRow, "") + "\n" +
		dimStyle.Render("     "+strings.Join(markRow, ""))
}

// sparkCell renders one altitude sample: a height-scaled bar above the
// horizon, a dim dot below.
func sparkCell(altDeg float64) string {
	if altDeg <= 0 {
		return belowStyle.Render("·")
	}
	idx := int(altDeg / 90 * float64(len(sparkRunes)))
	if idx >= len(sparkRunes) {
		idx = len(sparkRunes) - 1
	}
	return upStyle.Render(string(sparkRunes[idx]))
}

// altitudeStyle colors a position line by how far above the horizon the
// body is.
func altitudeStyle(altDeg float64) lipgloss.Style {
	switch {
	case altDeg > 0:
		return upStyle
	case altDeg > -18:
		return twiliteStyle
	default:
		return belowStyle
	}
}

// phaseGlyph maps a normalized phase value (0=new, 0.5=full) to the
// moon emoji for the same eight buckets as almanac.PhaseName.
func phaseGlyph(phase float64) string {
	switch almanac.PhaseName(phase) {
	case "New Moon":
		return "🌑"
	case "Waxing Crescent":
		return "🌒"
	case "First Quarter":
		return "🌓"
	case "Waxing Gibbous":
		return "🌔"
	case "Full Moon":
		return "🌕"
	case "Waning Gibbous":
		return "🌖"
	case "Last Quarter":
		return "🌗"
	default:
		return "🌘"
	}
}

// eventCell formats "Label HH:MM", dimming events that do not occur.
func eventCell(label string, t time.Time) string {
	if t.IsZero() {
		return dimStyle.Render(label + " —")
	}
	return label + " " + t.Format("15:04")
}

// formatDistance renders a km distance with thousands separators.
func formatDistance(km float64) string {
	n := int64(km + 0.5)
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d %03d", n/1000, n%1000)
}
