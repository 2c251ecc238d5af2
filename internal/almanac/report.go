// Package almanac derives daily sun/moon reports from the astro core and
// formats them for export and display.
package almanac

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Observer is a ground-based observation site.
type Observer struct {
	LatDeg float64 // latitude in degrees, north positive
	LonDeg float64 // longitude in degrees, east positive
	Name   string  // optional site name
}

// DayReport aggregates everything the almanac knows about one day at one
// site: instantaneous positions at At, plus the day's event times.
type DayReport struct {
	Observer Observer
	At       time.Time // instant positions/illumination are evaluated at
	DayStart time.Time // midnight anchoring the rise/set windows
	InUTC    bool      // whether DayStart is UTC or local midnight

	Sun      astro.SunPosition
	SunTimes astro.SunTimes

	Moon      astro.MoonPosition
	Illum     astro.MoonIllumination
	MoonTimes astro.MoonTimes

	PhaseName string
}

// Compute builds a DayReport for the given observer and instant. When inUTC
// is true, rise/set windows are anchored to UTC midnight of At's date.
func Compute(obs Observer, at time.Time, inUTC bool) DayReport {
	var dayStart time.Time
	if inUTC {
		y, m, d := at.UTC().Date()
		dayStart = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	} else {
		y, m, d := at.Date()
		dayStart = time.Date(y, m, d, 0, 0, 0, 0, at.Location())
	}

	ill := astro.GetMoonIllumination(at)

	return DayReport{
		Observer:  obs,
		At:        at,
		DayStart:  dayStart,
		InUTC:     inUTC,
		Sun:       astro.GetSunPosition(at, obs.LatDeg, obs.LonDeg),
		SunTimes:  astro.GetSunTimes(at, obs.LatDeg, obs.LonDeg),
		Moon:      astro.GetMoonPosition(at, obs.LatDeg, obs.LonDeg),
		Illum:     ill,
		MoonTimes: astro.GetMoonTimes(at, obs.LatDeg, obs.LonDeg, inUTC),
		PhaseName: PhaseName(ill.Phase),
	}
}

// PhaseName maps a normalized phase value (0=new, 0.5=full) to the
// conventional eight-phase name.
func PhaseName(phase float64) string {
	const tol = 0.02

	switch {
	case phase < tol || phase > 1-tol:
		return "New Moon"
	case math.Abs(phase-0.25) < tol:
		return "First Quarter"
	case math.Abs(phase-0.5) < tol:
		return "Full Moon"
	case math.Abs(phase-0.75) < tol:
		return "Last Quarter"
	case phase < 0.25:
		return "Waxing Crescent"
	case phase < 0.5:
		return "Waxing Gibbous"
	case phase < 0.75:
		return "Waning Gibbous"
	default:
		return "Waning Crescent"
	}
}

// CompassAzimuthDeg converts a south-referenced azimuth in radians (the
// astro core's convention) to a compass bearing in degrees (0 = north,
// 90 = east).
func CompassAzimuthDeg(az float64) float64 {
	deg := az*180/math.Pi + 180
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Deg converts radians to degrees.
func Deg(r float64) float64 {
	return r * 180 / math.Pi
}
