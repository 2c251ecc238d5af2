package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// AltitudeSample is the sun and moon altitude at one point in time.
type AltitudeSample struct {
	Time       time.Time
	SunAltDeg  float64 // degrees above horizon
	MoonAltDeg float64 // degrees above horizon (refraction-corrected)
}

// AltitudeTrace contains sun/moon altitude samples across one day.
type AltitudeTrace struct {
	Observer    Observer
	WindowStart time.Time
	WindowEnd   time.Time
	Samples     []AltitudeSample
}

// DefaultTraceStep is the sampling interval for altitude traces.
const DefaultTraceStep = 30 * time.Minute

// ComputeAltitudeTrace samples sun and moon altitude over the 24 hours
// starting at dayStart. A non-positive step falls back to DefaultTraceStep.
func ComputeAltitudeTrace(obs Observer, dayStart time.Time, step time.Duration) *AltitudeTrace {
	if step <= 0 {
		step = DefaultTraceStep
	}
	windowEnd := dayStart.Add(24 * time.Hour)

	trace := &AltitudeTrace{
		Observer:    obs,
		WindowStart: dayStart,
		WindowEnd:   windowEnd,
	}

	for at := dayStart; !at.After(windowEnd); at = at.Add(step) {
		sun := astro.GetSunPosition(at, obs.LatDeg, obs.LonDeg)
		moon := astro.GetMoonPosition(at, obs.LatDeg, obs.LonDeg)

		trace.Samples = append(trace.Samples, AltitudeSample{
			Time:       at,
			SunAltDeg:  Deg(sun.Altitude),
			MoonAltDeg: Deg(moon.Altitude),
		})
	}

	return trace
}

// Closest returns the sample nearest to the given time, or nil if the trace
// is empty.
func (t *AltitudeTrace) Closest(now time.Time) *AltitudeSample {
	if len(t.Samples) == 0 {
		return nil
	}

	var closest *AltitudeSample
	minDelta := time.Duration(1<<63 - 1)

	for i := range t.Samples {
		delta := t.Samples[i].Time.Sub(now)
		if delta < 0 {
			delta = -delta
		}
		if delta < minDelta {
			minDelta = delta
			closest = &t.Samples[i]
		}
	}

	return closest
}
