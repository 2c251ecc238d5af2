package astro

import (
	"math"
	"testing"
	"time"
)

// Reference observer used across the position tests: Kyiv-ish coordinates
// with well-known published values for 2013-03-05 00:00 UTC.
var (
	refTime = time.Date(2013, 3, 5, 0, 0, 0, 0, time.UTC)
	refLat  = 50.5
	refLng  = 30.5
)

func TestGetSunPosition(t *testing.T) {
	pos := GetSunPosition(refTime, refLat, refLng)

	const tol = 1e-6
	if math.Abs(pos.Azimuth-(-2.5003175907168385)) > tol {
		t.Errorf("Azimuth = %v, want -2.500318", pos.Azimuth)
	}
	if math.Abs(pos.Altitude-(-0.7000406838781611)) > tol {
		t.Errorf("Altitude = %v, want -0.700041", pos.Altitude)
	}
}

func TestGetSunPositionIdempotent(t *testing.T) {
	a := GetSunPosition(refTime, refLat, refLng)
	b := GetSunPosition(refTime, refLat, refLng)
	if a != b {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}

func TestGetSunPositionNaNPropagation(t *testing.T) {
	// Degenerate inputs must flow through as NaN, never panic.
	pos := GetSunPosition(refTime, math.NaN(), refLng)
	if !math.IsNaN(pos.Altitude) {
		t.Errorf("expected NaN altitude for NaN latitude, got %v", pos.Altitude)
	}
}

func TestGetSunTimes(t *testing.T) {
	st := GetSunTimes(refTime, refLat, refLng)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"solar noon", st.SolarNoon, time.Date(2013, 3, 5, 10, 10, 57, 0, time.UTC)},
		{"nadir", st.Nadir, time.Date(2013, 3, 4, 22, 10, 57, 0, time.UTC)},
		{"sunrise", st.Sunrise, time.Date(2013, 3, 5, 4, 34, 56, 0, time.UTC)},
		{"sunset", st.Sunset, time.Date(2013, 3, 5, 15, 46, 57, 0, time.UTC)},
		{"sunrise end", st.SunriseEnd, time.Date(2013, 3, 5, 4, 38, 19, 0, time.UTC)},
		{"sunset start", st.SunsetStart, time.Date(2013, 3, 5, 15, 43, 34, 0, time.UTC)},
		{"dawn", st.Dawn, time.Date(2013, 3, 5, 4, 2, 17, 0, time.UTC)},
		{"dusk", st.Dusk, time.Date(2013, 3, 5, 16, 19, 36, 0, time.UTC)},
		{"nautical dawn", st.NauticalDawn, time.Date(2013, 3, 5, 3, 24, 31, 0, time.UTC)},
		{"nautical dusk", st.NauticalDusk, time.Date(2013, 3, 5, 16, 57, 22, 0, time.UTC)},
		{"night end", st.NightEnd, time.Date(2013, 3, 5, 2, 46, 17, 0, time.UTC)},
		{"night", st.Night, time.Date(2013, 3, 5, 17, 35, 36, 0, time.UTC)},
		{"golden hour end", st.GoldenHourEnd, time.Date(2013, 3, 5, 5, 19, 1, 0, time.UTC)},
		{"golden hour", st.GoldenHour, time.Date(2013, 3, 5, 15, 2, 52, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := tt.got.Sub(tt.want)
			if delta < 0 {
				delta = -delta
			}
			if delta > 2*time.Second {
				t.Errorf("%s = %v, want %v (±2s)", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestGetSunTimesOrdering(t *testing.T) {
	st := GetSunTimes(refTime, refLat, refLng)

	if !st.Sunrise.Before(st.SolarNoon) {
		t.Errorf("sunrise %v should precede solar noon %v", st.Sunrise, st.SolarNoon)
	}
	if !st.SolarNoon.Before(st.Sunset) {
		t.Errorf("solar noon %v should precede sunset %v", st.SolarNoon, st.Sunset)
	}
	if !st.Dawn.Before(st.Sunrise) {
		t.Errorf("dawn %v should precede sunrise %v", st.Dawn, st.Sunrise)
	}
}

func TestGetSunTimesPolarNight(t *testing.T) {
	// Svalbard in mid-January: the sun stays well below the horizon, so no
	// sunrise pair exists, but solar noon must still be reported.
	st := GetSunTimes(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 78.2, 15.6)

	if !st.Sunrise.IsZero() || !st.Sunset.IsZero() {
		t.Errorf("expected no sunrise/sunset during polar night, got %v / %v", st.Sunrise, st.Sunset)
	}
	if st.SolarNoon.IsZero() {
		t.Error("solar noon should always be computed")
	}
}

func TestSunTimeAtAltitude(t *testing.T) {
	// The -0.833 degree crossing is sunrise/sunset by definition.
	riseT, setT, ok := SunTimeAtAltitude(refTime, refLat, refLng, -0.833)
	if !ok {
		t.Fatal("expected a crossing at -0.833 degrees")
	}

	st := GetSunTimes(refTime, refLat, refLng)
	if !riseT.Equal(st.Sunrise) || !setT.Equal(st.Sunset) {
		t.Errorf("custom angle crossing = %v/%v, want %v/%v", riseT, setT, st.Sunrise, st.Sunset)
	}

	// An unreachable altitude reports ok=false.
	if _, _, ok := SunTimeAtAltitude(refTime, refLat, refLng, 80); ok {
		t.Error("sun never reaches 80 degrees at 50.5N in March")
	}
}
