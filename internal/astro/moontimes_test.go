package astro

import (
	"testing"
	"time"
)

func TestGetMoonTimes(t *testing.T) {
	mt := GetMoonTimes(time.Date(2013, 3, 4, 0, 0, 0, 0, time.UTC), refLat, refLng, true)

	if !mt.HasRise || !mt.HasSet {
		t.Fatalf("expected both rise and set, got %+v", mt)
	}

	wantRise := time.Date(2013, 3, 4, 23, 54, 29, 0, time.UTC)
	wantSet := time.Date(2013, 3, 4, 7, 47, 58, 0, time.UTC)

	if d := absDuration(mt.Rise.Sub(wantRise)); d > 2*time.Second {
		t.Errorf("Rise = %v, want %v (±2s)", mt.Rise, wantRise)
	}
	if d := absDuration(mt.Set.Sub(wantSet)); d > 2*time.Second {
		t.Errorf("Set = %v, want %v (±2s)", mt.Set, wantSet)
	}
}

func TestGetMoonTimesWindow(t *testing.T) {
	// Rise and set, when present, must land inside the scanned 24-hour
	// window starting at the reference midnight.
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mt := GetMoonTimes(day, refLat, refLng, true)

	if !mt.HasRise && !mt.HasSet && !mt.AlwaysUp && !mt.AlwaysDown {
		t.Fatal("result must report rise, set, or an always flag")
	}

	end := day.Add(24 * time.Hour)
	if mt.HasRise && (mt.Rise.Before(day) || mt.Rise.After(end)) {
		t.Errorf("rise %v outside window [%v, %v]", mt.Rise, day, end)
	}
	if mt.HasSet && (mt.Set.Before(day) || mt.Set.After(end)) {
		t.Errorf("set %v outside window [%v, %v]", mt.Set, day, end)
	}
}

func TestGetMoonTimesInvariant(t *testing.T) {
	// Sweep a year across latitudes including polar ones: the outcome must
	// always be exactly one of {some crossing found, always up, always down}.
	lats := []float64{-89, -66.6, -50.5, 0, 50.5, 66.6, 78.2, 89}

	for _, lat := range lats {
		for day := 0; day < 365; day += 11 {
			at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
			mt := GetMoonTimes(at, lat, refLng, true)

			hasCrossing := mt.HasRise || mt.HasSet
			if hasCrossing && (mt.AlwaysUp || mt.AlwaysDown) {
				t.Fatalf("lat %v day %v: crossing and always flag both set: %+v", lat, day, mt)
			}
			if !hasCrossing && mt.AlwaysUp == mt.AlwaysDown {
				t.Fatalf("lat %v day %v: want exactly one always flag, got %+v", lat, day, mt)
			}
		}
	}
}

func TestGetMoonTimesLocalVsUTCWindow(t *testing.T) {
	// The inUTC flag selects which midnight anchors the scan; with a zone
	// far from UTC the two windows differ and so may the reported events.
	zone := time.FixedZone("UTC+12", 12*3600)
	at := time.Date(2013, 3, 4, 12, 0, 0, 0, zone)

	local := GetMoonTimes(at, refLat, refLng, false)
	utc := GetMoonTimes(at, refLat, refLng, true)

	if local.HasRise {
		dayStart := time.Date(2013, 3, 4, 0, 0, 0, 0, zone)
		if local.Rise.Before(dayStart) || local.Rise.After(dayStart.Add(24*time.Hour)) {
			t.Errorf("local-window rise %v outside local day", local.Rise)
		}
	}
	if utc.HasRise {
		dayStart := time.Date(2013, 3, 4, 0, 0, 0, 0, time.UTC)
		if utc.Rise.Before(dayStart) || utc.Rise.After(dayStart.Add(24*time.Hour)) {
			t.Errorf("UTC-window rise %v outside UTC day", utc.Rise)
		}
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
