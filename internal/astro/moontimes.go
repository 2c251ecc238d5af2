package astro

import (
	"math"
	"time"
)

// MoonTimes reports the moon's rise and set for one calendar day. When the
// moon never crosses the horizon inside the scanned 24-hour window, exactly
// one of AlwaysUp or AlwaysDown is set and both Has flags are false.
type MoonTimes struct {
	Rise       time.Time
	Set        time.Time
	HasRise    bool
	HasSet     bool
	AlwaysUp   bool
	AlwaysDown bool
}

// moonHorizon is the altitude threshold for a moonrise/moonset: the
// combined effect of mean refraction, the moon's apparent radius and
// parallax, about 0.133 degrees above the geometric horizon.
const moonHorizon = rad * 0.133

// GetMoonTimes computes moonrise and moonset for the day containing t at
// lat/lng in decimal degrees. When inUTC is true the scanned window starts
// at UTC midnight, otherwise at local civil midnight of t's zone.
//
// The solver samples apparent altitude hourly and fits a quadratic through
// each 2-hour window to locate horizon crossings. Excursions shorter than
// the sampling cadence near the horizon can be missed; that resolution is
// part of the method's contract.
func GetMoonTimes(t time.Time, lat, lng float64, inUTC bool) MoonTimes {
	var start time.Time
	if inUTC {
		y, mo, da := t.UTC().Date()
		start = time.Date(y, mo, da, 0, 0, 0, 0, time.UTC)
	} else {
		y, mo, da := t.Date()
		start = time.Date(y, mo, da, 0, 0, 0, 0, t.Location())
	}

	h0 := GetMoonPosition(start, lat, lng).Altitude - moonHorizon

	var rise, set, ye float64

	// Walk 2-hour windows [i-1, i+1]; the quadratic through the three
	// hourly samples is a*x^2 + b*x + h1 with x in [-1,1] around the
	// window midpoint.
	for i := 1.0; i <= 23; i += 2 {
		h1 := GetMoonPosition(hoursLater(start, i), lat, lng).Altitude - moonHorizon
		h2 := GetMoonPosition(hoursLater(start, i+1), lat, lng).Altitude - moonHorizon

		a := (h0+h2)/2 - h1
		b := (h2 - h0) / 2
		xe := -b / (2 * a)
		ye = (a*xe+b)*xe + h1
		disc := b*b - 4*a*h1

		roots := 0
		var x1, x2 float64
		if disc >= 0 {
			dx := math.Sqrt(disc) / (math.Abs(a) * 2)
			x1 = xe - dx
			x2 = xe + dx
			if math.Abs(x1) <= 1 {
				roots++
			}
			if math.Abs(x2) <= 1 {
				roots++
			}
			if x1 < -1 {
				x1 = x2
			}
		}

		switch roots {
		case 1:
			if h0 < 0 {
				rise = i + x1
			} else {
				set = i + x1
			}
		case 2:
			// Double crossing inside one window: the vertex sign says
			// whether the curve dipped below the horizon or poked above.
			if ye < 0 {
				rise = i + x2
				set = i + x1
			} else {
				rise = i + x1
				set = i + x2
			}
		}

		if rise != 0 && set != 0 {
			break
		}
		h0 = h2
	}

	var mt MoonTimes
	if rise != 0 {
		mt.Rise = hoursLater(start, rise)
		mt.HasRise = true
	}
	if set != 0 {
		mt.Set = hoursLater(start, set)
		mt.HasSet = true
	}
	if !mt.HasRise && !mt.HasSet {
		if ye > 0 {
			mt.AlwaysUp = true
		} else {
			mt.AlwaysDown = true
		}
	}
	return mt
}
