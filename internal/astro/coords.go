package astro

import "math"

const rad = math.Pi / 180

// Obliquity of the ecliptic, held constant (no precession correction).
// Good to a few arc-minutes over several centuries around J2000.
const obliquity = rad * 23.4397

// equatorial holds right ascension and declination in radians. It is an
// internal intermediate; public results are horizontal coordinates.
type equatorial struct {
	ra  float64
	dec float64
}

// rightAscension converts ecliptic longitude/latitude to right ascension.
func rightAscension(l, b float64) float64 {
	return math.Atan2(math.Sin(l)*math.Cos(obliquity)-math.Tan(b)*math.Sin(obliquity), math.Cos(l))
}

// declination converts ecliptic longitude/latitude to declination.
func declination(l, b float64) float64 {
	return math.Asin(math.Sin(b)*math.Cos(obliquity) + math.Cos(b)*math.Sin(obliquity)*math.Sin(l))
}

// siderealTime returns the local sidereal angle for day offset d and a
// west-positive observer longitude lw.
func siderealTime(d, lw float64) float64 {
	return rad*(280.16+360.9856235*d) - lw
}

// azimuth is measured from south, increasing westward.
func azimuth(H, phi, dec float64) float64 {
	return math.Atan2(math.Sin(H), math.Cos(H)*math.Sin(phi)-math.Tan(dec)*math.Cos(phi))
}

func altitude(H, phi, dec float64) float64 {
	return math.Asin(math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(H))
}

// astroRefraction returns the atmospheric refraction correction (radians)
// for a true altitude h, after Meeus. Altitudes below the horizon are
// clamped to 0 first: the tan term diverges as h approaches the horizon
// from below.
func astroRefraction(h float64) float64 {
	if h < 0 {
		h = 0
	}
	// 0.0002967 rad = 1.02 arc-minutes; the inner constants are Meeus's
	// degree-form coefficients 10.3/(h+5.11) converted to radians.
	return 0.0002967 / math.Tan(h+0.00312536/(h+0.08901179))
}
