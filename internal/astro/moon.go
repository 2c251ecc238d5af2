package astro

import (
	"math"
	"time"
)

// moonCoords returns the moon's geocentric equatorial coordinates and its
// distance from Earth in km, for day offset d. The series keeps only the
// dominant perturbation terms (evection and friends are dropped), which is
// accurate to a fraction of a degree.
func moonCoords(d float64) (equatorial, float64) {
	l := rad * (218.316 + 13.176396*d) // mean longitude
	m := rad * (134.963 + 13.064993*d) // mean anomaly
	f := rad * (93.272 + 13.229350*d)  // mean distance argument

	lon := l + rad*6.289*math.Sin(m) // longitude
	lat := rad * 5.128 * math.Sin(f) // latitude
	dist := 385001 - 20905*math.Cos(m)

	return equatorial{
		ra:  rightAscension(lon, lat),
		dec: declination(lon, lat),
	}, dist
}

// MoonPosition is the moon's horizontal position. Azimuth and Altitude are
// in radians with the same south-referenced azimuth convention as
// SunPosition; Altitude includes atmospheric refraction.
type MoonPosition struct {
	Azimuth          float64
	Altitude         float64
	DistanceKm       float64
	ParallacticAngle float64
}

// GetMoonPosition returns the moon's position for an instant and an
// observer at lat/lng in decimal degrees.
func GetMoonPosition(t time.Time, lat, lng float64) MoonPosition {
	lw := rad * -lng
	phi := rad * lat
	d := DaysSinceJ2000(t)

	c, dist := moonCoords(d)
	H := siderealTime(d, lw) - c.ra
	h := altitude(H, phi, c.dec)

	// Formula 14.1 from Meeus, "Astronomical Algorithms".
	pa := math.Atan2(math.Sin(H), math.Tan(phi)*math.Cos(c.dec)-math.Sin(c.dec)*math.Cos(H))

	h += astroRefraction(h)

	return MoonPosition{
		Azimuth:          azimuth(H, phi, c.dec),
		Altitude:         h,
		DistanceKm:       dist,
		ParallacticAngle: pa,
	}
}

// MoonIllumination describes the moon's illumination as seen from Earth.
//
// Fraction is the illuminated share of the disk in [0,1]. Phase runs
// continuously in [0,1): 0 is new moon, 0.25 first quarter, 0.5 full,
// 0.75 last quarter. Angle is the midpoint angle of the bright limb in
// radians, measured eastward from the north point of the disk; the moon is
// waxing when it is negative.
type MoonIllumination struct {
	Fraction float64
	Phase    float64
	Angle    float64
}

// meanSunDistKm is the mean Earth-Sun distance.
const meanSunDistKm = 149598000

// GetMoonIllumination computes the moon's illumination at t. A zero time
// means "now". The result depends only on the instant, not on any observer
// location.
func GetMoonIllumination(t time.Time) MoonIllumination {
	if t.IsZero() {
		t = time.Now()
	}
	d := DaysSinceJ2000(t)

	s := sunCoords(d)
	m, mdist := moonCoords(d)

	// Geocentric elongation of the moon from the sun.
	phi := math.Acos(math.Sin(s.dec)*math.Sin(m.dec) +
		math.Cos(s.dec)*math.Cos(m.dec)*math.Cos(s.ra-m.ra))

	// Selenocentric phase angle.
	inc := math.Atan2(meanSunDistKm*math.Sin(phi), mdist-meanSunDistKm*math.Cos(phi))

	// Position angle of the bright limb; its sign tells waxing from waning.
	angle := math.Atan2(math.Cos(s.dec)*math.Sin(s.ra-m.ra),
		math.Sin(s.dec)*math.Cos(m.dec)-math.Cos(s.dec)*math.Sin(m.dec)*math.Cos(s.ra-m.ra))

	sign := 1.0
	if angle < 0 {
		sign = -1
	}

	return MoonIllumination{
		Fraction: (1 + math.Cos(inc)) / 2,
		Phase:    0.5 + 0.5*inc*sign/math.Pi,
		Angle:    angle,
	}
}
