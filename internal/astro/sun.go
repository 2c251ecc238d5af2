package astro

import (
	"math"
	"time"
)

// solarMeanAnomaly returns the sun's mean anomaly for day offset d.
func solarMeanAnomaly(d float64) float64 {
	return rad * (357.5291 + 0.98560028*d)
}

// eclipticLongitude returns the sun's ecliptic longitude from its mean
// anomaly, applying the equation-of-center series and the longitude of
// perihelion.
func eclipticLongitude(m float64) float64 {
	c := rad * (1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
	p := rad * 102.9372
	return m + c + p + math.Pi
}

// sunCoords returns the sun's equatorial coordinates for day offset d.
// The sun's ecliptic latitude is below the model's precision and is
// treated as zero.
func sunCoords(d float64) equatorial {
	m := solarMeanAnomaly(d)
	l := eclipticLongitude(m)
	return equatorial{
		ra:  rightAscension(l, 0),
		dec: declination(l, 0),
	}
}

// SunPosition is the sun's horizontal position. Azimuth and Altitude are in
// radians; azimuth is measured from south, increasing westward. Callers
// wanting compass bearings (0 = north) add pi and normalize.
type SunPosition struct {
	Azimuth  float64
	Altitude float64
}

// GetSunPosition returns the sun's position for an instant and an observer
// at lat/lng in decimal degrees (east-positive longitude). The altitude is
// geometric: no refraction correction is applied for the sun.
func GetSunPosition(t time.Time, lat, lng float64) SunPosition {
	lw := rad * -lng
	phi := rad * lat
	d := DaysSinceJ2000(t)

	c := sunCoords(d)
	H := siderealTime(d, lw) - c.ra

	return SunPosition{
		Azimuth:  azimuth(H, phi, c.dec),
		Altitude: altitude(H, phi, c.dec),
	}
}
