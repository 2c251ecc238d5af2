package astro

import (
	"math"
	"time"
)

// j0 is the mean offset of solar transit from the julian day boundary.
const j0 = 0.0009

func julianCycle(d, lw float64) float64 {
	return math.Round(d - j0 - lw/(2*math.Pi))
}

func approxTransit(ht, lw, n float64) float64 {
	return j0 + (ht+lw)/(2*math.Pi) + n
}

func solarTransitJ(ds, m, l float64) float64 {
	return jdJ2000 + ds + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)
}

// hourAngle returns the hour angle at which the sun's center reaches
// altitude h. NaN when the sun never reaches h on that day (polar day or
// night), which downstream code uses as the "event does not occur" signal.
func hourAngle(h, phi, dec float64) float64 {
	return math.Acos((math.Sin(h) - math.Sin(phi)*math.Sin(dec)) / (math.Cos(phi) * math.Cos(dec)))
}

// setJ returns the julian date of the downward crossing of altitude h.
// The matching upward crossing is mirrored around solar noon.
func setJ(h, lw, phi, dec, n, m, l float64) float64 {
	w := hourAngle(h, phi, dec)
	a := approxTransit(w, lw, n)
	return solarTransitJ(a, m, l)
}

// SunTimes holds the sun's event times for one day, all in UTC. Events that
// do not occur at the given latitude and date (polar day or polar night)
// are left as zero times; SolarNoon and Nadir always exist.
type SunTimes struct {
	SolarNoon time.Time // sun crosses the local meridian
	Nadir     time.Time // darkest moment, sun at its lowest

	Sunrise time.Time // top of the disk touches the horizon (-0.833 deg)
	Sunset  time.Time

	SunriseEnd  time.Time // bottom of the disk clears the horizon (-0.3 deg)
	SunsetStart time.Time

	Dawn time.Time // civil twilight, -6 deg
	Dusk time.Time

	NauticalDawn time.Time // -12 deg
	NauticalDusk time.Time

	NightEnd time.Time // astronomical twilight, -18 deg
	Night    time.Time

	GoldenHourEnd time.Time // +6 deg
	GoldenHour    time.Time
}

// sunEventAngles maps each altitude threshold to the rise/set pair it
// produces. Angles are degrees of the sun's center altitude.
var sunEventAngles = []struct {
	angle float64
	rise  func(*SunTimes) *time.Time
	set   func(*SunTimes) *time.Time
}{
	{-0.833, func(s *SunTimes) *time.Time { return &s.Sunrise }, func(s *SunTimes) *time.Time { return &s.Sunset }},
	{-0.3, func(s *SunTimes) *time.Time { return &s.SunriseEnd }, func(s *SunTimes) *time.Time { return &s.SunsetStart }},
	{-6, func(s *SunTimes) *time.Time { return &s.Dawn }, func(s *SunTimes) *time.Time { return &s.Dusk }},
	{-12, func(s *SunTimes) *time.Time { return &s.NauticalDawn }, func(s *SunTimes) *time.Time { return &s.NauticalDusk }},
	{-18, func(s *SunTimes) *time.Time { return &s.NightEnd }, func(s *SunTimes) *time.Time { return &s.Night }},
	{6, func(s *SunTimes) *time.Time { return &s.GoldenHourEnd }, func(s *SunTimes) *time.Time { return &s.GoldenHour }},
}

// GetSunTimes computes the sun's event times for the day containing t at
// lat/lng in decimal degrees.
func GetSunTimes(t time.Time, lat, lng float64) SunTimes {
	lw := rad * -lng
	phi := rad * lat

	d := DaysSinceJ2000(t)
	n := julianCycle(d, lw)
	ds := approxTransit(0, lw, n)

	m := solarMeanAnomaly(ds)
	l := eclipticLongitude(m)
	dec := declination(l, 0)

	jnoon := solarTransitJ(ds, m, l)

	st := SunTimes{
		SolarNoon: FromJulianDay(jnoon),
		Nadir:     FromJulianDay(jnoon - 0.5),
	}

	for _, e := range sunEventAngles {
		jset := setJ(e.angle*rad, lw, phi, dec, n, m, l)
		if math.IsNaN(jset) {
			continue
		}
		jrise := jnoon - (jset - jnoon)
		*e.rise(&st) = FromJulianDay(jrise)
		*e.set(&st) = FromJulianDay(jset)
	}

	return st
}

// SunTimeAtAltitude returns the instants at which the sun's center crosses
// the given altitude (degrees) upward and downward on the day containing t.
// ok is false when the sun never reaches that altitude on that day.
func SunTimeAtAltitude(t time.Time, lat, lng, angleDeg float64) (riseT, setT time.Time, ok bool) {
	lw := rad * -lng
	phi := rad * lat

	d := DaysSinceJ2000(t)
	n := julianCycle(d, lw)
	ds := approxTransit(0, lw, n)

	m := solarMeanAnomaly(ds)
	l := eclipticLongitude(m)
	dec := declination(l, 0)

	jnoon := solarTransitJ(ds, m, l)
	jset := setJ(angleDeg*rad, lw, phi, dec, n, m, l)
	if math.IsNaN(jset) {
		return time.Time{}, time.Time{}, false
	}
	jrise := jnoon - (jset - jnoon)
	return FromJulianDay(jrise), FromJulianDay(jset), true
}
