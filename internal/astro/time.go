// Package astro computes sun and moon positions, illumination and rise/set
// times using low-order series approximations. Accuracy is on the order of
// arc-minutes over multi-century ranges, which is plenty for almanac-style
// display but nowhere near ephemeris grade.
//
// Conventions: all angles are radians unless a name says otherwise, azimuth
// is measured from south increasing westward, and longitudes are
// east-positive on the public API. Inputs are never validated; degenerate
// values (lat outside ±90, NaN) propagate through the trigonometry and come
// back as NaN, which callers should treat as "indeterminate".
package astro

import (
	"math"
	"time"
)

// Julian day anchors.
const (
	jdUnixEpoch = 2440587.5 // 1970-01-01T00:00:00Z
	jdJ2000     = 2451545.0 // 2000-01-01T12:00:00Z
)

const msPerDay = 24 * 60 * 60 * 1000

// ToJulianDay converts a civil instant to a Julian day number.
func ToJulianDay(t time.Time) float64 {
	return float64(t.UnixMilli())/msPerDay + jdUnixEpoch
}

// FromJulianDay converts a Julian day number back to a civil instant in UTC.
// Resolution is one millisecond, so round-tripping through ToJulianDay is
// exact at that granularity.
func FromJulianDay(jd float64) time.Time {
	return time.UnixMilli(int64(math.Round((jd - jdUnixEpoch) * msPerDay))).UTC()
}

// DaysSinceJ2000 returns fractional days elapsed since the J2000 epoch
// (2000-01-01 12:00 UTC). All the angular models below are parameterized by
// this value.
func DaysSinceJ2000(t time.Time) float64 {
	return ToJulianDay(t) - jdJ2000
}

// hoursLater returns t shifted by a fractional number of hours.
func hoursLater(t time.Time, h float64) time.Time {
	return t.Add(time.Duration(h * float64(time.Hour)))
}
