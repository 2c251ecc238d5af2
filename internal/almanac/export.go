package almanac

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// SnapshotExport is the JSON-serializable representation of a DayReport.
// Angles are exported in display units: degrees, with compass azimuths.
type SnapshotExport struct {
	ComputedAt time.Time      `json:"computed_at"`
	Observer   ObserverExport `json:"observer"`
	DayStart   time.Time      `json:"day_start"`
	UTCWindow  bool           `json:"utc_window"`

	Sun  SunExport  `json:"sun"`
	Moon MoonExport `json:"moon"`
}

// ObserverExport is a JSON-friendly observer representation.
type ObserverExport struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SunExport carries the sun's position and event times.
type SunExport struct {
	AzimuthDeg  float64 `json:"azimuth_deg"`
	AltitudeDeg float64 `json:"altitude_deg"`

	SolarNoon     *time.Time `json:"solar_noon,omitempty"`
	Nadir         *time.Time `json:"nadir,omitempty"`
	Sunrise       *time.Time `json:"sunrise,omitempty"`
	Sunset        *time.Time `json:"sunset,omitempty"`
	Dawn          *time.Time `json:"dawn,omitempty"`
	Dusk          *time.Time `json:"dusk,omitempty"`
	NauticalDawn  *time.Time `json:"nautical_dawn,omitempty"`
	NauticalDusk  *time.Time `json:"nautical_dusk,omitempty"`
	NightEnd      *time.Time `json:"night_end,omitempty"`
	Night         *time.Time `json:"night,omitempty"`
	GoldenHourEnd *time.Time `json:"golden_hour_end,omitempty"`
	GoldenHour    *time.Time `json:"golden_hour,omitempty"`
}

// MoonExport carries the moon's position, illumination and rise/set.
type MoonExport struct {
	AzimuthDeg       float64 `json:"azimuth_deg"`
	AltitudeDeg      float64 `json:"altitude_deg"`
	DistanceKm       float64 `json:"distance_km"`
	ParallacticAngle float64 `json:"parallactic_angle_rad"`

	Fraction  float64 `json:"illuminated_fraction"`
	Phase     float64 `json:"phase"`
	PhaseName string  `json:"phase_name"`

	Rise       *time.Time `json:"rise,omitempty"`
	Set        *time.Time `json:"set,omitempty"`
	AlwaysUp   bool       `json:"always_up,omitempty"`
	AlwaysDown bool       `json:"always_down,omitempty"`
}

// ExportReport converts a DayReport to its exportable form.
func ExportReport(r DayReport) *SnapshotExport {
	export := &SnapshotExport{
		ComputedAt: r.At,
		Observer: ObserverExport{
			Name:      r.Observer.Name,
			Latitude:  r.Observer.LatDeg,
			Longitude: r.Observer.LonDeg,
		},
		DayStart:  r.DayStart,
		UTCWindow: r.InUTC,
		Sun: SunExport{
			AzimuthDeg:  CompassAzimuthDeg(r.Sun.Azimuth),
			AltitudeDeg: Deg(r.Sun.Altitude),

			SolarNoon:     optTime(r.SunTimes.SolarNoon),
			Nadir:         optTime(r.SunTimes.Nadir),
			Sunrise:       optTime(r.SunTimes.Sunrise),
			Sunset:        optTime(r.SunTimes.Sunset),
			Dawn:          optTime(r.SunTimes.Dawn),
			Dusk:          optTime(r.SunTimes.Dusk),
			NauticalDawn:  optTime(r.SunTimes.NauticalDawn),
			NauticalDusk:  optTime(r.SunTimes.NauticalDusk),
			NightEnd:      optTime(r.SunTimes.NightEnd),
			Night:         optTime(r.SunTimes.Night),
			GoldenHourEnd: optTime(r.SunTimes.GoldenHourEnd),
			GoldenHour:    optTime(r.SunTimes.GoldenHour),
		},
		Moon: MoonExport{
			AzimuthDeg:       CompassAzimuthDeg(r.Moon.Azimuth),
			AltitudeDeg:      Deg(r.Moon.Altitude),
			DistanceKm:       r.Moon.DistanceKm,
			ParallacticAngle: r.Moon.ParallacticAngle,

			Fraction:  r.Illum.Fraction,
			Phase:     r.Illum.Phase,
			PhaseName: r.PhaseName,

			AlwaysUp:   r.MoonTimes.AlwaysUp,
			AlwaysDown: r.MoonTimes.AlwaysDown,
		},
	}

	if r.MoonTimes.HasRise {
		export.Moon.Rise = optTime(r.MoonTimes.Rise)
	}
	if r.MoonTimes.HasSet {
		export.Moon.Set = optTime(r.MoonTimes.Set)
	}

	return export
}

// optTime maps zero times to nil so they drop out of the JSON.
func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t
	return &u
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummaryTable writes a plain-text almanac for the report day.
func WriteSummaryTable(w io.Writer, r DayReport) {
	site := r.Observer.Name
	if site == "" {
		site = fmt.Sprintf("%.4f, %.4f", r.Observer.LatDeg, r.Observer.LonDeg)
	}

	fmt.Fprintf(w, "Almanac for %s @ %s\n", site, r.At.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 64))

	fmt.Fprintf(w, "Sun   Az %6.1f°  Alt %6.1f°\n",
		CompassAzimuthDeg(r.Sun.Azimuth), Deg(r.Sun.Altitude))
	fmt.Fprintf(w, "      Dawn %s  Sunrise %s  Noon %s  Sunset %s  Dusk %s\n",
		clock(r.SunTimes.Dawn), clock(r.SunTimes.Sunrise), clock(r.SunTimes.SolarNoon),
		clock(r.SunTimes.Sunset), clock(r.SunTimes.Dusk))
	fmt.Fprintf(w, "      Golden hour %s–%s (am), %s–%s (pm)\n",
		clock(r.SunTimes.Sunrise), clock(r.SunTimes.GoldenHourEnd),
		clock(r.SunTimes.GoldenHour), clock(r.SunTimes.Sunset))

	fmt.Fprintf(w, "Moon  Az %6.1f°  Alt %6.1f°  Dist %.0f km\n",
		CompassAzimuthDeg(r.Moon.Azimuth), Deg(r.Moon.Altitude), r.Moon.DistanceKm)
	fmt.Fprintf(w, "      %s, %.0f%% illuminated\n", r.PhaseName, r.Illum.Fraction*100)

	switch {
	case r.MoonTimes.AlwaysUp:
		fmt.Fprintln(w, "      Above horizon all day")
	case r.MoonTimes.AlwaysDown:
		fmt.Fprintln(w, "      Below horizon all day")
	default:
		rise, set := "—", "—"
		if r.MoonTimes.HasRise {
			rise = clock(r.MoonTimes.Rise)
		}
		if r.MoonTimes.HasSet {
			set = clock(r.MoonTimes.Set)
		}
		fmt.Fprintf(w, "      Rise %s  Set %s\n", rise, set)
	}
}

// clock formats an event time as HH:MM, or a dash when the event does not
// occur.
func clock(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("15:04")
}
