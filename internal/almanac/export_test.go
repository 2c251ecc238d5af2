package almanac

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestExportReportJSON(t *testing.T) {
	r := Compute(kyiv, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), true)
	export := ExportReport(r)

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	// Round-trip through the JSON layer and spot-check fields.
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	moon, ok := decoded["moon"].(map[string]any)
	if !ok {
		t.Fatal("missing moon section")
	}
	if _, ok := moon["phase_name"].(string); !ok {
		t.Error("missing moon.phase_name")
	}
	frac, ok := moon["illuminated_fraction"].(float64)
	if !ok || frac < 0 || frac > 1 {
		t.Errorf("illuminated_fraction = %v, want [0,1]", moon["illuminated_fraction"])
	}

	sun, ok := decoded["sun"].(map[string]any)
	if !ok {
		t.Fatal("missing sun section")
	}
	az, ok := sun["azimuth_deg"].(float64)
	if !ok || az < 0 || az >= 360 {
		t.Errorf("sun.azimuth_deg = %v, want [0,360)", sun["azimuth_deg"])
	}
}

func TestExportReportOmitsMissingEvents(t *testing.T) {
	// Polar night: no sunrise. The export must drop the field rather than
	// emit a zero time.
	svalbard := Observer{LatDeg: 78.2, LonDeg: 15.6}
	r := Compute(svalbard, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), true)
	export := ExportReport(r)

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), `"sunrise"`) {
		t.Error("sunrise should be omitted during polar night")
	}
	if !strings.Contains(buf.String(), `"solar_noon"`) {
		t.Error("solar_noon should always be present")
	}
}

func TestWriteSummaryTable(t *testing.T) {
	r := Compute(kyiv, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), true)

	var buf bytes.Buffer
	WriteSummaryTable(&buf, r)
	out := buf.String()

	for _, want := range []string{"Almanac for Kyiv", "Sun", "Moon", "illuminated"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestComputeAltitudeTrace(t *testing.T) {
	dayStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trace := ComputeAltitudeTrace(kyiv, dayStart, time.Hour)

	if len(trace.Samples) != 25 {
		t.Fatalf("got %d samples, want 25 (hourly over 24h inclusive)", len(trace.Samples))
	}
	if !trace.WindowEnd.Equal(dayStart.Add(24 * time.Hour)) {
		t.Errorf("WindowEnd = %v", trace.WindowEnd)
	}

	noon := dayStart.Add(12 * time.Hour)
	closest := trace.Closest(noon.Add(10 * time.Minute))
	if closest == nil || !closest.Time.Equal(noon) {
		t.Fatalf("Closest picked %+v, want the noon sample", closest)
	}

	// Winter noon at 50.5N: sun must be up, and low.
	if closest.SunAltDeg < 0 || closest.SunAltDeg > 25 {
		t.Errorf("noon sun altitude %v degrees looks wrong for January at 50.5N", closest.SunAltDeg)
	}
}
