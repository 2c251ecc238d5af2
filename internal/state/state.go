// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-almanac/internal/almanac"
)

// Config holds configuration for the state manager.
type Config struct {
	Observer        almanac.Observer
	UTCWindow       bool          // anchor rise/set windows to UTC midnight
	RefreshInterval time.Duration // how often the UI recomputes
	TraceStep       time.Duration // altitude trace sampling interval
}

// DefaultConfig returns sensible default configuration: Greenwich, local
// day windows, once-a-second refresh.
func DefaultConfig() Config {
	return Config{
		Observer:        almanac.Observer{LatDeg: 51.4779, LonDeg: 0.0015, Name: "Greenwich"},
		RefreshInterval: time.Second,
		TraceStep:       almanac.DefaultTraceStep,
	}
}

// Snapshot is an immutable view of the computed almanac state.
type Snapshot struct {
	Report     almanac.DayReport
	Trace      *almanac.AltitudeTrace
	ComputedAt time.Time
	DayOffset  int  // days away from "today"
	FollowNow  bool // whether the evaluation instant tracks the clock
}

// Manager owns the observer, day selection and the derived almanac data.
// All methods are safe for concurrent use.
type Manager struct {
	mu sync.RWMutex

	cfg       Config
	dayOffset int
	followNow bool

	snap Snapshot
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = time.Second
	}
	if cfg.TraceStep <= 0 {
		cfg.TraceStep = almanac.DefaultTraceStep
	}
	return &Manager{
		cfg:       cfg,
		followNow: true,
	}
}

// Recompute rebuilds the almanac snapshot for the given wall-clock time,
// applying the current day offset, and returns the fresh snapshot.
func (m *Manager) Recompute(now time.Time) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	at := now.AddDate(0, 0, m.dayOffset)
	if !m.followNow {
		// Pin browsing to midday of the offset day so positions stay
		// stable while stepping through dates.
		y, mo, d := at.Date()
		at = time.Date(y, mo, d, 12, 0, 0, 0, at.Location())
	}

	report := almanac.Compute(m.cfg.Observer, at, m.cfg.UTCWindow)
	trace := almanac.ComputeAltitudeTrace(m.cfg.Observer, report.DayStart, m.cfg.TraceStep)

	m.snap = Snapshot{
		Report:     report,
		Trace:      trace,
		ComputedAt: now,
		DayOffset:  m.dayOffset,
		FollowNow:  m.followNow,
	}
	return m.snap
}

// Snapshot returns the most recently computed snapshot.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// StepDay shifts the displayed day by delta days and stops following the
// clock when stepping away from today.
func (m *Manager) StepDay(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dayOffset += delta
	m.followNow = m.dayOffset == 0
}

// ResetToNow returns to today and resumes tracking the clock.
func (m *Manager) ResetToNow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dayOffset = 0
	m.followNow = true
}

// ToggleUTCWindow flips the rise/set window anchor between UTC and local
// midnight and reports the new setting.
func (m *Manager) ToggleUTCWindow() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg.UTCWindow = !m.cfg.UTCWindow
	return m.cfg.UTCWindow
}

// Observer returns the configured observation site.
func (m *Manager) Observer() almanac.Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.Observer
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.RefreshInterval
}
