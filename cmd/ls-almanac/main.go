// Command ls-almanac is a terminal sun and moon almanac for a fixed
// observation site.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/state"
	"github.com/litescript/ls-almanac/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	snapshotPath  string
	watchInterval time.Duration
	dateSpec      string
)

const (
	defaultRefresh = time.Second
	minRefresh     = 250 * time.Millisecond
	maxRefresh     = 5 * time.Minute
)

func main() {
	lat := flag.Float64("lat", 51.4779, "Observer latitude in degrees (north positive)")
	lon := flag.Float64("lon", 0.0015, "Observer longitude in degrees (east positive)")
	site := flag.String("site", "", "Optional site name for display")
	utcWindow := flag.Bool("utc", false, "Anchor rise/set windows to UTC midnight instead of local")
	refresh := flag.Duration("refresh", defaultRefresh, "TUI refresh interval (e.g., 1s)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print a text almanac instead of the TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.StringVar(&dateSpec, "date", "", "Date for headless output, YYYY-MM-DD (default today)")
	flag.Parse()

	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	cfg := state.DefaultConfig()
	cfg.Observer = almanac.Observer{LatDeg: *lat, LonDeg: *lon, Name: *site}
	cfg.UTCWindow = *utcWindow
	cfg.RefreshInterval = *refresh
	stateMgr := state.NewManager(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if summaryMode || snapshotPath != "" {
		runHeadless(ctx, stateMgr, logger)
		return
	}

	p := tea.NewProgram(ui.New(stateMgr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles summary and snapshot output without starting the TUI.
func runHeadless(ctx context.Context, stateMgr *state.Manager, logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func() error {
		now := time.Now()
		if dateSpec != "" {
			day, err := time.ParseInLocation("2006-01-02", dateSpec, time.Local)
			if err != nil {
				return fmt.Errorf("parse -date: %w", err)
			}
			// Evaluate pinned dates at midday so positions are representative.
			now = day.Add(12 * time.Hour)
		}

		logger.Debug("Computing almanac for %v", now)
		snap := stateMgr.Recompute(now)

		if snapshotPath != "" {
			export := almanac.ExportReport(snap.Report)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			almanac.WriteSummaryTable(os.Stdout, snap.Report)
		}

		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval, repainting in place on a TTY.
	refresh := func() {
		if isTTY {
			fmt.Print("\033[H\033[2J")
		} else {
			fmt.Println()
		}
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	refresh()
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}
