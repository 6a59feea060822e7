// Command mediascope is the interactive terminal inspector for media files.
//
// It loads configuration, sets up logging, and either runs the --check
// diagnostics or hands the terminal to the interactive session. The session
// itself takes no positional arguments and exits 0 on a normal quit.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"github.com/backmassage/mediascope/internal/check"
	"github.com/backmassage/mediascope/internal/config"
	"github.com/backmassage/mediascope/internal/display"
	"github.com/backmassage/mediascope/internal/logging"
	"github.com/backmassage/mediascope/internal/term"
	"github.com/backmassage/mediascope/internal/ui"
)

// version is injected at build time via -ldflags; plain "go build" keeps
// the default.
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr. Once NewLogger succeeds, non-TUI output goes through it.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mediascope: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "mediascope: %v\n", err)
		return 1
	}

	term.Configure(cfg.ColorMode)

	// Console logging only in check mode; during the session the UI owns
	// the terminal and the log file is the only sink.
	log, err := logging.NewLogger(&cfg, cfg.CheckOnly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mediascope: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		display.PrintBanner()
		if !check.RunCheck(cfg.FfprobeBin, log) {
			return 1
		}
		return 0
	}

	// A missing ffprobe is not fatal: each analysis surfaces its own
	// launch error as a notification. Worth a log line up front though.
	if !check.Available(cfg.FfprobeBin) {
		log.Warn("%s not found on PATH; analyses will fail until it is installed", cfg.FfprobeBin)
	}

	log.Info("session start (mediascope v%s)", version)

	p := tea.NewProgram(ui.New(&cfg, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		// Terminal setup/teardown failure; report on stdout per contract.
		fmt.Fprintf(os.Stdout, "mediascope: %v\n", err)
		log.Error("session failed: %v", err)
		return 1
	}

	log.Info("session end")
	return 0
}
