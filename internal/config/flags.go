package config

// CLI flag parsing and help text. The interactive session itself takes no
// positional arguments; flags only select the config file, log sink, color
// behavior, and the --check diagnostics mode.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses args (excluding the program name) into cfg and loads the
// config file (explicit --config path, or the default location). On --help
// or --version it prints and exits. Flag values win over config file values,
// which win over defaults.
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("mediascope", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var (
		showVersion bool
		showHelp    bool
		forceColor  bool
		noColor     bool
	)

	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to YAML config file")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append session logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&forceColor, "color", false, "Force colored diagnostics output")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored diagnostics output")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "mediascope v"+version)
		os.Exit(0)
	}
	if len(fs.Args()) != 0 {
		return fmt.Errorf("unexpected argument %q (mediascope takes no positional arguments)", fs.Args()[0])
	}

	// The config file sits between defaults and flags, so re-apply the
	// flag-provided values it must not override after loading it.
	path, explicit := cfg.ConfigFile, true
	if env := os.Getenv("MEDIASCOPE_CONFIG"); path == "" && env != "" {
		path = env
	}
	if path == "" {
		path, explicit = DefaultPath(), false
	}
	flagLog := cfg.LogFile
	if err := LoadFile(path, explicit, cfg); err != nil {
		return err
	}
	if flagLog != "" {
		cfg.LogFile = flagLog
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 26
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Mediascope v" + version + " — interactive terminal media inspector"},
		{"", ""},
		{"  mediascope [OPTIONS]", ""},
		{"", ""},
		{"Options", ""},
		{"  --config <path>", "YAML config file (default: $XDG_CONFIG_HOME/mediascope/config.yaml)"},
		{"  -l, --log <path>", "Append session logs to file"},
		{"  -c, --check", "System diagnostics (ffprobe presence, version) and exit"},
		{"  --color", "Force colored diagnostics output"},
		{"  --no-color", "Disable colored diagnostics output"},
		{"  -v, --verbose", "Verbose logging"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Keys", ""},
		{"  a add file, c clear, r raw output, h help, tab switch tab, q quit", ""},
	}

	for _, l := range lines {
		switch {
		case l.flags == "" && l.desc == "":
			fmt.Fprintln(os.Stderr)
		case l.desc == "":
			fmt.Fprintln(os.Stderr, l.flags)
		case l.flags == "":
			fmt.Fprintln(os.Stderr, l.desc)
		default:
			padding := col1 - len(l.flags)
			if padding < 1 {
				padding = 1
			}
			fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
		}
	}
}
