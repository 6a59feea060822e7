// Package check provides system diagnostics (--check mode) and the startup
// availability probe for the ffprobe binary.
package check

import (
	"os/exec"
	"strings"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: ffprobe presence, version
// line, and a machine-readable output sanity run. Informational only; it
// reports false when ffprobe is unusable but stops nothing.
func RunCheck(bin string, log Logger) bool {
	log.Info("=== System Check ===")

	path, err := exec.LookPath(bin)
	if err != nil {
		log.Error("%s not found on PATH", bin)
		log.Info("Analyses will fail with a launch error until it is installed")
		return false
	}
	log.Success("ffprobe: %s", path)

	if line := versionLine(bin); line != "" {
		log.Success("version: %s", line)
	} else {
		log.Warn("%s found but -version failed", bin)
	}

	log.Info("Testing machine-readable output...")
	if runSilent(bin, "-hide_banner", "-of", "json", "-show_program_version") {
		log.Success("JSON report output works")
	} else {
		log.Warn("JSON report test failed; raw reports may be empty")
	}
	return true
}

// Available reports whether the probing binary can be found on PATH.
// Probing stays non-fatal either way; this only feeds a startup warning.
func Available(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}

// versionLine returns the first line of "<bin> -version" output, or "".
func versionLine(bin string) string {
	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.Index(line, "\n"); idx > 0 {
		line = line[:idx]
	}
	return line
}

// runSilent runs a command and reports whether it exited with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
