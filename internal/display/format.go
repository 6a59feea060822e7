// Package display holds formatting helpers shared by the Stats tab and the
// check-mode banner output.
package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatSize returns a human-readable binary size ("1.2 GiB"). Negative
// sizes never occur; zero renders as "0 B".
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}

// FormatBitrateLabel returns a short label for a Mbps string from a record
// ("8.0" -> "8.0 Mbps"); the Unknown sentinel passes through unchanged.
func FormatBitrateLabel(mbps string) string {
	if mbps == "" || mbps == "Unknown" {
		return mbps
	}
	return fmt.Sprintf("%s Mbps", mbps)
}

// FormatCount pluralizes a file count ("1 file", "12 files").
func FormatCount(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%s files", humanize.Comma(int64(n)))
}
