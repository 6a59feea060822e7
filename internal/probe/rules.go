package probe

import (
	"fmt"
	"strconv"
	"strings"
)

// A rule pairs a raw-report predicate with the label it yields. Rule slices
// are evaluated in order and the first match wins, so priority lives in the
// slice layout rather than in nested conditionals.
type rule struct {
	match func(raw string) bool
	label string
}

func contains(token string) func(string) bool {
	return func(raw string) bool { return strings.Contains(raw, token) }
}

func containsAny(tokens ...string) func(string) bool {
	return func(raw string) bool {
		for _, t := range tokens {
			if strings.Contains(raw, t) {
				return true
			}
		}
		return false
	}
}

// applyRules returns the label of the first matching rule, or Unknown.
func applyRules(rules []rule, raw string) string {
	for _, r := range rules {
		if r.match(raw) {
			return r.label
		}
	}
	return Unknown
}

// Codec tokens as ffprobe reports them, case-sensitive. h264 is checked
// before hevc so mixed reports resolve the same way they always have.
var codecRules = []rule{
	{contains("h264"), "H.264"},
	{containsAny("hevc", "h265"), "H.265"},
	{contains("vp9"), "VP9"},
	{contains("av01"), "AV1"},
	{contains("hap"), "Hap"},
	{contains("mjpeg"), "MJPEG"},
}

// Frame rates appear either as rational strings ("25/1") or as quoted
// integers in tag values. Whole-text search, listed order wins.
var frameRateRules = []rule{
	{containsAny("25/1", `"25"`), "25"},
	{containsAny("30/1", `"30"`), "30"},
	{containsAny("24/1", `"24"`), "24"},
	{containsAny("60/1", `"60"`), "60"},
}

func extractCodec(raw string) string {
	return applyRules(codecRules, raw)
}

func extractFrameRate(raw string) string {
	return applyRules(frameRateRules, raw)
}

// resolutionRules maps per-line dimension token pairs to "WxH" labels,
// checked in order within each candidate line.
var resolutionRules = []struct {
	w, h  string
	label string
}{
	{"1920", "1080", "1920x1080"},
	{"1280", "720", "1280x720"},
	{"3840", "2160", "3840x2160"},
}

// extractResolution scans line by line. A line is a candidate only when it
// mentions both "width" and "height"; the first candidate line containing a
// known dimension pair decides the result. Dimension tokens split across
// separate lines never match.
func extractResolution(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, "width") || !strings.Contains(line, "height") {
			continue
		}
		for _, r := range resolutionRules {
			if strings.Contains(line, r.w) && strings.Contains(line, r.h) {
				return r.label
			}
		}
	}
	return Unknown
}

// extractBitrate finds the first line naming "bit_rate" (but not
// "max_bit_rate") and parses the value between the first colon and the
// following comma as bits/second, formatted as Mbps with one fractional
// digit. Only that first line counts; a parse failure on it yields Unknown.
func extractBitrate(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, "bit_rate") || strings.Contains(line, "max_bit_rate") {
			continue
		}
		colon := strings.Index(line, ":")
		if colon < 0 {
			return Unknown
		}
		rest := line[colon+1:]
		comma := strings.Index(rest, ",")
		if comma < 0 {
			return Unknown
		}
		value := strings.TrimSpace(strings.ReplaceAll(rest[:comma], `"`, ""))
		bps, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Unknown
		}
		return fmt.Sprintf("%.1f", bps/1_000_000)
	}
	return Unknown
}
