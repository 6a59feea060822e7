// Package probe runs ffprobe against a single media file and derives a
// typed MediaRecord from the raw report text.
//
// Extraction is deliberately heuristic: rather than decoding ffprobe's JSON,
// the raw text is scanned with fixed, ordered substring rules (see rules.go).
// Every derived field is either a member of a closed vocabulary or the
// literal "Unknown"; the complete raw report is kept verbatim on the record
// for later inspection.
package probe
