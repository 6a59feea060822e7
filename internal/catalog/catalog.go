// Package catalog holds the in-memory collection of analyzed media records
// and the filtering that derives the visible view from it.
//
// The catalog is append-only apart from a bulk clear; records are never
// updated, removed individually, or reordered, and duplicate paths produce
// duplicate records. Filtering is a pure function over the current contents.
package catalog

import (
	"strings"

	"github.com/backmassage/mediascope/internal/probe"
)

// Field identifies which MediaRecord field a predicate constrains.
type Field int

const (
	FieldContainer Field = iota
	FieldCodec
	FieldResolution
	FieldFrameRate
	FieldBitrate
)

// String returns the display name of the field.
func (f Field) String() string {
	switch f {
	case FieldContainer:
		return "Container"
	case FieldCodec:
		return "Codec"
	case FieldResolution:
		return "Resolution"
	case FieldFrameRate:
		return "Frame rate"
	case FieldBitrate:
		return "Bitrate"
	}
	return "Unknown"
}

// value extracts the record field this Field refers to.
func (f Field) value(rec *probe.MediaRecord) string {
	switch f {
	case FieldContainer:
		return rec.Container
	case FieldCodec:
		return rec.Codec
	case FieldResolution:
		return rec.Resolution
	case FieldFrameRate:
		return rec.FrameRate
	case FieldBitrate:
		return rec.Bitrate
	}
	return ""
}

// Predicate is one active filter constraint. Matching is substring
// containment, not equality: "192" matches "1920x1080", and a bitrate
// predicate of "1" matches both "10.0" and "1.5". Looser on purpose.
type Predicate struct {
	Field Field
	Value string
}

// Matches reports whether rec satisfies the predicate.
func (p Predicate) Matches(rec *probe.MediaRecord) bool {
	return strings.Contains(p.Field.value(rec), p.Value)
}

// Catalog is the ordered, append-only collection of analyzed records.
type Catalog struct {
	records []probe.MediaRecord
}

// Append adds rec at the end. It always succeeds; the record is owned by
// the catalog from here on.
func (c *Catalog) Append(rec probe.MediaRecord) {
	c.records = append(c.records, rec)
}

// Clear empties the catalog. Callers are responsible for the coupled
// cross-component effects (dropping active predicates, resetting the
// selection cursor).
func (c *Catalog) Clear() {
	c.records = nil
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records exposes the underlying sequence for read-only iteration.
func (c *Catalog) Records() []probe.MediaRecord {
	return c.records
}

// View returns references to the records satisfying every predicate, in
// catalog order. With no predicates every record is included. The result is
// recomputed on each call and never cached; it depends only on the current
// catalog and predicate contents.
func View(c *Catalog, predicates []Predicate) []*probe.MediaRecord {
	view := make([]*probe.MediaRecord, 0, len(c.records))
	for i := range c.records {
		rec := &c.records[i]
		if matchesAll(rec, predicates) {
			view = append(view, rec)
		}
	}
	return view
}

func matchesAll(rec *probe.MediaRecord, predicates []Predicate) bool {
	for _, p := range predicates {
		if !p.Matches(rec) {
			return false
		}
	}
	return true
}
