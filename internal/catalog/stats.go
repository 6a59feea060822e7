package catalog

import "github.com/backmassage/mediascope/internal/probe"

// Stats aggregates the whole catalog for the Stats tab. Counts are over all
// records, not the filtered view, so the tab reflects what has actually been
// analyzed this session.
type Stats struct {
	Files        int
	TotalBytes   int64
	ByCodec      map[string]int
	ByContainer  map[string]int
	ByResolution map[string]int
	Incomplete   int // Records with at least one Unknown field.
}

// Collect walks records once and tallies the aggregate counters.
func Collect(records []probe.MediaRecord) Stats {
	s := Stats{
		ByCodec:      make(map[string]int),
		ByContainer:  make(map[string]int),
		ByResolution: make(map[string]int),
	}
	for i := range records {
		rec := &records[i]
		s.Files++
		s.TotalBytes += rec.Size
		s.ByCodec[rec.Codec]++
		s.ByContainer[rec.Container]++
		s.ByResolution[rec.Resolution]++
		if rec.HasUnknown() {
			s.Incomplete++
		}
	}
	return s
}
