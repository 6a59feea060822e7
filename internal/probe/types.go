package probe

// Unknown is the sentinel value for any field the extraction rules could
// not resolve. Derived fields are always either a member of their closed
// vocabulary or this literal, never an arbitrary value.
const Unknown = "Unknown"

// MediaRecord is the analyzed view of one media file. Records are immutable
// once appended to the catalog.
type MediaRecord struct {
	Name       string // Filename stem, without extension.
	Container  string // File extension, without the leading dot.
	Codec      string // "H.264", "H.265", "VP9", "AV1", "Hap", "MJPEG", or Unknown.
	Resolution string // "WxH" from the closed vocabulary, or Unknown.
	FrameRate  string // "24", "25", "30", "60", or Unknown.
	Bitrate    string // Mbps with one fractional digit, or Unknown.
	Path       string // Source path exactly as entered by the user.
	Size       int64  // On-disk size in bytes at analyze time.
	RawOutput  string // Complete ffprobe stdout, verbatim.
}

// HasUnknown reports whether any derived field degraded to Unknown.
func (r *MediaRecord) HasUnknown() bool {
	return r.Codec == Unknown || r.Resolution == Unknown ||
		r.FrameRate == Unknown || r.Bitrate == Unknown
}
