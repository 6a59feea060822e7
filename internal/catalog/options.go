package catalog

// Option is one toggleable value in the closed filter vocabulary shown on
// the Filters tab. Toggling an option adds or removes the corresponding
// Predicate.
type Option struct {
	Field Field
	Value string
}

// Filter vocabulary, grouped per field. These are presentation choices, not
// extraction vocabulary: they intentionally include values the extractor
// never produces (DXV3, 2560x1440, 50) so the lists can grow independently.
var (
	containerOptions  = []string{"mp4", "mov", "avi", "mkv", "jpg", "png"}
	codecOptions      = []string{"H.264", "H.265", "VP9", "AV1", "Hap", "DXV3"}
	resolutionOptions = []string{"1920x1080", "1280x720", "3840x2160", "2560x1440"}
	frameRateOptions  = []string{"24", "25", "30", "50", "60"}
	bitrateOptions    = []string{"1", "5", "10", "15", "20"}
)

// Options returns the full vocabulary flattened in display order:
// containers, codecs, resolutions, frame rates, bitrates.
func Options() []Option {
	groups := []struct {
		field  Field
		values []string
	}{
		{FieldContainer, containerOptions},
		{FieldCodec, codecOptions},
		{FieldResolution, resolutionOptions},
		{FieldFrameRate, frameRateOptions},
		{FieldBitrate, bitrateOptions},
	}

	var opts []Option
	for _, g := range groups {
		for _, v := range g.values {
			opts = append(opts, Option{Field: g.field, Value: v})
		}
	}
	return opts
}
