package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Sentinel errors surfaced to the user as notifications; analysis failures
// never abort the session.
var (
	// ErrPathNotFound means the requested path does not exist on disk.
	ErrPathNotFound = errors.New("file does not exist")
)

// Prober analyzes media files with a configurable ffprobe binary.
// It keeps no state between calls: analyzing the same path twice re-invokes
// ffprobe and may observe a changed file.
type Prober struct {
	bin string
}

// New returns a Prober that invokes the given ffprobe binary (name or path).
func New(bin string) *Prober {
	return &Prober{bin: bin}
}

// Analyze probes path and returns its MediaRecord.
//
// The path must exist (ErrPathNotFound otherwise). ffprobe is run exactly
// once, synchronously; its stdout is captured regardless of exit status and
// coerced to valid UTF-8, so a non-zero ffprobe exit still yields a record
// with whatever text was produced. Only a failure to launch ffprobe at all
// is an error.
func (p *Prober) Analyze(ctx context.Context, path string) (*MediaRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, ErrPathNotFound)
	}

	raw, err := p.run(ctx, path)
	if err != nil {
		return nil, err
	}

	rec := Extract(path, raw)
	rec.Size = info.Size()
	return rec, nil
}

// run invokes ffprobe and returns its stdout as text. A non-zero exit is
// not an error here; the caller still gets the captured output. Stream and
// format sections are requested in machine-readable form with the banner
// suppressed, matching what the extraction rules expect.
func (p *Prober) run(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, p.bin,
		"-i", path,
		"-show_streams",
		"-show_format",
		"-hide_banner",
		"-of", "json",
	)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	raw := strings.ToValidUTF8(stdout.String(), "�")

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", fmt.Errorf("launch %s: %w", p.bin, err)
	}
	return raw, nil
}

// Extract derives a MediaRecord from a path and a raw ffprobe report.
// Name and container come from the path alone; the remaining fields come
// from the rule tables. Exported for testing without a real ffprobe binary.
func Extract(path, raw string) *MediaRecord {
	base := filepath.Base(path)
	ext := filepath.Ext(base)

	return &MediaRecord{
		Name:       strings.TrimSuffix(base, ext),
		Container:  strings.TrimPrefix(ext, "."),
		Codec:      extractCodec(raw),
		Resolution: extractResolution(raw),
		FrameRate:  extractFrameRate(raw),
		Bitrate:    extractBitrate(raw),
		Path:       path,
		RawOutput:  raw,
	}
}
