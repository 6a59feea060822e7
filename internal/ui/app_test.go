package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/mediascope/internal/catalog"
	"github.com/backmassage/mediascope/internal/config"
	"github.com/backmassage/mediascope/internal/logging"
	"github.com/backmassage/mediascope/internal/probe"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	log, err := logging.NewLogger(&cfg, false)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return New(&cfg, log)
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func runes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func special(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func seedRecords(m *Model) {
	m.catalog.Append(probe.MediaRecord{
		Name: "intro", Container: "mp4", Codec: "H.264",
		Resolution: "1920x1080", FrameRate: "25", Bitrate: "8.0",
		RawOutput: "line one\nline two\nline three",
	})
	m.catalog.Append(probe.MediaRecord{
		Name: "loop", Container: "mov", Codec: "Hap",
		Resolution: "1280x720", FrameRate: "30", Bitrate: "10.0",
	})
	m.catalog.Append(probe.MediaRecord{
		Name: "trailer", Container: "mkv", Codec: "H.265",
		Resolution: "3840x2160", FrameRate: "24", Bitrate: "1.5",
	})
}

func TestQuitFromBrowsing(t *testing.T) {
	m := testModel(t)
	_, cmd := press(t, m, runes('q'))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestModeTransitions(t *testing.T) {
	m := testModel(t)

	m, _ = press(t, m, runes('a'))
	_, ok := m.mode.(addingFile)
	require.True(t, ok, "a enters AddingFile")
	m, _ = press(t, m, special(tea.KeyEsc))
	_, ok = m.mode.(browsing)
	require.True(t, ok, "esc returns to Browsing")

	m, _ = press(t, m, runes('r'))
	_, ok = m.mode.(viewingRaw)
	require.True(t, ok, "r enters ViewingRawOutput")
	m, _ = press(t, m, special(tea.KeyEsc))
	_, ok = m.mode.(browsing)
	require.True(t, ok)

	m, _ = press(t, m, runes('h'))
	_, ok = m.mode.(viewingHelp)
	require.True(t, ok, "h enters ViewingHelp")
	m, _ = press(t, m, special(tea.KeyEsc))
	_, ok = m.mode.(browsing)
	require.True(t, ok)
}

func TestSelectionWraps(t *testing.T) {
	m := testModel(t)
	seedRecords(&m)

	require.Zero(t, m.cursor)
	m, _ = press(t, m, runes('j'))
	m, _ = press(t, m, runes('j'))
	assert.Equal(t, 2, m.cursor)
	m, _ = press(t, m, runes('j'))
	assert.Zero(t, m.cursor, "next at last index wraps to 0")

	m, _ = press(t, m, runes('k'))
	assert.Equal(t, 2, m.cursor, "previous at 0 wraps to N-1")
}

func TestSelectionNoopOnEmptyView(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes('j'))
	assert.Zero(t, m.cursor)
	m, _ = press(t, m, runes('k'))
	assert.Zero(t, m.cursor)
}

func TestSelectionMovesOverFilteredView(t *testing.T) {
	m := testModel(t)
	seedRecords(&m)
	// Only "intro" and "trailer" have codecs containing "H.26".
	m.predicates = []catalog.Predicate{{Field: catalog.FieldCodec, Value: "H.26"}}

	m, _ = press(t, m, runes('j'))
	require.Equal(t, 1, m.cursor)
	assert.Equal(t, "trailer", m.selected().Name)
	m, _ = press(t, m, runes('j'))
	assert.Zero(t, m.cursor, "wraps over the 2-record view, not the 3-record catalog")
}

func TestClearResetsEverything(t *testing.T) {
	m := testModel(t)
	seedRecords(&m)
	m.predicates = []catalog.Predicate{{Field: catalog.FieldContainer, Value: "mp4"}}
	m.cursor = 1

	m, _ = press(t, m, runes('c'))
	assert.Zero(t, m.catalog.Len())
	assert.Empty(t, m.predicates)
	assert.Zero(t, m.cursor)
	assert.Empty(t, m.filtered())

	msg, ok := m.currentNote()
	require.True(t, ok)
	assert.Equal(t, "All files cleared", msg)
}

func TestTabCycles(t *testing.T) {
	m := testModel(t)
	require.Equal(t, tabFiles, m.tab)
	m, _ = press(t, m, special(tea.KeyTab))
	assert.Equal(t, tabFilters, m.tab)
	m, _ = press(t, m, special(tea.KeyTab))
	assert.Equal(t, tabStats, m.tab)
	m, _ = press(t, m, special(tea.KeyTab))
	assert.Equal(t, tabFiles, m.tab)
}

func TestFilterToggling(t *testing.T) {
	m := testModel(t)
	seedRecords(&m)
	m, _ = press(t, m, special(tea.KeyTab)) // Filters tab.

	m, _ = press(t, m, special(tea.KeyRight))
	m, _ = press(t, m, special(tea.KeyRight))
	require.Equal(t, 2, m.optCursor)
	m, _ = press(t, m, special(tea.KeyLeft))
	require.Equal(t, 1, m.optCursor) // "mov"

	m, _ = press(t, m, special(tea.KeyEnter))
	require.Len(t, m.predicates, 1)
	assert.Equal(t, catalog.Predicate{Field: catalog.FieldContainer, Value: "mov"}, m.predicates[0])
	require.Len(t, m.filtered(), 1)
	assert.Equal(t, "loop", m.filtered()[0].Name)

	// Toggling again removes the predicate.
	m, _ = press(t, m, special(tea.KeyEnter))
	assert.Empty(t, m.predicates)
	assert.Len(t, m.filtered(), 3)
}

func TestFilterKeysInertOutsideFiltersTab(t *testing.T) {
	m := testModel(t)
	seedRecords(&m)
	m, _ = press(t, m, special(tea.KeyEnter))
	m, _ = press(t, m, special(tea.KeyRight))
	assert.Empty(t, m.predicates)
	assert.Zero(t, m.optCursor)
}

func TestAddFileTypingGoesToBuffer(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes('a'))
	for _, r := range "/tmp/x.mp4" {
		m, _ = press(t, m, runes(r))
	}
	md, ok := m.mode.(addingFile)
	require.True(t, ok)
	assert.Equal(t, "/tmp/x.mp4", md.input.Value())

	// Cancel discards the buffer; re-entering starts fresh.
	m, _ = press(t, m, special(tea.KeyEsc))
	m, _ = press(t, m, runes('a'))
	md, ok = m.mode.(addingFile)
	require.True(t, ok)
	assert.Empty(t, md.input.Value())
}

func TestConfirmEmptyBufferDoesNothing(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes('a'))
	m, _ = press(t, m, special(tea.KeyEnter))
	_, ok := m.mode.(browsing)
	require.True(t, ok)
	assert.Zero(t, m.catalog.Len())
	_, visible := m.currentNote()
	assert.False(t, visible)
}

func TestConfirmMissingPath(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes('a'))
	for _, r := range filepath.Join(t.TempDir(), "nope.mp4") {
		m, _ = press(t, m, runes(r))
	}
	m, _ = press(t, m, special(tea.KeyEnter))

	_, ok := m.mode.(browsing)
	require.True(t, ok, "returns to Browsing regardless of outcome")
	assert.Zero(t, m.catalog.Len(), "catalog length unchanged on failure")

	msg, visible := m.currentNote()
	require.True(t, visible)
	assert.Equal(t, "File does not exist", msg)
}

func TestConfirmAnalyzesAndAppends(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "ffprobe")
	report := strings.Join([]string{
		"{",
		`    "codec_name": "h264",`,
		`    "width": 1920, "height": 1080,`,
		`    "avg_frame_rate": "25/1",`,
		`    "bit_rate": "8000000",`,
		"}",
	}, "\n")
	script := "#!/bin/sh\ncat <<'EOF'\n" + report + "\nEOF\n"
	require.NoError(t, os.WriteFile(fake, []byte(script), 0o755))

	clip := filepath.Join(dir, "intro.mp4")
	require.NoError(t, os.WriteFile(clip, []byte("xxxx"), 0o644))

	cfg := config.DefaultConfig()
	cfg.FfprobeBin = fake
	log, err := logging.NewLogger(&cfg, false)
	require.NoError(t, err)
	defer log.Close()
	m := New(&cfg, log)

	m, _ = press(t, m, runes('a'))
	for _, r := range clip {
		m, _ = press(t, m, runes(r))
	}
	m, _ = press(t, m, special(tea.KeyEnter))

	require.Equal(t, 1, m.catalog.Len())
	rec := m.catalog.Records()[0]
	assert.Equal(t, "H.264", rec.Codec)
	assert.Equal(t, "1920x1080", rec.Resolution)
	assert.Equal(t, "25", rec.FrameRate)
	assert.Equal(t, "8.0", rec.Bitrate)

	msg, visible := m.currentNote()
	require.True(t, visible)
	assert.True(t, strings.HasPrefix(msg, "File analyzed in "), "got %q", msg)
	assert.True(t, strings.HasSuffix(msg, "s"), "got %q", msg)
}

func TestRawScroll(t *testing.T) {
	m := testModel(t)
	seedRecords(&m)
	m, _ = press(t, m, runes('r'))

	md, ok := m.mode.(viewingRaw)
	require.True(t, ok)
	require.Zero(t, md.scroll)

	// Floored at zero.
	m, _ = press(t, m, special(tea.KeyUp))
	assert.Zero(t, m.mode.(viewingRaw).scroll)

	// Unbounded past content end.
	for i := 0; i < 10; i++ {
		m, _ = press(t, m, special(tea.KeyDown))
	}
	assert.Equal(t, 10, m.mode.(viewingRaw).scroll)
	m, _ = press(t, m, special(tea.KeyUp))
	assert.Equal(t, 9, m.mode.(viewingRaw).scroll)

	// Scroll offset resets on re-entry.
	m, _ = press(t, m, special(tea.KeyEsc))
	m, _ = press(t, m, runes('r'))
	assert.Zero(t, m.mode.(viewingRaw).scroll)
}

func TestNotificationLifecycleInStatus(t *testing.T) {
	m := testModel(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	m.now = func() time.Time { return current }

	m, _ = press(t, m, runes('c'))
	assert.Equal(t, "All files cleared", m.statusText())

	current = base.Add(3*time.Second - time.Millisecond)
	assert.Equal(t, "All files cleared", m.statusText())

	current = base.Add(3*time.Second + time.Millisecond)
	assert.Equal(t, "Ready - Press 'h' for help", m.statusText(),
		"expired notice falls back to the mode default")
}

func TestStatusDefaultsPerMode(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, "Ready - Press 'h' for help", m.statusText())

	m, _ = press(t, m, runes('a'))
	assert.Equal(t, "Enter file path...", m.statusText())
	m, _ = press(t, m, special(tea.KeyEsc))

	m, _ = press(t, m, runes('r'))
	assert.Equal(t, "Viewing raw output - Press Esc to return", m.statusText())
	m, _ = press(t, m, special(tea.KeyEsc))

	m, _ = press(t, m, runes('h'))
	assert.Equal(t, "Help - Press Esc to return", m.statusText())
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m := testModel(t)
	seedRecords(&m)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.NotEmpty(t, m.View())

	m, _ = press(t, m, special(tea.KeyTab))
	assert.NotEmpty(t, m.View(), "filters tab")
	m, _ = press(t, m, special(tea.KeyTab))
	assert.NotEmpty(t, m.View(), "stats tab")

	m, _ = press(t, m, special(tea.KeyTab))
	m, _ = press(t, m, runes('r'))
	assert.Contains(t, m.View(), "line one")
	m, _ = press(t, m, special(tea.KeyEsc))
	m, _ = press(t, m, runes('h'))
	assert.NotEmpty(t, m.View())
}
