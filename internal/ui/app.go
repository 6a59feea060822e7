// Package ui implements the interactive session as a Bubble Tea model: a
// modal state machine over the catalog, the active filters, and the
// selection cursor.
//
// The model is strictly single-threaded: analysis runs synchronously inside
// the confirm transition, so the event loop blocks until ffprobe returns.
// There is no background work and no way to abort an in-flight probe.
package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/backmassage/mediascope/internal/catalog"
	"github.com/backmassage/mediascope/internal/config"
	"github.com/backmassage/mediascope/internal/logging"
	"github.com/backmassage/mediascope/internal/probe"
)

// Display tabs shown while browsing.
const (
	tabFiles = iota
	tabFilters
	tabStats
	tabCount
)

// mode is the closed set of interaction modes. Each variant carries only the
// state that exists in that mode: the text buffer lives and dies with
// AddingFile, the scroll offset with ViewingRawOutput.
type mode interface{ isMode() }

type browsing struct{}
type addingFile struct{ input textinput.Model }
type viewingRaw struct{ scroll int }
type viewingHelp struct{}

func (browsing) isMode()    {}
func (addingFile) isMode()  {}
func (viewingRaw) isMode()  {}
func (viewingHelp) isMode() {}

// Model is the Bubble Tea model for a session. It owns all mutable core
// state; the view layer only ever reads from it.
type Model struct {
	cfg    *config.Config
	log    *logging.Logger
	prober *probe.Prober

	catalog    *catalog.Catalog
	predicates []catalog.Predicate

	options   []catalog.Option
	optCursor int

	cursor int // Index into the filtered view, not the raw catalog.
	tab    int

	mode mode
	note *notice

	width, height int

	now func() time.Time // Injectable clock for notification expiry tests.
}

// New builds the initial model in Browsing mode with an empty catalog.
func New(cfg *config.Config, log *logging.Logger) Model {
	return Model{
		cfg:     cfg,
		log:     log,
		prober:  probe.New(cfg.FfprobeBin),
		catalog: &catalog.Catalog{},
		options: catalog.Options(),
		mode:    browsing{},
		now:     time.Now,
	}
}

// Init implements tea.Model. Nothing runs at startup.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Key presses are routed to the current mode;
// no transition is fallible, so every path returns a valid model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch md := m.mode.(type) {
		case browsing:
			return m.updateBrowsing(msg)
		case addingFile:
			return m.updateAddingFile(md, msg)
		case viewingRaw:
			return m.updateViewingRaw(md, msg)
		case viewingHelp:
			if key.Matches(msg, keys.Cancel) {
				m.mode = browsing{}
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Add):
		in := textinput.New()
		in.Placeholder = "/path/to/video.mp4"
		in.Focus()
		m.mode = addingFile{input: in}

	case key.Matches(msg, keys.Raw):
		m.mode = viewingRaw{}

	case key.Matches(msg, keys.Help):
		m.mode = viewingHelp{}

	case key.Matches(msg, keys.Clear):
		m.catalog.Clear()
		m.predicates = nil
		m.cursor = 0
		m.setNote("All files cleared")
		m.log.Info("catalog cleared")

	case key.Matches(msg, keys.Next):
		if n := len(m.filtered()); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case key.Matches(msg, keys.Prev):
		if n := len(m.filtered()); n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}

	case key.Matches(msg, keys.Tab):
		m.tab = (m.tab + 1) % tabCount

	case m.tab == tabFilters && key.Matches(msg, keys.OptNext):
		m.optCursor = (m.optCursor + 1) % len(m.options)

	case m.tab == tabFilters && key.Matches(msg, keys.OptPrev):
		m.optCursor = (m.optCursor - 1 + len(m.options)) % len(m.options)

	case m.tab == tabFilters && key.Matches(msg, keys.Toggle):
		m.togglePredicate(m.options[m.optCursor])
	}
	return m, nil
}

func (m Model) updateAddingFile(md addingFile, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		if path := md.input.Value(); path != "" {
			m.addFile(path)
		}
		m.mode = browsing{}
		return m, nil

	case key.Matches(msg, keys.Cancel):
		m.mode = browsing{}
		return m, nil

	default:
		// Everything else is text editing, delegated to the input.
		var cmd tea.Cmd
		md.input, cmd = md.input.Update(msg)
		m.mode = md
		return m, cmd
	}
}

func (m Model) updateViewingRaw(md viewingRaw, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.mode = browsing{}
	case key.Matches(msg, keys.ScrollUp):
		if md.scroll > 0 {
			md.scroll--
		}
		m.mode = md
	case key.Matches(msg, keys.ScrollDown):
		// Unbounded; the view clamps visually.
		md.scroll++
		m.mode = md
	}
	return m, nil
}

// addFile analyzes path and appends the record on success. Every failure
// becomes a notification and the session continues.
func (m *Model) addFile(path string) {
	start := m.now()
	rec, err := m.prober.Analyze(context.Background(), path)
	switch {
	case errors.Is(err, probe.ErrPathNotFound):
		m.setNote("File does not exist")
		m.log.Warn("add %s: path not found", path)
	case err != nil:
		m.setNote(fmt.Sprintf("Error analyzing file: %v", err))
		m.log.Error("add %s: %v", path, err)
	default:
		m.catalog.Append(*rec)
		elapsed := m.now().Sub(start)
		m.setNote(fmt.Sprintf("File analyzed in %.2fs", elapsed.Seconds()))
		m.log.Info("analyzed %s (%s, %s, %s) in %.2fs",
			path, rec.Codec, rec.Resolution, rec.Bitrate, elapsed.Seconds())
	}
}

// togglePredicate adds or removes the predicate for opt. Shrinking the view
// can strand the cursor past the end; it snaps back to the top when it does.
func (m *Model) togglePredicate(opt catalog.Option) {
	p := catalog.Predicate{Field: opt.Field, Value: opt.Value}
	for i, active := range m.predicates {
		if active == p {
			m.predicates = append(m.predicates[:i], m.predicates[i+1:]...)
			if n := len(m.filtered()); m.cursor >= n {
				m.cursor = 0
			}
			return
		}
	}
	m.predicates = append(m.predicates, p)
	if n := len(m.filtered()); m.cursor >= n {
		m.cursor = 0
	}
}

// filtered recomputes the current view. Never cached; correctness depends
// only on the current catalog and predicate contents.
func (m Model) filtered() []*probe.MediaRecord {
	return catalog.View(m.catalog, m.predicates)
}

// selected returns the record under the cursor, or nil when the view is
// empty or the cursor is stranded.
func (m Model) selected() *probe.MediaRecord {
	view := m.filtered()
	if m.cursor < 0 || m.cursor >= len(view) {
		return nil
	}
	return view[m.cursor]
}

// isActive reports whether opt's predicate is currently applied.
func (m Model) isActive(opt catalog.Option) bool {
	p := catalog.Predicate{Field: opt.Field, Value: opt.Value}
	for _, active := range m.predicates {
		if active == p {
			return true
		}
	}
	return false
}

func (m *Model) setNote(message string) {
	n := newNotice(message, m.now(), time.Duration(m.cfg.NotifyLifetime))
	m.note = &n
}

// currentNote returns the visible notification text, if any. An expired
// notice is simply treated as absent; nothing is mutated at render time.
func (m Model) currentNote() (string, bool) {
	if m.note == nil || m.note.expired(m.now()) {
		return "", false
	}
	return m.note.message, true
}
