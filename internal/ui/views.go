package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/mediascope/internal/catalog"
	"github.com/backmassage/mediascope/internal/display"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Padding(0, 2)
	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Underline(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("8"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	rawStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

var tabNames = [tabCount]string{"Files", "Filters", "Stats"}

// View implements tea.Model. Rendering is read-only: the only time-dependent
// decision is whether the current notice is still visible.
func (m Model) View() string {
	var content string
	switch md := m.mode.(type) {
	case addingFile:
		content = m.renderAddFile(md)
	case viewingRaw:
		content = m.renderRaw(md)
	case viewingHelp:
		content = renderHelp()
	default:
		switch m.tab {
		case tabFilters:
			content = m.renderFilters()
		case tabStats:
			content = m.renderStats()
		default:
			content = m.renderTable()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Mediascope"),
		m.renderTabs(),
		content,
		m.renderStatus(),
	)
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if i == m.tab {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Table column widths (characters).
var columns = []struct {
	name  string
	width int
}{
	{"Name", 30},
	{"Container", 9},
	{"Codec", 7},
	{"Resolution", 10},
	{"FPS", 7},
	{"Bitrate(Mbps)", 13},
}

func (m Model) renderTable() string {
	view := m.filtered()
	if len(view) == 0 {
		return boxStyle.Render(dimStyle.Render(
			"No files loaded. Press 'a' to add files, 'h' for help"))
	}

	var b strings.Builder
	var header []string
	for _, c := range columns {
		header = append(header, cell(c.name, c.width))
	}
	b.WriteString(headerStyle.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	for i, rec := range view {
		row := strings.Join([]string{
			cell(rec.Name+"."+rec.Container, columns[0].width),
			cell(rec.Container, columns[1].width),
			cell(rec.Codec, columns[2].width),
			cell(rec.Resolution, columns[3].width),
			cell(rec.FrameRate, columns[4].width),
			cell(rec.Bitrate, columns[5].width),
		}, " ")
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("» " + row))
		} else {
			b.WriteString("  " + row)
		}
		if i < len(view)-1 {
			b.WriteString("\n")
		}
	}

	box := boxStyle.Render(b.String())
	caption := dimStyle.Render(fmt.Sprintf("Files (%d/%d)", len(view), m.catalog.Len()))
	return lipgloss.JoinVertical(lipgloss.Left, caption, box)
}

func (m Model) renderAddFile(md addingFile) string {
	help := dimStyle.Render(strings.Join([]string{
		"Enter the full path to a video or image file",
		"Press Enter to analyze, Esc to cancel",
	}, "\n"))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Add File"),
		md.input.View(),
		"",
		help,
	))
}

func (m Model) renderRaw(md viewingRaw) string {
	rec := m.selected()
	if rec == nil {
		return boxStyle.Render(dimStyle.Render("No file selected"))
	}

	lines := strings.Split(rec.RawOutput, "\n")
	if md.scroll < len(lines) {
		lines = lines[md.scroll:]
	} else {
		lines = nil
	}
	// Clamp to the window so an over-scrolled offset just shows the tail.
	visible := m.height - 10
	if visible > 0 && len(lines) > visible {
		lines = lines[:visible]
	}

	caption := fmt.Sprintf("Raw FFprobe Output - %s.%s (%s)",
		rec.Name, rec.Container, display.FormatBitrateLabel(rec.Bitrate))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(caption),
		rawStyle.Render(strings.Join(lines, "\n")),
	))
}

func (m Model) renderFilters() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("←/→ select, enter/space toggle. Active filters AND together."))
	b.WriteString("\n\n")

	prevField := catalog.Field(-1)
	for i, opt := range m.options {
		if opt.Field != prevField {
			if prevField >= 0 {
				b.WriteString("\n")
			}
			b.WriteString(headerStyle.Render(opt.Field.String()) + "  ")
			prevField = opt.Field
		}

		label := opt.Value
		if m.isActive(opt) {
			label = activeStyle.Render("[" + label + "]")
		}
		if i == m.optCursor {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label + "  ")
	}
	return boxStyle.Render(b.String())
}

func (m Model) renderStats() string {
	stats := catalog.Collect(m.catalog.Records())
	if stats.Files == 0 {
		return boxStyle.Render(dimStyle.Render("Nothing analyzed yet"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s total",
		display.FormatCount(stats.Files), display.FormatSize(stats.TotalBytes))
	if stats.Incomplete > 0 {
		fmt.Fprintf(&b, "  (%d with unknown fields)", stats.Incomplete)
	}
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("By codec") + "\n")
	writeCounts(&b, stats.ByCodec)
	b.WriteString(headerStyle.Render("By container") + "\n")
	writeCounts(&b, stats.ByContainer)
	b.WriteString(headerStyle.Render("By resolution") + "\n")
	writeCounts(&b, stats.ByResolution)

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// writeCounts emits "  label: n" lines sorted by label for stable output.
func writeCounts(b *strings.Builder, counts map[string]int) {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(b, "  %s: %d\n", label, counts[label])
	}
}

func renderHelp() string {
	lines := []string{
		headerStyle.Render("Key Bindings"),
		"",
		"  q     Quit",
		"  a     Add file",
		"  r     Show raw ffprobe output",
		"  c     Clear all files",
		"  h     Show this help",
		"  ↑/k   Previous file",
		"  ↓/j   Next file",
		"  tab   Switch tabs",
		"",
		headerStyle.Render("Filters tab"),
		"",
		"  ←/→          Move between filter values",
		"  enter/space  Toggle a filter",
		"",
		dimStyle.Render("Esc returns to the file table"),
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	return statusStyle.Render(m.statusText())
}

// statusText is the status-bar content: the live notification when one is
// visible, otherwise a mode-specific default.
func (m Model) statusText() string {
	if msg, ok := m.currentNote(); ok {
		return msg
	}
	switch m.mode.(type) {
	case addingFile:
		return "Enter file path..."
	case viewingRaw:
		return "Viewing raw output - Press Esc to return"
	case viewingHelp:
		return "Help - Press Esc to return"
	default:
		return "Ready - Press 'h' for help"
	}
}

// cell pads or truncates s to exactly w display characters.
func cell(s string, w int) string {
	runes := []rune(s)
	if len(runes) > w {
		return string(runes[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(runes))
}
