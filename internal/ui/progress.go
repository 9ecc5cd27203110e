// Package ui renders per-file scan progress with Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"routelint/internal/analysis"
)

type progressModel struct {
	title   string
	events  <-chan analysis.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool
}

type fileItem struct {
	path   string
	status analysis.Status
	issues int
}

type eventMsg analysis.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model tracking scan events.
func NewProgressModel(title string, files []string, events <-chan analysis.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: analysis.StatusQueued})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(analysis.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		model, cmd := m.prog.Update(msg)
		m.prog = model.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		label := string(item.status)
		if item.status == analysis.StatusDone && item.issues > 0 {
			label = fmt.Sprintf("%d issue(s)", item.issues)
		}
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", label))
		b.WriteString(fmt.Sprintf("  %s %s\n", statusStyled, name))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev analysis.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		// Files are discovered during the walk, so queue events can
		// arrive for paths the model has not seen yet.
		m.items = append(m.items, fileItem{path: ev.File, status: analysis.StatusQueued})
		idx = len(m.items) - 1
		m.index[ev.File] = idx
	}
	m.items[idx].status = ev.Status
	if ev.Status == analysis.StatusDone {
		m.items[idx].issues = ev.Issues
	}

	finished := 0.0
	for _, item := range m.items {
		switch item.status {
		case analysis.StatusDone, analysis.StatusError:
			finished++
		case analysis.StatusScanning:
			finished += 0.5
		case analysis.StatusReading:
			finished += 0.25
		}
	}
	return m.prog.SetPercent(finished / float64(len(m.items)))
}

func styleStatus(status analysis.Status) lipgloss.Style {
	switch status {
	case analysis.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case analysis.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case analysis.StatusReading, analysis.StatusScanning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return lipgloss.NewStyle().Faint(true)
	}
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}
