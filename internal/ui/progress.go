// Package ui renders the terminal progress view for directory runs.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sesh/internal/driver"
)

// statusWidth is the column holding "queued", "lexing", "3 err" and so on.
const statusWidth = 10

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// fileState is the last event seen for one file.
type fileState struct {
	path string
	ev   driver.Event
}

func (f fileState) finished() bool {
	return f.ev.Status == driver.StatusDone || f.ev.Status == driver.StatusError
}

func (f fileState) label() (string, lipgloss.Style) {
	switch {
	case f.ev.Status == driver.StatusError && f.ev.Errors > 0:
		return fmt.Sprintf("%d err", f.ev.Errors), errStyle
	case f.ev.Status == driver.StatusError:
		return "error", errStyle
	case f.ev.Status == driver.StatusDone && f.ev.Cached:
		return "cached", okStyle
	case f.ev.Status == driver.StatusDone:
		return "ok", okStyle
	case f.ev.Status == driver.StatusWorking:
		return f.ev.Stage.String(), activeStyle
	}
	return "queued", idleStyle
}

// weight is the file's share of completed work.
func (f fileState) weight() float64 {
	if f.finished() {
		return 1
	}
	return float64(f.ev.Stage) / float64(driver.StageLex+1)
}

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	files   []fileState
	byPath  map[string]int
	width   int
	height  int
	done    bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows the events of
// driver.TokenizeDir for files. It quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(activeStyle))
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		files:   make([]fileState, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, path := range files {
		m.files[i].path = path
		m.byPath[path] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.bar.Width = max(msg.Width-4, 10)
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	m.files[i].ev = ev
	var sum float64
	for _, f := range m.files {
		sum += f.weight()
	}
	return m.bar.SetPercent(sum / float64(len(m.files)))
}

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	var b strings.Builder
	if m.done {
		failed, cached := m.counts()
		header := fmt.Sprintf("done: %s (%d files, %d with errors", m.title, len(m.files), failed)
		if cached > 0 {
			header += fmt.Sprintf(", %d cached", cached)
		}
		b.WriteString(titleStyle.Render(header + ")"))
	} else {
		b.WriteString(m.spinner.View() + " " + titleStyle.Render(m.title))
	}
	b.WriteString("\n\n")

	rows, hidden := m.visibleRows()
	nameWidth := max(m.width-statusWidth-4, 20)
	for _, f := range rows {
		text, style := f.label()
		fmt.Fprintf(&b, "  %s %s\n", style.Render(fmt.Sprintf("%*s", statusWidth, text)), truncate(f.path, nameWidth))
	}
	if hidden > 0 {
		b.WriteString(idleStyle.Render(fmt.Sprintf("  ... %d more", hidden)) + "\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

// visibleRows fits the file list into the window. When it does not fit,
// files that failed or are in flight are shown before finished ones.
func (m *progressModel) visibleRows() ([]fileState, int) {
	limit := m.height - 6
	if m.height == 0 || len(m.files) <= limit {
		return m.files, 0
	}
	limit = max(limit, 1)
	rows := make([]fileState, 0, limit)
	for pass := range 2 {
		for _, f := range m.files {
			if len(rows) == limit {
				break
			}
			interesting := f.ev.Status == driver.StatusError || f.ev.Status == driver.StatusWorking
			if interesting == (pass == 0) {
				rows = append(rows, f)
			}
		}
	}
	return rows, len(m.files) - len(rows)
}

func (m *progressModel) counts() (failed, cached int) {
	for _, f := range m.files {
		if f.ev.Status == driver.StatusError {
			failed++
		}
		if f.ev.Cached {
			cached++
		}
	}
	return failed, cached
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

// truncate cuts value to width terminal cells, ending with "...".
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}
