package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kethru/glazier/internal/trace"
)

// RecordsMsg delivers a fresh snapshot of the trace buffer to the viewer.
type RecordsMsg struct {
	Records []trace.Record
	Total   uint64
}

// WatchModel is the live event viewer shown by `glazier watch`.
type WatchModel struct {
	records []trace.Record
	total   uint64
	width   int
	height  int
	paused  bool
}

// NewWatchModel creates an empty viewer.
func NewWatchModel() *WatchModel {
	return &WatchModel{}
}

func (m *WatchModel) Init() tea.Cmd {
	return nil
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case RecordsMsg:
		if !m.paused {
			m.records = msg.Records
			m.total = msg.Total
		}
	}
	return m, nil
}

func (m *WatchModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Glazier Event Watch"))
	b.WriteString("\n")

	status := fmt.Sprintf("%d events seen", m.total)
	if m.paused {
		status += "  (paused)"
	}
	b.WriteString(StatusStyle.Render(status))
	b.WriteString("\n\n")

	rows := m.records
	if max := m.height - 6; max > 0 && len(rows) > max {
		rows = rows[len(rows)-max:]
	}
	for _, r := range rows {
		line := SourceStyle.Render(r.Source) + KindStyle.Render(r.Kind)
		if r.Kind == "error" {
			line += ErrorStyle.Render(r.Detail)
		} else {
			line += DetailStyle.Render(r.Detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("p pause • q quit"))
	return b.String()
}
