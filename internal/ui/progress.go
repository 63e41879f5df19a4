package ui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rtmacaibay/proc-inspector/internal/model"
)

// ErrInterrupted is returned when the progress program stops before
// the report is ready.
var ErrInterrupted = errors.New("interrupted before the report was collected")

type reportMsg struct{ report model.Report }

// progressModel draws a spinner while work runs in a Bubble Tea
// command, then quits with an empty view so nothing is left behind on
// the terminal.
type progressModel struct {
	spinner spinner.Model
	label   string
	work    func() model.Report

	report model.Report
	done   bool
}

func newProgressModel(out io.Writer, label string, work func() model.Report) *progressModel {
	style := lipgloss.NewRenderer(out).NewStyle().Foreground(lipgloss.Color("45"))
	return &progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(style)),
		label:   label,
		work:    work,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.collect)
}

func (m *progressModel) collect() tea.Msg {
	return reportMsg{report: m.work()}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.report = msg.report
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// RunWithProgress runs work while a spinner labelled label is drawn on
// out. It should only be used when out is a terminal; the report
// itself is returned, not drawn.
func RunWithProgress(out io.Writer, label string, work func() model.Report) (model.Report, error) {
	prog := tea.NewProgram(newProgressModel(out, label, work),
		tea.WithOutput(out),
		tea.WithInput(nil),
	)
	final, err := prog.Run()
	if err != nil {
		return model.Report{}, err
	}
	m, ok := final.(*progressModel)
	if !ok || !m.done {
		return model.Report{}, ErrInterrupted
	}
	return m.report, nil
}
