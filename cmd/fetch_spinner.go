package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type catalogDoneMsg struct {
	err error
}

type catalogSpinnerModel struct {
	spinner spinner.Model
	label   string
	build   tea.Cmd
	err     error
	done    bool
}

func newCatalogSpinnerModel(label string, build tea.Cmd) catalogSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return catalogSpinnerModel{
		spinner: s,
		label:   label,
		build:   build,
	}
}

func (m catalogSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.build)
}

func (m catalogSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case catalogDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m catalogSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runCatalogSpinner(ctx context.Context, output io.Writer, build func(context.Context) error) error {
	buildCmd := func() tea.Msg {
		return catalogDoneMsg{err: build(ctx)}
	}

	p := tea.NewProgram(
		newCatalogSpinnerModel("Scanning meeting folders...", buildCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(catalogSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
