package catalog

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hskwon/tdocfetch/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	meetings []domain.Meeting
	group    string
	styles   styles
	output   string
}

func newModel(meetings []domain.Meeting, group string) model {
	return model{
		meetings: meetings,
		group:    group,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.meetings, m.group, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(meetings []domain.Meeting, group string) (string, error) {
	p := tea.NewProgram(
		newModel(meetings, group),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
