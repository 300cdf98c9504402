package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // 0: Play, 1: Watch Autopilot
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: 0, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			m.selected = 1 - m.selected
		case "enter":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		}
	}
	return m, nil
}

var blocksAscii = `
 ██████  ██      ██████   ██████  ██   ██ ███████  █████  ██      ██
 ██   ██ ██     ██    ██ ██       ██  ██  ██      ██   ██ ██      ██
 ██████  ██     ██    ██ ██       █████   █████   ███████ ██      ██
 ██   ██ ██     ██    ██ ██       ██  ██  ██      ██   ██ ██      ██
 ██████  ███████ ██████   ██████  ██   ██ ██      ██   ██ ███████ ███████
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("203")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(blocksAscii))
	sb.WriteString("\n")

	play := introButtonStyle.Render("Play")
	watch := introButtonStyle.Render("Watch Autopilot")

	if m.selected == 0 {
		play = introSelectedButtonStyle.Render("Play")
	} else {
		watch = introSelectedButtonStyle.Render("Watch Autopilot")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, play, watch)

	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
