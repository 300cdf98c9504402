package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Define styles
var (
	focusedColor = lipgloss.Color("205") // Bright Pink/Purple
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = blurredStyle

	colorSwatchStyle   = lipgloss.NewStyle().Width(2)
	selectedColorStyle = lipgloss.NewStyle().Width(2)
	buttonStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

// Block colours offered in the form, as 256-colour codes.
var blockColorOptions = []string{"196", "208", "226", "46", "51", "33", "129", "201", "255"}

const defaultBlockColor = "196"

// SetupModel asks for a name and a block colour before the game starts.
type SetupModel struct {
	nameInput  textinput.Model
	colorIndex int
	focusIndex int // 0: Name, 1: Color Select, 2: Submit
	submitted  bool
	width      int
	height     int
}

func NewInitialSetupModel(w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.Focus()
	ti.CharLimit = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput:  ti,
		colorIndex: 0,
		focusIndex: 0,
		submitted:  false,
		width:      w,
		height:     h,
	}
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		if s == "enter" || s == "tab" || s == "shift+tab" {
			switch m.focusIndex {
			case 0: // Name Input
				switch s {
				case "enter", "tab":
					m.focusIndex = 1
					m.nameInput.Blur()
				case "shift+tab":
					m.focusIndex = 2
					m.nameInput.Blur()
				}

			case 1: // Color Select
				switch s {
				case "enter", "tab":
					m.focusIndex = 2
				case "shift+tab":
					m.focusIndex = 0
					m.nameInput.Focus()
				}

			case 2: // Submit Button
				switch s {
				case "enter":
					m.submitted = true
					name := m.nameInput.Value()
					color := blockColorOptions[m.colorIndex]
					return m, func() tea.Msg {
						return SetupSubmitMsg{Name: name, Color: color}
					}
				case "tab":
					m.focusIndex = 0
					m.nameInput.Focus()
				case "shift+tab":
					m.focusIndex = 1
				}
			}
			return m, nil
		}

		if m.focusIndex == 1 {
			switch s {
			case "left", "up":
				m.colorIndex = (m.colorIndex - 1 + len(blockColorOptions)) % len(blockColorOptions)
				return m, nil
			case "right", "down":
				m.colorIndex = (m.colorIndex + 1) % len(blockColorOptions)
				return m, nil
			}
		}

		if m.focusIndex == 0 {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")

	colorPromptText := "Select your block color (use arrows)"
	if m.focusIndex == 1 {
		b.WriteString(center(focusedStyle.Render(colorPromptText)))
	} else {
		b.WriteString(center(blurredStyle.Render(colorPromptText)))
	}
	b.WriteString("\n")

	var colorSwatches strings.Builder
	for i, colorCode := range blockColorOptions {
		style := colorSwatchStyle.Foreground(lipgloss.Color(colorCode))
		if i == m.colorIndex {
			colorSwatches.WriteString(style.Render("██"))
		} else {
			colorSwatches.WriteString(style.Render("░░"))
		}
		colorSwatches.WriteString(" ")
	}
	b.WriteString(center(colorSwatches.String()))
	b.WriteString("\n")

	b.WriteString(center("Block color " + selectedColorStyle.
		Foreground(lipgloss.Color(blockColorOptions[m.colorIndex])).
		Render("██")))
	b.WriteString("\n\n")

	submitText := "Start"
	if m.focusIndex == 2 {
		b.WriteString(center(submitButtonStyle.Render(submitText)))
	} else {
		b.WriteString(center(blurredButtonStyle.Render(submitText)))
	}
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(arrows to select color, tab/shift+tab to navigate, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
