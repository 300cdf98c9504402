package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds the data and local state for rendering the game over screen.
type GameOverState struct {
	FinalMoves     int
	FinalCommands  int
	SelectedButton int
	ScreenWidth    int
	ScreenHeight   int
}

var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))
)

// RenderGameOverScreen draws the final message and the restart/exit buttons.
func (g *GameOverState) RenderGameOverScreen() string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Padding(2, 5).
		Align(lipgloss.Center)

	title := messageStyle.Render("G A M E   O V E R")

	stats := fmt.Sprintf("\nThe stack reached the top.\nMoves applied: %d\nCommands this session: %d\n\n", g.FinalMoves, g.FinalCommands)

	restartButton := gameOverButtonStyle.Render("RESTART")
	exitButton := gameOverButtonStyle.Render("EXIT")

	if g.SelectedButton == 0 {
		restartButton = selectedButtonStyle.Render("RESTART")
	} else {
		exitButton = selectedButtonStyle.Render("EXIT")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, restartButton, exitButton)

	content := lipgloss.JoinVertical(lipgloss.Center, title, stats, buttons)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}
