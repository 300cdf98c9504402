package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/sshtetris/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// --- Styling Definitions ---

var (
	voidColor = "233"

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	voidCell = lipgloss.NewStyle().
			Background(lipgloss.Color(voidColor)).
			Foreground(lipgloss.Color("236")).
			Render(" ·")

	headerStyle = lipgloss.NewStyle().Bold(true)
)

const filledRune = "██"

// renderBoard draws the grid buffer two terminal columns per cell.
func renderBoard(cells [][]game.Cell, color string) string {
	filledCell := lipgloss.NewStyle().
		Background(lipgloss.Color(voidColor)).
		Foreground(lipgloss.Color(color)).
		Render(filledRune)

	var sb strings.Builder
	for row, line := range cells {
		for _, cell := range line {
			if cell.IsEmpty() {
				sb.WriteString(voidCell)
			} else {
				sb.WriteString(filledCell)
			}
		}
		if row < len(cells)-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// renderStatusPanel draws the player info and the controls.
func renderStatusPanel(player *game.Player, snap game.Snapshot, tickCount int) string {
	var statusContent strings.Builder

	statusContent.WriteString(headerStyle.Render("--- Player ---") + "\n")
	colorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(player.Color))
	statusContent.WriteString(fmt.Sprintf("%s%s\n", colorStyle.Render("● "), player.Name))
	if player.IsBot() {
		statusContent.WriteString("Mode: autopilot\n")
	} else {
		statusContent.WriteString("Mode: keyboard\n")
	}

	statusContent.WriteString("\n" + headerStyle.Render("--- Shape ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Kind: %s\n", snap.Kind))
	statusContent.WriteString(fmt.Sprintf("Position: %s\n", snap.Position))
	statusContent.WriteString(fmt.Sprintf("Rotation: %d\n", snap.Rotation))
	statusContent.WriteString(fmt.Sprintf("Moves: %d\n", snap.Ticks))
	statusContent.WriteString(fmt.Sprintf("Frames: %d\n", tickCount))

	statusContent.WriteString("\n" + headerStyle.Render("--- Controls ---") + "\n")
	statusContent.WriteString("A D / ←  →: Move\n")
	statusContent.WriteString("S / ↓: Drop one row\n")
	statusContent.WriteString("W / ↑ / Space: Rotate right\n")
	statusContent.WriteString("Z: Rotate left\n")
	statusContent.WriteString("Q / Ctrl+C: Quit\n")

	return statusPanelStyle.Render(statusContent.String())
}
