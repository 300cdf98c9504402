package ui

import (
	"time"

	"github.com/Mshel/sshtetris/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

const refreshInterval = 50 * time.Millisecond

var keyCommands = map[string]game.Command{
	"a":     game.MoveLeft,
	"left":  game.MoveLeft,
	"d":     game.MoveRight,
	"right": game.MoveRight,
	"s":     game.MoveDown,
	"down":  game.MoveDown,
	"w":     game.RotateRight,
	"up":    game.RotateRight,
	" ":     game.RotateRight,
	"z":     game.RotateLeft,
}

// CommandForKey maps a key press to an engine command.
func CommandForKey(key string) (game.Command, bool) {
	cmd, ok := keyCommands[key]
	return cmd, ok
}

type GameViewModel struct {
	TickCount    int
	ScreenWidth  int
	ScreenHeight int
	player       *game.Player

	gameState     GameState
	gameOverState GameOverState
}

func NewGameModel(player *game.Player, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		player:       player,
		TickCount:    0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		gameState:    StatePlaying,
		gameOverState: GameOverState{
			ScreenWidth:    screenWidth,
			ScreenHeight:   screenHeight,
			SelectedButton: 0,
		},
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.gameOverState.ScreenWidth = msg.Width
		m.gameOverState.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.gameState == StateGameOver {
			switch msg.String() {
			case "left", "h":
				m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
			case "right", "l":
				m.gameOverState.SelectedButton = min(1, m.gameOverState.SelectedButton+1)
			case "enter":
				// 0: Restart, 1: Exit
				if m.gameOverState.SelectedButton == 1 {
					return m, func() tea.Msg { return QuitGameMsg{} }
				}
				m.player.Restart()
				m.gameState = StatePlaying
			}
			return m, nil
		}

		if engineCommand, ok := CommandForKey(msg.String()); ok {
			m.player.Push(engineCommand)
		}
		return m, nil

	case game.GameTickMsg:
		m.TickCount++
		if m.gameState == StatePlaying && m.player.Game.State() == game.StateOver {
			m.enterGameOver(m.player.Game.Ticks())
		}
		return m, m.listenForGameUpdates()

	case game.GameOverMsg:
		m.enterGameOver(msg.Ticks)
		return m, m.listenForGameUpdates()
	}

	return m, nil
}

func (m *GameViewModel) enterGameOver(ticks int) {
	if m.gameState == StateGameOver {
		return
	}
	log.Info("Game over", "player", m.player.Name, "moves", ticks)
	m.gameState = StateGameOver
	m.gameOverState.FinalMoves = ticks
	m.gameOverState.FinalCommands = m.player.Game.Stats.Total()
	m.gameOverState.SelectedButton = 0
}

func (m GameViewModel) View() string {
	if m.gameState == StateGameOver {
		return m.gameOverState.RenderGameOverScreen()
	}

	snap := m.player.Game.Snapshot()

	board := renderBoard(snap.Cells, m.player.Color)
	status := renderStatusPanel(m.player, snap, m.TickCount)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, board, " ", status),
	)
}

// listenForGameUpdates polls the game's update channel without blocking the
// program; an empty poll still produces a tick so the board is redrawn.
func (m GameViewModel) listenForGameUpdates() tea.Cmd {
	updates := m.player.Game.UpdateChannel
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		select {
		case msg := <-updates:
			return msg
		default:
			return game.GameTickMsg{}
		}
	})
}
