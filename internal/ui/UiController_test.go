package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Mshel/sshtetris/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testPlayerManager(t *testing.T) *game.PlayerManager {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.GridWidth = 6
	cfg.GridHeight = 8
	cfg.Gravity = time.Hour
	cfg.AutoPilotInterval = time.Hour
	pm, err := game.NewPlayerManager(cfg)
	require.NoError(t, err)
	return pm
}

func TestCommandForKey(t *testing.T) {
	cases := map[string]game.Command{
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
	for k, want := range cases {
		got, ok := CommandForKey(k)
		assert.True(t, ok, k)
		assert.Equal(t, want, got, k)
	}

	_, ok := CommandForKey("x")
	assert.False(t, ok)
}

func TestRenderBoardCells(t *testing.T) {
	cells := [][]game.Cell{
		{game.Empty, game.Occupied, game.Empty},
		{game.Occupied, game.Occupied, game.Empty},
	}
	out := renderBoard(cells, "196")
	assert.Equal(t, 3, strings.Count(out, filledRune))
	assert.Equal(t, 3, strings.Count(out, "·"))
}

func TestIntroToggleAndSubmit(t *testing.T) {
	m := NewIntroModel(80, 24)

	model, _ := m.Update(key("right"))
	m = model.(IntroModel)
	assert.Equal(t, 1, m.selected)

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, IntroSubmitMsg(1), cmd())
}

func TestSetupSubmit(t *testing.T) {
	var m tea.Model = NewInitialSetupModel(80, 24)

	for _, r := range "ann" {
		m, _ = m.Update(key(string(r)))
	}
	m, _ = m.Update(key("enter"))
	m, _ = m.Update(key("right"))
	m, _ = m.Update(key("enter"))

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SetupSubmitMsg{Name: "ann", Color: blockColorOptions[1]}, cmd())
}

func TestControllerStartsKeyboardGame(t *testing.T) {
	pm := testPlayerManager(t)
	var m tea.Model = NewControllerModel(pm, nil, 80, 24)

	m, _ = m.Update(SetupSubmitMsg{Name: "ann", Color: "46"})
	c := m.(ControllerModel)
	require.Equal(t, GameScreen, c.CurrentScreen)
	require.NotNil(t, c.player)
	defer pm.EndSession(c.player)

	assert.Equal(t, 1, pm.ActiveSessions())
	assert.Contains(t, c.View(), filledRune)

	m, _ = m.Update(key("z"))
	require.Eventually(t, func() bool {
		return c.player.Game.Stats.Count(game.RotateLeft) == 1
	}, 2*time.Second, 5*time.Millisecond)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, 0, pm.ActiveSessions())
}

func TestControllerWatchModeUsesAutopilot(t *testing.T) {
	pm := testPlayerManager(t)
	var m tea.Model = NewControllerModel(pm, nil, 80, 24)

	m, _ = m.Update(IntroSubmitMsg(1))
	c := m.(ControllerModel)
	require.NotNil(t, c.player)
	defer pm.EndSession(c.player)

	assert.True(t, c.player.IsBot())
	assert.Equal(t, autopilotName, c.player.Name)
	assert.Equal(t, defaultBlockColor, c.player.Color)
}

func TestGameViewEntersGameOver(t *testing.T) {
	pm := testPlayerManager(t)
	player, err := pm.StartSession(context.Background(), "ann", "46", nil, false)
	require.NoError(t, err)
	defer pm.EndSession(player)

	var m tea.Model = NewGameModel(player, 80, 24)
	m, _ = m.Update(game.GameOverMsg{Ticks: 7})

	gv := m.(GameViewModel)
	assert.Equal(t, StateGameOver, gv.gameState)
	assert.Equal(t, 7, gv.gameOverState.FinalMoves)
	assert.Contains(t, gv.View(), "RESTART")

	m, _ = m.Update(key("right"))
	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, QuitGameMsg{}, cmd())
}
