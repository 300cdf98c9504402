package ui

import (
	"context"

	"github.com/Mshel/sshtetris/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Play, 1 for Watch Autopilot
type SetupSubmitMsg struct {
	Name  string
	Color string
}

// QuitGameMsg ends the session from inside the game view.
type QuitGameMsg struct{}

const autopilotName = "autopilot"

type ControllerModel struct {
	CurrentScreen Screen
	PlayerManager *game.PlayerManager

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	CurrentUserSession ssh.Session
	ScreenWidth        int
	ScreenHeight       int

	player *game.Player
}

func NewControllerModel(playerManager *game.PlayerManager, userSession ssh.Session, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		PlayerManager: playerManager,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(screenWidth, screenHeight),

		CurrentUserSession: userSession,
		ScreenWidth:        screenWidth,
		ScreenHeight:       screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		// q is a valid character in the name field
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.CurrentScreen != SetupScreen) {
			m.endSession()
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		return m, nil

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		}
		return m.startGame(autopilotName, "", true)

	case SetupSubmitMsg:
		return m.startGame(msg.Name, msg.Color, false)

	case QuitGameMsg:
		m.endSession()
		return m, tea.Quit

	default:
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m ControllerModel) startGame(name string, color string, autopilot bool) (tea.Model, tea.Cmd) {
	if color == "" {
		color = defaultBlockColor
	}

	player, err := m.PlayerManager.StartSession(m.sessionContext(), name, color, m.CurrentUserSession, autopilot)
	if err != nil {
		log.Error("Could not start game session", "error", err)
		return m, tea.Quit
	}

	m.player = player
	m.CurrentScreen = GameScreen
	m.GameModel = NewGameModel(player, m.ScreenWidth, m.ScreenHeight)
	return m, m.GameModel.Init()
}

func (m ControllerModel) endSession() {
	if m.player != nil {
		m.PlayerManager.EndSession(m.player)
	}
}

func (m ControllerModel) sessionContext() context.Context {
	if m.CurrentUserSession != nil {
		return m.CurrentUserSession.Context()
	}
	return context.Background()
}
