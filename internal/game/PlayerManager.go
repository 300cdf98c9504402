package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// PlayerManager starts and stops the per-session games. Sessions never share
// a grid.
type PlayerManager struct {
	Config Config

	SessionsToPlayers sync.Map
	activeCount       atomic.Int64
}

func NewPlayerManager(cfg Config) (*PlayerManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	// Fail early on a broken script rather than on the first autopilot session.
	probe, err := LoadLuaStrategy(cfg.AutoPilotScriptPath)
	if err != nil {
		return nil, err
	}
	probe.Close()

	return &PlayerManager{Config: cfg}, nil
}

// StartSession creates a game for the session and starts its game loop and
// gravity. With autopilot set, a Lua strategy drives the game instead of the
// keyboard.
func (pm *PlayerManager) StartSession(parent context.Context, name string, color string, session ssh.Session, autopilot bool) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "anonymous"
	}

	ctx, cancel := context.WithCancel(parent)
	slot := NewCommandSlot()
	player := &Player{
		Name:       name,
		Color:      color,
		SshSession: session,
		Game:       NewGameManager(pm.Config.GridWidth, pm.Config.GridHeight, slot),
		ctx:        ctx,
		cancel:     cancel,
	}

	if autopilot {
		strategy, err := LoadLuaStrategy(pm.Config.AutoPilotScriptPath)
		if err != nil {
			cancel()
			return nil, err
		}
		player.AutoPilot = NewAutoPilot(player.Game, strategy)
		go func() {
			defer strategy.Close()
			player.AutoPilot.Start(ctx, pm.Config.AutoPilotInterval)
		}()
	}

	player.startGameLoop()
	go StartGravity(ctx, slot, pm.Config.Gravity)

	pm.SessionsToPlayers.Store(player, sessionID(session))
	pm.activeCount.Add(1)
	// A dropped connection cancels the parent without going through the UI.
	go func() {
		<-ctx.Done()
		pm.EndSession(player)
	}()
	log.Info("Session started", "player", name, "session", sessionID(session), "autopilot", autopilot,
		"grid", fmt.Sprintf("%dx%d", pm.Config.GridWidth, pm.Config.GridHeight))

	return player, nil
}

// EndSession stops every goroutine of the session. Calling it twice is safe.
func (pm *PlayerManager) EndSession(player *Player) {
	if _, loaded := pm.SessionsToPlayers.LoadAndDelete(player); !loaded {
		return
	}
	player.stop()
	pm.activeCount.Add(-1)

	keyvals := []interface{}{"player", player.Name, "ticks", player.Game.Ticks(), "state", player.Game.State()}
	keyvals = append(keyvals, player.Game.Stats.KeyVals()...)
	log.Info("Session ended", keyvals...)
}

func (pm *PlayerManager) ActiveSessions() int {
	return int(pm.activeCount.Load())
}

func sessionID(session ssh.Session) string {
	if session == nil {
		return "local"
	}
	return session.Context().SessionID()
}
