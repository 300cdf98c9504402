package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// AutoPilot plays a game by pushing strategy decisions into its command slot.
// When the primary strategy fails it switches to Fallback for good.
type AutoPilot struct {
	Strategy Strategy
	Fallback Strategy
	game     *GameManager
}

func NewAutoPilot(gm *GameManager, strategy Strategy) *AutoPilot {
	return &AutoPilot{
		Strategy: strategy,
		Fallback: &DefaultStrategy{},
		game:     gm,
	}
}

func (a *AutoPilot) Decide() Command {
	view := a.game.View()
	cmd, err := a.Strategy.NextCommand(view)
	if err == nil {
		return cmd
	}

	log.Warn("Autopilot strategy failed, switching to fallback", "error", err)
	a.Strategy = a.Fallback
	cmd, err = a.Strategy.NextCommand(view)
	if err != nil {
		return Idle
	}
	return cmd
}

func (a *AutoPilot) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.game.State() == StateOver {
				continue
			}
			a.game.Slot().Push(a.Decide())
		}
	}
}
