package game

import (
	"context"
	"time"
)

// StartGravity forces a MoveDown into the slot every interval until ctx is
// done. It overwrites whatever the player queued, like any other push.
func StartGravity(ctx context.Context, slot *CommandSlot, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			slot.Push(MoveDown)
		}
	}
}
