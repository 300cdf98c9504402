package game

import (
	"sync"

	"github.com/kamstrup/intmap"
)

// CommandStats counts applied commands for the session log.
type CommandStats struct {
	mu     sync.Mutex
	counts *intmap.Map[Command, int]
}

func NewCommandStats() *CommandStats {
	return &CommandStats{
		counts: intmap.New[Command, int](len(AllCommands)),
	}
}

func (s *CommandStats) Record(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, _ := s.counts.Get(cmd)
	s.counts.Put(cmd, n+1)
}

func (s *CommandStats) Count(cmd Command) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, _ := s.counts.Get(cmd)
	return n
}

func (s *CommandStats) Total() int {
	total := 0
	for _, cmd := range AllCommands {
		total += s.Count(cmd)
	}
	return total
}

// KeyVals flattens the counts into log key/value pairs.
func (s *CommandStats) KeyVals() []interface{} {
	keyvals := []interface{}{}
	for _, cmd := range AllCommands {
		if n := s.Count(cmd); n > 0 {
			keyvals = append(keyvals, cmd.String(), n)
		}
	}
	return keyvals
}
