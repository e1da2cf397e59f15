package dice

import (
	"fmt"
	"sync"
)

// ScriptedRoller implements Roller with predetermined results.
// Once a queue is drained, Float64 returns Fallback and Intn returns 0.
type ScriptedRoller struct {
	mu       sync.Mutex
	floats   []float64
	ints     []int
	rolls    []int
	Fallback float64
}

// NewScriptedRoller creates a roller that answers every uniform draw with 0.5
// until floats are queued
func NewScriptedRoller() *ScriptedRoller {
	return &ScriptedRoller{Fallback: 0.5}
}

// QueueFloats appends uniform draws
func (s *ScriptedRoller) QueueFloats(values ...float64) *ScriptedRoller {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = append(s.floats, values...)
	return s
}

// QueueInts appends Intn results
func (s *ScriptedRoller) QueueInts(values ...int) *ScriptedRoller {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, values...)
	return s
}

// QueueRolls appends die faces
func (s *ScriptedRoller) QueueRolls(values ...int) *ScriptedRoller {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls = append(s.rolls, values...)
	return s
}

// Remaining reports how many uniform draws are still queued
func (s *ScriptedRoller) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.floats)
}

// Float64 implements Roller.Float64
func (s *ScriptedRoller) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.floats) == 0 {
		return s.Fallback
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// Intn implements Roller.Intn
func (s *ScriptedRoller) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// Roll implements Roller.Roll
func (s *ScriptedRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rolls) < count {
		return nil, fmt.Errorf("no more predetermined rolls available (need %d, have %d)", count, len(s.rolls))
	}

	rolls := make([]int, count)
	raw := 0
	for i := 0; i < count; i++ {
		roll := s.rolls[i]
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		raw += roll
	}
	s.rolls = s.rolls[count:]

	return &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}, nil
}
