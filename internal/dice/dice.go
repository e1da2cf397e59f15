package dice

import (
	"fmt"
	"strings"
)

// RollResult is the outcome of rolling one or more dice
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// IsDouble reports whether a two-dice roll shows the same face twice
func (r *RollResult) IsDouble() bool {
	return len(r.Rolls) == 2 && r.Rolls[0] == r.Rolls[1]
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}

// Chance draws from roller and reports whether the draw falls under p.
// p <= 0 never succeeds and p >= 1 always does, without consuming a draw.
func Chance(roller Roller, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return roller.Float64() < p
}
