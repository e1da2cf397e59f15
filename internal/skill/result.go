package skill

import (
	"fmt"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

// Source records which stage produced a result
type Source string

const (
	SourcePrimary   Source = "primary"
	SourceSecondary Source = "secondary"
	SourceChain     Source = "chain"
	SourceCombo     Source = "combo"
	SourceCascade   Source = "cascade"
)

// Result is the outcome of dispatching one effect
type Result struct {
	Success           bool
	Kind              Kind
	EffectID          string
	ActualValue       float64
	TargetIDs         []string
	Description       string
	IsCritical        bool
	ResistanceApplied bool
	Secondary         []*Effect // queued by handlers and enhancers for dispatch

	// Presentation hints, passed through untouched
	Animation string
	Sounds    []string

	Breakdown  *Breakdown
	DamageKind zodiac.DamageKind
	Element    zodiac.Element

	Source     Source
	OriginID   string // combo or reaction id for derived results
	ChainDepth int
}

// Failed builds an unsuccessful result for effect
func Failed(effect *Effect, format string, args ...any) *Result {
	r := &Result{
		Description: fmt.Sprintf(format, args...),
		TargetIDs:   []string{},
	}
	if effect != nil {
		r.Kind = effect.Kind
		r.EffectID = effect.ID
	}
	return r
}

// Succeeded counts successful results
func Succeeded(results []*Result) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}

// Criticals counts successful critical results
func Criticals(results []*Result) int {
	n := 0
	for _, r := range results {
		if r.Success && r.IsCritical {
			n++
		}
	}
	return n
}

// Peak returns the largest value among successful results
func Peak(results []*Result) float64 {
	peak := 0.0
	for _, r := range results {
		if r.Success && r.ActualValue > peak {
			peak = r.ActualValue
		}
	}
	return peak
}
