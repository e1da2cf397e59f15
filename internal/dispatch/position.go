package dispatch

import (
	"context"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/effects"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/entities"
	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
)

type positionHandler struct{}

func (h *positionHandler) Family() skill.Family {
	return skill.FamilyPosition
}

func (h *positionHandler) Apply(_ context.Context, act *Action) (*skill.Result, error) {
	board := act.Board()
	if board == nil || board.Length() == 0 {
		return nil, zerr.InvalidArgument("game has no board")
	}

	if act.Effect.Kind == skill.KindPositionLock {
		if err := act.AddStatus(act.Targets, effects.KindPositionLock, 1); err != nil {
			return nil, err
		}
		return act.Succeed(float64(act.Turns()), nil, act.Targets, "locked %d players for %d turns", len(act.Targets), act.Turns()), nil
	}

	movable := make([]*entities.Player, 0, len(act.Targets))
	for _, t := range act.Targets {
		if !locked(t) {
			movable = append(movable, t)
		}
	}

	switch act.Effect.Kind {
	case skill.KindPositionMove:
		if len(movable) == 0 {
			return nil, zerr.Validationf("every target is locked in place")
		}
		out, err := act.Calculate()
		if err != nil {
			return nil, err
		}
		steps := int(out.Value) * act.Direction()
		for _, t := range movable {
			t.Position = board.Wrap(t.Position + steps)
		}
		return act.Succeed(out.Value, out, movable, "moved %d cells", steps), nil

	case skill.KindPositionTeleport:
		if len(movable) == 0 {
			return nil, zerr.Validationf("every target is locked in place")
		}
		dest := h.destination(act, board)
		for _, t := range movable {
			t.Position = dest
		}
		return act.Succeed(float64(len(movable)), nil, movable, "teleported to cell %d", dest), nil

	case skill.KindPositionSwap:
		caster := act.Caster()
		var other *entities.Player
		for _, t := range act.Targets {
			if t.ID != caster.ID {
				other = t
				break
			}
		}
		if other == nil {
			return nil, zerr.InvalidArgument("swap needs another player")
		}
		if locked(caster) || locked(other) {
			return nil, zerr.Validationf("swap blocked by a position lock")
		}
		caster.Position, other.Position = other.Position, caster.Position
		return act.Succeed(1, nil, []*entities.Player{other}, "swapped places with %s", other.ID), nil
	}

	return nil, zerr.Unimplementedf("position handler cannot apply %s", act.Effect.Kind)
}

// destination prefers the declared cell, then a random unclaimed cell,
// then any cell
func (h *positionHandler) destination(act *Action, board *entities.Board) int {
	if act.Effect.Destination != nil {
		return board.Wrap(*act.Effect.Destination)
	}
	if free := board.Unclaimed(); len(free) > 0 {
		return free[act.roller.Intn(len(free))]
	}
	return act.roller.Intn(board.Length())
}

func locked(p *entities.Player) bool {
	return p.Effects != nil && p.Effects.Has(effects.KindPositionLock)
}
