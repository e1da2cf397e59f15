package resolution

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/zodiac-skill-engine/internal/events"
)

// publishUse emits the events of one use. Listener failures are logged;
// the use has already been applied.
func (s *service) publishUse(input *UseSkillInput, out *UseSkillResult) {
	if s.bus == nil {
		return
	}

	base := func(t events.EventType) events.BaseEvent {
		return events.BaseEvent{Type: t, GameID: input.GameID}
	}

	s.emit(&events.SkillUsedEvent{
		BaseEvent: base(events.EventTypeSkillUsed),
		UseID:     out.UseID,
		CasterID:  input.CasterID,
		SkillID:   input.Skill.ID,
		Results:   out.Results,
	})
	for _, r := range out.Results {
		s.emit(&events.EffectResolvedEvent{
			BaseEvent: base(events.EventTypeEffectResolved),
			UseID:     out.UseID,
			CasterID:  input.CasterID,
			Result:    r,
		})
	}
	for _, id := range out.Combos {
		s.emit(&events.ComboFiredEvent{
			BaseEvent: base(events.EventTypeComboFired),
			UseID:     out.UseID,
			CasterID:  input.CasterID,
			ComboID:   id,
		})
	}
	for _, id := range out.Cascades {
		s.emit(&events.CascadeFiredEvent{
			BaseEvent: base(events.EventTypeCascadeFired),
			UseID:     out.UseID,
			CasterID:  input.CasterID,
			CascadeID: id,
		})
	}
}

func (s *service) publishTurn(gameID string, res *EndTurnResult) {
	if s.bus == nil {
		return
	}
	s.emit(&events.TurnEndedEvent{
		BaseEvent:  events.BaseEvent{Type: events.EventTypeTurnEnded, GameID: gameID},
		Turn:       res.Turn,
		Expired:    res.Expired,
		RulesEnded: res.RulesEnded,
	})
}

func (s *service) emit(event events.Event) {
	if err := s.bus.Emit(event); err != nil {
		s.logger.Warn("event listener failed",
			zap.String("event", string(event.GetType())),
			zap.String("game_id", event.GetGameID()),
			zap.Error(err))
	}
}
