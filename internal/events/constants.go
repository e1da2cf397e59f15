package events

// Event type constants
const (
	EventTypeSkillUsed      EventType = "skill_used"
	EventTypeEffectResolved EventType = "effect_resolved"
	EventTypeComboFired     EventType = "combo_fired"
	EventTypeCascadeFired   EventType = "cascade_fired"
	EventTypeTurnEnded      EventType = "turn_ended"
)

// Priority levels for listener order, lower runs first
const (
	PriorityAudit        = 100 // state-change logs
	PriorityPresentation = 200 // animation and sound
	PriorityStatistics   = 300 // counters and telemetry
)
