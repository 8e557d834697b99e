package events

// Event type constants
const (
	// Targeting Events
	EventTypeBeforeTargeting EventType = "before_targeting"
	EventTypeAfterTargeting  EventType = "after_targeting"

	// Damage Events
	EventTypeDamageApplied EventType = "damage_applied"
	EventTypeCardDefeated  EventType = "card_defeated"
)

// Priority levels for listener order, lower runs first
const (
	PriorityPreCalculation  = 0   // Blocks and vetoes
	PriorityStatusEffects   = 200 // Taunt, stealth
	PriorityPostCalculation = 500 // Logging, replay capture
)
