package events

import (
	"github.com/KirkDiggler/card-battle-sim/internal/domain/battle"
)

// EventType represents the type of battle event
type EventType string

// Event is the base interface for all battle events
type Event interface {
	GetType() EventType
	GetBattleID() string
	GetActor() *battle.Card
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	BattleID  string
	Actor     *battle.Card
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetBattleID() string    { return e.BattleID }
func (e *BaseEvent) GetActor() *battle.Card { return e.Actor }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// BeforeTargetingEvent is emitted before a skill picks its targets.
// Cancelling it stops the skill from hitting anything.
type BeforeTargetingEvent struct {
	BaseEvent
	RangeID int
	Kind    string
}

// AfterTargetingEvent is emitted once targets are picked. Listeners may
// rewrite Targets; the service drops dead cards from the result.
type AfterTargetingEvent struct {
	BaseEvent
	RangeID int
	Kind    string
	Targets []*battle.Card
}

// DamageAppliedEvent is emitted after a card takes damage and the battle is saved
type DamageAppliedEvent struct {
	BaseEvent
	Amount int
}

// CardDefeatedEvent is emitted when damage knocks a card out
type CardDefeatedEvent struct {
	BaseEvent
}
