package events

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/card-battle-sim/internal/errors"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	logger    zerolog.Logger
}

// NewBus creates a new event bus. A nil logger discards bus logs.
func NewBus(logger *zerolog.Logger) *Bus {
	b := &Bus{
		listeners: make(map[EventType][]EventListener),
		logger:    zerolog.Nop(),
	}
	if logger != nil {
		b.logger = logger.With().Str("component", "event_bus").Logger()
	}
	return b
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	sortByPriority(b.listeners[eventType])

	b.logger.Debug().
		Str("listener", listener.ID()).
		Str("event", string(eventType)).
		Int("priority", listener.Priority()).
		Msg("listener subscribed")
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		b.logger.Debug().
			Str("listener", listenerID).
			Str("event", string(eventType)).
			Msg("listener unsubscribed")
		return
	}
}

// Emit sends an event to all registered listeners in priority order.
// Propagation stops at the first cancellation or listener error.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	log := b.logger.With().
		Str("event", string(event.GetType())).
		Str("battle_id", event.GetBattleID()).
		Logger()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Debug().Msg("event cancelled, stopping propagation")
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return errors.Wrapf(err, "listener %s failed", listener.ID())
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}

func sortByPriority(listeners []EventListener) {
	sort.SliceStable(listeners, func(i, j int) bool {
		return listeners[i].Priority() < listeners[j].Priority()
	})
}
