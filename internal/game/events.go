package game

import (
	"time"

	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/item"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for run events
const (
	EventTypeSetLoaded  EventType = "set_loaded"
	EventTypeItemsDealt EventType = "items_dealt"
	EventTypeShotFired  EventType = "shot_fired"
	EventTypeItemUsed   EventType = "item_used"
	EventTypeRoundEnd   EventType = "round_end"
	EventTypeGameOver   EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happened during a run
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// SetLoadedEvent is published when the chamber is reloaded. The live and
// blank counts are public information; the order is not.
type SetLoadedEvent struct {
	Set       int
	Live      int
	Blank     int
	timestamp time.Time
}

func (e SetLoadedEvent) EventType() EventType { return EventTypeSetLoaded }
func (e SetLoadedEvent) Timestamp() time.Time { return e.timestamp }

// ItemsDealtEvent is published for each participant's allotment at a set load.
type ItemsDealtEvent struct {
	Side      Side
	Items     []item.Kind // only what survived the inventory cap
	timestamp time.Time
}

func (e ItemsDealtEvent) EventType() EventType { return EventTypeItemsDealt }
func (e ItemsDealtEvent) Timestamp() time.Time { return e.timestamp }

// ShotFiredEvent is published after a shot is resolved.
type ShotFiredEvent struct {
	Shooter     Side
	Victim      Side
	Shell       chamber.Shell
	Damage      int
	HealthAfter int
	timestamp   time.Time
}

func (e ShotFiredEvent) EventType() EventType { return EventTypeShotFired }
func (e ShotFiredEvent) Timestamp() time.Time { return e.timestamp }

// ItemUsedEvent is published after an item's effect is applied.
type ItemUsedEvent struct {
	Side      Side
	Item      item.Kind
	Stolen    item.Kind // set when Item is adrenaline
	Result    Result
	Ejected   *chamber.Shell // shell discarded by beer, if any
	timestamp time.Time
}

func (e ItemUsedEvent) EventType() EventType { return EventTypeItemUsed }
func (e ItemUsedEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published when the dealer dies.
type RoundEndEvent struct {
	Round      int // round index now starting
	MatchesWon int
	MatchEnded bool
	Health     int // fresh health for both sides
	timestamp  time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// GameOverEvent is published once, when the player dies.
type GameOverEvent struct {
	RoundsWon  int
	MatchesWon int
	timestamp  time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives published events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber. Function
// subscribers are not comparable and cannot be unsubscribed.
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the publishing goroutine.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
