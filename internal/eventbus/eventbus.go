package eventbus

import (
	"emojied/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventQueryChanged        = domain.EventQueryChanged
	EventResultsUpdated      = domain.EventResultsUpdated
	EventResultsCleared      = domain.EventResultsCleared
	EventModeToggled         = domain.EventModeToggled
	EventNotificationShown   = domain.EventNotificationShown
	EventNotificationExpired = domain.EventNotificationExpired
	EventActivationFailed    = domain.EventActivationFailed
	EventDatasetLoaded       = domain.EventDatasetLoaded
	EventDatasetReloadFailed = domain.EventDatasetReloadFailed
	EventConfigLoaded        = domain.EventConfigLoaded
	EventConfigSaved         = domain.EventConfigSaved
)

// Re-export domain event types
type QueryChangedEvent = domain.QueryChangedEvent
type ResultsUpdatedEvent = domain.ResultsUpdatedEvent
type ResultsClearedEvent = domain.ResultsClearedEvent
type ModeToggledEvent = domain.ModeToggledEvent
type NotificationShownEvent = domain.NotificationShownEvent
type NotificationExpiredEvent = domain.NotificationExpiredEvent
type ActivationFailedEvent = domain.ActivationFailedEvent
type DatasetLoadedEvent = domain.DatasetLoadedEvent
type DatasetReloadFailedEvent = domain.DatasetReloadFailedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously, in subscription order, on the
// publisher's goroutine. A handler observes state that is already final.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for per-keystroke events
	switch event.Type() {
	case EventQueryChanged, EventResultsUpdated, EventResultsCleared:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Copy so handlers may subscribe or unsubscribe while running
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// NullBus discards every event
type NullBus struct{}

func (NullBus) Publish(DomainEvent) {}
func (NullBus) Subscribe(EventType, EventHandler) func() {
	return func() {}
}
