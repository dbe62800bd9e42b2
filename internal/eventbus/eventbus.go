package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"searchwidget/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPointer        = domain.EventPointer
	EventQueryChanged   = domain.EventQueryChanged
	EventOptionSelected = domain.EventOptionSelected
	EventDismissed      = domain.EventDismissed
	EventCleared        = domain.EventCleared
	EventError          = domain.EventError
)

// Re-export domain event types
type PointerEvent = domain.PointerEvent
type QueryChangedEvent = domain.QueryChangedEvent
type OptionSelectedEvent = domain.OptionSelectedEvent
type DismissedEvent = domain.DismissedEvent
type ClearedEvent = domain.ClearedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Len(eventType EventType) int
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run on the publisher's goroutine, in subscription order.
type bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all current subscribers
func (b *bus) Publish(event DomainEvent) {
	// Pointer motion is far too chatty for the log
	if event.Type() != EventPointer {
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Copy so handlers may (un)subscribe while we dispatch
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		if !b.active(event.Type(), s.id) {
			continue
		}
		b.call(s.handler, event)
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function that is safe to call more than once.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
			if len(b.handlers[eventType]) == 0 {
				delete(b.handlers, eventType)
			}
		})
	}
}

// Len returns the number of active subscriptions for an event type
func (b *bus) Len(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

// active reports whether a subscription is still registered
func (b *bus) active(eventType EventType, id uint64) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.handlers[eventType] {
		if s.id == id {
			return true
		}
	}
	return false
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
