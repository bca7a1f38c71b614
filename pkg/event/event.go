// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/centered-triangle/pkg/physics"
)

// Type represents the type of event
type Type string

// Event types published by the motion core
const (
	StateTerminated Type = "state_terminated"
	ViewportResized Type = "viewport_resized"
	BoundaryReached Type = "boundary_reached"
	RotationReset   Type = "rotation_reset"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type entry struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]entry
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]entry),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], entry{id: id, handler: handler})

	return &Subscription{
		ID:   id,
		Type: eventType,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.handlers[eventType]
	for i, e := range entries {
		if e.id == id {
			b.handlers[eventType] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers in subscription order.
// Handlers run on the caller's goroutine.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	entries := append([]entry(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, e := range entries {
		e.handler(event)
	}
}

// HandlerCount returns the number of handlers registered for eventType.
func (b *Bus) HandlerCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

// Specific event implementations

// ResizeEvent carries the new and previous surface size.
type ResizeEvent struct {
	BaseEvent
	Width, Height       float64
	OldWidth, OldHeight float64
}

// NewResizeEvent creates a new resize event
func NewResizeEvent(source interface{}, width, height, oldWidth, oldHeight float64) *ResizeEvent {
	return &ResizeEvent{
		BaseEvent: BaseEvent{
			EventType: ViewportResized,
			Source:    source,
		},
		Width:     width,
		Height:    height,
		OldWidth:  oldWidth,
		OldHeight: oldHeight,
	}
}

// Edge names one side of the clamp range.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// BoundaryEvent is published when clamping first stops the entity at an edge.
type BoundaryEvent struct {
	BaseEvent
	Edge     Edge
	Position physics.Vector2D
}

// NewBoundaryEvent creates a new boundary event
func NewBoundaryEvent(source interface{}, edge Edge, position physics.Vector2D) *BoundaryEvent {
	return &BoundaryEvent{
		BaseEvent: BaseEvent{
			EventType: BoundaryReached,
			Source:    source,
		},
		Edge:     edge,
		Position: position,
	}
}

// StateEvent reports a state machine transition.
type StateEvent struct {
	BaseEvent
	Reason string
}

// NewStateEvent creates a new state event
func NewStateEvent(eventType Type, source interface{}, reason string) *StateEvent {
	return &StateEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Reason: reason,
	}
}
