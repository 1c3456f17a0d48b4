// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within bugbee.
package eventbus

import (
	"context"
	"sync"
)

// Event identifies an event type on the bus.
type Event string

// Bus event names. Keep list sorted A-Z.
const (
	EventItemCompleted Event = "item.completed"
	EventItemCreated   Event = "item.created"
	EventItemDeleted   Event = "item.deleted"
	EventItemUpdated   Event = "item.updated"
)

// defaultBuffer is the channel capacity before publishes are dropped.
const defaultBuffer = 64

type envelope struct {
	event   Event
	payload any
}

// EventBus dispatches typed events to registered subscribers. Publishing
// never blocks: when the buffer is full the event is dropped and the drop
// hooks fire.
type EventBus struct {
	ch    chan envelope
	mu    sync.RWMutex
	subs  map[Event][]func(any)
	hooks hooks
}

// New creates an event bus with the default buffer size.
func New() *EventBus {
	return &EventBus{
		ch:   make(chan envelope, defaultBuffer),
		subs: make(map[Event][]func(any)),
	}
}

// Run dispatches queued events to subscribers until ctx is cancelled.
// Subscriber panics are recovered and routed to the panic hooks so one bad
// subscriber cannot take down the dispatch loop.
func (bus *EventBus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[env.event]))
	copy(subs, bus.subs[env.event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					bus.runOnPanic(env.event, env.payload, r)
				}
			}()
			fn(env.payload)
		}()
	}
}

// subscribe registers an untyped handler. Used by the typed Subscribe*
// wrappers in events.go.
func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()
	bus.runOnSubscribe(event)
}
