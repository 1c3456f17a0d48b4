package eventbus

import (
	"github.com/colonyops/bugbee/internal/core/workitem"
)

// ItemCreatedPayload is emitted when a new work item is created.
type ItemCreatedPayload struct {
	Item *workitem.WorkItem
}

// ItemUpdatedPayload is emitted when a work item is updated. Changed holds
// the field names the transition engine reported.
type ItemUpdatedPayload struct {
	Item    *workitem.WorkItem
	Changed []string
}

// ItemCompletedPayload is emitted when a work item transitions into done.
type ItemCompletedPayload struct {
	Item *workitem.WorkItem
}

// ItemDeletedPayload is emitted when a work item is deleted.
type ItemDeletedPayload struct {
	ItemID string
}

// PublishItemCreated enqueues an item.created event.
func (bus *EventBus) PublishItemCreated(payload ItemCreatedPayload) {
	bus.send(EventItemCreated, payload)
}

// SubscribeItemCreated registers a handler for item.created events.
func (bus *EventBus) SubscribeItemCreated(fn func(ItemCreatedPayload)) {
	bus.subscribe(EventItemCreated, func(p any) {
		if payload, ok := p.(ItemCreatedPayload); ok {
			fn(payload)
		}
	})
}

// PublishItemUpdated enqueues an item.updated event.
func (bus *EventBus) PublishItemUpdated(payload ItemUpdatedPayload) {
	bus.send(EventItemUpdated, payload)
}

// SubscribeItemUpdated registers a handler for item.updated events.
func (bus *EventBus) SubscribeItemUpdated(fn func(ItemUpdatedPayload)) {
	bus.subscribe(EventItemUpdated, func(p any) {
		if payload, ok := p.(ItemUpdatedPayload); ok {
			fn(payload)
		}
	})
}

// PublishItemCompleted enqueues an item.completed event.
func (bus *EventBus) PublishItemCompleted(payload ItemCompletedPayload) {
	bus.send(EventItemCompleted, payload)
}

// SubscribeItemCompleted registers a handler for item.completed events.
func (bus *EventBus) SubscribeItemCompleted(fn func(ItemCompletedPayload)) {
	bus.subscribe(EventItemCompleted, func(p any) {
		if payload, ok := p.(ItemCompletedPayload); ok {
			fn(payload)
		}
	})
}

// PublishItemDeleted enqueues an item.deleted event.
func (bus *EventBus) PublishItemDeleted(payload ItemDeletedPayload) {
	bus.send(EventItemDeleted, payload)
}

// SubscribeItemDeleted registers a handler for item.deleted events.
func (bus *EventBus) SubscribeItemDeleted(fn func(ItemDeletedPayload)) {
	bus.subscribe(EventItemDeleted, func(p any) {
		if payload, ok := p.(ItemDeletedPayload); ok {
			fn(payload)
		}
	})
}
