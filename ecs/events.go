package ecs

// EventKind identifies a gameplay event.
type EventKind string

const (
	EventHeroDamaged     EventKind = "hero_damaged"
	EventHeroDefeated    EventKind = "hero_defeated"
	EventProjectileFired EventKind = "projectile_fired"
	EventProjectileFaded EventKind = "projectile_faded"
	EventHeroReady       EventKind = "hero_ready"
	EventHazardDestroyed EventKind = "hazard_destroyed"
	EventPrefabReloaded  EventKind = "prefab_reloaded"
)

// Event is emitted by systems and drained by the game once per tick.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len is the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
