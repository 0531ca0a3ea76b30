package ecs

import "slices"

// World is the central entity registry and component store.
// It is owned by a single goroutine.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity removes the entity and all its components.
// It reports whether the entity was alive, so callers can run their own
// cleanup exactly once.
func (w *World) DestroyEntity(id EntityID) bool {
	if !w.alive[id] {
		return false
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
	return true
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.alive)
}

// Add attaches (or replaces) a component on a live entity.
// Adding to a destroyed entity is ignored.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type.
// The result is a snapshot sorted by ID: callers may destroy entities while
// ranging over it without skipping or revisiting a neighbour, and iteration
// order is deterministic.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if len(store) == 0 {
		return nil
	}
	result := make([]EntityID, 0, len(store))
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// Without filters ids down to those lacking component type t.
func (w *World) Without(ids []EntityID, t ComponentType) []EntityID {
	out := ids[:0:0]
	for _, id := range ids {
		if !w.Has(id, t) {
			out = append(out, id)
		}
	}
	return out
}
