package system

import (
	"fps-arena/internal/component"
	"fps-arena/internal/ecs"
)

// TickHighlights counts down damage tints and drops the expired ones.
// It returns the enemies whose tint was cleared this tick. Doomed enemies
// keep their tint until they are removed.
func TickHighlights(w *ecs.World, dt float64) []ecs.EntityID {
	var cleared []ecs.EntityID
	for _, id := range w.Without(w.Query(component.CHighlight), component.CDoomed) {
		h := w.Get(id, component.CHighlight).(component.Highlight)
		h.Remaining -= dt
		if h.Remaining > 0 {
			w.Add(id, h)
			continue
		}
		w.Remove(id, component.CHighlight)
		cleared = append(cleared, id)
	}
	return cleared
}

// Highlighted reports whether an entity is currently tinted.
func Highlighted(w *ecs.World, id ecs.EntityID) bool {
	return w.Has(id, component.CHighlight)
}

// TickRemovals counts down doomed entities and destroys those whose delay
// ran out. Each entity is returned exactly once, on the tick it is destroyed.
func TickRemovals(w *ecs.World, dt float64) []ecs.EntityID {
	var removed []ecs.EntityID
	for _, id := range w.Query(component.CDoomed) {
		d := w.Get(id, component.CDoomed).(component.Doomed)
		d.RemoveIn -= dt
		if d.RemoveIn > 0 {
			w.Add(id, d)
			continue
		}
		if w.DestroyEntity(id) {
			removed = append(removed, id)
		}
	}
	return removed
}
