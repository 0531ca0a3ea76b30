package render

import (
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

// Sprites tracks which enemies have a visual attached to the scene. The
// arena calls Spawn and Remove; the renderer only draws attached enemies.
type Sprites struct {
	attached map[ecs.EntityID]geom.Vec3
}

// NewSprites returns an empty sprite table.
func NewSprites() *Sprites {
	return &Sprites{attached: make(map[ecs.EntityID]geom.Vec3)}
}

// Spawn attaches a visual for id at pos.
func (s *Sprites) Spawn(id ecs.EntityID, pos geom.Vec3) {
	s.attached[id] = pos
}

// Remove detaches the visual for id. Unknown ids are ignored.
func (s *Sprites) Remove(id ecs.EntityID) {
	delete(s.attached, id)
}

// Attached reports whether id currently has a visual.
func (s *Sprites) Attached(id ecs.EntityID) bool {
	_, ok := s.attached[id]
	return ok
}

// Len returns the number of attached visuals.
func (s *Sprites) Len() int { return len(s.attached) }
