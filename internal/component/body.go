package component

import (
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

const CBody ecs.ComponentType = 4

// Body carries the physical state shared by everything that stands on the
// ground: vertical velocity for gravity and the hitbox half extents.
type Body struct {
	VelocityY   float64
	HalfExtents geom.Vec3
}

func (Body) Type() ecs.ComponentType { return CBody }

// Hitbox returns the body's box centered on pos.
func (b Body) Hitbox(pos geom.Vec3) geom.AABB {
	return geom.BoxAround(pos, b.HalfExtents)
}
