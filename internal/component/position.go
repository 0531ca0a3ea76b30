package component

import (
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

const CPosition ecs.ComponentType = 1

// Position is the world-space center of an entity.
type Position struct {
	geom.Vec3
}

func (Position) Type() ecs.ComponentType { return CPosition }
