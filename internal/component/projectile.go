package component

import (
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

const CProjectile ecs.ComponentType = 9

// Projectile is a simulated bullet. Its current location lives in Position.
type Projectile struct {
	Velocity geom.Vec3
	Previous geom.Vec3 // position before the last advance
	Lifespan float64   // seconds left before it expires
	Traveled float64
}

func (Projectile) Type() ecs.ComponentType { return CProjectile }
