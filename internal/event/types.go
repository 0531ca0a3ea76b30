package event

import (
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

// Spawned: an enemy entered the arena.
type Spawned struct {
	ID  ecs.EntityID
	Pos geom.Vec3
}

// Damaged: an enemy lost health and is now highlighted.
type Damaged struct {
	ID     ecs.EntityID
	Amount int
	Health int
}

// HighlightCleared: the damage tint ran out.
type HighlightCleared struct {
	ID ecs.EntityID
}

// Killed: health reached zero and the enemy is marked for removal.
type Killed struct {
	ID  ecs.EntityID
	Pos geom.Vec3
}

// Removed: the enemy was destroyed and its visual should be detached.
type Removed struct {
	ID ecs.EntityID
}

// RespawnQueued: a replacement enemy will appear after Delay seconds.
type RespawnQueued struct {
	Delay float64
}

// ShotHit: a hitscan ray or projectile struck an enemy.
type ShotHit struct {
	Enemy    ecs.EntityID
	Origin   geom.Vec3
	Point    geom.Vec3
	Distance float64
	Killed   bool
}

// ShotMissed: the shot reached End without touching anything.
type ShotMissed struct {
	Origin geom.Vec3
	End    geom.Vec3
}

// ProjectileExpired: a traveling projectile ran out of lifespan.
type ProjectileExpired struct {
	ID  ecs.EntityID
	Pos geom.Vec3
}
