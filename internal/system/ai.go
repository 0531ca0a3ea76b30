package system

import (
	"math/rand"

	"fps-arena/internal/component"
	"fps-arena/internal/config"
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

// NextMode evaluates the patrol/chase rule for an enemy dist units from the
// player (measured on the ground plane).
//
// With zero hysteresis the mode depends only on the current distance:
// chase inside (AvoidDistance, ChaseRange), patrol otherwise. A positive
// hysteresis widens the band on both ends for an enemy that is already
// chasing, so it does not flicker at the boundary.
func NextMode(cfg config.Config, current component.Mode, dist float64) component.Mode {
	lo, hi := cfg.AvoidDistance, cfg.ChaseRange
	if current == component.ModeChasing {
		lo -= cfg.ChaseHysteresis
		hi += cfg.ChaseHysteresis
	}
	if dist < hi && dist > lo {
		return component.ModeChasing
	}
	return component.ModePatrolling
}

// ProcessAI advances the behaviour of every live enemy by dt seconds.
// Doomed enemies are skipped. boundary is the patrol turn-around limit on X
// and Z.
func ProcessAI(w *ecs.World, cfg config.Config, rng *rand.Rand, dt float64, player geom.Vec3, boundary float64) {
	live := LiveEnemies(w)
	for _, id := range live {
		brain := w.Get(id, component.CBrain).(component.Brain)
		pos := w.Get(id, component.CPosition).(component.Position).Vec3

		brain.Mode = NextMode(cfg, brain.Mode, geom.HorizontalDist(pos, player))

		switch brain.Mode {
		case component.ModePatrolling:
			pos = patrol(cfg, rng, &brain, pos, dt, boundary)
		case component.ModeChasing:
			pos = chase(cfg, rng, &brain, pos, player, dt)
		}

		if brain.Mode == component.ModePatrolling {
			pos = clampToWorld(cfg, pos.Add(separation(w, cfg, id, pos, live).Scale(dt)))
		}

		w.Add(id, component.Position{Vec3: pos})
		w.Add(id, brain)
	}
}

// LiveEnemies returns the enemies that can still act and be hit, sorted by ID.
func LiveEnemies(w *ecs.World) []ecs.EntityID {
	return w.Without(w.Query(component.CTagEnemy, component.CPosition, component.CBrain), component.CDoomed)
}

func patrol(cfg config.Config, rng *rand.Rand, brain *component.Brain, pos geom.Vec3, dt, boundary float64) geom.Vec3 {
	pos = clampToWorld(cfg, pos.Add(brain.PatrolDir.Scale(cfg.PatrolSpeed*dt)))

	brain.PatrolTimer += dt
	if brain.PatrolTimer > brain.PatrolInterval {
		brain.PatrolDir = geom.RandomHorizontalDir(rng)
		brain.PatrolTimer = 0
		brain.PatrolInterval = geom.RandRange(rng, cfg.PatrolIntervalMin, cfg.PatrolIntervalMax)
	}
	if atBoundary(pos, boundary) {
		brain.PatrolDir = geom.RandomHorizontalDir(rng)
	}
	return pos
}

func chase(cfg config.Config, rng *rand.Rand, brain *component.Brain, pos, player geom.Vec3, dt float64) geom.Vec3 {
	toPlayer := player.Sub(pos).Horizontal().Normalize()

	dir := toPlayer
	dir.X += geom.RandRange(rng, -cfg.ChaseJitter, cfg.ChaseJitter)
	dir.Z += geom.RandRange(rng, -cfg.ChaseJitter, cfg.ChaseJitter)

	next := clampToWorld(cfg, pos.Add(dir.Scale(cfg.ChaseSpeed*dt)))

	// Progress is measured toward the player, so sliding along a wall or
	// jittering in place does not count as getting anywhere.
	progress := next.Sub(pos).Dot(toPlayer)
	if toPlayer.LenSq() == 0 || dir.Len() < cfg.StuckEpsilon || progress < cfg.StuckEpsilon*cfg.ChaseSpeed*dt {
		brain.StuckTimer += dt
	} else {
		brain.StuckTimer = 0
	}

	if brain.StuckTimer > cfg.StuckTimeout {
		brain.PatrolDir = geom.RandomHorizontalDir(rng)
		brain.Mode = component.ModePatrolling
		brain.StuckTimer = 0
	}
	return next
}

// separation sums a unit push away from every other live enemy closer than
// SeparationDistance.
func separation(w *ecs.World, cfg config.Config, self ecs.EntityID, pos geom.Vec3, live []ecs.EntityID) geom.Vec3 {
	var force geom.Vec3
	for _, other := range live {
		if other == self || w.Has(other, component.CDoomed) {
			continue
		}
		op := w.Get(other, component.CPosition).(component.Position).Vec3
		away := pos.Sub(op).Horizontal()
		d := away.Len()
		if d >= cfg.SeparationDistance {
			continue
		}
		if d == 0 {
			// Stacked exactly on top of each other: push apart on a fixed
			// axis, ordered by ID so the pair separates.
			away = geom.Vec3{X: 1}
			if self < other {
				away.X = -1
			}
		}
		force = force.Add(away.Normalize().Scale(cfg.SeparationForce))
	}
	return force
}

func atBoundary(pos geom.Vec3, limit float64) bool {
	return pos.X > limit || pos.X < -limit || pos.Z > limit || pos.Z < -limit
}
