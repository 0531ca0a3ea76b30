package factory

import (
	"math/rand"

	"fps-arena/internal/component"
	"fps-arena/internal/config"
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// EnemyGlyph is drawn for every enemy in the top-down view.
const EnemyGlyph = '■'

// NewEnemy creates an enemy standing on the ground at pos's X/Z. It starts
// patrolling in a random horizontal direction.
func NewEnemy(w *ecs.World, cfg config.Config, rng *rand.Rand, pos geom.Vec3) ecs.EntityID {
	pos.Y = cfg.GroundLevel

	id := w.CreateEntity()
	w.Add(id, component.Position{Vec3: pos})
	w.Add(id, component.Health{Current: cfg.EnemyHealth, Max: cfg.EnemyHealth})
	w.Add(id, component.Body{HalfExtents: cfg.EnemyHalfExtents})
	w.Add(id, component.Brain{
		Mode:           component.ModePatrolling,
		PatrolDir:      geom.RandomHorizontalDir(rng),
		PatrolInterval: geom.RandRange(rng, cfg.PatrolIntervalMin, cfg.PatrolIntervalMax),
	})
	w.Add(id, component.Renderable{
		Glyph:    EnemyGlyph,
		Color:    tcell.ColorRed,
		HitColor: tcell.ColorYellow,
	})
	w.Add(id, component.TagEnemy{})
	return id
}

// NewProjectile creates a bullet at origin flying along dir. A zero dir
// yields a projectile that sits still until it expires.
func NewProjectile(w *ecs.World, cfg config.Config, origin, dir geom.Vec3) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{Vec3: origin})
	w.Add(id, component.Projectile{
		Velocity: dir.Normalize().Scale(cfg.ProjectileSpeed),
		Previous: origin,
		Lifespan: cfg.ProjectileLifespan,
	})
	w.Add(id, component.Renderable{Glyph: '•', Color: tcell.ColorGreen, HitColor: tcell.ColorGreen})
	return id
}
