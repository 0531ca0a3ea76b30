package system

import (
	"math/rand"
	"testing"

	"fps-arena/internal/component"
	"fps-arena/internal/config"
	"fps-arena/internal/ecs"
	"fps-arena/internal/factory"
	"fps-arena/internal/geom"
)

// newTestWorld returns an empty world, the default config and a seeded rng.
func newTestWorld() (*ecs.World, config.Config, *rand.Rand) {
	return ecs.NewWorld(), config.Default(), rand.New(rand.NewSource(42))
}

// addEnemy spawns a default enemy at (x, z) on the ground.
func addEnemy(w *ecs.World, cfg config.Config, rng *rand.Rand, x, z float64) ecs.EntityID {
	return factory.NewEnemy(w, cfg, rng, geom.Vec3{X: x, Z: z})
}

// setBrain overwrites an enemy's brain.
func setBrain(w *ecs.World, id ecs.EntityID, b component.Brain) {
	w.Add(id, b)
}

func brainOf(t *testing.T, w *ecs.World, id ecs.EntityID) component.Brain {
	t.Helper()
	c := w.Get(id, component.CBrain)
	if c == nil {
		t.Fatalf("entity %d has no brain", id)
	}
	return c.(component.Brain)
}

func posOf(t *testing.T, w *ecs.World, id ecs.EntityID) geom.Vec3 {
	t.Helper()
	c := w.Get(id, component.CPosition)
	if c == nil {
		t.Fatalf("entity %d has no position", id)
	}
	return c.(component.Position).Vec3
}

func healthOf(t *testing.T, w *ecs.World, id ecs.EntityID) int {
	t.Helper()
	c := w.Get(id, component.CHealth)
	if c == nil {
		t.Fatalf("entity %d has no health", id)
	}
	return c.(component.Health).Current
}

// eye is a player standing at the origin.
var eye = geom.Vec3{Y: 1.7}
