// Package config holds every tuning constant of the arena simulation.
// Default holds the tuned values for a 175x175 floor.
package config

import (
	"errors"
	"flag"
	"fmt"

	"fps-arena/internal/geom"
)

// Config is passed by value into the arena; it is never mutated after
// construction.
type Config struct {
	// Enemy stats.
	EnemyHealth      int
	EnemyHalfExtents geom.Vec3

	// World.
	GroundLevel     float64 // Y an enemy's center rests at
	Gravity         float64 // downward acceleration, units/s²
	WorldHalfExtent float64 // enemies never leave ±this on X and Z
	BoundaryLimit   float64 // patrol turn-around limit
	MaxDeltaTime    float64 // longer ticks are clamped to this

	// Behaviour.
	ChaseRange         float64
	AvoidDistance      float64
	ChaseHysteresis    float64 // 0 reproduces the instantaneous rule
	PatrolSpeed        float64
	ChaseSpeed         float64
	ChaseJitter        float64 // ± added to X and Z of the chase direction
	PatrolIntervalMin  float64
	PatrolIntervalMax  float64
	SeparationDistance float64
	SeparationForce    float64
	StuckEpsilon       float64
	StuckTimeout       float64

	// Timers.
	HighlightDuration float64
	RemovalDelay      float64
	RespawnDelay      float64

	// Spawning.
	InitialEnemies int
	SpawnSpread    float64 // random centers are drawn in ±SpawnSpread/2
	GroupOffset    float64 // members scatter ±GroupOffset around a center
	SafeDistance   float64 // initial groups keep this far from the player

	// Weapons.
	ShotDamage          int
	HitscanRange        float64
	ProjectileSpeed     float64
	ProjectileLifespan  float64
	ProjectileMinTravel float64
	ProjectileRayPad    float64
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		EnemyHealth:      150,
		EnemyHalfExtents: geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5},

		GroundLevel:     0.8,
		Gravity:         9.8,
		WorldHalfExtent: 87.5,
		BoundaryLimit:   20,
		MaxDeltaTime:    0.06,

		ChaseRange:         25,
		AvoidDistance:      3,
		ChaseHysteresis:    0,
		PatrolSpeed:        1.2,
		ChaseSpeed:         3.5,
		ChaseJitter:        0.1,
		PatrolIntervalMin:  1,
		PatrolIntervalMax:  3,
		SeparationDistance: 4,
		SeparationForce:    1,
		StuckEpsilon:       0.01,
		StuckTimeout:       2,

		HighlightDuration: 0.1,
		RemovalDelay:      0.1,
		RespawnDelay:      3,

		InitialEnemies: 5,
		SpawnSpread:    100,
		GroupOffset:    5,
		SafeDistance:   30,

		ShotDamage:          25,
		HitscanRange:        100,
		ProjectileSpeed:     50,
		ProjectileLifespan:  2,
		ProjectileMinTravel: 0.5,
		ProjectileRayPad:    1,
	}
}

// BoundaryForAspect returns the patrol limit for a viewport:
// 20 units scaled by the viewport aspect ratio, capped at 50.
func BoundaryForAspect(aspect float64) float64 {
	if aspect <= 0 {
		return 20
	}
	return min(20*aspect, 50)
}

// Validate reports every problem found, joined into one error.
func (c Config) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity},
		{"world half extent", c.WorldHalfExtent},
		{"boundary limit", c.BoundaryLimit},
		{"max delta time", c.MaxDeltaTime},
		{"chase range", c.ChaseRange},
		{"patrol speed", c.PatrolSpeed},
		{"chase speed", c.ChaseSpeed},
		{"patrol interval min", c.PatrolIntervalMin},
		{"stuck timeout", c.StuckTimeout},
		{"hitscan range", c.HitscanRange},
		{"projectile speed", c.ProjectileSpeed},
		{"projectile lifespan", c.ProjectileLifespan},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", p.name, p.v))
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"avoid distance", c.AvoidDistance},
		{"chase hysteresis", c.ChaseHysteresis},
		{"chase jitter", c.ChaseJitter},
		{"separation distance", c.SeparationDistance},
		{"separation force", c.SeparationForce},
		{"stuck epsilon", c.StuckEpsilon},
		{"highlight duration", c.HighlightDuration},
		{"removal delay", c.RemovalDelay},
		{"respawn delay", c.RespawnDelay},
		{"spawn spread", c.SpawnSpread},
		{"group offset", c.GroupOffset},
		{"safe distance", c.SafeDistance},
		{"projectile min travel", c.ProjectileMinTravel},
		{"projectile ray pad", c.ProjectileRayPad},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", p.name, p.v))
		}
	}
	if c.EnemyHealth <= 0 {
		errs = append(errs, fmt.Errorf("enemy health must be positive, got %d", c.EnemyHealth))
	}
	if c.ShotDamage < 0 {
		errs = append(errs, fmt.Errorf("shot damage must not be negative, got %d", c.ShotDamage))
	}
	if c.InitialEnemies < 0 {
		errs = append(errs, fmt.Errorf("initial enemies must not be negative, got %d", c.InitialEnemies))
	}
	if c.EnemyHalfExtents.X <= 0 || c.EnemyHalfExtents.Y <= 0 || c.EnemyHalfExtents.Z <= 0 {
		errs = append(errs, fmt.Errorf("enemy half extents must be positive, got %+v", c.EnemyHalfExtents))
	}
	if c.AvoidDistance >= c.ChaseRange {
		errs = append(errs, fmt.Errorf("avoid distance %g must be below chase range %g", c.AvoidDistance, c.ChaseRange))
	}
	if c.PatrolIntervalMax < c.PatrolIntervalMin {
		errs = append(errs, fmt.Errorf("patrol interval max %g is below min %g", c.PatrolIntervalMax, c.PatrolIntervalMin))
	}
	if c.SafeDistance >= c.SpawnSpread {
		// Random centers could never satisfy the safe distance.
		errs = append(errs, fmt.Errorf("safe distance %g must be below spawn spread %g", c.SafeDistance, c.SpawnSpread))
	}
	return errors.Join(errs...)
}

// BindFlags registers the command-line knobs on fs. Values are written into
// c when fs is parsed.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.InitialEnemies, "enemies", c.InitialEnemies, "number of enemies spawned on reset")
	fs.Float64Var(&c.ChaseHysteresis, "hysteresis", c.ChaseHysteresis, "extra distance an enemy keeps chasing past the chase band (0 = none)")
	fs.Float64Var(&c.RespawnDelay, "respawn", c.RespawnDelay, "seconds before a killed enemy is replaced")
	fs.IntVar(&c.ShotDamage, "damage", c.ShotDamage, "damage per shot")
}
