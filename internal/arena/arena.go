// Package arena owns the enemy population of one match. It wires the ECS
// systems together into a single Update pass, applies damage from shots,
// tracks removal and respawn countdowns, and reports everything that happens
// on an event bus.
//
// An Arena is not safe for concurrent use; the goroutine that calls Update
// owns it.
package arena

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"fps-arena/internal/component"
	"fps-arena/internal/config"
	"fps-arena/internal/ecs"
	"fps-arena/internal/event"
	"fps-arena/internal/factory"
	"fps-arena/internal/generate"
	"fps-arena/internal/geom"
	"fps-arena/internal/system"
)

// ErrEnemyNotFound is returned by Damage for an id that is unknown, already
// destroyed, or marked for removal.
var ErrEnemyNotFound = errors.New("enemy not found")

// Visuals is told when an enemy appears and when it is gone for good.
// The enemy's id is its visual handle.
type Visuals interface {
	Spawn(id ecs.EntityID, pos geom.Vec3)
	Remove(id ecs.EntityID)
}

// NopVisuals ignores every call.
type NopVisuals struct{}

func (NopVisuals) Spawn(ecs.EntityID, geom.Vec3) {}
func (NopVisuals) Remove(ecs.EntityID)           {}

// Option customises an Arena at construction.
type Option func(*Arena)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithVisuals sets the callbacks for enemy spawn and removal.
func WithVisuals(v Visuals) Option {
	return func(a *Arena) {
		if v != nil {
			a.visuals = v
		}
	}
}

// Arena is the registry of live enemies and in-flight projectiles.
type Arena struct {
	cfg      config.Config
	rng      *rand.Rand
	world    *ecs.World
	bus      *event.Bus
	visuals  Visuals
	logger   *slog.Logger
	boundary float64
	respawns []float64 // seconds left on each queued replacement
}

// New creates an empty arena. Call Reset to populate it.
func New(cfg config.Config, rng *rand.Rand, opts ...Option) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arena config: %w", err)
	}
	a := &Arena{
		cfg:      cfg,
		rng:      rng,
		world:    ecs.NewWorld(),
		bus:      event.NewBus(),
		visuals:  NopVisuals{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		boundary: cfg.BoundaryLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Config returns the configuration the arena was built with.
func (a *Arena) Config() config.Config { return a.cfg }

// Events returns the bus every arena notification is published on.
func (a *Arena) Events() *event.Bus { return a.bus }

// Boundary returns the current patrol turn-around limit.
func (a *Arena) Boundary() float64 { return a.boundary }

// SetAspect recomputes the patrol boundary from a viewport aspect ratio.
func (a *Arena) SetAspect(aspect float64) {
	a.boundary = config.BoundaryForAspect(aspect)
}

// Spawn adds one enemy standing on the ground at pos's X/Z.
func (a *Arena) Spawn(pos geom.Vec3) ecs.EntityID {
	id := factory.NewEnemy(a.world, a.cfg, a.rng, pos)
	p := a.world.Get(id, component.CPosition).(component.Position).Vec3
	a.visuals.Spawn(id, p)
	event.Publish(a.bus, event.Spawned{ID: id, Pos: p})
	a.logger.Debug("enemy spawned", "id", id, "x", p.X, "z", p.Z)
	return id
}

// SpawnGroup spawns size enemies scattered around center.
func (a *Arena) SpawnGroup(center geom.Vec3, size int) []ecs.EntityID {
	positions := generate.GroupPositions(a.rng, center, size, a.cfg.GroupOffset)
	ids := make([]ecs.EntityID, 0, len(positions))
	for _, p := range positions {
		ids = append(ids, a.Spawn(p))
	}
	return ids
}

// SpawnGroups spawns a group of one at each of groups random centers that
// are farther than safeDistance from the player.
func (a *Arena) SpawnGroups(player geom.Vec3, groups int, safeDistance float64) []ecs.EntityID {
	var ids []ecs.EntityID
	for _, c := range generate.SafeCenters(a.rng, player, groups, a.cfg.SpawnSpread, safeDistance) {
		ids = append(ids, a.SpawnGroup(c, 1)...)
	}
	return ids
}

// Reset clears the arena and spawns the initial enemies away from the player.
// Pending respawns are cancelled.
func (a *Arena) Reset(player geom.Vec3) {
	for _, id := range a.world.Query(component.CTagEnemy) {
		if a.world.DestroyEntity(id) {
			a.visuals.Remove(id)
			event.Publish(a.bus, event.Removed{ID: id})
		}
	}
	for _, id := range a.world.Query(component.CProjectile) {
		a.world.DestroyEntity(id)
	}
	cancelled := len(a.respawns)
	a.respawns = nil

	a.SpawnGroups(player, a.cfg.InitialEnemies, a.cfg.SafeDistance)
	a.logger.Info("arena reset", "enemies", a.cfg.InitialEnemies, "cancelled_respawns", cancelled)
}

// Update advances the arena by dt seconds. Non-positive dt does nothing and
// long frames are clamped to MaxDeltaTime.
func (a *Arena) Update(dt float64, player geom.Vec3) {
	if dt <= 0 {
		return
	}
	dt = min(dt, a.cfg.MaxDeltaTime)

	system.ProcessAI(a.world, a.cfg, a.rng, dt, player, a.boundary)
	system.ApplyGravity(a.world, a.cfg, dt)
	for _, id := range system.TickHighlights(a.world, dt) {
		event.Publish(a.bus, event.HighlightCleared{ID: id})
	}

	for _, o := range system.AdvanceProjectiles(a.world, a.cfg, dt) {
		if o.Hit {
			a.reportHit(o.Origin, o.Shot)
			continue
		}
		event.Publish(a.bus, event.ProjectileExpired{ID: o.ID, Pos: o.Pos})
	}

	// Tickets queued below start counting on the next tick.
	a.tickRespawns(dt)

	for _, id := range system.TickRemovals(a.world, dt) {
		a.visuals.Remove(id)
		event.Publish(a.bus, event.Removed{ID: id})
		a.respawns = append(a.respawns, a.cfg.RespawnDelay)
		event.Publish(a.bus, event.RespawnQueued{Delay: a.cfg.RespawnDelay})
		a.logger.Debug("enemy removed", "id", id, "respawn_in", a.cfg.RespawnDelay)
	}
}

func (a *Arena) tickRespawns(dt float64) {
	due := 0
	kept := a.respawns[:0]
	for _, r := range a.respawns {
		r -= dt
		if r <= 0 {
			due++
			continue
		}
		kept = append(kept, r)
	}
	a.respawns = kept
	for range due {
		ids := a.SpawnGroup(generate.RandomCenter(a.rng, a.cfg.SpawnSpread), 1)
		a.logger.Debug("enemy respawned", "id", ids[0])
	}
}

// Damage applies amount to enemy id. Negative amounts deal nothing.
func (a *Arena) Damage(id ecs.EntityID, amount int) (system.DamageResult, error) {
	res := system.Damage(a.world, a.cfg, id, amount)
	if !res.Found {
		a.logger.Debug("damage on missing enemy", "id", id, "amount", amount)
		return res, fmt.Errorf("damage enemy %d: %w", id, ErrEnemyNotFound)
	}
	a.reportDamage(id, res)
	return res, nil
}

func (a *Arena) reportDamage(id ecs.EntityID, res system.DamageResult) {
	event.Publish(a.bus, event.Damaged{ID: id, Amount: res.Dealt, Health: res.Health})
	a.logger.Debug("enemy damaged", "id", id, "dealt", res.Dealt, "health", res.Health)
	if !res.Killed {
		return
	}
	pos := a.world.Get(id, component.CPosition).(component.Position).Vec3
	event.Publish(a.bus, event.Killed{ID: id, Pos: pos})
	a.logger.Debug("enemy killed", "id", id)
}

func (a *Arena) reportHit(origin geom.Vec3, res system.ShotResult) {
	a.reportDamage(res.Enemy, res.Damage)
	event.Publish(a.bus, event.ShotHit{
		Enemy:    res.Enemy,
		Origin:   origin,
		Point:    res.Point,
		Distance: res.Distance,
		Killed:   res.Damage.Killed,
	})
}

// Hitboxes returns the boxes of every enemy that can still be shot.
func (a *Arena) Hitboxes() []system.Hitbox {
	return system.Hitboxes(a.world)
}

// Fire resolves a hitscan shot from origin along dir.
func (a *Arena) Fire(origin, dir geom.Vec3) system.ShotResult {
	res := system.ResolveShot(a.world, a.cfg, system.Shot{Origin: origin, Direction: dir, Range: a.cfg.HitscanRange})
	if res.Hit {
		a.reportHit(origin, res)
	} else {
		event.Publish(a.bus, event.ShotMissed{Origin: origin, End: res.End})
	}
	return res
}

// FireProjectile launches a traveling shot. It resolves over the following
// Updates.
func (a *Arena) FireProjectile(origin, dir geom.Vec3) ecs.EntityID {
	return factory.NewProjectile(a.world, a.cfg, origin, dir)
}

// PendingRespawns returns the number of queued replacement spawns.
func (a *Arena) PendingRespawns() int { return len(a.respawns) }
