package system

import (
	"fps-arena/internal/component"
	"fps-arena/internal/config"
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

// ProjectileOutcome reports a projectile that left the world this tick,
// either by hitting an enemy or by running out of lifespan.
type ProjectileOutcome struct {
	ID      ecs.EntityID
	Origin  geom.Vec3 // start of the segment that hit, or last position
	Hit     bool
	Shot    ShotResult
	Expired bool
	Pos     geom.Vec3
}

// AdvanceProjectiles moves every projectile by dt, sweeps a short ray over
// the distance it covered and damages the first enemy on that ray.
// Projectiles that hit or expire are destroyed and reported.
func AdvanceProjectiles(w *ecs.World, cfg config.Config, dt float64) []ProjectileOutcome {
	var out []ProjectileOutcome
	for _, id := range w.Query(component.CProjectile, component.CPosition) {
		p := w.Get(id, component.CProjectile).(component.Projectile)
		pos := w.Get(id, component.CPosition).(component.Position).Vec3

		p.Previous = pos
		pos = pos.Add(p.Velocity.Scale(dt))
		p.Traveled += p.Velocity.Len() * dt

		// Very short hops are skipped so a shot does not hit something the
		// muzzle is already touching.
		if p.Traveled >= cfg.ProjectileMinTravel {
			shot := Shot{
				Origin:    p.Previous,
				Direction: p.Velocity,
				Range:     geom.Dist(p.Previous, pos) + cfg.ProjectileRayPad,
			}
			if res := ResolveShot(w, cfg, shot); res.Hit {
				w.DestroyEntity(id)
				out = append(out, ProjectileOutcome{ID: id, Origin: p.Previous, Hit: true, Shot: res, Pos: res.Point})
				continue
			}
		}

		p.Lifespan -= dt
		if p.Lifespan <= 0 {
			w.DestroyEntity(id)
			out = append(out, ProjectileOutcome{ID: id, Origin: p.Previous, Expired: true, Pos: pos})
			continue
		}
		w.Add(id, p)
		w.Add(id, component.Position{Vec3: pos})
	}
	return out
}
