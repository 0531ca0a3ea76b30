package system

import (
	"fps-arena/internal/component"
	"fps-arena/internal/config"
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

// Hitbox pairs a live enemy with its world-space box.
type Hitbox struct {
	ID  ecs.EntityID
	Box geom.AABB
}

// Hitboxes returns the boxes of every enemy that can be shot, sorted by ID.
// Doomed enemies are never included.
func Hitboxes(w *ecs.World) []Hitbox {
	ids := w.Without(w.Query(component.CTagEnemy, component.CBody, component.CPosition), component.CDoomed)
	out := make([]Hitbox, 0, len(ids))
	for _, id := range ids {
		body := w.Get(id, component.CBody).(component.Body)
		pos := w.Get(id, component.CPosition).(component.Position)
		out = append(out, Hitbox{ID: id, Box: body.Hitbox(pos.Vec3)})
	}
	return out
}

// CastRay returns the nearest hitbox along ray within maxDist.
// Ties go to the lower ID, which is the first in the slice.
func CastRay(boxes []Hitbox, ray geom.Ray, maxDist float64) (Hitbox, float64, bool) {
	var (
		best     Hitbox
		bestDist float64
		found    bool
	)
	for _, hb := range boxes {
		d, ok := hb.Box.IntersectRay(ray, maxDist)
		if !ok {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = hb, d, true
		}
	}
	return best, bestDist, found
}

// Shot is an instantaneous ray fired from Origin along Direction.
type Shot struct {
	Origin    geom.Vec3
	Direction geom.Vec3
	Range     float64
}

// ShotResult describes how a shot resolved.
type ShotResult struct {
	Hit      bool
	Enemy    ecs.EntityID
	Point    geom.Vec3 // impact point on a hit, End otherwise
	Distance float64
	End      geom.Vec3 // where the tracer stops: impact point or max range
	Damage   DamageResult
}

// ResolveShot casts the shot against the live hitboxes and applies
// ShotDamage to the nearest enemy hit. At most one enemy is damaged per shot.
// A zero direction or a non-positive range never hits.
func ResolveShot(w *ecs.World, cfg config.Config, shot Shot) ShotResult {
	maxDist := shot.Range
	dir := shot.Direction.Normalize()
	if dir.LenSq() == 0 || maxDist <= 0 {
		return ShotResult{Point: shot.Origin, End: shot.Origin}
	}
	ray := geom.Ray{Origin: shot.Origin, Dir: dir}

	hb, dist, ok := CastRay(Hitboxes(w), ray, maxDist)
	if !ok {
		end := ray.At(maxDist)
		return ShotResult{Point: end, End: end, Distance: maxDist}
	}
	point := ray.At(dist)
	return ShotResult{
		Hit:      true,
		Enemy:    hb.ID,
		Point:    point,
		Distance: dist,
		End:      point,
		Damage:   Damage(w, cfg, hb.ID, cfg.ShotDamage),
	}
}
