package system

import (
	"fps-arena/internal/component"
	"fps-arena/internal/config"
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

// ApplyGravity pulls every live body down and rests it on the ground.
// It runs regardless of behaviour mode.
func ApplyGravity(w *ecs.World, cfg config.Config, dt float64) {
	for _, id := range w.Without(w.Query(component.CBody, component.CPosition), component.CDoomed) {
		body := w.Get(id, component.CBody).(component.Body)
		pos := w.Get(id, component.CPosition).(component.Position)

		body.VelocityY -= cfg.Gravity * dt
		pos.Y += body.VelocityY * dt
		if pos.Y < cfg.GroundLevel {
			pos.Y = cfg.GroundLevel
			body.VelocityY = 0
		}

		w.Add(id, body)
		w.Add(id, pos)
	}
}

// clampToWorld keeps a point inside the walls of the arena floor.
func clampToWorld(cfg config.Config, p geom.Vec3) geom.Vec3 {
	e := cfg.WorldHalfExtent
	p.X = max(-e, min(e, p.X))
	p.Z = max(-e, min(e, p.Z))
	return p
}

// ClampToWorld is clampToWorld for callers outside the simulation, such as
// the player controller.
func ClampToWorld(cfg config.Config, p geom.Vec3) geom.Vec3 { return clampToWorld(cfg, p) }
