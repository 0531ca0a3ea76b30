package arena

import (
	"fps-arena/internal/component"
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
	"fps-arena/internal/system"
)

// EnemyView is a read-only copy of one enemy's state.
type EnemyView struct {
	ID          ecs.EntityID
	Pos         geom.Vec3
	Health      component.Health
	Mode        component.Mode
	Highlighted bool
	Doomed      bool
	Look        component.Renderable
}

// ProjectileView is a read-only copy of one projectile.
type ProjectileView struct {
	ID       ecs.EntityID
	Pos      geom.Vec3
	Previous geom.Vec3
	Look     component.Renderable
}

// Enemy returns the state of enemy id. Enemies marked for removal are still
// reported until they are destroyed.
func (a *Arena) Enemy(id ecs.EntityID) (EnemyView, bool) {
	w := a.world
	if !w.Alive(id) || !w.Has(id, component.CTagEnemy) {
		return EnemyView{}, false
	}
	v := EnemyView{
		ID:          id,
		Pos:         w.Get(id, component.CPosition).(component.Position).Vec3,
		Health:      w.Get(id, component.CHealth).(component.Health),
		Mode:        w.Get(id, component.CBrain).(component.Brain).Mode,
		Highlighted: system.Highlighted(w, id),
		Doomed:      w.Has(id, component.CDoomed),
	}
	if r := w.Get(id, component.CRenderable); r != nil {
		v.Look = r.(component.Renderable)
	}
	return v, true
}

// Enemies returns every enemy in the arena, sorted by id.
func (a *Arena) Enemies() []EnemyView {
	ids := a.world.Query(component.CTagEnemy)
	out := make([]EnemyView, 0, len(ids))
	for _, id := range ids {
		if v, ok := a.Enemy(id); ok {
			out = append(out, v)
		}
	}
	return out
}

// LiveCount returns the number of enemies that can still be shot.
func (a *Arena) LiveCount() int {
	return len(system.LiveEnemies(a.world))
}

// Projectiles returns every projectile in flight, sorted by id.
func (a *Arena) Projectiles() []ProjectileView {
	ids := a.world.Query(component.CProjectile, component.CPosition)
	out := make([]ProjectileView, 0, len(ids))
	for _, id := range ids {
		p := a.world.Get(id, component.CProjectile).(component.Projectile)
		v := ProjectileView{
			ID:       id,
			Pos:      a.world.Get(id, component.CPosition).(component.Position).Vec3,
			Previous: p.Previous,
		}
		if r := a.world.Get(id, component.CRenderable); r != nil {
			v.Look = r.(component.Renderable)
		}
		out = append(out, v)
	}
	return out
}
