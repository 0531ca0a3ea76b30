package system

import (
	"fps-arena/internal/component"
	"fps-arena/internal/config"
	"fps-arena/internal/ecs"
)

// DamageResult holds the outcome of one damage application.
type DamageResult struct {
	Found  bool // false: unknown, destroyed or doomed target; nothing changed
	Dealt  int  // health actually removed
	Health int  // health after the hit
	Killed bool // this hit took health to zero and doomed the enemy
}

// Damage subtracts amount from an enemy's health, floored at zero, and tints
// it. Reaching zero marks the enemy for removal. Negative amounts deal
// nothing, so health never goes up.
func Damage(w *ecs.World, cfg config.Config, id ecs.EntityID, amount int) DamageResult {
	if !w.Alive(id) || !w.Has(id, component.CTagEnemy) || w.Has(id, component.CDoomed) {
		return DamageResult{}
	}
	hpComp := w.Get(id, component.CHealth)
	if hpComp == nil {
		return DamageResult{}
	}
	hp := hpComp.(component.Health)

	amount = max(amount, 0)
	before := hp.Current
	hp.Current = max(0, hp.Current-amount)
	w.Add(id, hp)
	w.Add(id, component.Highlight{Remaining: cfg.HighlightDuration})

	result := DamageResult{Found: true, Dealt: before - hp.Current, Health: hp.Current}
	if hp.Current == 0 {
		result.Killed = true
		w.Add(id, component.Doomed{RemoveIn: cfg.RemovalDelay})
	}
	return result
}
