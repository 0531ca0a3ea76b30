package component

import "fps-arena/internal/ecs"

const (
	CHighlight ecs.ComponentType = 6
	CDoomed    ecs.ComponentType = 7
)

// Highlight tints an enemy after it takes damage. Remaining counts down each
// tick; the component is dropped when it runs out.
type Highlight struct {
	Remaining float64
}

func (Highlight) Type() ecs.ComponentType { return CHighlight }

// Doomed marks an entity for removal. A doomed entity takes no more damage,
// has no hitbox and is skipped by behaviour updates; it is destroyed once
// RemoveIn reaches zero.
type Doomed struct {
	RemoveIn float64
}

func (Doomed) Type() ecs.ComponentType { return CDoomed }
