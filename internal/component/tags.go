package component

import "fps-arena/internal/ecs"

const CTagEnemy ecs.ComponentType = 8

// TagEnemy marks a hostile entity managed by the arena.
type TagEnemy struct{}

func (TagEnemy) Type() ecs.ComponentType { return CTagEnemy }
