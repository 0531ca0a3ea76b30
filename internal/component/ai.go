package component

import (
	"fps-arena/internal/ecs"
	"fps-arena/internal/geom"
)

const CBrain ecs.ComponentType = 5

// Mode is the behaviour state of an enemy.
type Mode uint8

const (
	ModePatrolling Mode = iota // wander along PatrolDir
	ModeChasing                // run at the player
)

func (m Mode) String() string {
	switch m {
	case ModePatrolling:
		return "patrolling"
	case ModeChasing:
		return "chasing"
	}
	return "unknown"
}

// Brain holds the per-enemy state machine data. All timers are in seconds.
type Brain struct {
	Mode           Mode
	PatrolDir      geom.Vec3 // horizontal unit vector
	PatrolTimer    float64   // time spent on the current PatrolDir
	PatrolInterval float64   // when PatrolTimer passes this, pick a new direction
	StuckTimer     float64   // continuous time spent chasing without progress
}

func (Brain) Type() ecs.ComponentType { return CBrain }
