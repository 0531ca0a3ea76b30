package component

import (
	"fps-arena/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

type Renderable struct {
	Glyph    rune
	Color    tcell.Color // normal tint
	HitColor tcell.Color // tint while a Highlight is active
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
