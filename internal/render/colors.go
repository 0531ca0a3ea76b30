package render

import "github.com/gdamore/tcell/v2"

// Palette of everything that is not an entity. Enemies and projectiles carry
// their own colors in component.Renderable.
var (
	colorFloor   = tcell.ColorDarkSlateGray
	colorWall    = tcell.ColorGray
	colorPlayer  = tcell.ColorAqua
	colorHit     = tcell.ColorOrangeRed
	colorMiss    = tcell.ColorLightGray
	colorHUD     = tcell.ColorWhite
	colorMessage = tcell.ColorLightYellow
)

// Glyphs used by the top-down view.
const (
	glyphFloor  = '·'
	glyphWall   = '#'
	glyphPlayer = '@'
	glyphTracer = '∙'
	glyphImpact = '*'
)

// facingArrows are indexed by yaw in eighths of a turn, clockwise from up.
var facingArrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
