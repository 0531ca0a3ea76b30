package render

import (
	"math"

	"fps-arena/internal/arena"
	"fps-arena/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 5

// DefaultScale is the world distance covered by one column.
const DefaultScale = 0.5

// Frame is everything the view needs to draw one tick.
type Frame struct {
	Player      geom.Vec3
	Yaw         float64 // radians, 0 looks toward -Z, positive turns toward +X
	Enemies     []arena.EnemyView
	Projectiles []arena.ProjectileView
	WorldHalf   float64 // half the floor's side length, for the walls
}

// Renderer draws the arena top-down onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	sprites *Sprites
	tracers []tracer
}

// NewRenderer creates a Renderer for the given screen. Enemies are drawn only
// while sprites has them attached.
func NewRenderer(screen tcell.Screen, sprites *Sprites) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(DefaultScale, w, max(h-hudRows, 1)),
		sprites: sprites,
	}
}

// Camera exposes the view transform, e.g. for mapping mouse clicks.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize refits the view after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(h-hudRows, 1)
}

// DrawFrame renders the floor, walls, entities and shot tracers centered on
// the player. It does not call Show; DrawHUD does.
func (r *Renderer) DrawFrame(f Frame) {
	r.screen.Clear()
	r.camera.Center(f.Player)
	r.drawFloor(f.WorldHalf)
	r.drawTracers()
	r.ageTracers()
	r.drawProjectiles(f.Projectiles)
	r.drawEnemies(f.Enemies)
	r.drawPlayer(f.Player, f.Yaw)
}

// drawFloor dots a 5-unit grid over the floor and outlines the arena walls.
func (r *Renderer) drawFloor(half float64) {
	floor := tcell.StyleDefault.Foreground(colorFloor)
	wall := tcell.StyleDefault.Foreground(colorWall)
	c := r.camera
	for sy := 0; sy < c.ViewHeight; sy++ {
		for sx := 0; sx < c.ViewWidth; sx++ {
			p := c.ScreenToWorld(sx, sy)
			switch {
			case half > 0 && (math.Abs(p.X) > half || math.Abs(p.Z) > half):
				if math.Abs(p.X) <= half+c.Scale && math.Abs(p.Z) <= half+2*c.Scale {
					r.setCell(sx, sy, glyphWall, wall)
				}
			case onGrid(p.X, c.Scale) && onGrid(p.Z, 2*c.Scale):
				r.setCell(sx, sy, glyphFloor, floor)
			}
		}
	}
}

// onGrid reports whether a cell of the given width contains a multiple of 5.
func onGrid(v, cell float64) bool {
	m := math.Mod(math.Abs(v), 5)
	return m < cell/2 || 5-m < cell/2
}

func (r *Renderer) drawEnemies(enemies []arena.EnemyView) {
	for _, e := range enemies {
		if r.sprites != nil && !r.sprites.Attached(e.ID) {
			continue
		}
		sx, sy, ok := r.camera.WorldToScreen(e.Pos)
		if !ok {
			continue
		}
		color := e.Look.Color
		if e.Highlighted {
			color = e.Look.HitColor
		}
		r.setCell(sx, sy, e.Look.Glyph, tcell.StyleDefault.Foreground(color))
	}
}

func (r *Renderer) drawProjectiles(shots []arena.ProjectileView) {
	for _, p := range shots {
		if sx, sy, ok := r.camera.WorldToScreen(p.Pos); ok {
			r.setCell(sx, sy, p.Look.Glyph, tcell.StyleDefault.Foreground(p.Look.Color))
		}
	}
}

func (r *Renderer) drawPlayer(p geom.Vec3, yaw float64) {
	sx, sy, ok := r.camera.WorldToScreen(p)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(colorPlayer)
	r.setCell(sx, sy, glyphPlayer, style)

	// The arrow sits one step ahead along the facing direction.
	ahead := p.Add(geom.Vec3{X: math.Sin(yaw), Z: -math.Cos(yaw)}.Scale(2 * r.camera.Scale))
	ax, ay, _ := r.camera.WorldToScreen(ahead)
	if ax == sx && ay == sy {
		ax++
	}
	r.setCell(ax, ay, FacingArrow(yaw), style)
}

// FacingArrow returns the arrow closest to the direction yaw points on screen.
func FacingArrow(yaw float64) rune {
	eighth := int(math.Round(yaw / (math.Pi / 4)))
	return facingArrows[((eighth%8)+8)%8]
}

// setCell draws ch if (x, y) lies inside the view area.
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.camera.ViewWidth || y >= r.camera.ViewHeight {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
	if runewidth.RuneWidth(ch) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
