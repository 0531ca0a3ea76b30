package render

import (
	"math"

	"fps-arena/internal/geom"
)

// Camera translates between the arena's ground plane and screen cells.
// It looks straight down: world X runs left to right and world Z runs top to
// bottom. A terminal cell is about twice as tall as it is wide, so one row
// covers twice the world distance of one column.
type Camera struct {
	CenterX    float64
	CenterZ    float64
	Scale      float64 // world units per column
	ViewWidth  int     // in terminal columns
	ViewHeight int     // in terminal rows
}

// NewCamera creates a camera centered on the origin.
func NewCamera(scale float64, viewW, viewH int) *Camera {
	if scale <= 0 {
		scale = 1
	}
	return &Camera{Scale: scale, ViewWidth: viewW, ViewHeight: viewH}
}

// Center moves the camera so that p is in the middle of the view.
func (c *Camera) Center(p geom.Vec3) {
	c.CenterX, c.CenterZ = p.X, p.Z
}

// WorldToScreen converts a world point to a screen cell.
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p geom.Vec3) (sx, sy int, visible bool) {
	sx = int(math.Floor((p.X-c.CenterX)/c.Scale)) + c.ViewWidth/2
	sy = int(math.Floor((p.Z-c.CenterZ)/(2*c.Scale))) + c.ViewHeight/2
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts the center of screen cell (sx, sy) to a point on
// the ground plane.
func (c *Camera) ScreenToWorld(sx, sy int) geom.Vec3 {
	return geom.Vec3{
		X: c.CenterX + (float64(sx-c.ViewWidth/2)+0.5)*c.Scale,
		Z: c.CenterZ + (float64(sy-c.ViewHeight/2)+0.5)*2*c.Scale,
	}
}

// Aspect is the width-to-height ratio of the view in world units.
func (c *Camera) Aspect() float64 {
	if c.ViewHeight <= 0 {
		return 0
	}
	return float64(c.ViewWidth) / float64(2*c.ViewHeight)
}
