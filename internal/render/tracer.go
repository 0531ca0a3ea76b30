package render

import (
	"fps-arena/internal/event"
	"fps-arena/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// tracerLifetime is how many frames a shot's trail stays on screen.
const tracerLifetime = 8

// tracer is the short-lived trail of one shot.
type tracer struct {
	from, to geom.Vec3
	hit      bool
	age      int
}

// Watch subscribes the renderer to shot events so it can draw tracers.
func (r *Renderer) Watch(bus *event.Bus) {
	event.Subscribe(bus, func(ev event.ShotHit) {
		r.tracers = append(r.tracers, tracer{from: ev.Origin, to: ev.Point, hit: true})
	})
	event.Subscribe(bus, func(ev event.ShotMissed) {
		r.tracers = append(r.tracers, tracer{from: ev.Origin, to: ev.End})
	})
}

// ageTracers advances every tracer one frame and drops finished ones.
func (r *Renderer) ageTracers() {
	kept := r.tracers[:0]
	for _, t := range r.tracers {
		t.age++
		if t.age < tracerLifetime {
			kept = append(kept, t)
		}
	}
	r.tracers = kept
}

func (r *Renderer) drawTracers() {
	for _, t := range r.tracers {
		x0, y0, _ := r.camera.WorldToScreen(t.from)
		x1, y1, _ := r.camera.WorldToScreen(t.to)
		color := colorMiss
		if t.hit {
			color = colorHit
		}
		style := tcell.StyleDefault.Foreground(color)
		r.drawLine(x0, y0, x1, y1, glyphTracer, style)
		if t.hit {
			r.setCell(x1, y1, glyphImpact, style)
		}
	}
}

// drawLine plots a Bresenham line, skipping the start cell where the
// shooter stands.
func (r *Renderer) drawLine(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		if x != x0 || y != y0 {
			r.setCell(x, y, ch, style)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
