package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the match summary shown under the view.
type Status struct {
	Enemies  int // live, shootable enemies
	Pending  int // queued respawns
	Shots    int
	Hits     int
	Kills    int
	Weapon   string
	Paused   bool
	Messages []string
}

// StatusLine formats the one-line summary.
func (s Status) StatusLine() string {
	acc := 0
	if s.Shots > 0 {
		acc = s.Hits * 100 / s.Shots
	}
	line := fmt.Sprintf("Enemies: %d (+%d)  Kills: %d  Hits: %d/%d (%d%%)  Weapon: %s",
		s.Enemies, s.Pending, s.Kills, s.Hits, s.Shots, acc, s.Weapon)
	if s.Paused {
		line += "  [PAUSED]"
	}
	return line
}

// DrawHUD renders the status bar and message log at the bottom of the screen,
// then shows the finished frame.
func (r *Renderer) DrawHUD(s Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, colorWall)
	r.drawText(0, hudY+1, s.StatusLine(), tcell.StyleDefault.Foreground(colorHUD))
	r.drawText(0, hudY+2, "WASD move  ←/→ turn  space fire  f rocket  p pause  r reset  q quit",
		tcell.StyleDefault.Foreground(colorWall))

	// Message log (last 2 messages).
	start := max(len(s.Messages)-2, 0)
	for i, msg := range s.Messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(colorMessage))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, cut to the screen width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	text = runewidth.Truncate(text, w-x, "…")
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
