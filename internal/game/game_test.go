package game

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"testing"

	"fps-arena/internal/config"
	"fps-arena/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// newTestGame builds a Game on an 80x24 simulation screen. The arena starts
// empty unless enemies > 0.
func newTestGame(t *testing.T, enemies int) (*Game, tcell.SimulationScreen) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)

	cfg := config.Default()
	cfg.InitialEnemies = enemies
	g, err := New(ss, cfg, rand.New(rand.NewSource(42)), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, ss
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{key('w'), ActionForward},
		{key('S'), ActionBack},
		{key('a'), ActionStrafeLeft},
		{key('d'), ActionStrafeRight},
		{key(' '), ActionFire},
		{key('f'), ActionFireProjectile},
		{key('p'), ActionPause},
		{key('r'), ActionReset},
		{key('q'), ActionQuit},
		{key('x'), ActionNone},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionTurnLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionTurnRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionForward},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
	}
	for _, tc := range cases {
		if got := keyToAction(tc.ev); got != tc.want {
			t.Errorf("keyToAction(%v) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestNewPopulatesArena(t *testing.T) {
	g, _ := newTestGame(t, 5)
	if n := g.arena.LiveCount(); n != 5 {
		t.Fatalf("live enemies = %d, want 5", n)
	}
	if g.sprites.Len() != 5 {
		t.Fatalf("sprites = %d, want 5", g.sprites.Len())
	}
}

func TestMovementFollowsFacing(t *testing.T) {
	g, _ := newTestGame(t, 0)

	g.handleEvent(key('w'))
	if !approx(g.player.Z, -1) || !approx(g.player.X, 0) {
		t.Fatalf("forward at yaw 0 moved to %v, want Z=-1", g.player)
	}

	for range 6 { // a quarter turn
		g.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	}
	g.handleEvent(key('w'))
	if !approx(g.player.X, 1) || !approx(g.player.Z, -1) {
		t.Fatalf("forward after turning right moved to %v, want X=1 Z=-1", g.player)
	}

	g.handleEvent(key('a'))
	if !approx(g.player.Z, -2) {
		t.Fatalf("strafe left while facing +X moved to %v, want Z=-2", g.player)
	}
	if g.player.Y != eyeHeight {
		t.Errorf("player height changed to %f", g.player.Y)
	}
}

func TestPlayerStaysInsideArena(t *testing.T) {
	g, _ := newTestGame(t, 0)
	for range 200 {
		g.handleEvent(key('w'))
	}
	if g.player.Z != -g.cfg.WorldHalfExtent {
		t.Fatalf("player Z = %f, want the wall at %f", g.player.Z, -g.cfg.WorldHalfExtent)
	}
}

func TestFireHitsEnemyAhead(t *testing.T) {
	g, _ := newTestGame(t, 0)
	id := g.arena.Spawn(geom.Vec3{Z: -10})

	g.handleEvent(key(' '))

	v, _ := g.arena.Enemy(id)
	if v.Health.Current != 125 {
		t.Fatalf("enemy health = %d, want 125", v.Health.Current)
	}
	if g.shots != 1 || g.hits != 1 {
		t.Fatalf("shots/hits = %d/%d, want 1/1", g.shots, g.hits)
	}
}

func TestClickAimsAndFires(t *testing.T) {
	g, _ := newTestGame(t, 0)
	id := g.arena.Spawn(geom.Vec3{X: 10})
	g.draw()
	sx, sy, ok := g.renderer.Camera().WorldToScreen(geom.Vec3{X: 10})
	if !ok {
		t.Fatal("enemy off screen")
	}

	g.handleEvent(tcell.NewEventMouse(sx, sy, tcell.Button1, tcell.ModNone))

	if v, _ := g.arena.Enemy(id); v.Health.Current != 125 {
		t.Fatalf("clicked enemy health = %d, want 125", v.Health.Current)
	}
	if math.Abs(g.yaw-math.Pi/2) > 0.1 {
		t.Errorf("yaw = %f, want about pi/2", g.yaw)
	}
}

func TestKillsAreCountedAndEnemyRemoved(t *testing.T) {
	g, _ := newTestGame(t, 0)
	g.arena.Spawn(geom.Vec3{Z: -10})

	for range 6 {
		g.handleEvent(key(' '))
	}
	for range 5 {
		g.step(0.05)
	}

	if g.kills != 1 {
		t.Fatalf("kills = %d, want 1", g.kills)
	}
	if g.sprites.Len() != 0 {
		t.Fatalf("dead enemy still has a sprite")
	}
	if g.arena.PendingRespawns() != 1 {
		t.Fatalf("pending respawns = %d, want 1", g.arena.PendingRespawns())
	}
}

func TestProjectileFlies(t *testing.T) {
	g, _ := newTestGame(t, 0)
	id := g.arena.Spawn(geom.Vec3{Z: -10})

	g.handleEvent(key('f'))
	if len(g.arena.Projectiles()) != 1 || g.weapon != weaponRocket {
		t.Fatal("projectile not launched")
	}
	for range 20 {
		g.step(0.016)
	}

	if v, _ := g.arena.Enemy(id); v.Health.Current != 125 {
		t.Fatalf("enemy health = %d, want 125", v.Health.Current)
	}
}

func TestPauseFreezesSimulationAndInput(t *testing.T) {
	g, _ := newTestGame(t, 0)
	id := g.arena.Spawn(geom.Vec3{X: 10})
	before, _ := g.arena.Enemy(id)

	g.handleEvent(key('p'))
	g.step(0.05)
	g.handleEvent(key('w'))
	g.handleEvent(key(' '))

	after, _ := g.arena.Enemy(id)
	if after.Pos != before.Pos {
		t.Error("enemy moved while paused")
	}
	if g.player != (geom.Vec3{Y: eyeHeight}) || g.shots != 0 {
		t.Error("input acted while paused")
	}

	g.handleEvent(key('p'))
	g.step(0.05)
	if after, _ := g.arena.Enemy(id); after.Pos == before.Pos {
		t.Error("enemy did not move after unpausing")
	}
}

func TestResetRestartsMatch(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.handleEvent(key('w'))
	g.handleEvent(key(' '))

	if !g.handleEvent(key('r')) {
		t.Fatal("reset should not quit")
	}

	if g.shots != 0 || g.player != (geom.Vec3{Y: eyeHeight}) {
		t.Fatalf("reset left shots=%d player=%v", g.shots, g.player)
	}
	if g.arena.LiveCount() != 3 {
		t.Fatalf("live enemies after reset = %d, want 3", g.arena.LiveCount())
	}
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t, 0)
	if g.handleEvent(key('q')) {
		t.Fatal("q should quit")
	}
	if g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc should quit")
	}
}

func TestResizeUpdatesBoundary(t *testing.T) {
	g, ss := newTestGame(t, 0)
	ss.SetSize(120, 40)

	g.handleEvent(tcell.NewEventResize(120, 40))

	want := math.Min(20*120.0/(2*35), 50)
	if !approx(g.arena.Boundary(), want) {
		t.Fatalf("boundary = %f, want %f", g.arena.Boundary(), want)
	}
}

func TestDrawShowsHUD(t *testing.T) {
	g, ss := newTestGame(t, 2)
	g.draw()

	var b strings.Builder
	for x := 0; x < 80; x++ {
		ch, _, _, _ := ss.GetContent(x, 20)
		b.WriteRune(ch)
	}
	if !strings.Contains(b.String(), "Enemies: 2 (+0)") {
		t.Fatalf("status row = %q", b.String())
	}
}
