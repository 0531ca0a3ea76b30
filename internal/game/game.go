// Package game runs one arena match in a terminal: it reads input, ticks the
// arena on a fixed wall-clock interval and draws the top-down view.
package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"fps-arena/internal/arena"
	"fps-arena/internal/config"
	"fps-arena/internal/event"
	"fps-arena/internal/geom"
	"fps-arena/internal/render"
	"fps-arena/internal/system"

	"github.com/gdamore/tcell/v2"
)

// TickInterval is the wall-clock period between arena updates.
const TickInterval = 16 * time.Millisecond

const (
	eyeHeight = 1.7          // player camera height
	moveStep  = 1.0          // world units per movement key press
	turnStep  = math.Pi / 12 // radians per turn key press
	maxLog    = 20
)

// Weapon names shown in the HUD.
const (
	weaponRifle  = "rifle"
	weaponRocket = "rocket"
)

// Game is the top-level orchestrator for one player.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sprites  *render.Sprites
	arena    *arena.Arena
	cfg      config.Config
	logger   *slog.Logger

	player   geom.Vec3
	yaw      float64 // 0 faces -Z, positive turns toward +X
	paused   bool
	weapon   string
	messages []string

	shots, hits, kills int
}

// New creates a Game drawing on screen, which must already be initialised.
// The caller keeps ownership of the screen.
func New(screen tcell.Screen, cfg config.Config, rng *rand.Rand, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sprites := render.NewSprites()
	a, err := arena.New(cfg, rng, arena.WithVisuals(sprites), arena.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create arena: %w", err)
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, sprites),
		sprites:  sprites,
		arena:    a,
		cfg:      cfg,
		logger:   logger,
		weapon:   weaponRifle,
	}
	g.renderer.Watch(a.Events())
	g.subscribe(a.Events())
	a.SetAspect(g.renderer.Camera().Aspect())
	g.reset()
	return g, nil
}

// subscribe keeps the HUD counters and message log in step with the arena.
func (g *Game) subscribe(bus *event.Bus) {
	event.Subscribe(bus, func(event.ShotHit) {
		g.hits++
	})
	event.Subscribe(bus, func(ev event.Killed) {
		g.kills++
		g.addMessage(fmt.Sprintf("Enemy %d down.", ev.ID))
	})
	event.Subscribe(bus, func(ev event.RespawnQueued) {
		g.addMessage(fmt.Sprintf("Reinforcements in %.0fs.", ev.Delay))
	})
}

// reset starts a fresh match with the player back at the center.
func (g *Game) reset() {
	g.player = geom.Vec3{Y: eyeHeight}
	g.yaw = 0
	g.shots, g.hits, g.kills = 0, 0, 0
	g.messages = nil
	g.arena.Reset(g.player)
	g.addMessage("WASD to move, arrows to turn, space to shoot.")
}

// Run is the main loop. It blocks until the player quits or the screen is
// closed.
func (g *Game) Run() {
	// Start an async input reader goroutine.
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	last := time.Now()
	g.draw()

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return // screen closed / disconnected
			}
			if !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.step(now.Sub(last).Seconds())
			last = now
			g.draw()
		}
	}
}

// step advances the simulation by dt seconds unless paused.
func (g *Game) step(dt float64) {
	if g.paused {
		return
	}
	g.arena.Update(dt, g.player)
}

func (g *Game) draw() {
	g.renderer.DrawFrame(render.Frame{
		Player:      g.player,
		Yaw:         g.yaw,
		Enemies:     g.arena.Enemies(),
		Projectiles: g.arena.Projectiles(),
		WorldHalf:   g.cfg.WorldHalfExtent,
	})
	g.renderer.DrawHUD(g.status())
}

func (g *Game) status() render.Status {
	return render.Status{
		Enemies:  g.arena.LiveCount(),
		Pending:  g.arena.PendingRespawns(),
		Shots:    g.shots,
		Hits:     g.hits,
		Kills:    g.kills,
		Weapon:   g.weapon,
		Paused:   g.paused,
		Messages: g.messages,
	}
}

// handleEvent applies one input event. It returns false when the player
// asked to quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.arena.SetAspect(g.renderer.Camera().Aspect())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			g.aimAt(g.renderer.Camera().ScreenToWorld(x, y))
			g.fire()
		}
	case *tcell.EventKey:
		return g.processAction(keyToAction(ev))
	}
	return true
}

func (g *Game) processAction(action Action) bool {
	switch action {
	case ActionQuit:
		return false
	case ActionPause:
		g.paused = !g.paused
	case ActionReset:
		g.reset()
		g.logger.Info("match reset by player")
	}
	if g.paused {
		return true
	}

	switch action {
	case ActionTurnLeft:
		g.yaw -= turnStep
	case ActionTurnRight:
		g.yaw += turnStep
	case ActionFire:
		g.fire()
	case ActionFireProjectile:
		g.fireProjectile()
	default:
		fwd, right := actionToStep(action)
		if fwd != 0 || right != 0 {
			g.move(fwd, right)
		}
	}
	return true
}

// forward is the horizontal unit vector the player faces.
func (g *Game) forward() geom.Vec3 {
	return geom.Vec3{X: math.Sin(g.yaw), Z: -math.Cos(g.yaw)}
}

func (g *Game) move(fwd, right float64) {
	f := g.forward()
	r := geom.Vec3{X: -f.Z, Z: f.X}
	step := f.Scale(fwd * moveStep).Add(r.Scale(right * moveStep))
	g.player = system.ClampToWorld(g.cfg, g.player.Add(step))
}

// aimAt turns the player to face p on the ground plane.
func (g *Game) aimAt(p geom.Vec3) {
	d := p.Sub(g.player).Horizontal()
	if d.LenSq() == 0 {
		return
	}
	g.yaw = math.Atan2(d.X, -d.Z)
}

// muzzle is where shots start. Aim is horizontal at enemy center height; the
// top-down view has no pitch.
func (g *Game) muzzle() geom.Vec3 {
	return geom.Vec3{X: g.player.X, Y: g.cfg.GroundLevel, Z: g.player.Z}
}

func (g *Game) fire() {
	g.weapon = weaponRifle
	g.shots++
	res := g.arena.Fire(g.muzzle(), g.forward())
	if res.Hit && !res.Damage.Killed {
		g.addMessage(fmt.Sprintf("Hit enemy %d for %d (%d left).", res.Enemy, res.Damage.Dealt, res.Damage.Health))
	}
}

func (g *Game) fireProjectile() {
	g.weapon = weaponRocket
	g.shots++
	g.arena.FireProjectile(g.muzzle(), g.forward())
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxLog {
		g.messages = g.messages[len(g.messages)-maxLog:]
	}
}
