package quadra

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// Game drives a Scene from ebiten's loop. It owns the key bus, the key
// bindings, the main camera, and the backend every scene draws through.
//
// Game implements ebiten.Game. Use Run for a window and loop, or call
// Update, Draw, and Layout from your own ebiten.Game.
type Game struct {
	Keys     *KeyBus
	Bindings ActionResolver
	Camera   *Camera
	Backend  *EbitenBackend

	// ScreenshotDir is the directory queued screenshots are written to.
	ScreenshotDir string

	cfg       Config
	debug     bool
	scene     *Scene
	requested *Scene
	finished  bool
	focused   bool
	frame     uint64

	testRunner      *TestRunner
	screenshotQueue []string

	// raised is the logger whose level debug mode lowered, and savedLevel
	// the level to restore on it.
	raised     *log.Logger
	savedLevel log.Level
}

// NewGame creates a game from cfg. The main camera covers the configured
// window size.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return nil, err
	}
	g := &Game{
		Keys:          NewKeyBus(),
		Bindings:      bindings,
		Camera:        NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		Backend:       NewEbitenBackend(),
		ScreenshotDir: cfg.ScreenshotDir,
		cfg:           cfg,
		focused:       true,
	}
	g.SetDebugMode(cfg.Debug)
	return g, nil
}

// Config returns the configuration the game was created with.
func (g *Game) Config() Config {
	return g.cfg
}

// SetDebugMode enables or disables debug mode. When enabled, destroyed-node
// access panics, oversized groups are reported, and per-frame backend stats
// are logged at debug level. Disabling restores the log level that was in
// effect when debug mode was enabled.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	globalDebug = enabled
	l, ok := logger.(*log.Logger)
	if g.raised != nil && (!enabled || g.raised != l) {
		g.raised.SetLevel(g.savedLevel)
		g.raised = nil
	}
	if !enabled || !ok || g.raised == l || l.GetLevel() >= log.DebugLevel {
		return
	}
	g.raised = l
	g.savedLevel = l.GetLevel()
	l.SetLevel(log.DebugLevel)
}

// SwitchScene replaces the current scene at the start of the next Update.
// The old scene is destroyed before the new one is created.
func (g *Game) SwitchScene(s *Scene) {
	g.requested = s
}

// Scene returns the running scene, or nil.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Finish asks the game to stop. The current scene is torn down and Update
// returns ebiten.Termination.
func (g *Game) Finish() {
	g.finished = true
}

// Finished reports whether Finish has been called.
func (g *Game) Finished() bool {
	return g.finished
}

// Close destroys the running scene. Safe to call more than once.
func (g *Game) Close() {
	s := g.scene
	g.scene = nil
	if s != nil {
		s.Destroy()
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.step(1.0/float64(ebiten.TPS()), ebiten.IsFocused())
}

// step runs one frame: pending scene switch, scripted input, key events,
// camera, and scene update. Any error or a Finish tears the scene down.
func (g *Game) step(dt float64, focused bool) (err error) {
	defer func() {
		if err != nil {
			g.Close()
		}
	}()

	if g.finished {
		return ebiten.Termination
	}
	if g.requested != nil {
		g.switchScene(g.requested)
		g.requested = nil
	}
	if g.focused && !focused && g.scene != nil {
		g.scene.OnPause()
	}
	g.focused = focused

	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.Keys.Poll()

	g.Camera.Update(float32(dt))
	if g.scene != nil {
		if err := g.scene.update(dt); err != nil {
			return err
		}
	}
	if g.finished {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) switchScene(next *Scene) {
	if next == g.scene {
		return
	}
	g.Close()
	g.scene = next
	next.Create(g)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame++
	g.Backend.ResetStats()
	g.Backend.SetTarget(screen)
	if g.scene != nil && g.scene.Exists() && g.scene.Visible() {
		g.scene.Draw(g.Backend)
	}
	g.flushScreenshots(screen)
	if g.debug {
		debugLogFrame(g.frame, g.Backend.Stats())
	}
}

// Layout implements ebiten.Game with a fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window configured from g and runs the loop until the game
// finishes or fails. The running scene is always destroyed before Run
// returns.
func Run(g *Game) error {
	defer g.Close()
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	return ebiten.RunGame(g)
}
