package quadra

// Scene is the root group of one screen. While a Game runs it, the scene
// holds exactly one key subscription that turns the back action into a
// call to OnBackPressed.
//
// By default back asks the game to finish. Set Back to pop a menu, close a
// dialog, or ignore the key instead.
type Scene struct {
	Group

	// Back overrides the default back behavior when non-nil.
	Back BackHandler

	game     *Game
	keys     *KeyListener
	updateFn func(dt float64) error
	pauseFn  func()
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Game returns the game running this scene, or nil before Create.
func (s *Scene) Game() *Game {
	return s.game
}

// SetUpdateFunc sets a callback invoked every frame after members update.
// A non-nil error stops the game; the scene is still torn down.
func (s *Scene) SetUpdateFunc(fn func(dt float64) error) {
	s.updateFn = fn
}

// SetPauseFunc sets a callback invoked by OnPause.
func (s *Scene) SetPauseFunc(fn func()) {
	s.pauseFn = fn
}

// Create attaches the scene to g, adopts g's camera unless the scene set
// its own, and subscribes to g's key bus. Calling Create again first drops
// the previous subscription.
func (s *Scene) Create(g *Game) {
	if s.keys != nil {
		s.keys.Deactivate()
	}
	s.game = g
	if g == nil {
		return
	}
	if s.camera == nil {
		s.camera = g.Camera
	}
	s.keys = NewKeyListener(g.Keys, g.Bindings, BackHandlerFunc(s.OnBackPressed))
	s.keys.Activate()
}

// update advances members and the update callback.
func (s *Scene) update(dt float64) error {
	s.Group.Update(dt)
	if s.updateFn != nil {
		return s.updateFn(dt)
	}
	return nil
}

// OnPause is called when the game loses focus or is suspended.
func (s *Scene) OnPause() {
	if s.pauseFn != nil {
		s.pauseFn()
	}
}

// OnBackPressed runs the Back override, or finishes the game.
func (s *Scene) OnBackPressed() {
	if s.Back != nil {
		s.Back.OnBackPressed()
		return
	}
	if s.game != nil {
		s.game.Finish()
	}
}

// Listening reports whether the scene's key subscription is live.
func (s *Scene) Listening() bool {
	return s.keys != nil && s.keys.Active()
}

// Destroy unsubscribes from the key bus and destroys every member. The
// subscription is dropped even if a member's Destroy panics.
func (s *Scene) Destroy() {
	if s.keys != nil {
		defer s.keys.Deactivate()
	}
	s.Group.Destroy()
}
