// Package quadra is a small retained-mode 2D game framework for [Ebitengine]
// built around textured quads.
//
// Quadra provides a scene graph of flat node structs, cameras, a key bus
// with logical action bindings, and an [Image] node that caches its quad
// geometry and uploads it only when it changes.
//
// # Quick start
//
// [Run] creates a window and game loop from a [Game]:
//
//	cfg, err := quadra.LoadConfig(os.DirFS("."), "quadra.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	game, err := quadra.NewGame(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene := quadra.NewScene()
//	// ... add nodes ...
//	game.SwitchScene(scene)
//	if err := quadra.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// Game implements [ebiten.Game], so it can also be embedded in a loop you
// drive yourself.
//
// # Scene graph
//
// Every node embeds [Gizmo]. Drawable nodes embed [Visual], which adds
// position, scale, rotation, origin, and color channels. A [Group] holds
// members and updates and draws them in order. A [Scene] is the root group
// of one screen.
//
//	tex := cache.Add("hero", heroImage)
//	hero, err := quadra.NewImageRegion(tex, 0, 0, 32, 32)
//	if err != nil {
//		return err
//	}
//	hero.SetPosition(100, 50)
//	hero.SetFlipHorizontal(true)
//	scene.Add(hero)
//
// # Images
//
// An [Image] shows a frame (a rectangle in texture coordinates) of a
// [Texture]. Changing the texture, frame, or flip flags marks its vertex
// cache dirty; the next Draw rebuilds it and allocates or updates the
// image's [VertexBuffer]. Destroy releases the buffer.
//
// # Input
//
// A [KeyBus] dispatches key events to subscribers, newest first. Each
// [Scene] run by a Game holds one [KeyListener] that maps presses through
// the game's [KeyBindings] and calls [Scene.OnBackPressed] on the back
// action. The listener is removed when the scene is destroyed.
//
// # Testing
//
// [KeyBus.Inject] queues synthetic key events, and [LoadTestScript] builds
// a [TestRunner] that sequences injections and screenshots across frames.
//
// [Ebitengine]: https://ebitengine.org
package quadra
