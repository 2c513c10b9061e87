package quadra

import "github.com/hajimehoshi/ebiten/v2"

// Inject queues a synthetic key event. Queued events are consumed one per
// Poll, in order, and replace real keyboard input for that frame.
func (b *KeyBus) Inject(ev KeyEvent) {
	b.injectQueue = append(b.injectQueue, ev)
}

// InjectPress queues a press of key.
func (b *KeyBus) InjectPress(key ebiten.Key) {
	b.Inject(KeyEvent{Key: key, Pressed: true})
}

// InjectRelease queues a release of key.
func (b *KeyBus) InjectRelease(key ebiten.Key) {
	b.Inject(KeyEvent{Key: key, Pressed: false})
}

// InjectTap queues a press followed by a release. Consumes two frames.
func (b *KeyBus) InjectTap(key ebiten.Key) {
	b.InjectPress(key)
	b.InjectRelease(key)
}

// Pending returns the number of injected events not yet dispatched.
func (b *KeyBus) Pending() int {
	return len(b.injectQueue)
}

// processInjected pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (b *KeyBus) processInjected() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	ev := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	b.Dispatch(ev)
	return true
}
