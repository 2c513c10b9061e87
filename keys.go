package quadra

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyEvent is a single physical key transition.
type KeyEvent struct {
	Key       ebiten.Key
	Pressed   bool // true on press, false on release
	Modifiers KeyModifiers
}

// KeyListenerFunc receives key events. Returning true consumes the event:
// listeners subscribed earlier do not see it.
type KeyListenerFunc func(KeyEvent) bool

type keyListener struct {
	id      uint32
	fn      KeyListenerFunc
	removed bool
}

// KeyBus fans key events out to subscribed listeners. The most recently
// subscribed listener is called first.
//
// A Game owns one bus and polls it once per Update, so listeners always run
// on the update goroutine.
type KeyBus struct {
	listeners []*keyListener
	nextID    uint32
	source    KeySource

	injectQueue []KeyEvent
	dispatchBuf []*keyListener
	keyBuf      []ebiten.Key
}

// NewKeyBus creates an empty bus reading the ebiten keyboard.
func NewKeyBus() *KeyBus {
	return &KeyBus{source: ebitenKeys{}}
}

// KeySource supplies the physical key transitions Poll dispatches.
type KeySource interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	Modifiers() KeyModifiers
}

// SetSource replaces the keyboard the bus polls. A nil source leaves only
// injected events.
func (b *KeyBus) SetSource(src KeySource) {
	b.source = src
}

// Subscription identifies a listener registered with a KeyBus.
// The zero value is a valid, already-removed subscription.
type Subscription struct {
	id  uint32
	bus *KeyBus
}

// Subscribe registers fn and returns the handle needed to remove it.
func (b *KeyBus) Subscribe(fn KeyListenerFunc) Subscription {
	b.nextID++
	b.listeners = append(b.listeners, &keyListener{id: b.nextID, fn: fn})
	return Subscription{id: b.nextID, bus: b}
}

// Remove unregisters the listener. Removing twice, or removing the zero
// Subscription, does nothing. A listener removed while an event is being
// dispatched is not called for that event.
func (s Subscription) Remove() {
	if s.bus == nil {
		return
	}
	s.bus.remove(s.id)
}

// Active reports whether the listener is still registered.
func (s Subscription) Active() bool {
	if s.bus == nil {
		return false
	}
	for _, l := range s.bus.listeners {
		if l.id == s.id {
			return true
		}
	}
	return false
}

func (b *KeyBus) remove(id uint32) {
	for i, l := range b.listeners {
		if l.id == id {
			l.removed = true
			copy(b.listeners[i:], b.listeners[i+1:])
			b.listeners[len(b.listeners)-1] = nil
			b.listeners = b.listeners[:len(b.listeners)-1]
			return
		}
	}
}

// Len returns the number of registered listeners.
func (b *KeyBus) Len() int {
	return len(b.listeners)
}

// Dispatch delivers ev to listeners, newest first, until one consumes it.
// Reports whether the event was consumed.
func (b *KeyBus) Dispatch(ev KeyEvent) bool {
	// Snapshot so listeners may subscribe or unsubscribe while handling.
	// The buffer is taken for the duration so nested dispatches allocate.
	snap := append(b.dispatchBuf[:0], b.listeners...)
	b.dispatchBuf = nil
	defer func() {
		clear(snap)
		b.dispatchBuf = snap[:0]
	}()
	for i := len(snap) - 1; i >= 0; i-- {
		l := snap[i]
		if l.removed {
			continue
		}
		if l.fn(ev) {
			return true
		}
	}
	return false
}

// Poll dispatches this frame's key transitions. When injected events are
// queued, exactly one is dispatched and real keyboard input is skipped for
// the frame.
func (b *KeyBus) Poll() {
	if b.processInjected() || b.source == nil {
		return
	}
	mods := b.source.Modifiers()

	b.keyBuf = b.source.AppendJustPressedKeys(b.keyBuf[:0])
	for _, k := range b.keyBuf {
		b.Dispatch(KeyEvent{Key: k, Pressed: true, Modifiers: mods})
	}
	b.keyBuf = b.source.AppendJustReleasedKeys(b.keyBuf[:0])
	for _, k := range b.keyBuf {
		b.Dispatch(KeyEvent{Key: k, Pressed: false, Modifiers: mods})
	}
}

// ebitenKeys reads the keyboard through ebiten's input state.
type ebitenKeys struct{}

func (ebitenKeys) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenKeys) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

// Modifiers returns the current keyboard modifier state.
func (ebitenKeys) Modifiers() KeyModifiers {
	var m KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ModMeta
	}
	return m
}
