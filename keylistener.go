package quadra

// BackHandler reacts to the logical back action.
type BackHandler interface {
	OnBackPressed()
}

// BackHandlerFunc adapts a plain function to BackHandler.
type BackHandlerFunc func()

// OnBackPressed calls f.
func (f BackHandlerFunc) OnBackPressed() { f() }

// KeyListener is a key-bus subscription scoped to an owner's lifetime.
// While active it watches for presses that resolve to ActionBack and calls
// its BackHandler. It never consumes events.
//
// Activate and Deactivate are both idempotent: there is at most one live
// subscription per listener, and deactivating an inactive listener is a
// no-op.
type KeyListener struct {
	bus      *KeyBus
	resolver ActionResolver
	handler  BackHandler

	sub    Subscription
	active bool
}

// NewKeyListener creates an inactive listener.
func NewKeyListener(bus *KeyBus, resolver ActionResolver, handler BackHandler) *KeyListener {
	return &KeyListener{bus: bus, resolver: resolver, handler: handler}
}

// Activate subscribes to the bus. Does nothing if already active or if the
// listener has no bus.
func (l *KeyListener) Activate() {
	if l.active || l.bus == nil {
		return
	}
	l.sub = l.bus.Subscribe(l.onKey)
	l.active = true
}

// Deactivate removes the subscription. Safe to call any number of times.
func (l *KeyListener) Deactivate() {
	if !l.active {
		return
	}
	l.active = false
	sub := l.sub
	l.sub = Subscription{}
	sub.Remove()
}

// Active reports whether the listener is subscribed.
func (l *KeyListener) Active() bool {
	return l.active
}

func (l *KeyListener) onKey(ev KeyEvent) bool {
	if !l.active || !ev.Pressed || l.resolver == nil || l.handler == nil {
		return false
	}
	if l.resolver.ActionFor(ev) == ActionBack {
		l.handler.OnBackPressed()
	}
	return false
}
