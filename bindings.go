package quadra

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// GameAction is a logical input action, independent of the physical key.
type GameAction uint8

const (
	ActionNone    GameAction = iota // key is not bound
	ActionBack                      // leave the current screen / quit
	ActionMenu                      // open the in-game menu
	ActionConfirm                   // accept the focused choice
)

var actionNames = map[GameAction]string{
	ActionNone:    "none",
	ActionBack:    "back",
	ActionMenu:    "menu",
	ActionConfirm: "confirm",
}

// String returns the lower-case action name used in configuration files.
func (a GameAction) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("GameAction(%d)", uint8(a))
}

// ParseGameAction resolves a configuration name (case-insensitive) to an action.
func ParseGameAction(name string) (GameAction, error) {
	for a, s := range actionNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("quadra: unknown action %q", name)
}

// ParseKey resolves an ebiten key name such as "Escape" or "ArrowLeft"
// (case-insensitive) to a key.
func ParseKey(name string) (ebiten.Key, error) {
	if name == "" {
		return 0, fmt.Errorf("quadra: empty key name")
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("quadra: unknown key %q", name)
}

// ActionResolver maps a physical key event to a logical action.
type ActionResolver interface {
	ActionFor(ev KeyEvent) GameAction
}

// KeyBindings maps physical keys to actions. A key maps to at most one
// action; an action may have any number of keys.
type KeyBindings map[ebiten.Key]GameAction

// DefaultKeyBindings returns Escape and Backspace for back, Tab for menu,
// and Enter and Space for confirm.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ebiten.KeyEscape:    ActionBack,
		ebiten.KeyBackspace: ActionBack,
		ebiten.KeyTab:       ActionMenu,
		ebiten.KeyEnter:     ActionConfirm,
		ebiten.KeySpace:     ActionConfirm,
	}
}

// ActionFor returns the action bound to ev.Key, or ActionNone.
func (kb KeyBindings) ActionFor(ev KeyEvent) GameAction {
	return kb[ev.Key]
}

// Bind maps key to action, replacing any previous binding for key.
func (kb KeyBindings) Bind(key ebiten.Key, action GameAction) {
	kb[key] = action
}

// Unbind removes the binding for key.
func (kb KeyBindings) Unbind(key ebiten.Key) {
	delete(kb, key)
}

// KeysFor returns the keys bound to action in ascending key order.
func (kb KeyBindings) KeysFor(action GameAction) []ebiten.Key {
	var keys []ebiten.Key
	for k, a := range kb {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ParseKeyBindings builds bindings from an action-name -> key-names table,
// the shape used by the "bindings" section of a config file:
//
//	bindings:
//	  back: [Escape, Backspace]
//	  menu: [Tab]
//
// Unknown actions are an error, as is "none", which cannot be bound.
// Unknown key names are skipped with a warning so a config written for a
// newer key set still loads.
func ParseKeyBindings(table map[string][]string) (KeyBindings, error) {
	kb := make(KeyBindings)
	for actionName, keyNames := range table {
		action, err := ParseGameAction(actionName)
		if err != nil {
			return nil, err
		}
		if action == ActionNone {
			return nil, fmt.Errorf("quadra: keys cannot be bound to action %q", actionName)
		}
		for _, name := range keyNames {
			key, err := ParseKey(name)
			if err != nil {
				logger.WithFields(log.Fields{"action": actionName, "key": name}).
					Warn("quadra: skipping unknown key in bindings")
				continue
			}
			kb[key] = action
		}
	}
	return kb, nil
}
