package quadra

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyBindings(t *testing.T) {
	kb := DefaultKeyBindings()
	assert.Equal(t, ActionBack, kb.ActionFor(press(ebiten.KeyEscape)))
	assert.Equal(t, ActionBack, kb.ActionFor(press(ebiten.KeyBackspace)))
	assert.Equal(t, ActionMenu, kb.ActionFor(press(ebiten.KeyTab)))
	assert.Equal(t, ActionConfirm, kb.ActionFor(press(ebiten.KeyEnter)))
	assert.Equal(t, ActionNone, kb.ActionFor(press(ebiten.KeyZ)))
}

func TestKeyBindingsBindUnbind(t *testing.T) {
	kb := KeyBindings{}
	kb.Bind(ebiten.KeyQ, ActionBack)
	kb.Bind(ebiten.KeyEscape, ActionBack)
	assert.Equal(t, sortedKeys(ebiten.KeyEscape, ebiten.KeyQ), kb.KeysFor(ActionBack))

	kb.Bind(ebiten.KeyQ, ActionMenu)
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, kb.KeysFor(ActionBack))

	kb.Unbind(ebiten.KeyEscape)
	assert.Empty(t, kb.KeysFor(ActionBack))
}

func sortedKeys(a, b ebiten.Key) []ebiten.Key {
	if a > b {
		a, b = b, a
	}
	return []ebiten.Key{a, b}
}

func TestParseGameAction(t *testing.T) {
	a, err := ParseGameAction("Back")
	require.NoError(t, err)
	assert.Equal(t, ActionBack, a)
	assert.Equal(t, "back", a.String())

	_, err = ParseGameAction("jump")
	assert.Error(t, err)
	assert.Equal(t, "GameAction(99)", GameAction(99).String())
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("escape")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyEscape, k)

	k, err = ParseKey("ArrowLeft")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyArrowLeft, k)

	_, err = ParseKey("NotAKey")
	assert.Error(t, err)
}

func TestParseKeyBindings(t *testing.T) {
	kb, err := ParseKeyBindings(map[string][]string{
		"back": {"Escape", "Q", "Bogus"},
		"menu": {"Tab"},
	})
	require.NoError(t, err)
	assert.Len(t, kb, 3, "unknown key names are skipped")
	assert.Equal(t, ActionBack, kb[ebiten.KeyQ])
	assert.Equal(t, ActionMenu, kb[ebiten.KeyTab])

	_, err = ParseKeyBindings(map[string][]string{"fly": {"F"}})
	assert.Error(t, err)
}

func TestParseKeyBindingsRejectsNone(t *testing.T) {
	for _, name := range []string{"none", "NONE"} {
		kb, err := ParseKeyBindings(map[string][]string{
			"back": {"Escape"},
			name:   {"Q"},
		})
		assert.Error(t, err, name)
		assert.Nil(t, kb)
	}
}
