package quadra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingNode records Update and Draw calls.
type countingNode struct {
	Gizmo
	updates, draws, destroys int
}

func (n *countingNode) Update(dt float64) { n.updates++ }
func (n *countingNode) Draw(b Backend)    { n.draws++ }
func (n *countingNode) Destroy() {
	n.destroys++
	n.Gizmo.Destroy()
}

func TestGroupAddAndOrder(t *testing.T) {
	g := NewGroup()
	a, b, c := &countingNode{}, &countingNode{}, &countingNode{}
	g.Add(a)
	g.Add(b)
	g.AddToBack(c)

	assert.Equal(t, []Node{c, a, b}, g.Members())
	assert.Equal(t, 3, g.Len())
	assert.Same(t, g, a.Parent())

	g.BringToFront(c)
	assert.Equal(t, []Node{a, b, c}, g.Members())
	g.SendToBack(b)
	assert.Equal(t, []Node{b, a, c}, g.Members())
	assert.Equal(t, 1, g.IndexOf(a))
}

func TestGroupReparent(t *testing.T) {
	g1, g2 := NewGroup(), NewGroup()
	n := &countingNode{}
	g1.Add(n)
	g2.Add(n)
	assert.Zero(t, g1.Len())
	assert.Same(t, g2, n.Parent())
}

func TestGroupAddNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewGroup().Add(nil) })
}

func TestGroupCyclePanics(t *testing.T) {
	parent := NewGroup()
	child := NewGroup()
	parent.Add(child)
	assert.Panics(t, func() { child.Add(parent) })
	assert.Panics(t, func() { parent.Add(parent) })
}

func TestGroupRemove(t *testing.T) {
	g := NewGroup()
	n := &countingNode{}
	g.Add(n)
	assert.True(t, g.Remove(n))
	assert.False(t, g.Remove(n))
	assert.False(t, g.Remove(nil))
	assert.Nil(t, n.Parent())
	assert.Equal(t, -1, g.IndexOf(n))
}

func TestGroupUpdateDrawSkips(t *testing.T) {
	g := NewGroup()
	live, killed, inactive, hidden := &countingNode{}, &countingNode{}, &countingNode{}, &countingNode{}
	for _, n := range []*countingNode{live, killed, inactive, hidden} {
		g.Add(n)
	}
	killed.Kill()
	inactive.SetActive(false)
	hidden.SetVisible(false)

	g.Update(testDT)
	g.Draw(&recordingBackend{})

	assert.Equal(t, 1, live.updates)
	assert.Equal(t, 1, live.draws)
	assert.Zero(t, killed.updates+killed.draws)
	assert.Zero(t, inactive.updates)
	assert.Equal(t, 1, inactive.draws)
	assert.Equal(t, 1, hidden.updates)
	assert.Zero(t, hidden.draws)

	killed.Revive()
	g.Update(testDT)
	assert.Equal(t, 1, killed.updates)
}

func TestGroupClearKeepsMembersAlive(t *testing.T) {
	g := NewGroup()
	n := &countingNode{}
	g.Add(n)
	g.Clear()
	assert.Zero(t, g.Len())
	assert.Nil(t, n.Parent())
	assert.Zero(t, n.destroys)
	assert.False(t, n.IsDestroyed())
}

func TestGroupDestroyCascades(t *testing.T) {
	root := NewGroup()
	sub := NewGroup()
	n := &countingNode{}
	root.Add(sub)
	sub.Add(n)

	root.Destroy()
	assert.True(t, root.IsDestroyed())
	assert.True(t, sub.IsDestroyed())
	assert.Equal(t, 1, n.destroys)
	assert.Zero(t, root.Len())
}

func TestGizmoCameraInheritance(t *testing.T) {
	cam := NewCamera(Rect{Width: 1, Height: 1})
	root := NewGroup()
	sub := NewGroup()
	n := &countingNode{}
	root.Add(sub)
	sub.Add(n)

	assert.Nil(t, n.Camera())
	root.SetCamera(cam)
	assert.Same(t, cam, n.Camera())

	own := NewCamera(Rect{Width: 2, Height: 2})
	n.SetCamera(own)
	assert.Same(t, own, n.Camera())
}

func TestDebugModeAddDestroyedPanics(t *testing.T) {
	globalDebug = true
	t.Cleanup(func() { globalDebug = false })

	n := &countingNode{}
	n.Destroy()
	assert.Panics(t, func() { NewGroup().Add(n) })
}

func TestReleaseModeAddDestroyedAllowed(t *testing.T) {
	n := &countingNode{}
	n.Destroy()
	require.NotPanics(t, func() { NewGroup().Add(n) })
}

// hookNode runs onUpdate and onDraw from its own Update and Draw.
type hookNode struct {
	countingNode
	onUpdate func()
	onDraw   func()
}

func (n *hookNode) Update(dt float64) {
	n.countingNode.Update(dt)
	if n.onUpdate != nil {
		n.onUpdate()
	}
}

func (n *hookNode) Draw(b Backend) {
	n.countingNode.Draw(b)
	if n.onDraw != nil {
		n.onDraw()
	}
}

func TestGroupUpdateSelfDestroyKeepsNextSibling(t *testing.T) {
	g := NewGroup()
	fading := &hookNode{}
	fading.onUpdate = fading.Destroy
	next := &countingNode{}
	g.Add(fading)
	g.Add(next)

	g.Update(testDT)
	assert.Equal(t, 1, fading.updates)
	assert.Equal(t, 1, next.updates)
	assert.Equal(t, []Node{next}, g.Members())

	g.Update(testDT)
	assert.Equal(t, 1, fading.updates)
	assert.Equal(t, 2, next.updates)
}

func TestGroupDrawSelfDestroyKeepsNextSibling(t *testing.T) {
	g := NewGroup()
	fading := &hookNode{}
	fading.onDraw = fading.Destroy
	next := &countingNode{}
	g.Add(fading)
	g.Add(next)

	require.NotPanics(t, func() { g.Draw(&recordingBackend{}) })
	assert.Equal(t, 1, fading.draws)
	assert.Equal(t, 1, next.draws)
	assert.Equal(t, 1, g.Len())
}

func TestGroupUpdateSkipsMembersRemovedDuringPass(t *testing.T) {
	g := NewGroup()
	later := &countingNode{}
	first := &hookNode{}
	first.onUpdate = func() { g.Remove(later) }
	g.Add(first)
	g.Add(later)

	g.Update(testDT)
	assert.Zero(t, later.updates)
	assert.Nil(t, later.Parent())
}

func TestGroupUpdateDefersMembersAddedDuringPass(t *testing.T) {
	g := NewGroup()
	added := &countingNode{}
	spawner := &hookNode{}
	spawner.onUpdate = func() {
		if added.Parent() == nil {
			g.Add(added)
		}
	}
	g.Add(spawner)

	g.Update(testDT)
	assert.Zero(t, added.updates)
	g.Update(testDT)
	assert.Equal(t, 1, added.updates)
}

func TestGroupUpdateMemberMovedToOtherGroup(t *testing.T) {
	g, other := NewGroup(), NewGroup()
	moved := &countingNode{}
	mover := &hookNode{}
	mover.onUpdate = func() { other.Add(moved) }
	g.Add(mover)
	g.Add(moved)

	g.Update(testDT)
	assert.Zero(t, moved.updates)
	assert.Same(t, other, moved.Parent())
}
