package quadra

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tweener animates up to 4 float64 fields of a Visual simultaneously. It is
// a Gizmo: add it to a Group (usually the scene) and the group's Update
// drives it. Create one via NewScaleTweener, NewAlphaTweener, or
// NewPosTweener.
//
// When every tween finishes the Tweener calls OnComplete once and kills
// itself. If the target is destroyed first, the Tweener stops without
// writing and without calling OnComplete.
type Tweener struct {
	Gizmo

	// OnComplete, when set, runs once after the final values are written.
	OnComplete func(*Tweener)

	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Visual
	done   bool
}

// Done reports whether the tweener has finished or stopped.
func (t *Tweener) Done() bool {
	return t.done
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (t *Tweener) Update(dt float64) {
	if t.done {
		return
	}
	if t.target != nil && t.target.IsDestroyed() {
		t.done = true
		t.Kill()
		return
	}

	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(float32(dt))
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if !allDone {
		return
	}
	t.done = true
	t.Kill()
	if t.OnComplete != nil {
		t.OnComplete(t)
	}
}

// NewScaleTweener scales v from its current scale to the given one over
// interval seconds.
func NewScaleTweener(v *Visual, scale Vec2, interval float32, fn ease.TweenFunc) *Tweener {
	t := &Tweener{count: 2, target: v}
	t.tweens[0] = gween.New(float32(v.Scale.X), float32(scale.X), interval, fn)
	t.tweens[1] = gween.New(float32(v.Scale.Y), float32(scale.Y), interval, fn)
	t.fields[0] = &v.Scale.X
	t.fields[1] = &v.Scale.Y
	return t
}

// NewAlphaTweener fades v's alpha multiplier to alpha over interval seconds.
func NewAlphaTweener(v *Visual, alpha float64, interval float32, fn ease.TweenFunc) *Tweener {
	t := &Tweener{count: 1, target: v}
	t.tweens[0] = gween.New(float32(v.AM), float32(alpha), interval, fn)
	t.fields[0] = &v.AM
	return t
}

// NewPosTweener moves v to (x, y) over interval seconds.
func NewPosTweener(v *Visual, x, y float64, interval float32, fn ease.TweenFunc) *Tweener {
	t := &Tweener{count: 2, target: v}
	t.tweens[0] = gween.New(float32(v.X), float32(x), interval, fn)
	t.tweens[1] = gween.New(float32(v.Y), float32(y), interval, fn)
	t.fields[0] = &v.X
	t.fields[1] = &v.Y
	return t
}
