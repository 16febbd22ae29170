package swipedeck

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; when every tween finishes the fields are snapped to their exact
// targets, Done is set and OnComplete runs once.
//
// There is no global animation manager: owners call Update themselves.
type TweenGroup struct {
	tweens  [4]*gween.Tween
	fields  [4]*float64
	targets [4]float64
	count   int
	target  *Node
	Done    bool

	// OnComplete runs once, after the final values are written.
	OnComplete func()
}

// NewTweenGroup animates each field from its current value to the matching
// entry of to. Panics if more than 4 fields are given or the lengths differ.
func NewTweenGroup(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if len(fields) > 4 || len(fields) != len(to) {
		panic("swipedeck: tween group takes up to 4 fields with one target each")
	}
	g := &TweenGroup{count: len(fields)}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
		g.fields[i] = f
		g.targets[i] = to[i]
	}
	return g
}

// Update advances all tweens by dt seconds. If the target node has been
// disposed the group stops without writing or completing.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}

	if allDone {
		for i := 0; i < g.count; i++ {
			*g.fields[i] = g.targets[i]
		}
	}
	if g.target != nil {
		g.target.MarkDirty()
	}
	if allDone {
		g.Done = true
		if g.OnComplete != nil {
			g.OnComplete()
		}
	}
}

// Stop ends the group without writing final values or running OnComplete.
func (g *TweenGroup) Stop() {
	g.Done = true
}

// AnimatedVec2 is a 2D value that can be set directly or animated toward a
// target. Only one animation runs at a time; starting a new one replaces the
// previous without completing it.
type AnimatedVec2 struct {
	Vec2
	tween *TweenGroup
}

// SetValue stops any running animation and sets the value directly.
func (v *AnimatedVec2) SetValue(x, y float64) {
	v.Stop()
	v.X = x
	v.Y = y
}

// AnimateTo starts a timed animation to (x, y). duration is in seconds.
// done runs once the value has reached the target; it may be nil.
func (v *AnimatedVec2) AnimateTo(x, y float64, duration float32, fn ease.TweenFunc, done func()) {
	v.Stop()
	g := NewTweenGroup([]*float64{&v.X, &v.Y}, []float64{x, y}, duration, fn)
	g.OnComplete = func() {
		v.tween = nil
		if done != nil {
			done()
		}
	}
	v.tween = g
}

// Animating reports whether an animation is in flight.
func (v *AnimatedVec2) Animating() bool {
	return v.tween != nil && !v.tween.Done
}

// Stop abandons the running animation, leaving the value where it is.
func (v *AnimatedVec2) Stop() {
	if v.tween != nil {
		v.tween.Stop()
		v.tween = nil
	}
}

// Update advances the running animation, if any, by dt seconds.
func (v *AnimatedVec2) Update(dt float32) {
	if v.tween != nil {
		v.tween.Update(dt)
	}
}
