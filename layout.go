package swipedeck

import "github.com/tanema/gween/ease"

const (
	layoutSpringDuration = 0.7 // seconds
)

// LayoutTransition animates nodes into new layout slots with a spring-style
// ease. Each Animate call adds one field tween; Update advances all of them
// and drops the finished ones.
type LayoutTransition struct {
	Duration float32
	Ease     ease.TweenFunc

	groups []*TweenGroup
}

// NewSpringTransition returns a transition tuned to overshoot slightly and
// settle, like a damped spring.
func NewSpringTransition() *LayoutTransition {
	return &LayoutTransition{Duration: layoutSpringDuration, Ease: ease.OutBack}
}

// Animate moves *field to the target value over the transition. owner is the
// node the field belongs to; a disposed owner stops its tween. Any running
// tween on the same field is replaced.
func (l *LayoutTransition) Animate(owner *Node, field *float64, to float64) {
	for _, g := range l.groups {
		if g.fields[0] == field {
			g.Stop()
		}
	}
	g := NewTweenGroup([]*float64{field}, []float64{to}, l.Duration, l.Ease)
	g.target = owner
	l.groups = append(l.groups, g)
}

// Update advances every running tween by dt seconds.
func (l *LayoutTransition) Update(dt float32) {
	live := l.groups[:0]
	for _, g := range l.groups {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(l.groups[len(live):])
	l.groups = live
}

// Active reports whether any tween is still running.
func (l *LayoutTransition) Active() bool {
	return len(l.groups) > 0
}

// Cancel stops every running tween, leaving fields where they are.
func (l *LayoutTransition) Cancel() {
	for _, g := range l.groups {
		g.Stop()
	}
	clear(l.groups)
	l.groups = l.groups[:0]
}
