package swipedeck

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestSpringTransitionDefaults(t *testing.T) {
	l := NewSpringTransition()
	if l.Duration != layoutSpringDuration {
		t.Errorf("Duration = %v, want %v", l.Duration, layoutSpringDuration)
	}
	if l.Ease == nil {
		t.Error("Ease is nil")
	}
	if l.Active() {
		t.Error("new transition should be idle")
	}
}

func TestLayoutTransitionSettles(t *testing.T) {
	l := NewSpringTransition()
	n := NewContainer("card")
	slot := 20.0
	l.Animate(n, &slot, 0)
	if !l.Active() {
		t.Fatal("expected an active tween")
	}

	l.Update(0.35)
	if slot == 20 {
		t.Error("slot did not move")
	}
	l.Update(0.4)
	if slot != 0 {
		t.Errorf("slot = %v, want 0", slot)
	}
	if l.Active() {
		t.Error("finished tweens should be dropped")
	}
}

func TestLayoutTransitionReplacesFieldTween(t *testing.T) {
	l := &LayoutTransition{Duration: 1, Ease: ease.Linear}
	n := NewContainer("card")
	slot := 0.0
	l.Animate(n, &slot, 100)
	l.Update(0.5)
	l.Animate(n, &slot, -10)
	l.Update(2)
	if slot != -10 {
		t.Errorf("slot = %v, want -10 from the newer tween", slot)
	}
	if l.Active() {
		t.Error("transition should be idle")
	}
}

func TestLayoutTransitionCancel(t *testing.T) {
	l := &LayoutTransition{Duration: 1, Ease: ease.Linear}
	n := NewContainer("card")
	a, b := 0.0, 0.0
	l.Animate(n, &a, 10)
	l.Animate(n, &b, 20)
	l.Update(0.5)

	l.Cancel()
	if l.Active() {
		t.Fatal("Active after Cancel")
	}
	heldA, heldB := a, b
	l.Update(1)
	if a != heldA || b != heldB {
		t.Errorf("fields moved after Cancel: (%v, %v) -> (%v, %v)", heldA, heldB, a, b)
	}
}

func TestLayoutTransitionDisposedOwner(t *testing.T) {
	l := &LayoutTransition{Duration: 1, Ease: ease.Linear}
	n := NewContainer("card")
	slot := 0.0
	l.Animate(n, &slot, 10)
	n.Dispose()
	l.Update(0.5)
	if slot != 0 || l.Active() {
		t.Errorf("slot = %v, Active = %v after owner disposed", slot, l.Active())
	}
}
