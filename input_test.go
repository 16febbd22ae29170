package swipedeck

import (
	"math"
	"testing"
)

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// newInteractiveBox adds a 100x100 interactable sprite at (x, y).
func newInteractiveBox(s *Scene, name string, x, y float64) *Node {
	n := NewRect(name, 100, 100, ColorWhite)
	n.Interactable = true
	n.SetPosition(x, y)
	s.Root().AddChild(n)
	updateWorldTransform(s.root, identityTransform, 1, false)
	return n
}

func TestHitTestTopmost(t *testing.T) {
	s := NewScene()
	below := newInteractiveBox(s, "below", 0, 0)
	above := newInteractiveBox(s, "above", 50, 50)

	if got := s.hitTest(75, 75); got != above {
		t.Errorf("overlap hit = %v, want above", got)
	}
	if got := s.hitTest(10, 10); got != below {
		t.Errorf("hit = %v, want below", got)
	}
	if got := s.hitTest(300, 300); got != nil {
		t.Errorf("miss hit = %v, want nil", got)
	}

	above.Interactable = false
	if got := s.hitTest(75, 75); got != below {
		t.Errorf("non-interactable node should be skipped, got %v", got)
	}
}

func TestHitTestRotatedNode(t *testing.T) {
	s := NewScene()
	n := NewContainer("card")
	n.Interactable = true
	n.HitShape = HitRect{Width: 200, Height: 20}
	n.SetPivot(100, 10)
	n.SetPosition(100, 100)
	n.SetRotation(math.Pi / 2)
	s.Root().AddChild(n)
	updateWorldTransform(s.root, identityTransform, 1, false)

	// Turned upright, the bar now spans y 0..200 around x=100.
	if s.hitTest(100, 20) != n {
		t.Error("expected hit along the rotated bar")
	}
	if s.hitTest(180, 100) != nil {
		t.Error("expected miss where the unrotated bar used to be")
	}
}

func TestContainerWithoutHitShapeIsNotHit(t *testing.T) {
	s := NewScene()
	c := NewContainer("group")
	c.Interactable = true
	s.Root().AddChild(c)
	updateWorldTransform(s.root, identityTransform, 1, false)
	if s.hitTest(0, 0) != nil {
		t.Error("container with no hit shape should not be hit")
	}
}

func TestPointerDragSequence(t *testing.T) {
	s := NewScene()
	box := newInteractiveBox(s, "box", 0, 0)

	var events []string
	var lastDrag DragContext
	box.OnPointerDown = func(PointerContext) { events = append(events, "down") }
	box.OnDrag = func(ctx DragContext) {
		events = append(events, "drag")
		lastDrag = ctx
	}
	box.OnPointerUp = func(PointerContext) { events = append(events, "up") }

	s.processPointer(0, 10, 10, true, MouseButtonLeft)
	s.processPointer(0, 12, 10, true, MouseButtonLeft) // inside dead zone
	s.processPointer(0, 40, 30, true, MouseButtonLeft)
	s.processPointer(0, 60, 30, true, MouseButtonLeft)
	s.processPointer(0, 60, 30, false, MouseButtonLeft)

	want := []string{"down", "drag", "drag", "up"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
	if lastDrag.DeltaX != 20 || lastDrag.DeltaY != 0 {
		t.Errorf("last delta = (%v, %v), want (20, 0)", lastDrag.DeltaX, lastDrag.DeltaY)
	}
	if lastDrag.TotalX != 50 || lastDrag.TotalY != 20 {
		t.Errorf("last total = (%v, %v), want (50, 20)", lastDrag.TotalX, lastDrag.TotalY)
	}
}

func TestPointerUpGoesToPressedNode(t *testing.T) {
	s := NewScene()
	box := newInteractiveBox(s, "box", 0, 0)
	var upAt float64
	box.OnPointerUp = func(ctx PointerContext) { upAt = ctx.GlobalX }

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 500, 50, false, MouseButtonLeft)
	if upAt != 500 {
		t.Errorf("pointer up delivered at %v, want 500 on the pressed node", upAt)
	}
}

func TestDragDeadZone(t *testing.T) {
	tests := []struct {
		name     string
		deadZone float64
		moveTo   float64
		want     int
	}{
		{"default inside", defaultDragDeadZone, 13, 0},
		{"default past", defaultDragDeadZone, 15, 1},
		{"wide inside", 30, 35, 0},
		{"wide past", 30, 41, 1},
		{"zero", 0, 11, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			s.SetDragDeadZone(tt.deadZone)
			box := newInteractiveBox(s, "box", 0, 0)
			drags := 0
			box.OnDrag = func(DragContext) { drags++ }

			s.processPointer(0, 10, 10, true, MouseButtonLeft)
			s.processPointer(0, tt.moveTo, 10, true, MouseButtonLeft)
			if drags != tt.want {
				t.Errorf("drags = %d, want %d", drags, tt.want)
			}
		})
	}
}

func TestPointersAreIndependent(t *testing.T) {
	s := NewScene()
	a := newInteractiveBox(s, "a", 0, 0)
	b := newInteractiveBox(s, "b", 200, 0)

	var ups []int
	a.OnPointerUp = func(ctx PointerContext) { ups = append(ups, ctx.PointerID) }
	b.OnPointerUp = func(ctx PointerContext) { ups = append(ups, 10+ctx.PointerID) }

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(1, 250, 50, true, MouseButtonLeft)
	s.processPointer(0, 50, 50, false, MouseButtonLeft)
	s.processPointer(1, 250, 50, false, MouseButtonLeft)

	if len(ups) != 2 || ups[0] != 0 || ups[1] != 11 {
		t.Errorf("ups = %v, want [0 11]", ups)
	}
}

// --- End to end: injected gestures drive a deck through the scene ---

func newDeckScene(t *testing.T) (*Scene, *deckHarness) {
	t.Helper()
	h := newDeckHarness(t, "1", "2", "3")
	s := NewScene()
	s.Root().AddChild(h.stack.Node())
	return s, h
}

func runFrames(s *Scene, n int) {
	for i := 0; i < n; i++ {
		s.update(1.0 / 60)
	}
}

func TestSceneDragSwipesTopCard(t *testing.T) {
	s, h := newDeckScene(t)

	s.InjectDrag(200, 150, 460, 150, 6)
	runFrames(s, 6)
	if h.stack.State() != StateAnimatingSwipeOut {
		t.Fatalf("State = %v after release, want swipe-out", h.stack.State())
	}

	runFrames(s, 30)
	if len(h.swipes) != 1 || h.swipes[0] != (swipeRecord{SwipeRight, testItem{"1"}}) {
		t.Fatalf("swipes = %+v, want one right on 1", h.swipes)
	}
	if h.stack.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", h.stack.Cursor())
	}

	// The promoted card takes the next gesture; a short drag springs back.
	s.InjectDrag(200, 150, 250, 180, 4)
	runFrames(s, 4)
	if h.stack.State() != StateAnimatingReset {
		t.Fatalf("State = %v, want reset", h.stack.State())
	}
	runFrames(s, 60)
	if h.stack.State() != StateIdle || h.stack.Position() != (Vec2{}) || h.stack.Cursor() != 1 {
		t.Errorf("after reset: State = %v, Position = %+v, Cursor = %d",
			h.stack.State(), h.stack.Position(), h.stack.Cursor())
	}
}

func TestSceneDragLeftOutsideCardStillReleases(t *testing.T) {
	s, h := newDeckScene(t)

	// The release lands far off the card; the pressed card still gets it.
	s.InjectDrag(100, 100, -250, 900, 5)
	runFrames(s, 40)
	if len(h.swipes) != 1 || h.swipes[0].dir != SwipeLeft {
		t.Errorf("swipes = %+v, want one left", h.swipes)
	}
}

func TestScenePressOutsideCardIgnored(t *testing.T) {
	s, h := newDeckScene(t)

	// Below the 300px tall card.
	s.InjectDrag(200, 600, 500, 600, 5)
	runFrames(s, 40)
	if len(h.swipes) != 0 || h.stack.State() != StateIdle {
		t.Errorf("press outside the card changed the deck: %+v %v", h.swipes, h.stack.State())
	}
}
