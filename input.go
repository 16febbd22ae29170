package swipedeck

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitNode  *Node
	dragging bool
	button   MouseButton // captured at press time
}

// SetDragDeadZone sets the distance in pixels a pressed pointer must travel
// before drag events fire. The default is 4.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// --- Hit testing ---

// nodeContainsLocal tests (lx, ly) against HitShape, falling back to the
// sprite's drawn size. Containers without a HitShape are never hit.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// nodeDimensions returns the unscaled local size of a sprite. Solid-color
// sprites draw a 1x1 pixel, so their size lives entirely in the scale.
func nodeDimensions(n *Node) (w, h float64) {
	if n.Type != NodeTypeSprite {
		return 0, 0
	}
	if n.customImage != nil {
		b := n.customImage.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	}
	return 1, 1
}

// collectInteractable walks the tree in painter order, appending candidates
// to buf. Invisible or non-interactable subtrees are skipped.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.orderedChildren() {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput handles injected, mouse, and touch input. A frame that
// consumes an injected event skips real devices.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers maps each active touch onto pointer slots 1-9 and
// releases slots whose touch ended this frame.
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.touchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot returns the slot for tid, allocating one if needed, or -1 when
// every slot is taken.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/drag/release state machine for one pointer.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		target := s.hitTest(wx, wy)
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitNode = target
		ps.dragging = false
		s.firePointer(EventPointerDown, target, pointerID, wx, wy, button)

	case !pressed && ps.down:
		// The node that took the press gets the release, even if the
		// pointer has left it.
		s.firePointer(EventPointerUp, ps.hitNode, pointerID, wx, wy, ps.button)

		ps.down = false
		ps.hitNode = nil
		ps.dragging = false

	case pressed && ps.down:
		if wx == ps.lastX && wy == ps.lastY {
			break
		}
		if !ps.dragging {
			dx := wx - ps.startX
			dy := wy - ps.startY
			ps.dragging = math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone
		}
		if ps.dragging {
			s.fireDrag(ps, pointerID, wx, wy)
		}
		ps.lastX, ps.lastY = wx, wy
	}
}

// --- Event dispatch ---

func (s *Scene) firePointer(ev EventType, node *Node, pointerID int, wx, wy float64, button MouseButton) {
	if node == nil {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	ctx := PointerContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	}
	switch ev {
	case EventPointerDown:
		if node.OnPointerDown != nil {
			node.OnPointerDown(ctx)
		}
	case EventPointerUp:
		if node.OnPointerUp != nil {
			node.OnPointerUp(ctx)
		}
	}
}

func (s *Scene) fireDrag(ps *pointerState, pointerID int, wx, wy float64) {
	node := ps.hitNode
	if node == nil || node.OnDrag == nil {
		return
	}
	ctx := DragContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: wx - ps.lastX, DeltaY: wy - ps.lastY,
		TotalX: wx - ps.startX, TotalY: wy - ps.startY,
		Button: ps.button, PointerID: pointerID,
	}
	node.OnDrag(ctx)
}
