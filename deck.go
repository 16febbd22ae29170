package swipedeck

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween/ease"
)

// Card style. Every card is absolutely positioned at the deck origin and is
// as wide as the viewport; cards below the top one are pushed down by
// stackOffset per position.
const (
	stackOffset       = 10.0
	defaultCardHeight = 300.0
)

// Gesture tuning, expressed as fractions of the viewport width.
const (
	swipeThresholdRatio = 0.5 // release distance that commits a swipe
	swipeOutRatio       = 1.0 // swipe-out animation target
	rotationDomainRatio = 1.5 // drag distance at which rotation saturates

	maxCardRotation = 120 * math.Pi / 180

	swipeOutDuration = 0.15 // seconds
	resetDuration    = 0.5  // seconds
)

// Item is a deck entry. CardKey must be unique within a deck; the stack uses
// it to keep a card's node across re-renders.
type Item interface {
	CardKey() string
}

// Direction is the side a card leaves the deck on.
type Direction int8

const (
	SwipeLeft  Direction = -1
	SwipeRight Direction = 1
)

func (d Direction) String() string {
	if d == SwipeRight {
		return "right"
	}
	return "left"
}

// State is the gesture state of the top card.
type State uint8

const (
	StateIdle              State = iota // at rest, accepting gestures
	StateDragging                       // following the pointer
	StateAnimatingReset                 // springing back to the center
	StateAnimatingSwipeOut              // leaving the screen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateAnimatingReset:
		return "animating-reset"
	case StateAnimatingSwipeOut:
		return "animating-swipe-out"
	default:
		return "unknown"
	}
}

// Config configures a CardStack.
type Config[T Item] struct {
	// Data is the deck. The stack never modifies it.
	Data []T

	// RenderCard builds the content of one card. Required. The stack detaches
	// the returned node when the card leaves but never disposes it.
	RenderCard func(item T) *Node

	// RenderNoMoreCards builds the content shown once the deck is exhausted.
	// Required. Like card content, it is detached rather than disposed.
	RenderNoMoreCards func() *Node

	// OnSwipeRight and OnSwipeLeft receive the item of each completed swipe.
	// Both default to no-ops.
	OnSwipeRight func(item T)
	OnSwipeLeft  func(item T)

	// Width is the viewport width. It sets the card width, the swipe
	// threshold, the swipe-out distance and the rotation range.
	Width float64

	// CardHeight is the height of the top card's touch area. Defaults to 300.
	CardHeight float64

	// Logger receives debug records for swipes and deck resets. Nil disables
	// logging.
	Logger *log.Logger
}

type cardView struct {
	node    *Node
	content *Node // from RenderCard, owned by the caller
	index   int
	slot    float64 // vertical offset inside the stack, animated on advance
}

// noPointer marks a gesture that was not started by a scene pointer.
const noPointer = -1

// CardStack is a swipeable deck of cards. The card at the cursor is drawn on
// top and is the only one that accepts gestures; releasing it past half the
// viewport width swipes it away and advances the cursor.
//
// A CardStack is driven by the scene's update loop and is not safe for
// concurrent use.
type CardStack[T Item] struct {
	cfg Config[T]

	data       []T
	generation uint64
	cursor     int
	state      State

	width      float64
	cardHeight float64

	position AnimatedVec2
	layout   *LayoutTransition

	// pointer owns the gesture in progress; events from any other pointer
	// are ignored until it is released.
	pointer        int
	pressX, pressY float64

	root  *Node
	cards map[string]*cardView
	empty *Node
	log   *log.Logger
}

// NewCardStack creates a stack showing cfg.Data from the first item.
// Panics if RenderCard or RenderNoMoreCards is nil.
func NewCardStack[T Item](cfg Config[T]) *CardStack[T] {
	if cfg.RenderCard == nil {
		panic("swipedeck: Config.RenderCard is required")
	}
	if cfg.RenderNoMoreCards == nil {
		panic("swipedeck: Config.RenderNoMoreCards is required")
	}
	if cfg.OnSwipeRight == nil {
		cfg.OnSwipeRight = func(T) {}
	}
	if cfg.OnSwipeLeft == nil {
		cfg.OnSwipeLeft = func(T) {}
	}
	if cfg.CardHeight <= 0 {
		cfg.CardHeight = defaultCardHeight
	}

	c := &CardStack[T]{
		cfg:        cfg,
		data:       cfg.Data,
		width:      cfg.Width,
		cardHeight: cfg.CardHeight,
		layout:     NewSpringTransition(),
		root:       NewContainer("cardstack"),
		cards:      make(map[string]*cardView),
		pointer:    noPointer,
		log:        cfg.Logger,
	}
	c.root.Interactable = true
	c.root.OnUpdate = func(dt float64) { c.Update(float32(dt)) }
	c.render(false)
	return c
}

// Node returns the container holding the rendered stack.
func (c *CardStack[T]) Node() *Node {
	return c.root
}

// Cursor returns the index of the top card. It equals len(Data) once the
// deck is exhausted.
func (c *CardStack[T]) Cursor() int {
	return c.cursor
}

// State returns the gesture state of the top card.
func (c *CardStack[T]) State() State {
	return c.state
}

// Position returns the current drag offset of the top card.
func (c *CardStack[T]) Position() Vec2 {
	return c.position.Vec2
}

// Exhausted reports whether every card has been swiped.
func (c *CardStack[T]) Exhausted() bool {
	return c.cursor >= len(c.data)
}

// Top returns the item at the cursor.
func (c *CardStack[T]) Top() (T, bool) {
	if c.Exhausted() {
		var zero T
		return zero, false
	}
	return c.data[c.cursor], true
}

// Width returns the viewport width in use.
func (c *CardStack[T]) Width() float64 {
	return c.width
}

// SetData is the deck-replaced signal. A sequence that is not the current
// one (different backing array or length) resets the cursor to 0, drops any
// gesture or animation in flight and re-renders every card. Passing the
// current sequence again is a no-op.
func (c *CardStack[T]) SetData(data []T) {
	if sameDeck(c.data, data) {
		return
	}
	c.data = data
	c.generation++
	c.cursor = 0
	c.state = StateIdle
	c.pointer = noPointer
	c.position.SetValue(0, 0)
	c.layout.Cancel()
	c.clearCards()
	c.render(false)
	c.debug("deck replaced", "cards", len(data))
}

// sameDeck compares sequence identity, not contents.
func sameDeck[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// SetWidth updates the viewport width, typically from ebiten.Game.Layout.
func (c *CardStack[T]) SetWidth(w float64) {
	if w == c.width {
		return
	}
	c.width = w
	for _, v := range c.cards {
		c.styleCard(v.node)
	}
	c.applyLayout()
}

// GestureStart claims a new gesture on the top card. It returns false when
// the deck is exhausted or the top card is still animating.
func (c *CardStack[T]) GestureStart() bool {
	if c.Exhausted() || c.state != StateIdle {
		return false
	}
	c.state = StateDragging
	c.pointer = noPointer
	return true
}

// GestureMove sets the drag position to the gesture's cumulative delta.
func (c *CardStack[T]) GestureMove(dx, dy float64) {
	if c.state != StateDragging {
		return
	}
	c.position.SetValue(dx, dy)
	c.applyLayout()
}

// GestureEnd releases the top card. A horizontal delta beyond half the
// viewport width swipes the card out on that side; anything else, including
// exactly half, springs it back.
func (c *CardStack[T]) GestureEnd(dx, dy float64) {
	if c.state != StateDragging {
		return
	}
	c.position.SetValue(dx, dy)
	c.pointer = noPointer
	threshold := c.width * swipeThresholdRatio
	switch {
	case dx > threshold:
		c.forceSwipe(SwipeRight)
	case dx < -threshold:
		c.forceSwipe(SwipeLeft)
	default:
		c.resetPosition()
	}
}

// Swipe throws the top card out in the given direction as if it had been
// dragged past the threshold. Ignored while another animation is running or
// when the deck is exhausted.
func (c *CardStack[T]) Swipe(dir Direction) {
	if c.Exhausted() {
		return
	}
	if c.state != StateIdle && c.state != StateDragging {
		return
	}
	c.forceSwipe(dir)
}

func (c *CardStack[T]) forceSwipe(dir Direction) {
	item := c.data[c.cursor]
	gen := c.generation
	c.state = StateAnimatingSwipeOut
	x := float64(dir) * c.width * swipeOutRatio
	c.position.AnimateTo(x, 0, swipeOutDuration, ease.InOutQuad, func() {
		c.onSwipeComplete(dir, item, gen)
	})
}

func (c *CardStack[T]) resetPosition() {
	c.state = StateAnimatingReset
	c.position.AnimateTo(0, 0, resetDuration, ease.InOutQuad, func() {
		c.state = StateIdle
	})
}

// onSwipeComplete reports the committed item, then advances. The drag
// position is cleared before the cursor moves. A callback that replaced the
// deck has already reset the stack, so nothing is advanced in that case.
func (c *CardStack[T]) onSwipeComplete(dir Direction, item T, gen uint64) {
	c.debug("card swiped", "key", item.CardKey(), "direction", dir, "cursor", c.cursor)
	if dir == SwipeRight {
		c.cfg.OnSwipeRight(item)
	} else {
		c.cfg.OnSwipeLeft(item)
	}
	if gen != c.generation {
		return
	}
	c.position.SetValue(0, 0)
	c.cursor++
	c.state = StateIdle
	c.render(true)
	if c.Exhausted() {
		c.debug("deck exhausted", "cards", len(c.data))
	}
}

// Update advances the layout transition and the drag animation by dt
// seconds and repositions the cards. A transition requested by a swipe that
// completes during this call starts on the next one.
func (c *CardStack[T]) Update(dt float32) {
	c.layout.Update(dt)
	c.position.Update(dt)
	c.applyLayout()
}

// render brings the node tree in line with the cursor. With animate set,
// cards that stay rendered move to their new slot through the layout
// transition instead of jumping.
func (c *CardStack[T]) render(animate bool) {
	if c.Exhausted() {
		c.clearCards()
		if c.empty == nil {
			c.empty = c.cfg.RenderNoMoreCards()
			if c.empty != nil {
				c.root.AddChild(c.empty)
			}
		}
		return
	}
	if c.empty != nil {
		c.empty.RemoveFromParent()
		c.empty = nil
	}

	live := make(map[string]struct{}, len(c.data)-c.cursor)
	for i := c.cursor; i < len(c.data); i++ {
		key := c.data[i].CardKey()
		if _, dup := live[key]; dup {
			panic("swipedeck: duplicate card key " + key)
		}
		live[key] = struct{}{}
	}
	for key, v := range c.cards {
		if _, ok := live[key]; !ok {
			v.release()
			delete(c.cards, key)
		}
	}

	// Cards nearer the cursor get a higher ZIndex so they draw, and take
	// hits, over the ones behind them.
	for i := len(c.data) - 1; i >= c.cursor; i-- {
		item := c.data[i]
		key := item.CardKey()
		v, existed := c.cards[key]
		if !existed {
			v = c.newCardView(item)
			c.cards[key] = v
			c.root.AddChild(v.node)
		}
		v.index = i
		v.node.SetZIndex(c.cursor - i)
		target := stackOffset * float64(i-c.cursor)
		if animate && existed && v.slot != target {
			c.layout.Animate(v.node, &v.slot, target)
		} else {
			v.slot = target
		}
		c.bindGestures(v, i == c.cursor)
	}
	c.applyLayout()
}

func (c *CardStack[T]) newCardView(item T) *cardView {
	n := NewContainer("card:" + item.CardKey())
	n.UserData = item
	c.styleCard(n)
	v := &cardView{node: n, content: c.cfg.RenderCard(item)}
	if v.content != nil {
		n.AddChild(v.content)
	}
	return v
}

// release disposes the card wrapper. The caller's content is only detached
// so it can be reused.
func (v *cardView) release() {
	if v.content != nil {
		v.content.RemoveFromParent()
	}
	v.node.Dispose()
}

// styleCard sizes a card wrapper to the viewport and pivots it on its
// center so drag rotation turns it in place.
func (c *CardStack[T]) styleCard(n *Node) {
	n.SetPivot(c.width/2, c.cardHeight/2)
	n.HitShape = HitRect{Width: c.width, Height: c.cardHeight}
}

func (c *CardStack[T]) bindGestures(v *cardView, top bool) {
	n := v.node
	n.Interactable = top
	if !top {
		n.OnPointerDown = nil
		n.OnDrag = nil
		n.OnPointerUp = nil
		return
	}
	n.OnPointerDown = func(ctx PointerContext) {
		if c.GestureStart() {
			c.pointer = ctx.PointerID
			c.pressX, c.pressY = ctx.GlobalX, ctx.GlobalY
		}
	}
	n.OnDrag = func(ctx DragContext) {
		if ctx.PointerID == c.pointer {
			c.GestureMove(ctx.TotalX, ctx.TotalY)
		}
	}
	n.OnPointerUp = func(ctx PointerContext) {
		if ctx.PointerID == c.pointer {
			c.GestureEnd(ctx.GlobalX-c.pressX, ctx.GlobalY-c.pressY)
		}
	}
}

func (c *CardStack[T]) clearCards() {
	for key, v := range c.cards {
		v.release()
		delete(c.cards, key)
	}
}

// applyLayout writes slot, drag position and rotation into the card nodes.
func (c *CardStack[T]) applyLayout() {
	px, py := c.width/2, c.cardHeight/2
	for _, v := range c.cards {
		n := v.node
		if v.index == c.cursor {
			n.SetPosition(px+c.position.X, py+v.slot+c.position.Y)
			n.SetRotation(cardRotation(c.position.X, c.width))
		} else {
			n.SetPosition(px, py+v.slot)
			n.SetRotation(0)
		}
	}
}

// cardRotation maps a horizontal drag onto [-120°, 120°], linear between
// ±1.5 viewport widths and clamped outside.
func cardRotation(x, width float64) float64 {
	limit := width * rotationDomainRatio
	if limit <= 0 {
		return 0
	}
	t := x / limit
	if t > 1 {
		t = 1
	} else if t < -1 {
		t = -1
	}
	return t * maxCardRotation
}

func (c *CardStack[T]) debug(msg string, keyvals ...any) {
	if c.log != nil {
		c.log.Debug(msg, keyvals...)
	}
}
