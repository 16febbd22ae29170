package swipedeck

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the node tree, pointer state and the per-frame update.
type Scene struct {
	root *Node

	// ClearColor fills the screen before drawing when A > 0.
	ClearColor Color

	debug  bool
	logger *log.Logger

	// Input state
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchIDs     []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	testRunner *TestRunner
}

// NewScene creates a scene with an interactable root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:         root,
		dragDeadZone: defaultDragDeadZone,
		logger:       log.Default(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update processes one frame at the current ticks-per-second rate.
func (s *Scene) Update() {
	s.update(1.0 / float64(ebiten.TPS()))
}

// update refreshes world transforms so hit testing sees this frame's
// positions, dispatches input, then ticks OnUpdate hooks.
func (s *Scene) update(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput()
	tickNodes(s.root, dt)

	if s.debug {
		s.logger.Debug("frame updated", "elapsed", time.Since(t0), "nodes", countNodes(s.root))
	}
}

// tickNodes calls OnUpdate depth-first. Hooks may restructure the tree, so
// each level iterates over a snapshot of its children.
func tickNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if len(n.children) == 0 {
		return
	}
	children := append([]*Node(nil), n.children...)
	for _, child := range children {
		if child.Parent == n {
			tickNodes(child, dt)
		}
	}
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on disposed nodes panic, child count warnings are logged, and per-frame
// timings are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		s.logger.SetLevel(log.DebugLevel)
	}
}

// SetLogger replaces the scene's logger, which defaults to log.Default().
func (s *Scene) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	s.logger = l
	debugLogger = l
}

// globalDebug mirrors the most recently set Scene debug flag so node
// operations, which lack a Scene pointer, can check it cheaply.
var globalDebug bool
