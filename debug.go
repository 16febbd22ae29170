package swipedeck

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// debugLogger receives warnings from node operations in debug mode.
var debugLogger = log.Default()

// debugCheckDisposed panics when a disposed node is used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("swipedeck debug: %s on disposed node %q", op, n.Name))
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn("child count over threshold",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

func countNodes(n *Node) int {
	count := 1
	for _, child := range n.children {
		count += countNodes(child)
	}
	return count
}
