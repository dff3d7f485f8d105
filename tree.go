package tessera

import (
	"fmt"

	"github.com/grindlemire/go-tessera/internal/debug"
)

// NodeID identifies a node in the current frame's ComponentTree.
// IDs are arena indices and are meaningless after Clear.
type NodeID int

// NoNode is the parent of top-level nodes.
const NoNode NodeID = -1

// String returns the ID as "#n".
func (id NodeID) String() string {
	return fmt.Sprintf("#%d", int(id))
}

// node is one arena entry. Callbacks are owned by the node.
type node struct {
	name     string
	parent   NodeID
	children []NodeID
	measure  MeasureFunc
	handler  StateHandlerFunc
	onPlaced func(Rect)
}

// ComponentTree is the per-frame arena of nodes plus their metadata.
// It is owned by the goroutine driving the frame and is not safe for
// concurrent use.
type ComponentTree struct {
	nodes []node
	meta  []NodeMetadata
	roots []NodeID
	stack []NodeID // composition parent stack
}

// NewComponentTree creates an empty tree.
func NewComponentTree() *ComponentTree {
	return &ComponentTree{}
}

// Len returns the number of nodes composed this frame.
func (t *ComponentTree) Len() int {
	return len(t.nodes)
}

// Root returns the first top-level node. Further top-level nodes are ignored
// by Compute.
func (t *ComponentTree) Root() (NodeID, bool) {
	if len(t.roots) == 0 {
		return NoNode, false
	}
	return t.roots[0], true
}

// Children returns id's children in composition order.
// The returned slice must not be modified.
func (t *ComponentTree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].children
}

// Parent returns id's parent. Top-level nodes report NoNode, false.
func (t *ComponentTree) Parent(id NodeID) (NodeID, bool) {
	if !t.valid(id) || t.nodes[id].parent == NoNode {
		return NoNode, false
	}
	return t.nodes[id].parent, true
}

// Name returns the diagnostic name given to id at composition.
func (t *ComponentTree) Name(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].name
}

// Metadata returns the mutable metadata entry for id, or nil if id is unknown.
func (t *ComponentTree) Metadata(id NodeID) *NodeMetadata {
	if !t.valid(id) {
		return nil
	}
	return &t.meta[id]
}

// Clear discards every node and metadata entry. The backing arrays are
// reused by the next frame.
func (t *ComponentTree) Clear() {
	for i := range t.nodes {
		t.nodes[i] = node{}
		t.meta[i] = NodeMetadata{}
	}
	t.nodes = t.nodes[:0]
	t.meta = t.meta[:0]
	t.roots = t.roots[:0]
	t.stack = t.stack[:0]
}

// Compose runs entry against a fresh Composer for this tree.
func (t *ComponentTree) Compose(entry func(ui *Composer)) {
	entry(&Composer{tree: t})
}

// Compute runs one frame over the composed tree: state handlers receive the
// frame's events, the root is measured under the screen size and placed at
// the origin, and the draw commands are extracted in paint order.
// An empty tree yields no commands. On failure no commands are returned.
func (t *ComponentTree) Compute(
	screen Size,
	cursor Position,
	hasCursor bool,
	cursorEvents []CursorEvent,
	keyboardEvents []KeyboardEvent,
) ([]DrawCommand, error) {
	root, ok := t.Root()
	if !ok {
		return nil, nil
	}
	if len(t.roots) > 1 {
		debug.Log("ComponentTree.Compute: %d top-level nodes, only %s is laid out", len(t.roots), root)
	}

	t.dispatch(root, &StateHandlerInput{
		CursorPosition: cursor,
		HasCursor:      hasCursor,
		CursorEvents:   cursorEvents,
		KeyboardEvents: keyboardEvents,
	})

	screen = screen.NonNegative()
	if _, err := t.MeasureNode(root, FixedConstraint(screen.Width, screen.Height)); err != nil {
		return nil, err
	}
	if err := t.PlaceNode(root, Position{}); err != nil {
		return nil, err
	}

	return t.extract(root), nil
}

func (t *ComponentTree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// addNode appends a node under the current composition parent.
func (t *ComponentTree) addNode(name string) NodeID {
	id := NodeID(len(t.nodes))
	parent := NoNode
	if n := len(t.stack); n > 0 {
		parent = t.stack[n-1]
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	} else {
		t.roots = append(t.roots, id)
	}
	t.nodes = append(t.nodes, node{name: name, parent: parent})
	t.meta = append(t.meta, NodeMetadata{})
	return id
}

// walk visits id and its descendants in pre-order. Returning false from fn
// skips the node's subtree.
func (t *ComponentTree) walk(id NodeID, fn func(id NodeID) bool) {
	if !fn(id) {
		return
	}
	for _, child := range t.nodes[id].children {
		t.walk(child, fn)
	}
}
