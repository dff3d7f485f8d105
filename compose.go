package tessera

// Composer is the context passed through composition. Components create
// nodes with Component and register their constraint and callbacks on the
// node currently being composed.
//
// Registration methods panic when called outside a Component body.
type Composer struct {
	tree *ComponentTree
}

// NewComposer returns a Composer that adds nodes to tree.
func NewComposer(tree *ComponentTree) *Composer {
	return &Composer{tree: tree}
}

// Tree returns the tree being composed.
func (c *Composer) Tree() *ComponentTree {
	return c.tree
}

// Component creates a node as a child of the node being composed and runs
// body with the new node as the current node. Children created inside body
// become the node's children, in call order.
func (c *Composer) Component(name string, body func()) NodeID {
	t := c.tree
	id := t.addNode(name)
	t.stack = append(t.stack, id)
	defer func() {
		t.stack = t.stack[:len(t.stack)-1]
	}()
	if body != nil {
		body()
	}
	return id
}

// Current returns the node being composed.
func (c *Composer) Current() (NodeID, bool) {
	if n := len(c.tree.stack); n > 0 {
		return c.tree.stack[n-1], true
	}
	return NoNode, false
}

// Constrain sets the current node's own constraint. The default is Wrap with
// no bounds on both axes.
func (c *Composer) Constrain(constraint Constraint) {
	id := c.mustCurrent("Constrain")
	c.tree.meta[id].Constraint = constraint
}

// Measure registers the current node's measure callback. A second call
// replaces the first.
func (c *Composer) Measure(fn MeasureFunc) {
	id := c.mustCurrent("Measure")
	c.tree.nodes[id].measure = fn
}

// StateHandler registers the current node's state handler. A second call
// replaces the first.
func (c *Composer) StateHandler(fn StateHandlerFunc) {
	id := c.mustCurrent("StateHandler")
	c.tree.nodes[id].handler = fn
}

// OnPlaced registers a callback that receives the current node's absolute
// bounds once the frame has been laid out. It only fires for placed nodes.
func (c *Composer) OnPlaced(fn func(Rect)) {
	id := c.mustCurrent("OnPlaced")
	c.tree.nodes[id].onPlaced = fn
}

func (c *Composer) mustCurrent(op string) NodeID {
	id, ok := c.Current()
	if !ok {
		panic("tessera: " + op + " called outside a component")
	}
	return id
}
