package tessera

// Drawable is an opaque drawing payload produced by a component's measure
// callback. The renderer decides what it means.
type Drawable any

// DrawCommand is one absolutely positioned drawable in paint order.
type DrawCommand struct {
	Position Position
	Size     Size
	Drawable Drawable
	Node     NodeID
}

// Bounds returns the command's absolute rectangle.
func (c DrawCommand) Bounds() Rect {
	return RectAt(c.Position, c.Size)
}

// extract walks the laid-out tree from root in pre-order, accumulating
// absolute positions. A node's own drawable is emitted before its
// descendants'. Unplaced nodes are skipped together with their subtrees.
// OnPlaced hooks fire during the same walk.
func (t *ComponentTree) extract(root NodeID) []DrawCommand {
	var commands []DrawCommand
	t.extractNode(root, Position{}, &commands)
	return commands
}

func (t *ComponentTree) extractNode(id NodeID, origin Position, commands *[]DrawCommand) {
	meta := &t.meta[id]
	if !meta.placed {
		return
	}

	abs := origin.Add(meta.Position)
	size := meta.Computed.Size()

	if meta.Drawable != nil {
		*commands = append(*commands, DrawCommand{
			Position: abs,
			Size:     size,
			Drawable: meta.Drawable,
			Node:     id,
		})
	}
	if hook := t.nodes[id].onPlaced; hook != nil {
		hook(RectAt(abs, size))
	}

	for _, child := range t.nodes[id].children {
		t.extractNode(child, abs, commands)
	}
}
