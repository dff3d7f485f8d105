package tessera

// StateHandlerFunc receives the frame's input before the tree is measured.
// Its effects go to state owned outside the tree.
type StateHandlerFunc func(in *StateHandlerInput)

// StateHandlerInput carries the whole frame's input. Events are broadcast to
// every handler without hit-testing; components filter by their own bounds.
// The event slices are shared between handlers and must not be modified.
type StateHandlerInput struct {
	// NodeID is the node whose handler is running.
	NodeID NodeID

	CursorPosition Position
	HasCursor      bool
	CursorEvents   []CursorEvent
	KeyboardEvents []KeyboardEvent
}

// dispatch calls every registered state handler under root exactly once, in
// tree order.
func (t *ComponentTree) dispatch(root NodeID, frame *StateHandlerInput) {
	t.walk(root, func(id NodeID) bool {
		handler := t.nodes[id].handler
		if handler == nil {
			return true
		}
		in := *frame
		in.NodeID = id
		handler(&in)
		return true
	})
}
