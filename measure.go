package tessera

import (
	"errors"
	"fmt"
	"slices"
)

// MeasureFunc resolves a node's size. It measures the children it needs
// through in, places them, and returns its own size.
type MeasureFunc func(in *MeasureInput) (ComputedData, error)

// MeasureInput is what a measure callback sees for the node being measured.
type MeasureInput struct {
	// NodeID is the node being measured.
	NodeID NodeID

	// ParentConstraint is the constraint offered by the parent.
	ParentConstraint Constraint

	// EffectiveConstraint is the node's own constraint merged with
	// ParentConstraint.
	EffectiveConstraint Constraint

	// Children are the node's children in composition order.
	Children []NodeID

	// Tree gives read and write access to topology and metadata.
	Tree *ComponentTree

	placeErr error
}

// Measure measures one of the node's children under offered.
func (in *MeasureInput) Measure(child NodeID, offered Constraint) (ComputedData, error) {
	if !in.isChild(child) {
		return ComputedData{}, NewMeasureFuncError(in.NodeID, "cannot measure %s: not a child", child)
	}
	return in.Tree.MeasureNode(child, offered)
}

// MeasureAll measures children in order under the same offered constraint
// and stops at the first failure.
func (in *MeasureInput) MeasureAll(children []NodeID, offered Constraint) ([]ComputedData, error) {
	out := make([]ComputedData, 0, len(children))
	for _, child := range children {
		computed, err := in.Measure(child, offered)
		if err != nil {
			return nil, err
		}
		out = append(out, computed)
	}
	return out, nil
}

// Place records child's position relative to this node's origin. The last
// call for a child wins. Placing a node that is not a child fails the
// measurement once the callback returns.
func (in *MeasureInput) Place(child NodeID, pos Position) {
	if !in.isChild(child) {
		if in.placeErr == nil {
			in.placeErr = NewMeasureFuncError(in.NodeID, "cannot place %s: not a child", child)
		}
		return
	}
	// Children always exist in the tree, so PlaceNode cannot fail here.
	_ = in.Tree.PlaceNode(child, pos)
}

// SetDrawable records the node's own drawable.
func (in *MeasureInput) SetDrawable(d Drawable) {
	in.Tree.meta[in.NodeID].Drawable = d
}

// Metadata returns the metadata entry for id.
func (in *MeasureInput) Metadata(id NodeID) *NodeMetadata {
	return in.Tree.Metadata(id)
}

func (in *MeasureInput) isChild(id NodeID) bool {
	return slices.Contains(in.Children, id)
}

// MeasureNode measures id under the constraint offered by its parent.
//
// The node's own constraint is merged with offered and recorded as its
// effective constraint, then its measure callback runs (DefaultMeasure when
// none was registered). A node may be measured again for trial layouts, but
// not while its own callback is running.
//
// Callback failures are returned as *ChildMeasurementError naming the node
// whose callback failed.
func (t *ComponentTree) MeasureNode(id NodeID, offered Constraint) (ComputedData, error) {
	if !t.valid(id) {
		return ComputedData{}, fmt.Errorf("measure %s: %w", id, ErrUnknownNode)
	}

	meta := &t.meta[id]
	if meta.State == Measuring {
		return ComputedData{}, fmt.Errorf("measure %s (%s): %w", id, t.nodes[id].name, ErrReentrantMeasure)
	}

	meta.Effective = meta.Constraint.Merge(offered)
	meta.State = Measuring

	in := &MeasureInput{
		NodeID:              id,
		ParentConstraint:    offered,
		EffectiveConstraint: meta.Effective,
		Children:            t.nodes[id].children,
		Tree:                t,
	}

	fn := t.nodes[id].measure
	if fn == nil {
		fn = DefaultMeasure
	}
	computed, err := fn(in)
	if err == nil {
		err = in.placeErr
	}

	// The callback may have grown the arena; reload the entry.
	meta = &t.meta[id]
	if err != nil {
		meta.State = Unmeasured
		var childErr *ChildMeasurementError
		if errors.As(err, &childErr) {
			return ComputedData{}, err
		}
		return ComputedData{}, &ChildMeasurementError{Child: id, Name: t.nodes[id].name, Err: err}
	}

	computed = ComputedData{Width: computed.Width.NonNegative(), Height: computed.Height.NonNegative()}
	meta.Computed = computed
	if meta.placed {
		meta.State = Placed
	} else {
		meta.State = Measured
	}
	return computed, nil
}

// MeasureNodes measures ids in order under offered and stops at the first
// failure.
func (t *ComponentTree) MeasureNodes(ids []NodeID, offered Constraint) ([]ComputedData, error) {
	out := make([]ComputedData, 0, len(ids))
	for _, id := range ids {
		computed, err := t.MeasureNode(id, offered)
		if err != nil {
			return nil, err
		}
		out = append(out, computed)
	}
	return out, nil
}

// PlaceNode records id's position relative to its parent's origin.
// It does not resolve size. The last write wins.
func (t *ComponentTree) PlaceNode(id NodeID, pos Position) error {
	if !t.valid(id) {
		return fmt.Errorf("place %s: %w", id, ErrUnknownNode)
	}
	meta := &t.meta[id]
	meta.Position = pos
	meta.placed = true
	if meta.State != Measuring {
		meta.State = Placed
	}
	return nil
}

// DefaultMeasure is used for nodes without a measure callback. It measures
// every child under the node's effective constraint, places each at the
// origin, and sizes the node to the largest child resolved against the
// effective constraint.
func DefaultMeasure(in *MeasureInput) (ComputedData, error) {
	var content Size
	for _, child := range in.Children {
		computed, err := in.Measure(child, in.EffectiveConstraint)
		if err != nil {
			return ComputedData{}, err
		}
		in.Place(child, Position{})
		content.Width = content.Width.Max(computed.Width)
		content.Height = content.Height.Max(computed.Height)
	}
	return ComputedFromSize(in.EffectiveConstraint.Resolve(content)), nil
}
