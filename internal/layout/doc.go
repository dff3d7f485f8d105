// Package layout implements the sizing vocabulary shared by every component:
// integer physical pixels, dimension values and the constraint merge rules.
//
// A [Constraint] pairs a width and a height [DimensionValue]. Each value is
// either Fixed (an exact length), Wrap (size to content, optionally bounded)
// or Fill (take everything the parent offers). [Constraint.Merge] combines a
// node's own constraint with the one its parent offers to produce the
// effective constraint the node is measured against.
//
// Types are re-exported through the root tessera package for public consumption.
package layout
