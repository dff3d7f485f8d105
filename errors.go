package tessera

import (
	"errors"
	"fmt"
)

// ErrReentrantMeasure is returned when a node is measured again while its own
// measure callback is still running.
var ErrReentrantMeasure = errors.New("node is already being measured")

// ErrUnknownNode is returned when a NodeID does not belong to the current frame.
var ErrUnknownNode = errors.New("unknown node")

// ChildMeasurementError reports that measuring Child's subtree failed.
// It is created where the failing callback returns, so Child names the
// deepest node whose callback produced Err. Parents propagate it unchanged.
type ChildMeasurementError struct {
	Child NodeID
	Name  string
	Err   error
}

// Error implements the error interface.
func (e *ChildMeasurementError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("measuring child %d (%s): %v", e.Child, e.Name, e.Err)
	}
	return fmt.Sprintf("measuring child %d: %v", e.Child, e.Err)
}

// Unwrap returns the underlying failure.
func (e *ChildMeasurementError) Unwrap() error {
	return e.Err
}

// MeasureFuncError is a generic failure raised by a measure callback, for
// example when an expected child is missing.
type MeasureFuncError struct {
	Node    NodeID
	Message string
}

// Error implements the error interface.
func (e *MeasureFuncError) Error() string {
	return fmt.Sprintf("measure node %d: %s", e.Node, e.Message)
}

// NewMeasureFuncError creates a MeasureFuncError with a formatted message.
func NewMeasureFuncError(node NodeID, format string, args ...any) *MeasureFuncError {
	return &MeasureFuncError{Node: node, Message: fmt.Sprintf(format, args...)}
}
