// Package tessera is the layout and composition core of a retained-frame
// declarative UI engine.
//
// Every frame an application closure composes a fresh component tree through
// a *Composer. Each node carries a Constraint, an optional measure callback
// and an optional state handler. The frame driver then delivers the frame's
// input events to every state handler, measures the tree (constraints flow
// down, sizes flow up, positions are recorded by explicit placement) and
// extracts an ordered, absolutely positioned DrawCommand stream for a
// renderer. The tree is cleared before the next frame begins.
//
// Users import this single package for the core API: constraint algebra,
// tree and composition, measurement, input state, and the App frame loop.
// Ready-made components live in the components package.
package tessera
