// Package drawer implements the state and physics engine of an
// interactive drawer container: a primary surface (the pane) that can be
// dragged, flicked, or commanded to slide away from up to two opposing
// container edges, revealing secondary content (a drawer) underneath, with
// physically simulated motion rather than linear animation.
//
// # Overview
//
// The engine is host-agnostic. It owns no views and renders nothing: the
// host feeds it gesture events and display ticks, and reads back the pane
// offset each frame to position its own surfaces. The hard part the engine
// solves is reconciliation: discrete pane states (closed, open, open-wide,
// per direction), a continuous dynamics simulation (gravity, boundary
// collisions, elasticity, bounce impulses), and live gestures that may
// interrupt or redirect either at any instant.
//
// # Quick Start
//
//	c := drawer.New(320, 568)
//	c.SetDrawerContent(menu, drawer.DirectionLeft)
//
//	// Command-driven transition:
//	c.RequestPaneState(drawer.PaneStateRequest{
//	    State:    drawer.PaneStateOpen,
//	    Animated: true,
//	    AllowUserInterruption: true,
//	    Completion: func() { /* settled */ },
//	})
//
//	// Host display loop:
//	for c.Animating() {
//	    c.Step(frameDuration)
//	    pane.SetOffset(c.PaneOffset())
//	}
//
// Gestures are forwarded from the host's recognizer:
//
//	if c.PanBegan(ev) {
//	    // deliver PanChanged / PanEnded for this gesture
//	}
//
// # Architecture
//
// The package is organized into:
//   - Direction utility: bitmask directions with axis/sign mapping
//   - Dynamics: the single-body simulation (gravity, collision, attachment)
//   - Gesture controller: drag admission, clamping, release resolution
//   - Pane state machine: Controller, request supersession, delegation
//   - Stylers: per-direction observers deriving visual effects from motion
//
// # Concurrency
//
// A Controller is driven by one logical thread: the host's event loop.
// Methods are not safe for concurrent use; only SetLogger and Logger are.
// A transition request made from a styler or completion callback during a
// tick is deferred to the end of that tick.
package drawer
