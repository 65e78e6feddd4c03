package drawer

// Delegate receives pane state change notifications from a Controller and
// can veto the start of a pane pan. All callbacks run synchronously on the
// host's event loop.
//
// Embed BaseDelegate to implement only the callbacks you care about.
type Delegate interface {
	// MayUpdateToPaneState is called once per state request, before any
	// motion starts. The user can interrupt an animated transition, so
	// this call is not always paired with DidUpdateToPaneState.
	//
	// For transitions to PaneStateClosed, direction is the direction the
	// pane is transitioning from; otherwise it is the direction it is
	// transitioning to.
	MayUpdateToPaneState(state PaneState, direction Direction)

	// DidUpdateToPaneState is called exactly once per settled transition,
	// paired with the most recent MayUpdateToPaneState for that request.
	// Superseded requests never produce a DidUpdateToPaneState.
	DidUpdateToPaneState(state PaneState, direction Direction)

	// ShouldBeginPanePan is queried when a drag gesture passes the
	// controller's own admission checks. Returning false rejects the
	// gesture.
	ShouldBeginPanePan() bool
}

// BaseDelegate is a no-op Delegate implementation intended for embedding.
type BaseDelegate struct{}

func (BaseDelegate) MayUpdateToPaneState(PaneState, Direction) {}
func (BaseDelegate) DidUpdateToPaneState(PaneState, Direction) {}
func (BaseDelegate) ShouldBeginPanePan() bool                  { return true }
