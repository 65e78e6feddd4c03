package drawer

import (
	"math"
	"slices"
)

// PanEvent carries one update of a drag gesture from the host, in
// container coordinates.
type PanEvent struct {
	// Location is the current touch location.
	Location Point

	// Translation is the cumulative touch displacement since the gesture
	// began.
	Translation Vec2

	// Velocity is the gesture velocity in pt/s. It is read on PanEnded;
	// other phases may leave it zero.
	Velocity Vec2

	// Categories lists the touch-forwarding categories of the view the
	// touch originated on and its ancestors. A gesture beginning on a
	// registered category is rejected so the touch reaches the content.
	Categories []string
}

// panSession tracks a single active drag from begin to release.
type panSession struct {
	axis        Axis
	startOffset float64
}

// PanBegan offers the start of a drag gesture to the controller. It
// reports whether the controller captures the gesture; a false return
// means the gesture was rejected and the host should let its own
// recognizers handle the touch. While captured, the host must deliver
// PanChanged updates and finish with PanEnded or PanCancelled.
//
// Beginning a drag interrupts any in-flight interruptible animation; its
// completion will never fire.
func (c *Controller) PanBegan(ev PanEvent) bool {
	if c.session != nil {
		return false
	}
	if c.gestureLocked {
		// An uninterruptible transition is in flight.
		return false
	}
	if c.possible == DirectionNone {
		return false
	}
	for _, cat := range ev.Categories {
		if _, ok := c.touchForwarding[cat]; ok {
			return false
		}
	}

	axis, draggable := c.draggableDirections()
	if draggable == DirectionNone {
		return false
	}

	if c.Gestures.RequireScreenEdgePan && !c.nearDrawerEdge(ev.Location, draggable) {
		return false
	}

	if c.delegate != nil && !c.delegate.ShouldBeginPanePan() {
		return false
	}

	// Supersede any in-flight animation: the body is handed to the touch.
	c.cancelTransition()
	c.session = &panSession{
		axis:        axis,
		startOffset: c.dyn.position().Component(axis),
	}
	c.dyn.attach(axis)
	Logger().Debug("drawer: pan captured", "axis", axis, "start", c.session.startOffset)
	return true
}

// PanChanged slaves the pane to a captured drag. The offset is clamped so
// the pane can neither be dragged past open-wide nor toward an edge
// without a draggable drawer.
func (c *Controller) PanChanged(ev PanEvent) {
	s := c.session
	if s == nil {
		return
	}
	offset := s.startOffset + ev.Translation.Component(s.axis)
	offset = c.clampDragOffset(offset, s.axis)
	c.dyn.dragTo(offset)
	c.broadcastProgress()
}

// PanEnded releases a captured drag. The projected rest state is resolved
// from the release position and velocity and requested as a normal
// animated state transition, seeded with the residual gesture velocity.
func (c *Controller) PanEnded(ev PanEvent) {
	s := c.session
	if s == nil {
		return
	}
	c.session = nil

	v := ev.Velocity.Component(s.axis)
	offset := c.dyn.position().Component(s.axis)

	state, dir := c.resolveReleaseTarget(offset, v, s.axis)
	if dir == DirectionNone {
		// Nothing displaced and nowhere to go: leave the body at rest.
		c.dyn.stop()
		return
	}
	Logger().Debug("drawer: pan released",
		"offset", offset, "velocity", v, "state", state, "direction", dir)
	c.startTransition(transitionRequest{
		state:     state,
		direction: dir,
		animated:  true,
		interrupt: true,
		velocity:  v,
	})
}

// PanCancelled abandons a captured drag (e.g. the host's gesture was
// cancelled by the system). The pane settles to the nearest rest state as
// if released with no velocity.
func (c *Controller) PanCancelled() {
	s := c.session
	if s == nil {
		return
	}
	c.session = nil
	offset := c.dyn.position().Component(s.axis)
	state, dir := c.resolveReleaseTarget(offset, 0, s.axis)
	if dir == DirectionNone {
		c.dyn.stop()
		return
	}
	c.startTransition(transitionRequest{
		state:     state,
		direction: dir,
		animated:  true,
		interrupt: true,
	})
}

// Tap offers a tap gesture to the controller. It reports whether the tap
// was consumed to close an open drawer: the pane must be displaced in a
// direction with tap-to-close enabled.
func (c *Controller) Tap(Point) bool {
	if c.gestureLocked || c.session != nil {
		return false
	}
	state, dir := c.CurrentPaneState()
	if state == PaneStateClosed || dir == DirectionNone {
		return false
	}
	if !c.tapToClose.Contains(dir) {
		return false
	}
	c.startTransition(transitionRequest{
		state:     PaneStateClosed,
		direction: dir,
		animated:  true,
		interrupt: true,
	})
	return true
}

// ShouldCancelConflictingGestures reports whether the host should require
// all other gesture recognizers on the pane surface to fail for a touch
// beginning at the given location, so the drawer pan wins contention with
// content gestures such as scrolling. True only when the corresponding
// configuration flag is set and the touch begins within the edge margin of
// a direction that has a drawer.
func (c *Controller) ShouldCancelConflictingGestures(location Point) bool {
	if !c.Gestures.ScreenEdgePanCancelsConflictingGestures {
		return false
	}
	return c.nearDrawerEdge(location, c.possible)
}

// RegisterTouchForwardingCategory registers a view category that drag
// gestures must not be captured through. A pan whose PanEvent.Categories
// include a registered category is rejected.
func (c *Controller) RegisterTouchForwardingCategory(category string) {
	c.touchForwarding[category] = struct{}{}
}

// TouchForwardingCategories returns the registered categories in sorted
// order.
func (c *Controller) TouchForwardingCategories() []string {
	out := make([]string, 0, len(c.touchForwarding))
	for cat := range c.touchForwarding {
		out = append(out, cat)
	}
	slices.Sort(out)
	return out
}

// draggableDirections returns the drawer axis and the mask of directions
// that a drag may move the pane in: registered drawers with drag-reveal
// enabled. Registered drawers always share one axis.
func (c *Controller) draggableDirections() (Axis, Direction) {
	draggable := c.possible & c.dragReveal
	var axis Axis
	ForEachDirection(c.possible, func(d Direction) {
		axis, _ = d.Axis()
	})
	return axis, draggable
}

// nearDrawerEdge reports whether location lies within the edge-pan margin
// of an edge whose direction is contained in mask.
func (c *Controller) nearDrawerEdge(location Point, mask Direction) bool {
	m := c.Gestures.EdgePanMargin
	near := false
	ForEachDirection(mask, func(d Direction) {
		switch d {
		case DirectionTop:
			near = near || location.Y <= m
		case DirectionLeft:
			near = near || location.X <= m
		case DirectionBottom:
			near = near || location.Y >= c.containerH-m
		case DirectionRight:
			near = near || location.X >= c.containerW-m
		}
	})
	return near
}

// clampDragOffset bounds a drag offset so the pane stays between closed
// and open-wide, and cannot move toward an edge without a draggable
// drawer.
func (c *Controller) clampDragOffset(offset float64, axis Axis) float64 {
	_, draggable := c.draggableDirections()
	lower, upper := 0.0, 0.0
	ForEachDirection(draggable, func(d Direction) {
		a, _ := d.Axis()
		if a != axis {
			return
		}
		sg, _ := d.Sign()
		extent := c.openWideOffset(d)
		if sg > 0 {
			upper = math.Max(upper, extent)
		} else {
			lower = math.Min(lower, extent)
		}
	})
	return math.Min(math.Max(offset, lower), upper)
}

// resolveReleaseTarget projects the rest state for a drag released at the
// given offset with the given velocity. Fast releases advance the pane to
// the next state in the direction of travel; slow releases snap to the
// nearest of closed, open and open-wide by position.
func (c *Controller) resolveReleaseTarget(offset, velocity float64, axis Axis) (PaneState, Direction) {
	dir := c.displacedDirection(offset, axis)
	if dir == DirectionNone {
		// At the closed offset: a fling can still open a drawer.
		dir = c.directionForSign(sign(velocity), axis)
		if dir == DirectionNone {
			return PaneStateClosed, c.stateDirection
		}
	}

	sg, _ := dir.Sign()
	distance := offset * sg // displacement toward dir, >= 0
	open := c.revealWidth(dir)
	wide := c.openWideOffset(dir) * sg

	if math.Abs(velocity) >= c.Gestures.FlingVelocityThreshold {
		if sign(velocity) == sg {
			// Fling toward open: next state above the current position.
			if distance < open {
				return PaneStateOpen, dir
			}
			return PaneStateOpenWide, dir
		}
		// Fling toward closed: next state below the current position.
		if distance > open {
			return PaneStateOpen, dir
		}
		return PaneStateClosed, dir
	}

	// Slow release: nearest rest state by position.
	dClosed := distance
	dOpen := math.Abs(distance - open)
	dWide := math.Abs(distance - wide)
	switch {
	case dClosed <= dOpen && dClosed <= dWide:
		return PaneStateClosed, dir
	case dOpen <= dWide:
		return PaneStateOpen, dir
	default:
		return PaneStateOpenWide, dir
	}
}

// displacedDirection maps a signed offset along axis to the registered
// direction the pane is displaced toward, or DirectionNone at zero.
func (c *Controller) displacedDirection(offset float64, axis Axis) Direction {
	return c.directionForSign(sign(offset), axis)
}

// directionForSign returns the registered direction on the given axis
// whose displacement sign matches sg.
func (c *Controller) directionForSign(sg float64, axis Axis) Direction {
	if sg == 0 {
		return DirectionNone
	}
	found := DirectionNone
	ForEachDirection(c.possible, func(d Direction) {
		a, _ := d.Axis()
		ds, _ := d.Sign()
		if a == axis && ds == sg {
			found = d
		}
	})
	return found
}
