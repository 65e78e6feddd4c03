package drawer

import (
	"fmt"
	"math"
	"time"
)

// Content is an opaque reference to a visual surface managed by the host:
// the pane's content or a drawer's content. The engine never inspects it.
type Content any

// slot associates a registered drawer direction with its content and an
// optional per-direction reveal width override.
type slot struct {
	content     Content
	revealWidth float64 // 0 means unset, fall back to the axis default
}

// transition is the cancellable token for one in-flight state request.
// Superseding the request marks the token cancelled so its completion and
// delegate "did" notification can never fire; only the most recent
// request's token completes.
type transition struct {
	state      PaneState
	direction  Direction
	completion func()
	cancelled  bool
}

// transitionRequest is a validated, direction-resolved state request.
type transitionRequest struct {
	state      PaneState
	direction  Direction // cardinal, or DirectionNone for a no-drawer close
	animated   bool
	interrupt  bool
	velocity   float64 // initial velocity along the axis, pt/s
	completion func()
}

// Controller is the pane-state and physics engine of a drawer container.
// It tracks the discrete pane state per direction, drives the continuous
// dynamics simulation, and reconciles command-driven transitions with live
// gesture interruption.
//
// A Controller is single-threaded by design: the host calls Step at its
// display refresh cadence and feeds gesture events from the same loop.
// Apart from SetLogger/Logger, no method is safe for concurrent use.
type Controller struct {
	// Physics holds the dynamics tuning. Fields may be mutated directly
	// between transitions; out-of-range values are clamped at use.
	Physics Config

	// Gestures holds the global gesture tuning.
	Gestures GestureConfig

	containerW float64
	containerH float64

	slots    map[Direction]*slot
	possible Direction // OR of registered slot directions

	paneContent Content

	dragReveal Direction // mask of directions where drag-reveal is enabled
	tapToClose Direction // mask of directions where tap-to-close is enabled

	touchForwarding map[string]struct{}

	stylers  *stylerRegistry
	delegate Delegate

	dyn *dynamics

	state          PaneState
	stateDirection Direction // displacement direction of Open/OpenWide

	current         *transition
	motionDirection Direction // direction the current motion is associated with
	session         *panSession
	gestureLocked   bool // an uninterruptible transition is in flight

	stepping bool
	deferred []func()
}

// New creates a Controller for a container of the given size. The
// container size defines the open-wide travel distance and the screen-edge
// bands used by edge pans.
func New(width, height float64, opts ...Option) *Controller {
	c := &Controller{
		Physics:         DefaultConfig(),
		Gestures:        DefaultGestureConfig(),
		containerW:      width,
		containerH:      height,
		slots:           make(map[Direction]*slot),
		dragReveal:      DirectionAll,
		tapToClose:      DirectionAll,
		touchForwarding: make(map[string]struct{}),
		stylers:         newStylerRegistry(),
		dyn:             newDynamics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetContainerSize updates the container dimensions, e.g. after a host
// resize. When the pane is at rest its offset is re-derived from the
// current discrete state so an open-wide pane stays past the new edge.
func (c *Controller) SetContainerSize(width, height float64) {
	c.containerW = width
	c.containerH = height
	if !c.dyn.active() && c.stateDirection != DirectionNone {
		c.dyn.snapTo(c.offsetPoint(c.state, c.stateDirection))
		c.broadcastProgress()
	}
}

// ContainerSize returns the container dimensions.
func (c *Controller) ContainerSize() (width, height float64) {
	return c.containerW, c.containerH
}

// SetDelegate sets the delegate that receives state notifications and pan
// admission queries. Pass nil to remove it.
func (c *Controller) SetDelegate(d Delegate) {
	c.delegate = d
}

// --- Drawer slots ---------------------------------------------------------

// SetDrawerContent registers content to be revealed as a drawer in the
// given direction. At most two drawers can be registered, and a second
// drawer must be exactly opposite the first; otherwise ErrSlotConflict is
// returned and the existing slots are unchanged. Re-registering a
// direction replaces its content. Passing nil content removes the slot.
func (c *Controller) SetDrawerContent(content Content, direction Direction) error {
	if !direction.IsCardinal() {
		return ErrInvalidDirection
	}
	if content == nil {
		return c.removeDrawerSlot(direction)
	}
	s, ok := c.slots[direction]
	if !ok || s.content == nil {
		for existing, es := range c.slots {
			if es.content == nil || existing == direction {
				continue
			}
			if existing != direction.Opposite() {
				return fmt.Errorf("%w: %v conflicts with %v", ErrSlotConflict, direction, existing)
			}
		}
	}
	if !ok {
		s = &slot{}
		c.slots[direction] = s
	}
	s.content = content
	c.recomputePossible()
	return nil
}

// DrawerContent returns the content registered for the given direction, or
// nil when the slot is empty.
func (c *Controller) DrawerContent(direction Direction) (Content, error) {
	if !direction.IsCardinal() {
		return nil, ErrInvalidDirection
	}
	s, ok := c.slots[direction]
	if !ok {
		return nil, nil
	}
	return s.content, nil
}

// PossibleDrawerDirection returns the mask of directions that currently
// have a drawer registered.
func (c *Controller) PossibleDrawerDirection() Direction {
	return c.possible
}

func (c *Controller) removeDrawerSlot(direction Direction) error {
	s, ok := c.slots[direction]
	if !ok || s.content == nil {
		return nil
	}
	// Keep the slot so a reveal width override survives re-registration.
	s.content = nil
	c.recomputePossible()

	sg, _ := direction.Sign()
	axis, _ := direction.Axis()
	displaced := sign(c.dyn.position().Component(axis)) == sg
	inFlight := c.dyn.active() && c.motionDirection == direction
	if c.stateDirection == direction || inFlight || displaced {
		// The pane can neither rest nor keep moving toward a drawer that
		// no longer exists.
		Logger().Debug("drawer: removed active drawer, snapping closed", "direction", direction)
		c.cancelTransition()
		c.session = nil
		c.dyn.snapTo(Point{})
		c.state = PaneStateClosed
		c.stateDirection = DirectionNone
		c.motionDirection = DirectionNone
	}
	return nil
}

func (c *Controller) recomputePossible() {
	c.possible = DirectionNone
	for d, s := range c.slots {
		if s.content != nil {
			c.possible |= d
		}
	}
}

// --- Pane content ---------------------------------------------------------

// PaneContent returns the current pane content.
func (c *Controller) PaneContent() Content {
	return c.paneContent
}

// SetPaneContent replaces the pane content. When animated and
// Config.SlideOffAnimationEnabled is set and a drawer is registered, the
// pane first slides open-wide, the content is swapped while the pane is
// off screen, and the pane animates closed again; completion fires after
// the pane re-settles. Otherwise the content is swapped in place and
// completion fires synchronously.
func (c *Controller) SetPaneContent(content Content, animated bool, completion func()) {
	dir := c.slideOffDirection()
	if !animated || !c.Physics.SlideOffAnimationEnabled || dir == DirectionNone {
		c.paneContent = content
		if completion != nil {
			completion()
		}
		return
	}
	c.startTransition(transitionRequest{
		state:     PaneStateOpenWide,
		direction: dir,
		animated:  true,
		completion: func() {
			c.paneContent = content
			c.startTransition(transitionRequest{
				state:      PaneStateClosed,
				direction:  dir,
				animated:   true,
				completion: completion,
			})
		},
	})
}

// slideOffDirection picks the direction a pane replacement slides toward:
// the currently displaced direction when there is one, otherwise the first
// registered drawer direction.
func (c *Controller) slideOffDirection() Direction {
	if c.stateDirection != DirectionNone {
		return c.stateDirection
	}
	found := DirectionNone
	ForEachDirection(c.possible, func(d Direction) {
		if found == DirectionNone {
			found = d
		}
	})
	return found
}

// --- Reveal width ---------------------------------------------------------

// SetRevealWidth sets the distance the pane travels to reach the open
// state, for every direction in the mask. Non-positive widths are clamped
// to a minimal positive value with a warning.
func (c *Controller) SetRevealWidth(width float64, mask Direction) error {
	if mask == DirectionNone || !mask.IsValidMask() {
		return ErrInvalidDirection
	}
	if width <= 0 {
		Logger().Warn("drawer: non-positive reveal width clamped", "width", width)
		width = 1
	}
	ForEachDirection(mask, func(d Direction) {
		s, ok := c.slots[d]
		if !ok {
			// A width-only slot holds the override; it is not a drawer
			// until content is registered for it.
			s = &slot{}
			c.slots[d] = s
		}
		s.revealWidth = width
	})
	return nil
}

// RevealWidth returns the reveal width for a single direction, falling
// back to the axis default when it has not been set.
func (c *Controller) RevealWidth(direction Direction) (float64, error) {
	if !direction.IsCardinal() {
		return 0, ErrInvalidDirection
	}
	return c.revealWidth(direction), nil
}

// CurrentRevealWidth returns the distance the drawer is currently opened:
// 0 when closed, the direction's reveal width when open, and the open-wide
// travel distance when open wide.
func (c *Controller) CurrentRevealWidth() float64 {
	pos := c.dyn.position()
	return math.Abs(pos.X) + math.Abs(pos.Y)
}

func (c *Controller) revealWidth(direction Direction) float64 {
	if s, ok := c.slots[direction]; ok && s.revealWidth > 0 {
		return s.revealWidth
	}
	axis, _ := direction.Axis()
	if axis == AxisHorizontal {
		return DefaultRevealWidthHorizontal
	}
	return DefaultRevealWidthVertical
}

// --- Gesture configuration ------------------------------------------------

// SetDragRevealEnabled sets whether a drag gesture may move the pane in
// every direction of the mask.
func (c *Controller) SetDragRevealEnabled(enabled bool, mask Direction) error {
	return c.setDirectionFlag(&c.dragReveal, enabled, mask)
}

// DragRevealEnabled reports whether drag-reveal is enabled for a single
// direction.
func (c *Controller) DragRevealEnabled(direction Direction) (bool, error) {
	if !direction.IsCardinal() {
		return false, ErrInvalidDirection
	}
	return c.dragReveal.Contains(direction), nil
}

// SetTapToCloseEnabled sets whether a tap on the pane closes an open
// drawer, for every direction of the mask.
func (c *Controller) SetTapToCloseEnabled(enabled bool, mask Direction) error {
	return c.setDirectionFlag(&c.tapToClose, enabled, mask)
}

// TapToCloseEnabled reports whether tap-to-close is enabled for a single
// direction.
func (c *Controller) TapToCloseEnabled(direction Direction) (bool, error) {
	if !direction.IsCardinal() {
		return false, ErrInvalidDirection
	}
	return c.tapToClose.Contains(direction), nil
}

func (c *Controller) setDirectionFlag(mask *Direction, enabled bool, dirs Direction) error {
	if dirs == DirectionNone || !dirs.IsValidMask() {
		return ErrInvalidDirection
	}
	if enabled {
		*mask |= dirs
	} else {
		*mask &^= dirs
	}
	return nil
}

// --- Stylers --------------------------------------------------------------

// AddStyler registers a styler for every direction in the mask. Stylers
// are invoked in insertion order on every physics tick and on every
// non-animated snap. Registering the same styler twice for a direction is
// a no-op.
func (c *Controller) AddStyler(s Styler, mask Direction) error {
	if s == nil || mask == DirectionNone || !mask.IsValidMask() {
		return ErrInvalidDirection
	}
	c.stylers.add(s, mask)
	return nil
}

// RemoveStyler unregisters a styler from every direction in the mask.
func (c *Controller) RemoveStyler(s Styler, mask Direction) error {
	if mask == DirectionNone || !mask.IsValidMask() {
		return ErrInvalidDirection
	}
	c.stylers.remove(s, mask)
	return nil
}

// StylersFor returns the stylers registered for the directions in the
// mask, in canonical direction order then insertion order.
func (c *Controller) StylersFor(mask Direction) ([]Styler, error) {
	if !mask.IsValidMask() {
		return nil, ErrInvalidDirection
	}
	return c.stylers.forDirection(mask), nil
}

// --- State queries --------------------------------------------------------

// CurrentPaneState returns the discrete pane state together with the
// direction it is displaced toward. The direction is DirectionNone when
// the pane is closed.
func (c *Controller) CurrentPaneState() (PaneState, Direction) {
	return c.state, c.stateDirection
}

// PaneStateForDirection returns the discrete pane state as seen from a
// single direction: Closed unless the pane is displaced toward it.
func (c *Controller) PaneStateForDirection(direction Direction) (PaneState, error) {
	if !direction.IsCardinal() {
		return PaneStateClosed, ErrInvalidDirection
	}
	if c.stateDirection == direction {
		return c.state, nil
	}
	return PaneStateClosed, nil
}

// PaneOffset returns the pane's current offset from its closed position.
// The host applies it to the pane surface each frame.
func (c *Controller) PaneOffset() Point {
	return c.dyn.position()
}

// Animating reports whether the simulation has active behaviors and the
// host must keep calling Step. False at rest; stepping then costs nothing.
func (c *Controller) Animating() bool {
	return c.dyn.active()
}

// --- State requests -------------------------------------------------------

// PaneStateRequest describes a requested pane state transition.
type PaneStateRequest struct {
	// State is the requested rest state.
	State PaneState

	// Direction disambiguates the drawer when two are registered. It may
	// be left as DirectionNone when a single drawer is registered, or
	// when requesting PaneStateClosed (which closes whichever direction
	// is active).
	Direction Direction

	// Animated selects physics-driven motion; otherwise the pane snaps
	// synchronously.
	Animated bool

	// AllowUserInterruption permits a drag gesture to capture the pane
	// while the animated transition is in flight. An interrupted
	// request's Completion never fires.
	AllowUserInterruption bool

	// Completion is invoked exactly once when the requested state is
	// reached, unless the request is superseded first. Synchronous for
	// non-animated requests.
	Completion func()
}

// RequestPaneState requests a pane state transition. A new request always
// preempts any in-flight animation by reconfiguring the same body; the
// superseded request's completion never fires. Requesting the current
// state with Animated set still runs the animation and completes on
// settle.
//
// Validation errors (ErrInvalidDirection, ErrAmbiguousDirection,
// ErrNoDrawer) are returned synchronously and leave all state unchanged.
func (c *Controller) RequestPaneState(req PaneStateRequest) error {
	if !req.State.valid() {
		return fmt.Errorf("drawer: unknown pane state %d", req.State)
	}
	dir, err := c.resolveRequestDirection(req.State, req.Direction)
	if err != nil {
		return err
	}
	c.startTransition(transitionRequest{
		state:      req.State,
		direction:  dir,
		animated:   req.Animated,
		interrupt:  req.AllowUserInterruption,
		completion: req.Completion,
	})
	return nil
}

// SetPaneState snaps the pane to a state synchronously, without animation.
// Equivalent to RequestPaneState with Animated unset.
func (c *Controller) SetPaneState(state PaneState, direction Direction) error {
	return c.RequestPaneState(PaneStateRequest{State: state, Direction: direction})
}

// BouncePaneOpen bounces the pane toward the drawer in the given direction
// and lets it settle back to its current rest state, which is left
// unchanged. Direction may be DirectionNone when a single drawer is
// registered. Completion fires once the pane re-settles.
func (c *Controller) BouncePaneOpen(direction Direction, allowUserInterruption bool, completion func()) error {
	dir, err := c.resolveRequestDirection(PaneStateOpen, direction)
	if err != nil {
		return err
	}
	c.runDeferred(func() { c.startBounce(dir, allowUserInterruption, completion) })
	return nil
}

// resolveRequestDirection validates and infers the direction of a state or
// bounce request.
func (c *Controller) resolveRequestDirection(state PaneState, direction Direction) (Direction, error) {
	if direction != DirectionNone && !direction.IsCardinal() {
		return DirectionNone, ErrInvalidDirection
	}
	if state == PaneStateClosed {
		if direction != DirectionNone {
			return direction, nil
		}
		// Close whichever direction is active; fall back to a sole
		// registered drawer for delegate pairing.
		if c.stateDirection != DirectionNone {
			return c.stateDirection, nil
		}
		if c.motionDirection != DirectionNone {
			return c.motionDirection, nil
		}
		if c.possible.IsCardinal() {
			return c.possible, nil
		}
		return DirectionNone, nil
	}
	if direction == DirectionNone {
		if c.possible == DirectionNone {
			return DirectionNone, ErrNoDrawer
		}
		if !c.possible.IsCardinal() {
			return DirectionNone, ErrAmbiguousDirection
		}
		return c.possible, nil
	}
	if s, ok := c.slots[direction]; !ok || s.content == nil {
		return DirectionNone, fmt.Errorf("%w: %v", ErrNoDrawer, direction)
	}
	return direction, nil
}

// startTransition executes a validated state request. Requests issued
// while a physics tick is being processed are deferred to the end of that
// tick so the in-progress behavior set is never reconfigured mid-step.
func (c *Controller) startTransition(req transitionRequest) {
	c.runDeferred(func() { c.applyTransition(req) })
}

func (c *Controller) runDeferred(fn func()) {
	if c.stepping {
		c.deferred = append(c.deferred, fn)
		return
	}
	fn()
}

func (c *Controller) applyTransition(req transitionRequest) {
	// A new request is a commitment to the latest intent: whatever was in
	// flight is superseded, its completion orphaned.
	c.cancelTransition()
	c.session = nil

	if c.delegate != nil {
		c.delegate.MayUpdateToPaneState(req.state, req.direction)
	}

	target := c.targetOffset(req.state, req.direction)
	axis := AxisHorizontal
	if req.direction != DirectionNone {
		axis, _ = req.direction.Axis()
	}
	c.motionDirection = req.direction

	if !req.animated {
		c.dyn.snapTo(Point{}.WithComponent(axis, target))
		c.finishTransition(&transition{
			state:      req.state,
			direction:  req.direction,
			completion: req.completion,
		})
		return
	}

	cfg := c.Physics.sanitized()
	token := &transition{
		state:      req.state,
		direction:  req.direction,
		completion: req.completion,
	}
	c.current = token
	c.gestureLocked = !req.interrupt

	lower := math.Min(0, target)
	upper := math.Max(0, target)
	Logger().Debug("drawer: animating pane",
		"state", req.state, "direction", req.direction, "target", target, "velocity", req.velocity)
	c.dyn.animateTo(axis, target, lower, upper,
		req.velocity,
		cfg.GravityMagnitude*cfg.GravityScale,
		cfg.Elasticity,
		cfg.SettlePositionThreshold, cfg.SettleVelocityThreshold,
		func() {
			if token.cancelled {
				return
			}
			c.finishTransition(token)
		})
}

// startBounce seeds an impulse away from the current rest state and lets
// the boundary at the rest offset pull the pane back. The discrete state
// is never changed and no delegate notifications fire.
func (c *Controller) startBounce(dir Direction, interrupt bool, completion func()) {
	c.cancelTransition()
	c.session = nil

	cfg := c.Physics.sanitized()
	axis, _ := dir.Axis()
	sg, _ := dir.Sign()

	rest := c.targetOffset(c.state, c.stateDirection)
	wide := c.openWideOffset(dir)
	lower := math.Min(rest, wide)
	upper := math.Max(rest, wide)

	token := &transition{
		state:      c.state,
		direction:  c.stateDirection,
		completion: completion,
	}
	c.current = token
	c.gestureLocked = !interrupt
	c.motionDirection = dir

	Logger().Debug("drawer: bouncing pane", "direction", dir, "rest", rest)
	c.dyn.animateTo(axis, rest, lower, upper,
		sg*cfg.BounceMagnitude*bounceImpulseScale,
		cfg.GravityMagnitude*cfg.GravityScale,
		cfg.BounceElasticity,
		cfg.SettlePositionThreshold, cfg.SettleVelocityThreshold,
		func() {
			if token.cancelled {
				return
			}
			// Rest state unchanged: release the token without touching
			// the discrete state or notifying the delegate.
			c.current = nil
			c.gestureLocked = false
			c.broadcastProgress()
			c.motionDirection = c.stateDirection
			if token.completion != nil {
				token.completion()
			}
		})
}

// bounceImpulseScale converts BounceMagnitude units into an instantaneous
// seed velocity in pt/s.
const bounceImpulseScale = 10.0

// cancelTransition orphans the in-flight request, if any. Its completion
// and "did" notification will never fire.
func (c *Controller) cancelTransition() {
	if c.current != nil {
		c.current.cancelled = true
		c.current = nil
	}
	c.gestureLocked = false
}

// finishTransition commits a settled (or snapped) transition: discrete
// state update, styler broadcast, delegate notification, completion.
func (c *Controller) finishTransition(token *transition) {
	c.current = nil
	c.gestureLocked = false
	c.state = token.state
	if token.state == PaneStateClosed {
		c.stateDirection = DirectionNone
	} else {
		c.stateDirection = token.direction
	}
	c.motionDirection = token.direction
	c.broadcastProgress()
	Logger().Debug("drawer: pane state updated",
		"state", token.state, "direction", token.direction)
	if c.delegate != nil {
		c.delegate.DidUpdateToPaneState(token.state, token.direction)
	}
	if token.completion != nil {
		token.completion()
	}
}

// --- Geometry -------------------------------------------------------------

// targetOffset returns the signed rest offset along the direction's axis
// for a discrete state.
func (c *Controller) targetOffset(state PaneState, direction Direction) float64 {
	if direction == DirectionNone {
		return 0
	}
	sg, _ := direction.Sign()
	switch state {
	case PaneStateOpen:
		return sg * c.revealWidth(direction)
	case PaneStateOpenWide:
		return c.openWideOffset(direction)
	}
	return 0
}

// offsetPoint returns the rest offset of a discrete state as a point.
func (c *Controller) offsetPoint(state PaneState, direction Direction) Point {
	if direction == DirectionNone {
		return Point{}
	}
	axis, _ := direction.Axis()
	return Point{}.WithComponent(axis, c.targetOffset(state, direction))
}

// openWideOffset returns the signed offset of the open-wide state: the
// container extent along the direction's axis plus the edge offset.
func (c *Controller) openWideOffset(direction Direction) float64 {
	axis, err := direction.Axis()
	if err != nil {
		return 0
	}
	sg, _ := direction.Sign()
	extent := c.containerW
	if axis == AxisVertical {
		extent = c.containerH
	}
	return sg * (extent + c.Physics.OpenWideEdgeOffset)
}

// --- Tick loop ------------------------------------------------------------

// Step advances the physics simulation by dt. The host calls Step at its
// display refresh cadence while Animating reports true; at rest it is a
// cheap no-op. Stylers observe the new position on every step; requests
// issued from their callbacks (or from completions) are deferred to the
// end of the step.
func (c *Controller) Step(dt time.Duration) {
	c.stepping = true
	moved := c.dyn.active()
	settled := c.dyn.step(dt.Seconds())
	// A settling step already broadcast the final position from its
	// completion path.
	if moved && !settled {
		c.broadcastProgress()
	}
	c.stepping = false

	for len(c.deferred) > 0 {
		pending := c.deferred
		c.deferred = nil
		for _, fn := range pending {
			fn()
		}
	}
}

// broadcastProgress reports the pane's progress toward the open state to
// the stylers of the direction it is displaced toward (or, at zero
// displacement, the direction the motion is associated with).
func (c *Controller) broadcastProgress() {
	pos := c.dyn.position()
	dir := DirectionNone
	var offset float64
	for _, axis := range []Axis{AxisHorizontal, AxisVertical} {
		if v := pos.Component(axis); v != 0 {
			dir = c.displacedDirection(v, axis)
			offset = math.Abs(v)
		}
	}
	if dir == DirectionNone {
		dir = c.motionDirection
		offset = 0
	}
	if dir == DirectionNone {
		return
	}
	progress := offset / c.revealWidth(dir)
	progress = math.Min(math.Max(progress, 0), 1)
	c.stylers.broadcast(progress, dir)
}
