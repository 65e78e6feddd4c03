package drawer

import "math"

// dynamicsMode identifies which behavior set currently drives the pane body.
type dynamicsMode uint8

const (
	// modeIdle: no behaviors active, the body is at rest and stepping is
	// free.
	modeIdle dynamicsMode = iota

	// modeSettling: gravity toward a target offset plus boundary
	// collisions; the mode used by command-driven transitions, bounces and
	// post-release settling.
	modeSettling

	// modeAttached: the body is slaved to a live drag; gravity and
	// collisions are suspended.
	modeAttached
)

// paneBody is the single dynamic body of the simulation: the pane's offset
// from its closed position, and its velocity. Only the active axis is ever
// displaced; the other component stays zero.
type paneBody struct {
	pos Point
	vel Vec2
}

// dynamics drives the continuous simulation of the pane body. It owns no
// policy: the controller decides targets, corridors and restitution and
// reprograms the behaviors on every transition. The same body is
// reconfigured rather than recreated, so an in-flight animation is
// redirected, never torn down and restarted.
type dynamics struct {
	body paneBody
	mode dynamicsMode

	// Settling behavior parameters, valid while mode == modeSettling.
	axis         Axis
	target       float64
	lower, upper float64
	accel        float64 // signed, pt/s²
	restitution  float64
	onSettle     func()

	// Settle thresholds, copied from Config at animate time.
	posThreshold float64
	velThreshold float64
}

func newDynamics() *dynamics {
	return &dynamics{}
}

// active reports whether any behavior is attached to the body. When false,
// stepping is a no-op and the host may stop its tick source.
func (d *dynamics) active() bool {
	return d.mode != modeIdle
}

// position returns the body's current offset from the closed position.
func (d *dynamics) position() Point {
	return d.body.pos
}

// animateTo replaces the current behavior set with gravity toward target
// and boundary collisions at the corridor ends, seeding the body with an
// initial velocity. The corridor always contains both the target and the
// body's current position; a boundary at the closed offset is implied by
// the controller passing it as a corridor end, so the body can never pass
// through closed. onSettle is invoked exactly once, when both velocity and
// distance to target fall under the thresholds.
//
// Calling animateTo while a previous animation is in flight reprograms the
// body in place; the previous onSettle is dropped without being called.
func (d *dynamics) animateTo(axis Axis, target, lower, upper, v0, accelMag, restitution, posThreshold, velThreshold float64, onSettle func()) {
	pos := d.body.pos.Component(axis)

	// Widen the corridor to include the start position so a body beyond
	// the target (e.g. dragged past open) still collides at the target on
	// its way back.
	lower = math.Min(lower, math.Min(pos, target))
	upper = math.Max(upper, math.Max(pos, target))

	dir := sign(target - pos)
	if dir == 0 {
		// Already at the rest offset: an impulse (bounce) must be pulled
		// back toward it.
		dir = -sign(v0)
	}

	// Clear any residual off-axis state from a previous transition.
	d.body.pos = Point{}.WithComponent(axis, pos)
	d.body.vel = Vec2{}.WithComponent(axis, v0)

	d.mode = modeSettling
	d.axis = axis
	d.target = target
	d.lower = lower
	d.upper = upper
	d.accel = dir * accelMag
	d.restitution = restitution
	d.posThreshold = posThreshold
	d.velThreshold = velThreshold
	d.onSettle = onSettle
}

// attach switches the body to drag-following. Gravity and collisions are
// removed; the body's position is updated only through dragTo until the
// controller starts a new animation or stops the simulation.
func (d *dynamics) attach(axis Axis) {
	d.mode = modeAttached
	d.axis = axis
	d.onSettle = nil
	d.body.vel = Vec2{}
	d.body.pos = Point{}.WithComponent(axis, d.body.pos.Component(axis))
}

// dragTo slaves the body's offset along the attached axis to a gesture
// position. No-op unless attached.
func (d *dynamics) dragTo(offset float64) {
	if d.mode != modeAttached {
		return
	}
	d.body.pos = d.body.pos.WithComponent(d.axis, offset)
}

// snapTo halts the simulation and places the body exactly at the given
// offset. Used by non-animated state changes and defensive recovery.
func (d *dynamics) snapTo(pos Point) {
	d.mode = modeIdle
	d.onSettle = nil
	d.body.pos = pos
	d.body.vel = Vec2{}
}

// stop removes all behaviors, leaving the body where it is.
func (d *dynamics) stop() {
	d.mode = modeIdle
	d.onSettle = nil
	d.body.vel = Vec2{}
}

// step advances the simulation by dt seconds and reports whether the body
// settled during this step. While attached or idle the body does not move
// on its own and step reports false.
func (d *dynamics) step(dt float64) (settled bool) {
	if d.mode != modeSettling || dt <= 0 {
		return false
	}

	v := d.body.vel.Component(d.axis)
	p := d.body.pos.Component(d.axis)

	v += d.accel * dt
	p += v * dt

	// Boundary collisions: clamp and reflect with restitution.
	if p < d.lower {
		p = d.lower
		if v < 0 {
			v = -v * d.restitution
		}
	} else if p > d.upper {
		p = d.upper
		if v > 0 {
			v = -v * d.restitution
		}
	}

	if !isFinite(p) || !isFinite(v) {
		// Degenerate parameters produced a numeric blow-up. Recover by
		// clamping to the rest position; a transition must never strand
		// the pane at a non-finite offset.
		Logger().Warn("drawer: non-finite dynamics state, clamping to target",
			"target", d.target)
		p = d.target
		v = 0
	}

	d.body.pos = d.body.pos.WithComponent(d.axis, p)
	d.body.vel = d.body.vel.WithComponent(d.axis, v)

	if math.Abs(v) < d.velThreshold && math.Abs(p-d.target) < d.posThreshold {
		d.body.pos = d.body.pos.WithComponent(d.axis, d.target)
		d.body.vel = Vec2{}
		d.mode = modeIdle
		fn := d.onSettle
		d.onSettle = nil
		if fn != nil {
			fn()
		}
		return true
	}
	return false
}

// sign returns -1, 0 or 1 matching the sign of f.
func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
