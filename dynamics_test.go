package drawer

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const stepDT = 1.0 / 60

// run advances the simulation until it settles or maxSteps elapse,
// returning the number of steps taken.
func run(t *testing.T, d *dynamics, maxSteps int) int {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		if d.step(stepDT) {
			return i + 1
		}
		if !d.active() {
			return i
		}
	}
	t.Fatalf("dynamics did not settle within %d steps (pos=%v vel=%v)",
		maxSteps, d.body.pos, d.body.vel)
	return maxSteps
}

func TestAnimateToSettlesAtTarget(t *testing.T) {
	d := newDynamics()
	settled := 0
	d.animateTo(AxisHorizontal, 267, 0, 267, 0, 2000, 0, 0.5, 2, func() { settled++ })

	run(t, d, 600)

	if settled != 1 {
		t.Fatalf("settle callback fired %d times, want 1", settled)
	}
	if !scalar.EqualWithinAbs(d.body.pos.X, 267, 1e-9) {
		t.Errorf("settled position = %v, want 267", d.body.pos.X)
	}
	if d.active() {
		t.Error("dynamics still active after settling")
	}
}

func TestAnimateToNegativeTarget(t *testing.T) {
	d := newDynamics()
	d.animateTo(AxisHorizontal, -300, -300, 0, 0, 2000, 0, 0.5, 2, nil)

	run(t, d, 600)

	if !scalar.EqualWithinAbs(d.body.pos.X, -300, 1e-9) {
		t.Errorf("settled position = %v, want -300", d.body.pos.X)
	}
}

func TestAnimateFromBeyondTarget(t *testing.T) {
	// Dragged past the open offset: the body must come back and stop at
	// the target rather than fall through toward closed.
	d := newDynamics()
	d.body.pos = Pt(340, 0)
	d.animateTo(AxisHorizontal, 267, 0, 267, 0, 2000, 0, 0.5, 2, nil)

	run(t, d, 600)

	if !scalar.EqualWithinAbs(d.body.pos.X, 267, 1e-9) {
		t.Errorf("settled position = %v, want 267", d.body.pos.X)
	}
}

func TestClosedBoundaryStopsOvershoot(t *testing.T) {
	// Fling toward closed with a large velocity: the boundary at zero
	// must stop the body, never letting it pass through.
	d := newDynamics()
	d.body.pos = Pt(100, 0)
	d.animateTo(AxisHorizontal, 0, 0, 100, -5000, 2000, 0, 0.5, 2, nil)

	for i := 0; i < 600; i++ {
		if d.step(stepDT) {
			break
		}
		if d.body.pos.X < 0 {
			t.Fatalf("body passed through the closed boundary: %v", d.body.pos.X)
		}
	}
	if !scalar.EqualWithinAbs(d.body.pos.X, 0, 1e-9) {
		t.Errorf("settled position = %v, want 0", d.body.pos.X)
	}
}

func TestBounceImpulseReturnsToRest(t *testing.T) {
	// Impulse away from rest with a restitution boundary at rest: the
	// body must fly out, fall back, bounce with decaying energy, and
	// settle where it started.
	d := newDynamics()
	var apex float64
	d.animateTo(AxisHorizontal, 0, 0, 340, 600, 2000, 0.5, 0.5, 2, nil)

	for i := 0; i < 2000; i++ {
		if d.step(stepDT) {
			break
		}
		apex = math.Max(apex, d.body.pos.X)
	}
	if d.active() {
		t.Fatal("bounce did not settle")
	}
	if apex < 10 {
		t.Errorf("bounce apex = %v, expected a visible excursion", apex)
	}
	if !scalar.EqualWithinAbs(d.body.pos.X, 0, 1e-9) {
		t.Errorf("settled position = %v, want 0", d.body.pos.X)
	}
}

func TestRestitutionDecaysEnergy(t *testing.T) {
	// With restitution 0.5 the rebound speed after a collision must be
	// half the impact speed.
	d := newDynamics()
	d.body.pos = Pt(50, 0)
	d.animateTo(AxisHorizontal, 0, 0, 340, 0, 2000, 0.5, 0.5, 2, nil)

	var impact, rebound float64
	for i := 0; i < 600; i++ {
		before := d.body.vel.X
		if d.step(stepDT) {
			break
		}
		if before < 0 && d.body.vel.X > 0 {
			// Gravity (2000 pt/s² toward the boundary) still applies on
			// the collision step before the reflection.
			impact = -(before - 2000*stepDT)
			rebound = d.body.vel.X
			break
		}
	}
	if rebound == 0 {
		t.Fatal("no collision observed")
	}
	if !scalar.EqualWithinAbs(rebound, impact*0.5, 1e-6) {
		t.Errorf("rebound speed = %v, want %v", rebound, impact*0.5)
	}
}

func TestNonFiniteStateClampsToTarget(t *testing.T) {
	d := newDynamics()
	d.animateTo(AxisHorizontal, 267, 0, 267, 0, math.Inf(1), 0, 0.5, 2, nil)

	run(t, d, 10)

	if !isFinite(d.body.pos.X) {
		t.Fatalf("position left non-finite: %v", d.body.pos.X)
	}
	if d.body.pos.X != 267 {
		t.Errorf("clamped position = %v, want 267", d.body.pos.X)
	}
}

func TestAttachSuspendsSimulation(t *testing.T) {
	d := newDynamics()
	d.animateTo(AxisHorizontal, 267, 0, 267, 0, 2000, 0, 0.5, 2, func() {
		t.Error("superseded settle callback fired")
	})
	d.step(stepDT)

	d.attach(AxisHorizontal)
	pos := d.body.pos
	if d.step(stepDT) {
		t.Error("attached body settled")
	}
	if d.body.pos != pos {
		t.Error("attached body moved without dragTo")
	}

	d.dragTo(120)
	if d.body.pos.X != 120 {
		t.Errorf("dragTo position = %v, want 120", d.body.pos.X)
	}
}

func TestDragToIgnoredWhenNotAttached(t *testing.T) {
	d := newDynamics()
	d.dragTo(50)
	if d.body.pos.X != 0 {
		t.Errorf("dragTo moved a detached body to %v", d.body.pos.X)
	}
}

func TestSnapToHaltsAndPlaces(t *testing.T) {
	d := newDynamics()
	d.animateTo(AxisHorizontal, 267, 0, 267, 0, 2000, 0, 0.5, 2, func() {
		t.Error("settle callback fired after snap")
	})
	d.snapTo(Pt(267, 0))
	if d.active() {
		t.Error("dynamics active after snap")
	}
	if d.step(stepDT) {
		t.Error("snapped body settled again")
	}
	if d.body.pos != Pt(267, 0) {
		t.Errorf("snapped position = %v", d.body.pos)
	}
}

func TestAnimateToReprogramsInPlace(t *testing.T) {
	d := newDynamics()
	first := 0
	d.animateTo(AxisHorizontal, 267, 0, 267, 0, 2000, 0, 0.5, 2, func() { first++ })
	for i := 0; i < 10; i++ {
		d.step(stepDT)
	}

	second := 0
	d.animateTo(AxisHorizontal, 0, 0, 267, 0, 2000, 0, 0.5, 2, func() { second++ })
	run(t, d, 600)

	if first != 0 {
		t.Errorf("superseded settle callback fired %d times", first)
	}
	if second != 1 {
		t.Errorf("settle callback fired %d times, want 1", second)
	}
	if !scalar.EqualWithinAbs(d.body.pos.X, 0, 1e-9) {
		t.Errorf("settled position = %v, want 0", d.body.pos.X)
	}
}
