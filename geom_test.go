package drawer

import (
	"math"
	"testing"
)

func TestPointComponent(t *testing.T) {
	p := Pt(3, 7)
	if p.Component(AxisHorizontal) != 3 || p.Component(AxisVertical) != 7 {
		t.Errorf("Component mismatch for %+v", p)
	}
	q := p.WithComponent(AxisVertical, -2)
	if q != Pt(3, -2) {
		t.Errorf("WithComponent = %+v, want (3,-2)", q)
	}
	// value semantics: p unchanged
	if p != Pt(3, 7) {
		t.Errorf("WithComponent mutated receiver: %+v", p)
	}
}

func TestVecOps(t *testing.T) {
	v := V2(3, 4)
	if v.Length() != 5 {
		t.Errorf("Length = %v, want 5", v.Length())
	}
	if v.Add(V2(1, -4)) != V2(4, 0) {
		t.Error("Add mismatch")
	}
	if v.Mul(2) != V2(6, 8) {
		t.Error("Mul mismatch")
	}
	if v.Neg() != V2(-3, -4) {
		t.Error("Neg mismatch")
	}
}

func TestIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported non-finite")
	}
	if Pt(math.NaN(), 0).IsFinite() || V2(0, math.Inf(1)).IsFinite() {
		t.Error("non-finite value reported finite")
	}
}

func TestSign(t *testing.T) {
	if sign(2.5) != 1 || sign(-0.1) != -1 || sign(0) != 0 {
		t.Error("sign mismatch")
	}
}
