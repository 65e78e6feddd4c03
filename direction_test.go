package drawer

import (
	"errors"
	"testing"
)

func TestForEachDirectionCanonicalOrder(t *testing.T) {
	var got []Direction
	ForEachDirection(DirectionAll, func(d Direction) {
		got = append(got, d)
	})
	want := []Direction{DirectionTop, DirectionLeft, DirectionBottom, DirectionRight}
	if len(got) != len(want) {
		t.Fatalf("visited %d directions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestForEachDirectionSubsetMask(t *testing.T) {
	var got []Direction
	ForEachDirection(DirectionHorizontal, func(d Direction) {
		got = append(got, d)
	})
	if len(got) != 2 || got[0] != DirectionLeft || got[1] != DirectionRight {
		t.Errorf("horizontal mask visited %v", got)
	}

	ForEachDirection(DirectionNone, func(d Direction) {
		t.Errorf("empty mask visited %v", d)
	})
}

func TestDirectionAxis(t *testing.T) {
	cases := []struct {
		dir  Direction
		axis Axis
	}{
		{DirectionLeft, AxisHorizontal},
		{DirectionRight, AxisHorizontal},
		{DirectionTop, AxisVertical},
		{DirectionBottom, AxisVertical},
	}
	for _, tc := range cases {
		axis, err := tc.dir.Axis()
		if err != nil {
			t.Fatalf("Axis(%v) error: %v", tc.dir, err)
		}
		if axis != tc.axis {
			t.Errorf("Axis(%v) = %v, want %v", tc.dir, axis, tc.axis)
		}
	}

	for _, d := range []Direction{DirectionNone, DirectionHorizontal, DirectionAll, Direction(0x40)} {
		if _, err := d.Axis(); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Axis(%v) error = %v, want ErrInvalidDirection", d, err)
		}
		if _, err := d.Sign(); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Sign(%v) error = %v, want ErrInvalidDirection", d, err)
		}
	}
}

func TestDirectionSign(t *testing.T) {
	for d, want := range map[Direction]float64{
		DirectionTop:    1,
		DirectionLeft:   1,
		DirectionBottom: -1,
		DirectionRight:  -1,
	} {
		sg, err := d.Sign()
		if err != nil {
			t.Fatalf("Sign(%v) error: %v", d, err)
		}
		if sg != want {
			t.Errorf("Sign(%v) = %v, want %v", d, sg, want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirectionTop:    DirectionBottom,
		DirectionBottom: DirectionTop,
		DirectionLeft:   DirectionRight,
		DirectionRight:  DirectionLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("Opposite(%v) = %v, want %v", d, got, want)
		}
	}
	if DirectionHorizontal.Opposite() != DirectionNone {
		t.Error("Opposite of a mask should be DirectionNone")
	}
}

func TestDirectionPredicates(t *testing.T) {
	if !DirectionLeft.IsCardinal() || DirectionHorizontal.IsCardinal() || DirectionNone.IsCardinal() {
		t.Error("IsCardinal misclassified a direction")
	}
	if !DirectionAll.IsValidMask() || !DirectionNone.IsValidMask() {
		t.Error("valid masks rejected")
	}
	if Direction(0x80).IsValidMask() {
		t.Error("unknown bit accepted as valid mask")
	}
	if !DirectionHorizontal.Contains(DirectionLeft) {
		t.Error("horizontal should contain left")
	}
	if DirectionHorizontal.Contains(DirectionTop) {
		t.Error("horizontal should not contain top")
	}
}

func TestDirectionString(t *testing.T) {
	for d, want := range map[Direction]string{
		DirectionNone:       "none",
		DirectionLeft:       "left",
		DirectionHorizontal: "horizontal",
		DirectionAll:        "all",
		DirectionTop | DirectionLeft: "top|left",
	} {
		if got := d.String(); got != want {
			t.Errorf("String(%#x) = %q, want %q", uint8(d), got, want)
		}
	}
}
