package drawer

// Direction identifies the edge (or edges) that a drawer can be revealed
// from underneath the pane. Single directions are independent bits, so they
// can be combined into masks. APIs document whether they accept masks; those
// that require a single direction return ErrInvalidDirection when given a
// mask or an unrecognized bit.
type Direction uint8

const (
	// DirectionNone represents the state of no direction.
	DirectionNone Direction = 0

	// DirectionTop reveals a drawer from underneath the top edge of the pane.
	DirectionTop Direction = 1 << iota

	// DirectionLeft reveals a drawer from underneath the left edge of the pane.
	DirectionLeft

	// DirectionBottom reveals a drawer from underneath the bottom edge of the pane.
	DirectionBottom

	// DirectionRight reveals a drawer from underneath the right edge of the pane.
	DirectionRight

	// DirectionHorizontal masks the left and right directions.
	DirectionHorizontal = DirectionLeft | DirectionRight

	// DirectionVertical masks the top and bottom directions.
	DirectionVertical = DirectionTop | DirectionBottom

	// DirectionAll masks all four cardinal directions.
	DirectionAll = DirectionHorizontal | DirectionVertical
)

// Axis is the axis of motion associated with a single direction.
type Axis uint8

const (
	// AxisHorizontal is motion along X (left/right drawers).
	AxisHorizontal Axis = iota

	// AxisVertical is motion along Y (top/bottom drawers).
	AxisVertical
)

// cardinal lists the single-bit directions in canonical iteration order.
var cardinal = [4]Direction{DirectionTop, DirectionLeft, DirectionBottom, DirectionRight}

// ForEachDirection invokes fn once for every single-bit direction contained
// in mask, in canonical order: top, left, bottom, right. Bits outside
// DirectionAll are ignored.
func ForEachDirection(mask Direction, fn func(Direction)) {
	for _, d := range cardinal {
		if mask&d != 0 {
			fn(d)
		}
	}
}

// IsCardinal reports whether d is exactly one of the four single-bit
// directions.
func (d Direction) IsCardinal() bool {
	switch d {
	case DirectionTop, DirectionLeft, DirectionBottom, DirectionRight:
		return true
	}
	return false
}

// IsValidMask reports whether d contains only recognized direction bits.
// DirectionNone is a valid (empty) mask.
func (d Direction) IsValidMask() bool {
	return d&^DirectionAll == 0
}

// Contains reports whether every bit of o is set in d.
func (d Direction) Contains(o Direction) bool {
	return d&o == o
}

// Opposite returns the direction on the other side of the same axis.
// Valid only for cardinal directions; masks return DirectionNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionTop:
		return DirectionBottom
	case DirectionBottom:
		return DirectionTop
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

// Axis returns the axis that the pane moves along when revealing a drawer
// in direction d. Valid only for cardinal directions; the error is
// ErrInvalidDirection otherwise.
func (d Direction) Axis() (Axis, error) {
	switch d {
	case DirectionLeft, DirectionRight:
		return AxisHorizontal, nil
	case DirectionTop, DirectionBottom:
		return AxisVertical, nil
	}
	return 0, ErrInvalidDirection
}

// Sign returns the sign of pane displacement along the direction's axis:
// +1 when the pane moves toward positive coordinates (revealing a top or
// left drawer), -1 otherwise. Valid only for cardinal directions.
func (d Direction) Sign() (float64, error) {
	switch d {
	case DirectionTop, DirectionLeft:
		return 1, nil
	case DirectionBottom, DirectionRight:
		return -1, nil
	}
	return 0, ErrInvalidDirection
}

// String returns a human-readable name for the direction or mask.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionTop:
		return "top"
	case DirectionLeft:
		return "left"
	case DirectionBottom:
		return "bottom"
	case DirectionRight:
		return "right"
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	case DirectionAll:
		return "all"
	}
	if !d.IsValidMask() {
		return "invalid"
	}
	s := ""
	ForEachDirection(d, func(c Direction) {
		if s != "" {
			s += "|"
		}
		s += c.String()
	})
	return s
}
