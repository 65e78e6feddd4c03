package drawer

import "errors"

// Errors returned by the drawer API. All of them are reported synchronously
// at the call site; a failed call leaves the controller's state unchanged.
var (
	// ErrInvalidDirection is returned when a masked or unrecognized
	// direction value is passed to an API that requires a single cardinal
	// direction.
	ErrInvalidDirection = errors.New("drawer: invalid direction")

	// ErrAmbiguousDirection is returned when a direction is omitted from a
	// request while two drawers are registered, making the intended
	// direction ambiguous.
	ErrAmbiguousDirection = errors.New("drawer: ambiguous direction")

	// ErrSlotConflict is returned when registering a second drawer whose
	// direction is not exactly opposite the first. At most two drawers can
	// be set, and they must face away from each other.
	ErrSlotConflict = errors.New("drawer: conflicting drawer directions")

	// ErrNoDrawer is returned when a state or bounce request targets a
	// direction that has no drawer registered.
	ErrNoDrawer = errors.New("drawer: no drawer set for direction")
)
