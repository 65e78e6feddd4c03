package drawer

import "fmt"

// PaneState is the discrete visibility state of the pane relative to a
// drawer. Open and OpenWide are always associated with a direction; Closed
// has none.
type PaneState uint8

const (
	// PaneStateClosed: the drawer is entirely hidden by the pane.
	PaneStateClosed PaneState = iota

	// PaneStateOpen: the drawer is revealed underneath the pane to the
	// reveal width configured for its direction.
	PaneStateOpen

	// PaneStateOpenWide: the drawer is entirely visible, with the pane
	// displaced past the container edge by the open-wide edge offset.
	PaneStateOpenWide
)

// valid reports whether s is one of the defined pane states.
func (s PaneState) valid() bool {
	return s <= PaneStateOpenWide
}

// String returns a human-readable name for the state.
func (s PaneState) String() string {
	switch s {
	case PaneStateClosed:
		return "closed"
	case PaneStateOpen:
		return "open"
	case PaneStateOpenWide:
		return "open-wide"
	}
	return fmt.Sprintf("PaneState(%d)", uint8(s))
}
