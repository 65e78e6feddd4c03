package drawer

import "math"

// Default reveal widths, applied to a drawer slot according to its axis
// when no explicit width has been set.
const (
	// DefaultRevealWidthHorizontal is the default open distance for left
	// and right drawers.
	DefaultRevealWidthHorizontal = 267.0

	// DefaultRevealWidthVertical is the default open distance for top and
	// bottom drawers.
	DefaultRevealWidthVertical = 300.0
)

// Config holds the physics and layout tuning of a Controller. All values
// are plain fields owned by the controller instance; there are no
// process-wide singletons. Invalid values (negative magnitudes or
// elasticities, non-positive thresholds) are clamped to the nearest valid
// value when used, with a warning logged, and are never fatal.
type Config struct {
	// GravityMagnitude scales the constant acceleration that pulls the
	// pane toward its target rest position during animated transitions.
	// A magnitude of 1.0 represents an acceleration of GravityScale pt/s².
	GravityMagnitude float64

	// Elasticity is the restitution applied when the pane collides with a
	// rest boundary during command-driven transitions. 0 stops the pane
	// dead; 1 reflects it with no energy loss. Valid range is [0, 1].
	Elasticity float64

	// BounceElasticity is the restitution used while a bounce is in
	// flight, giving the pane its springy return. Valid range is [0, 1].
	BounceElasticity float64

	// BounceMagnitude scales the impulse seeded into the pane by
	// BouncePaneOpen, in the same units as GravityMagnitude.
	BounceMagnitude float64

	// OpenWideEdgeOffset is the distance the pane travels past the
	// container edge in the open-wide state.
	OpenWideEdgeOffset float64

	// GravityScale converts magnitude units to pt/s². Exposed as
	// configuration; the default matches the conventional 1000 pt/s² per
	// unit magnitude.
	GravityScale float64

	// SettlePositionThreshold and SettleVelocityThreshold define when an
	// animated transition is considered settled: both the distance to the
	// target offset and the speed must fall under them. Tuning
	// parameters; the defaults aim for interactive feel and are not
	// load-bearing.
	SettlePositionThreshold float64
	SettleVelocityThreshold float64

	// SlideOffAnimationEnabled makes animated pane content replacement
	// slide the old pane fully open-wide before swapping in the new one.
	SlideOffAnimationEnabled bool
}

// DefaultConfig returns the default physics configuration.
func DefaultConfig() Config {
	return Config{
		GravityMagnitude:         2.0,
		Elasticity:               0.0,
		BounceElasticity:         0.5,
		BounceMagnitude:          60.0,
		OpenWideEdgeOffset:       20.0,
		GravityScale:             1000.0,
		SettlePositionThreshold:  0.5,
		SettleVelocityThreshold:  2.0,
		SlideOffAnimationEnabled: true,
	}
}

// sanitized returns a copy of the config with out-of-range values clamped,
// logging a warning for each adjustment. Called at the point of use so
// that direct field mutation stays cheap.
func (c Config) sanitized() Config {
	clamp := func(name string, v *float64, lo, hi float64) {
		if *v < lo || *v > hi {
			Logger().Warn("drawer: configuration value clamped",
				"field", name, "value", *v, "min", lo, "max", hi)
			*v = math.Min(math.Max(*v, lo), hi)
		}
	}
	inf := math.Inf(1)
	clamp("GravityMagnitude", &c.GravityMagnitude, 0, inf)
	clamp("Elasticity", &c.Elasticity, 0, 1)
	clamp("BounceElasticity", &c.BounceElasticity, 0, 1)
	clamp("BounceMagnitude", &c.BounceMagnitude, 0, inf)
	clamp("GravityScale", &c.GravityScale, 1, inf)
	clamp("SettlePositionThreshold", &c.SettlePositionThreshold, 1e-3, inf)
	clamp("SettleVelocityThreshold", &c.SettleVelocityThreshold, 1e-3, inf)
	return c
}

// GestureConfig holds the global gesture tuning of a Controller.
// Per-direction flags (drag-reveal, tap-to-close) are managed through the
// controller's mask-accepting setters instead.
type GestureConfig struct {
	// RequireScreenEdgePan restricts drag-reveal to pans that begin
	// within EdgePanMargin of a container edge that has a drawer set.
	RequireScreenEdgePan bool

	// ScreenEdgePanCancelsConflictingGestures asks the host to make all
	// other recognizers on the pane surface fail before the drawer pan
	// may succeed, when a touch begins within the edge margin of a
	// direction with a drawer. See Controller.ShouldCancelConflictingGestures.
	ScreenEdgePanCancelsConflictingGestures bool

	// EdgePanMargin is the width of the screen-edge band, in points.
	EdgePanMargin float64

	// FlingVelocityThreshold is the release speed (pt/s) above which a
	// drag advances the pane to the next state in the direction of
	// travel, regardless of position. Below it, the pane snaps to the
	// nearest rest state. Tuning parameter.
	FlingVelocityThreshold float64
}

// DefaultGestureConfig returns the default gesture configuration.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		RequireScreenEdgePan:                    false,
		ScreenEdgePanCancelsConflictingGestures: true,
		EdgePanMargin:                           24.0,
		FlingVelocityThreshold:                  100.0,
	}
}
