package drawer

import "github.com/charmbracelet/harmonica"

// The concrete stylers translate pane progress into values a host can
// apply to its drawer rendering (opacity, scale, parallax offset). They
// hold the most recent value; the host reads it when drawing.

// FadeStyler fades the drawer in as the pane opens.
type FadeStyler struct {
	// ClosedAlpha is the drawer opacity when the pane is closed.
	ClosedAlpha float64

	alpha float64
}

// NewFadeStyler returns a FadeStyler that fades from fully transparent.
func NewFadeStyler() *FadeStyler {
	return &FadeStyler{}
}

func (s *FadeStyler) Style(progress float64, _ Direction) {
	s.alpha = s.ClosedAlpha + (1-s.ClosedAlpha)*progress
}

// Alpha returns the drawer opacity for the last observed progress.
func (s *FadeStyler) Alpha() float64 { return s.alpha }

// ScaleStyler shrinks the drawer toward its center while the pane is
// closed and grows it to full size as the pane opens.
type ScaleStyler struct {
	// ClosedScale is the drawer scale when the pane is closed.
	ClosedScale float64

	scale float64
}

// NewScaleStyler returns a ScaleStyler with a conventional 10% shrink.
func NewScaleStyler() *ScaleStyler {
	return &ScaleStyler{ClosedScale: 0.9}
}

func (s *ScaleStyler) Style(progress float64, _ Direction) {
	s.scale = s.ClosedScale + (1-s.ClosedScale)*progress
}

// Scale returns the drawer scale for the last observed progress.
func (s *ScaleStyler) Scale() float64 { return s.scale }

// ParallaxStyler slides the drawer content at a fraction of the pane's
// speed, so the drawer appears to sit behind the pane.
type ParallaxStyler struct {
	// OffsetFraction is the fraction of the reveal width that the drawer
	// is displaced against the opening direction when the pane is closed.
	OffsetFraction float64

	progress  float64
	direction Direction
}

// NewParallaxStyler returns a ParallaxStyler with a conventional third of
// the reveal width.
func NewParallaxStyler() *ParallaxStyler {
	return &ParallaxStyler{OffsetFraction: 1.0 / 3.0}
}

func (s *ParallaxStyler) Style(progress float64, direction Direction) {
	s.progress = progress
	s.direction = direction
}

// Offset returns the drawer content displacement along the drawer's axis,
// given the reveal width of the styled direction. Zero when the pane is
// fully open.
func (s *ParallaxStyler) Offset(revealWidth float64) float64 {
	sg, err := s.direction.Sign()
	if err != nil {
		return 0
	}
	return sg * (s.progress - 1) * s.OffsetFraction * revealWidth
}

// SpringStyler smooths the raw pane progress through a damped spring, for
// effects that should trail the pane rather than track it rigidly. The
// host advances the spring once per frame by reading Smoothed.
type SpringStyler struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewSpringStyler returns a SpringStyler stepped at the given frame rate.
// frequency and damping follow harmonica's conventions; see
// harmonica.NewSpring.
func NewSpringStyler(fps int, frequency, damping float64) *SpringStyler {
	return &SpringStyler{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *SpringStyler) Style(progress float64, _ Direction) {
	s.target = progress
}

// Smoothed advances the spring one frame toward the last observed progress
// and returns the smoothed value.
func (s *SpringStyler) Smoothed() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}
