package drawer

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// probeStyler records every progress value it observes.
type probeStyler struct {
	name     string
	progress []float64
	dirs     []Direction
}

func (p *probeStyler) Style(progress float64, direction Direction) {
	p.progress = append(p.progress, progress)
	p.dirs = append(p.dirs, direction)
}

func (p *probeStyler) last() float64 {
	if len(p.progress) == 0 {
		return -1
	}
	return p.progress[len(p.progress)-1]
}

func TestStylerRegistryOrderAndDedup(t *testing.T) {
	r := newStylerRegistry()
	a := &probeStyler{name: "a"}
	b := &probeStyler{name: "b"}

	r.add(a, DirectionLeft)
	r.add(b, DirectionLeft)
	r.add(a, DirectionLeft) // duplicate, ignored
	r.add(a, DirectionRight)

	left := r.forDirection(DirectionLeft)
	if len(left) != 2 || left[0] != Styler(a) || left[1] != Styler(b) {
		t.Fatalf("left stylers = %v", left)
	}

	// Canonical direction order: left before right within the mask.
	both := r.forDirection(DirectionHorizontal)
	if len(both) != 3 || both[2] != Styler(a) {
		t.Fatalf("horizontal stylers = %v", both)
	}

	r.remove(a, DirectionLeft)
	left = r.forDirection(DirectionLeft)
	if len(left) != 1 || left[0] != Styler(b) {
		t.Errorf("left stylers after removal = %v", left)
	}
	// Removal is per-direction: a stays registered for right.
	if right := r.forDirection(DirectionRight); len(right) != 1 {
		t.Errorf("right stylers after left removal = %v", right)
	}
}

func TestStylersObserveSnaps(t *testing.T) {
	c := newTestController(t)
	p := &probeStyler{}
	if err := c.AddStyler(p, DirectionLeft); err != nil {
		t.Fatal(err)
	}

	if err := c.SetPaneState(PaneStateOpen, DirectionLeft); err != nil {
		t.Fatal(err)
	}
	if p.last() != 1 {
		t.Errorf("progress after open snap = %v, want 1", p.last())
	}
	if err := c.SetPaneState(PaneStateClosed, DirectionNone); err != nil {
		t.Fatal(err)
	}
	if p.last() != 0 {
		t.Errorf("progress after close snap = %v, want 0", p.last())
	}
}

func TestStylersObserveEveryTick(t *testing.T) {
	c := newTestController(t)
	p := &probeStyler{}
	if err := c.AddStyler(p, DirectionLeft); err != nil {
		t.Fatal(err)
	}
	if err := c.RequestPaneState(PaneStateRequest{
		State: PaneStateOpen, Animated: true,
	}); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	if len(p.progress) < 10 {
		t.Fatalf("styler observed only %d ticks", len(p.progress))
	}
	for i := 1; i < len(p.progress); i++ {
		if p.progress[i] < p.progress[i-1] {
			t.Fatalf("progress regressed at tick %d: %v -> %v",
				i, p.progress[i-1], p.progress[i])
		}
	}
	if p.last() != 1 {
		t.Errorf("final progress = %v, want 1", p.last())
	}
	for _, d := range p.dirs {
		if d != DirectionLeft {
			t.Fatalf("styler notified for %v", d)
		}
	}
}

func TestSettlingTickBroadcastsOnce(t *testing.T) {
	c := newTestController(t)
	if err := c.SetPaneState(PaneStateOpen, DirectionLeft); err != nil {
		t.Fatal(err)
	}
	p := &probeStyler{}
	if err := c.AddStyler(p, DirectionLeft); err != nil {
		t.Fatal(err)
	}

	// Re-requesting the current state animated settles on the first tick.
	if err := c.RequestPaneState(PaneStateRequest{
		State: PaneStateOpen, Direction: DirectionLeft, Animated: true,
	}); err != nil {
		t.Fatal(err)
	}
	c.Step(frameDT)
	if c.Animating() {
		t.Fatal("did not settle on the first tick")
	}
	if len(p.progress) != 1 {
		t.Errorf("settling tick notified stylers %d times, want 1", len(p.progress))
	}
}

func TestBounceRestoresStylerProgress(t *testing.T) {
	c := newTestController(t)
	p := &probeStyler{}
	if err := c.AddStyler(p, DirectionLeft); err != nil {
		t.Fatal(err)
	}
	if err := c.BouncePaneOpen(DirectionNone, true, nil); err != nil {
		t.Fatal(err)
	}
	excursion := false
	for i := 0; i < 2000 && c.Animating(); i++ {
		c.Step(frameDT)
		if p.last() > 0 {
			excursion = true
		}
	}
	if c.Animating() {
		t.Fatal("bounce did not settle")
	}
	if !excursion {
		t.Error("stylers never observed the bounce")
	}
	if p.last() != 0 {
		t.Errorf("progress after bounce = %v, want back at 0", p.last())
	}
}

func TestStylerProgressClampedBeyondOpen(t *testing.T) {
	c := newTestController(t)
	p := &probeStyler{}
	if err := c.AddStyler(p, DirectionLeft); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPaneState(PaneStateOpenWide, DirectionLeft); err != nil {
		t.Fatal(err)
	}
	if p.last() != 1 {
		t.Errorf("progress past the reveal width = %v, want clamped to 1", p.last())
	}
}

func TestStylerMaskScopesNotifications(t *testing.T) {
	c := New(320, 568)
	_ = c.SetDrawerContent("left", DirectionLeft)
	_ = c.SetDrawerContent("right", DirectionRight)

	p := &probeStyler{}
	if err := c.AddStyler(p, DirectionRight); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPaneState(PaneStateOpen, DirectionLeft); err != nil {
		t.Fatal(err)
	}
	if len(p.progress) != 0 {
		t.Errorf("right styler notified %d times for a left transition", len(p.progress))
	}
}

func TestFadeStyler(t *testing.T) {
	s := NewFadeStyler()
	s.Style(0, DirectionLeft)
	if s.Alpha() != 0 {
		t.Errorf("closed alpha = %v, want 0", s.Alpha())
	}
	s.Style(0.5, DirectionLeft)
	if s.Alpha() != 0.5 {
		t.Errorf("half-open alpha = %v, want 0.5", s.Alpha())
	}

	s.ClosedAlpha = 0.2
	s.Style(0.5, DirectionLeft)
	if !scalar.EqualWithinAbs(s.Alpha(), 0.6, 1e-12) {
		t.Errorf("alpha with floor = %v, want 0.6", s.Alpha())
	}
}

func TestScaleStyler(t *testing.T) {
	s := NewScaleStyler()
	s.Style(0, DirectionLeft)
	if !scalar.EqualWithinAbs(s.Scale(), 0.9, 1e-12) {
		t.Errorf("closed scale = %v, want 0.9", s.Scale())
	}
	s.Style(1, DirectionLeft)
	if s.Scale() != 1 {
		t.Errorf("open scale = %v, want 1", s.Scale())
	}
}

func TestParallaxStyler(t *testing.T) {
	s := NewParallaxStyler()

	s.Style(0, DirectionLeft)
	// Closed: displaced a third of the reveal width against the opening
	// direction.
	if got := s.Offset(267); !scalar.EqualWithinAbs(got, -89, 1e-9) {
		t.Errorf("closed offset = %v, want -89", got)
	}
	s.Style(1, DirectionLeft)
	if got := s.Offset(267); got != 0 {
		t.Errorf("open offset = %v, want 0", got)
	}

	s.Style(0, DirectionRight)
	if got := s.Offset(267); !scalar.EqualWithinAbs(got, 89, 1e-9) {
		t.Errorf("closed right offset = %v, want 89", got)
	}
}

func TestSpringStylerTrailsTarget(t *testing.T) {
	s := NewSpringStyler(60, 5, 1.0)
	s.Style(1, DirectionLeft)

	prev := 0.0
	for i := 0; i < 10; i++ {
		v := s.Smoothed()
		if v < prev {
			t.Fatalf("spring regressed at frame %d: %v -> %v", i, prev, v)
		}
		prev = v
	}
	if prev <= 0 || prev >= 1 {
		t.Errorf("spring after 10 frames = %v, want strictly between 0 and 1", prev)
	}

	for i := 0; i < 600; i++ {
		prev = s.Smoothed()
	}
	if !scalar.EqualWithinAbs(prev, 1, 1e-3) {
		t.Errorf("spring did not converge: %v", prev)
	}
}
