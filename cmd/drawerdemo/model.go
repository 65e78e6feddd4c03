package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paneworks/drawer"
)

// velocityTracker estimates gesture velocity from recent mouse samples,
// since terminal mice report positions, not velocities.
type velocityTracker struct {
	lastTime time.Time
	lastPos  float64
	velocity float64
}

func (t *velocityTracker) reset(now time.Time, pos float64) {
	t.lastTime = now
	t.lastPos = pos
	t.velocity = 0
}

// observe folds a new sample into the estimate with exponential smoothing.
func (t *velocityTracker) observe(now time.Time, pos float64) {
	dt := now.Sub(t.lastTime).Seconds()
	if dt <= 0 {
		return
	}
	instant := (pos - t.lastPos) / dt
	const smoothing = 0.6
	t.velocity = smoothing*instant + (1-smoothing)*t.velocity
	t.lastTime = now
	t.lastPos = pos
}

func (t *velocityTracker) estimate() float64 { return t.velocity }

// frameMsg drives the physics at the configured frame rate.
type frameMsg time.Time

type model struct {
	cfg  demoConfig
	ctrl *drawer.Controller
	fade *drawer.FadeStyler

	width    int
	height   int
	dragging bool
	dragX    int // column where the drag began
	tracker  velocityTracker
	ticking  bool
	status   string
}

func newModel(cfg demoConfig) *model {
	pcfg := drawer.DefaultConfig()
	pcfg.GravityMagnitude = cfg.Gravity
	pcfg.Elasticity = cfg.Elasticity
	pcfg.BounceElasticity = cfg.BounceElasticity
	pcfg.BounceMagnitude = cfg.BounceMagnitude

	ctrl := drawer.New(80, 24, drawer.WithConfig(pcfg))
	_ = ctrl.SetDrawerContent("menu", drawer.DirectionLeft)
	_ = ctrl.SetDrawerContent("inspector", drawer.DirectionRight)

	fade := drawer.NewFadeStyler()
	_ = ctrl.AddStyler(fade, drawer.DirectionHorizontal)

	return &model{cfg: cfg, ctrl: ctrl, fade: fade, status: "drag from an edge, or press o/w/c/b"}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.cfg.FPS)
}

func (m *model) tick() tea.Cmd {
	m.ticking = true
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

// startAnimation kicks the frame loop if the controller needs stepping.
func (m *model) startAnimation() tea.Cmd {
	if m.ticking || !m.ctrl.Animating() {
		return nil
	}
	return m.tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ctrl.SetContainerSize(float64(msg.Width), float64(msg.Height))
		_ = m.ctrl.SetRevealWidth(math.Round(float64(msg.Width)*m.cfg.RevealFraction), drawer.DirectionHorizontal)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		m.ticking = false
		m.ctrl.Step(m.frameInterval())
		if m.ctrl.Animating() {
			return m, m.tick()
		}
		state, dir := m.ctrl.CurrentPaneState()
		m.status = fmt.Sprintf("settled: %v %v", state, dir)
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "o":
		m.request(drawer.PaneStateOpen, drawer.DirectionLeft)
	case "O":
		m.request(drawer.PaneStateOpen, drawer.DirectionRight)
	case "w":
		m.request(drawer.PaneStateOpenWide, drawer.DirectionLeft)
	case "c":
		m.request(drawer.PaneStateClosed, drawer.DirectionNone)
	case "b":
		if err := m.ctrl.BouncePaneOpen(drawer.DirectionLeft, true, nil); err != nil {
			m.status = err.Error()
		}
	}
	return m, m.startAnimation()
}

func (m *model) request(state drawer.PaneState, dir drawer.Direction) {
	err := m.ctrl.RequestPaneState(drawer.PaneStateRequest{
		State:                 state,
		Direction:             dir,
		Animated:              true,
		AllowUserInterruption: true,
	})
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("animating to %v", state)
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	loc := drawer.Pt(float64(msg.X), float64(msg.Y))
	now := time.Now()

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		ev := drawer.PanEvent{Location: loc}
		if m.ctrl.PanBegan(ev) {
			m.dragging = true
			m.dragX = msg.X
			m.tracker.reset(now, float64(msg.X))
			m.status = "dragging"
		} else if m.ctrl.Tap(loc) {
			m.status = "tap to close"
			return m, m.startAnimation()
		}

	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.tracker.observe(now, float64(msg.X))
		m.ctrl.PanChanged(drawer.PanEvent{
			Location:    loc,
			Translation: drawer.V2(float64(msg.X-m.dragX), 0),
		})

	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.tracker.observe(now, float64(msg.X))
		m.ctrl.PanEnded(drawer.PanEvent{
			Location:    loc,
			Translation: drawer.V2(float64(msg.X-m.dragX), 0),
			Velocity:    drawer.V2(m.tracker.estimate(), 0),
		})
		return m, m.startAnimation()
	}
	return m, nil
}

var (
	paneStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("252")).
			Foreground(lipgloss.Color("235"))
	drawerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("29")).
			Foreground(lipgloss.Color("255"))
	dimDrawerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("22")).
			Foreground(lipgloss.Color("250"))
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	offset := int(math.Round(m.ctrl.PaneOffset().X))

	// The fade styler tracks open progress; use it to brighten the
	// drawer as it is revealed.
	dStyle := dimDrawerStyle
	if m.fade.Alpha() > 0.5 {
		dStyle = drawerStyle
	}

	paneLines := m.paneLines()
	drawerLines := m.drawerLines(offset)

	var b strings.Builder
	for row := 0; row < m.height; row++ {
		b.WriteString(composeRow(drawerLines[row], paneLines[row], offset, m.width, dStyle, paneStyle))
		if row < m.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *model) paneLines() []string {
	lines := make([]string, m.height)
	lines[0] = " pane — drag from the left or right edge"
	if m.height > 2 {
		lines[2] = " o/O open   w open wide   c close   b bounce   q quit"
	}
	if m.height > 4 {
		lines[4] = " " + m.status
	}
	return lines
}

func (m *model) drawerLines(offset int) []string {
	label := "menu"
	if offset < 0 {
		label = "inspector"
	}
	lines := make([]string, m.height)
	if m.height > 1 {
		lines[1] = " " + label
	}
	for i := 0; i < 4 && 3+i < m.height; i++ {
		lines[3+i] = fmt.Sprintf("  item %d", i+1)
	}
	return lines
}

// composeRow lays a pane row over a drawer row, with the pane shifted by
// offset columns (positive reveals the left drawer, negative the right).
func composeRow(drawerLine, paneLine string, offset, width int, dStyle, pStyle lipgloss.Style) string {
	pane := padTo(paneLine, width)
	switch {
	case offset > 0:
		behind := padTo(drawerLine, width)
		return dStyle.Render(behind[:min(offset, width)]) + pStyle.Render(pane[:max(width-offset, 0)])
	case offset < 0:
		reveal := min(-offset, width)
		behind := padTo(drawerLine, width)
		return pStyle.Render(pane[:width-reveal]) + dStyle.Render(behind[width-reveal:])
	default:
		return pStyle.Render(pane)
	}
}

// padTo pads or truncates a line of ASCII text to exactly w columns.
func padTo(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}
