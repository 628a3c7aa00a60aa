package viz

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orbitplot/internal/render"
	"github.com/san-kum/orbitplot/internal/trajectory"
)

func orbitRun(steps int) *trajectory.Grouped {
	table := make(trajectory.Table, 7)
	for r := range table {
		table[r] = make([]float64, steps)
	}
	for t := 0; t < steps; t++ {
		angle := 2 * math.Pi * float64(t) / float64(steps)
		table[0][t] = float64(t)
		table[4][t] = math.Cos(angle)
		table[5][t] = math.Sin(angle)
	}
	g := trajectory.Group(table)
	g.SetNames([]string{"Sun", "Earth"})
	return g
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Error("dot should be set")
	}
	if c.Grid[1][1] != brailleBlank|0x10 {
		t.Errorf("unexpected cell %U", c.Grid[1][1])
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	c.Clear()
	if c.IsSet(3, 5) {
		t.Error("clear should reset dots")
	}
	if got := strings.Count(c.String(), "\n"); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)
	if !c.IsSet(0, 0) || !c.IsSet(19, 19) || !c.IsSet(10, 10) {
		t.Error("diagonal should include both ends and the middle")
	}
}

func TestViewportProject(t *testing.T) {
	c := NewCanvas(10, 5)
	v := NewViewport(c, 2)

	x, y, ok := v.Project(-2, 2)
	if !ok || x != 0 || y != 0 {
		t.Errorf("top-left: got (%d,%d,%v)", x, y, ok)
	}
	x, y, _ = v.Project(2, -2)
	if x != 19 || y != 19 {
		t.Errorf("bottom-right: got (%d,%d)", x, y)
	}
	if _, _, ok := v.Project(math.NaN(), 0); ok {
		t.Error("NaN should not project")
	}
}

func TestPlot(t *testing.T) {
	c := Plot(orbitRun(100), render.Axes{trajectory.X, trajectory.Y}, 2, 40, 20)
	// The Sun sits at the origin.
	x, y, _ := NewViewport(c, 2).Project(0, 0)
	if !c.IsSet(x, y) {
		t.Error("origin body should be drawn")
	}
	x, y, _ = NewViewport(c, 2).Project(1, 0)
	if !c.IsSet(x, y) {
		t.Error("orbit should pass through (1, 0)")
	}
}

func newTestPlayer(loop bool) Player {
	anim := render.NewAnimator(orbitRun(100), render.Axes{trajectory.X, trajectory.Y}, 0.1, 1)
	return NewPlayer(anim, PlayerOptions{Title: "run", Unit: "AU", Limit: 2, FPS: 60, Loop: loop})
}

func TestPlayerTick(t *testing.T) {
	p := newTestPlayer(false)
	m, cmd := p.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.(Player).Frame() != 1 {
		t.Errorf("expected frame 1, got %d", m.(Player).Frame())
	}
}

func TestPlayerKeys(t *testing.T) {
	p := newTestPlayer(false)

	m, _ := p.Update(key(" "))
	p = m.(Player)
	if p.Running() {
		t.Error("space should pause")
	}
	m, _ = p.Update(TickMsg(time.Now()))
	if m.(Player).Frame() != 0 {
		t.Error("paused player should not advance")
	}

	m, _ = p.Update(key("+"))
	p = m.(Player)
	if p.Speed() != 2 {
		t.Errorf("expected speed 2, got %d", p.Speed())
	}

	m, _ = p.Update(key("]"))
	p = m.(Player)
	if p.Frame() != 20 {
		t.Errorf("expected frame 20, got %d", p.Frame())
	}
	m, _ = p.Update(key("["))
	m, _ = m.Update(key("["))
	if m.(Player).Frame() != 0 {
		t.Errorf("scrub should clamp at 0, got %d", m.(Player).Frame())
	}

	_, cmd := p.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit message")
	}
}

func TestPlayerStopsAtEnd(t *testing.T) {
	p := newTestPlayer(false)
	for i := 0; i < 150; i++ {
		m, _ := p.Update(TickMsg(time.Now()))
		p = m.(Player)
	}
	if p.Frame() != 99 || p.Running() {
		t.Errorf("expected to stop on frame 99, got %d running=%v", p.Frame(), p.Running())
	}

	looping := newTestPlayer(true)
	for i := 0; i < 100; i++ {
		m, _ := looping.Update(TickMsg(time.Now()))
		looping = m.(Player)
	}
	if looping.Frame() != 0 || !looping.Running() {
		t.Errorf("looping player should wrap, got %d", looping.Frame())
	}
}

func TestPlayerStride(t *testing.T) {
	anim := render.NewAnimator(orbitRun(100), render.Axes{trajectory.X, trajectory.Y}, 0.1, 3)
	var m tea.Model = NewPlayer(anim, PlayerOptions{Limit: 2, FPS: 60})

	m, _ = m.Update(TickMsg(time.Now()))
	if m.(Player).Frame() != 3 {
		t.Errorf("expected frame 3 after one tick, got %d", m.(Player).Frame())
	}
	m, _ = m.Update(key("]"))
	if m.(Player).Frame() != 33 {
		t.Errorf("expected scrub of 30 frames, got %d", m.(Player).Frame())
	}

	for i := 0; i < 30; i++ {
		m, _ = m.Update(TickMsg(time.Now()))
	}
	if p := m.(Player); p.Frame() != 99 || p.Running() {
		t.Errorf("expected to stop on frame 99, got %d running=%v", p.Frame(), p.Running())
	}
}

func TestPlayerView(t *testing.T) {
	view := newTestPlayer(false).View()
	for _, want := range []string{"RUN", "Sun", "Earth", "1/100"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, orbitRun(50), "AU"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"samples: 50", "bodies: 2", "Earth", "distance from origin (AU)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestStats(t *testing.T) {
	stats := Stats(orbitRun(8))
	if stats[0].MaxDist != 0 {
		t.Errorf("fixed body should stay at origin, got %f", stats[0].MaxDist)
	}
	if math.Abs(stats[1].MinDist-1) > 1e-9 || math.Abs(stats[1].MaxDist-1) > 1e-9 {
		t.Errorf("unit orbit expected, got [%f, %f]", stats[1].MinDist, stats[1].MaxDist)
	}
}
