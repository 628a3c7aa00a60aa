package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitplot/internal/render"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	maxSpeed     = 64
)

type TickMsg time.Time

type PlayerOptions struct {
	Title string
	Unit  string
	Limit float64
	FPS   int
	Loop  bool
}

// Player plays an Animator frame by frame in the terminal.
type Player struct {
	anim    *render.Animator
	opts    PlayerOptions
	canvas  *Canvas
	view    Viewport
	marks   [][]int
	frame   int
	speed   int
	running bool
	theme   Theme
}

func NewPlayer(anim *render.Animator, opts PlayerOptions) Player {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	c := NewCanvas(canvasWidth, canvasHeight)
	marks := make([][]int, canvasHeight)
	for i := range marks {
		marks[i] = make([]int, canvasWidth)
	}
	return Player{
		anim:    anim,
		opts:    opts,
		canvas:  c,
		view:    NewViewport(c, opts.Limit),
		marks:   marks,
		speed:   1,
		running: true,
		theme:   ThemeNight,
	}
}

// Frame returns the index of the frame on screen.
func (p Player) Frame() int { return p.frame }

func (p Player) Speed() int { return p.speed }

func (p Player) Running() bool { return p.running }

func (p Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Player) Init() tea.Cmd {
	return p.tick()
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.running = !p.running
			if p.running && p.frame >= p.last() {
				p.frame = 0
			}
		case "r":
			p.frame = 0
			p.running = true
		case "[":
			p.seek(-10 * p.step())
		case "]":
			p.seek(10 * p.step())
		case "+", "=":
			if p.speed < maxSpeed {
				p.speed *= 2
			}
		case "-", "_":
			if p.speed > 1 {
				p.speed /= 2
			}
		case "t":
			p.theme = p.theme.Next()
		}
	case TickMsg:
		if p.running {
			p.advance()
		}
		return p, p.tick()
	}
	return p, nil
}

func (p Player) last() int {
	if n := p.anim.Frames(); n > 0 {
		return n - 1
	}
	return 0
}

func (p *Player) seek(delta int) {
	p.frame += delta
	if p.frame < 0 {
		p.frame = 0
	}
	if p.frame > p.last() {
		p.frame = p.last()
	}
}

// step is how many timesteps one tick moves at the current speed.
func (p Player) step() int { return p.speed * p.anim.Stride() }

func (p *Player) advance() {
	p.frame += p.step()
	if p.frame <= p.last() {
		return
	}
	if p.opts.Loop {
		p.frame = 0
		return
	}
	p.frame = p.last()
	p.running = false
}

func (p *Player) draw(f render.Frame) {
	p.canvas.Clear()
	for _, row := range p.marks {
		for i := range row {
			row[i] = 0
		}
	}

	for b, body := range f.Bodies {
		pts := append(body.Trail, body.Current)
		px, py, havePrev := 0, 0, false
		for _, pt := range pts {
			x, y, ok := p.view.Project(pt.X, pt.Y)
			if !ok {
				havePrev = false
				continue
			}
			if havePrev {
				p.canvas.DrawLine(px, py, x, y)
			}
			px, py, havePrev = x, y, true
		}

		if x, y, ok := p.view.Project(body.Current.X, body.Current.Y); ok {
			p.canvas.Disc(x, y, 1)
			if row, col := y/4, x/2; row >= 0 && row < canvasHeight && col >= 0 && col < canvasWidth {
				p.marks[row][col] = b + 1
			}
		}
	}
}

func (p Player) renderCanvas() string {
	base := lipgloss.NewStyle().Foreground(p.theme.Canvas)
	var s strings.Builder
	for r, row := range p.canvas.Grid {
		for c, cell := range row {
			if owner := p.marks[r][c]; owner > 0 {
				s.WriteString(lipgloss.NewStyle().Foreground(p.theme.BodyColor(owner - 1)).Bold(true).Render(string(cell)))
			} else {
				s.WriteString(base.Render(string(cell)))
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

func (p Player) View() string {
	if p.anim.Frames() == 0 {
		return "no frames to play\n"
	}
	f := p.anim.Frame(p.frame)
	p.draw(f)

	status := "PLAYING"
	if !p.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(p.theme.Primary).Render(strings.ToUpper(p.opts.Title)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d/%d", f.Index+1, f.Total)) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%g", f.Time)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%dx", p.speed)) + "\n")
	s.WriteString(labelStyle.Render("Trail") + valueStyle.Render(fmt.Sprintf("%d frames", p.anim.TrailSize())) + "\n")
	s.WriteString(labelStyle.Render("Limit") + valueStyle.Render(fmt.Sprintf("±%g %s", p.opts.Limit, p.opts.Unit)) + "\n\n")
	s.WriteString(render.ProgressBar(render.Progress(f.Index, f.Total)) + "\n\n")

	s.WriteString("BODIES\n")
	for i, body := range f.Bodies {
		dot := lipgloss.NewStyle().Foreground(p.theme.BodyColor(i)).Render("●")
		s.WriteString(fmt.Sprintf("%s %s\n", dot, body.Name))
	}
	s.WriteString(Subtle.Render("\n─────────────────────\nSP:Pause R:Restart Q:Quit\n[ ]:Scrub +-:Speed T:Theme"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(p.renderCanvas()), panelStyle.Render(s.String()))
}
