package terminal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/go-gooey/gooey/pkg/animation"
	"github.com/go-gooey/gooey/pkg/errors"
	"github.com/go-gooey/gooey/pkg/raster"
	"github.com/go-gooey/gooey/pkg/rendering"
	"github.com/go-gooey/gooey/pkg/widgets"
)

// FrameMsg drives one iteration of the frame loop. Hosts other than Run
// may send it to step the model manually.
type FrameMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

type keyMap struct {
	Quit key.Binding
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model is a Bubble Tea model that runs the gooey frame sequence on every
// tick: advance animations, paint the tree onto a raster canvas, present the
// canvas as half-block text.
type Model struct {
	tree     *widgets.Manager
	anims    *animation.Manager
	canvas   *raster.Canvas
	renderer *Renderer

	background rendering.Color
	interval   time.Duration
	title      string
	keys       keyMap

	frames uint64
	view   string
}

// Option configures a Model.
type Option func(*Model)

// WithFPS sets the frame rate. Non-positive values are ignored; the
// interval never drops below one nanosecond.
func WithFPS(fps int) Option {
	return func(m *Model) {
		if fps > 0 {
			m.interval = max(time.Second/time.Duration(fps), time.Nanosecond)
		}
	}
}

// WithBackground sets the color the canvas is cleared to each frame.
func WithBackground(c rendering.Color) Option {
	return func(m *Model) { m.background = c }
}

// WithTitle sets the text shown in the status line.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// WithCanvasSize sets the initial canvas size in pixels. The canvas is
// resized when the terminal reports its size.
func WithCanvasSize(w, h int) Option {
	return func(m *Model) { m.canvas.Resize(w, h) }
}

// NewModel returns a model presenting tree and advancing anims.
// The initial canvas matches the size of the controlling terminal.
func NewModel(tree *widgets.Manager, anims *animation.Manager, opts ...Option) *Model {
	cols, rows := Size(int(os.Stdout.Fd()))
	m := &Model{
		tree:       tree,
		anims:      anims,
		canvas:     raster.NewCanvas(cols, canvasRows(rows)),
		renderer:   NewRenderer(),
		background: rendering.ColorBlack,
		interval:   time.Second / 30,
		title:      "gooey",
		keys:       defaultKeys,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Size returns the terminal size for fd, or 80×24 if fd is not a terminal.
func Size(fd int) (cols, rows int) {
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}

// canvasRows converts terminal rows to pixel rows, leaving one row for the
// status line.
func canvasRows(rows int) int {
	return max(rows-1, 0) * 2
}

// Init starts the frame ticker.
func (m *Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles frame ticks, resizes and input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.Frame()
		return m, tick(m.interval)

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, canvasRows(msg.Height))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if k, ok := translateKey(msg); ok {
			for _, h := range m.tree.KeyHandlers() {
				h(k)
			}
		}
		return m, nil

	case tea.MouseMsg:
		for _, ev := range translateMouse(msg) {
			for _, h := range m.tree.MouseHandlers() {
				h(ev)
			}
		}
		return m, nil
	}
	return m, nil
}

// Frame runs one frame: animations, paint, present.
func (m *Model) Frame() {
	defer errors.Recover("terminal.Model.Frame")

	m.anims.Run()
	m.canvas.Clear(m.background)
	m.tree.Paint(m.canvas)
	m.view = m.renderer.Render(m.canvas.Image())
	m.frames++
}

// Frames returns the number of frames presented.
func (m *Model) Frames() uint64 {
	return m.frames
}

// Canvas returns the canvas the tree is painted onto.
func (m *Model) Canvas() *raster.Canvas {
	return m.canvas
}

// View returns the last presented frame and a status line.
func (m *Model) View() string {
	status := statusStyle.Render(fmt.Sprintf("%s · frame %d · %d animations · %s",
		m.title, m.frames, m.anims.Len(), m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc))
	if m.view == "" {
		return status
	}
	return m.view + "\n" + status
}

// Run starts a full-screen program for m and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
