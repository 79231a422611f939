package tui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/radialmenu/internal/config"
	"github.com/jask/radialmenu/internal/radial"
	"github.com/jask/radialmenu/internal/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type point struct {
	x, y int
}

// App hosts one radial selector: mouse press opens a session, drag moves the
// selection and release confirms it.
type App struct {
	selector *radial.Selector
	grid     *view.Grid
	cellW    float64
	cellH    float64

	session  string
	origin   point
	dragging bool

	lastPick int
	picked   bool
	status   string
	width    int
	height   int
}

// New builds the app from configuration.
func New(cfg config.Config) *App {
	var labels view.Labels
	labels.Center = cfg.Selector.CenterLabel
	copy(labels.Options[:], cfg.Selector.Labels)

	grid := view.NewGrid(view.NewTheme(lipgloss.Color(cfg.UI.SelectedColor), lipgloss.Color(cfg.UI.ActiveColor)), labels)
	return &App{
		selector: radial.New(grid, radial.Options{DeadZone: cfg.Selector.DeadZone}),
		grid:     grid,
		cellW:    cfg.Input.CellWidth,
		cellH:    cfg.Input.CellHeight,
		status:   "press and drag with the left mouse button",
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "esc":
			a.abandon()
		}
	case tea.MouseMsg:
		a.handleMouse(msg)
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		a.begin(point{x: msg.X, y: msg.Y})
	case tea.MouseActionMotion:
		if !a.dragging {
			return
		}
		dx := float64(msg.X-a.origin.x) * a.cellW
		dy := float64(msg.Y-a.origin.y) * a.cellH
		a.selector.UpdatePosition(dx, dy)
	case tea.MouseActionRelease:
		if !a.dragging {
			return
		}
		a.finish()
	}
}

func (a *App) begin(at point) {
	a.session = uuid.NewString()
	a.origin = at
	a.dragging = true
	a.selector.Activate()
	log.Printf("session %s: open at %d,%d", a.session, at.x, at.y)
}

func (a *App) finish() {
	idx := a.selector.Close()
	a.dragging = false
	a.lastPick = idx
	a.picked = true
	a.status = fmt.Sprintf("picked: %s", a.grid.Label(idx))
	log.Printf("session %s: closed on %d (%s)", a.session, idx, a.grid.Label(idx))
}

// abandon drops an open session without recording a choice.
func (a *App) abandon() {
	if !a.dragging {
		return
	}
	a.dragging = false
	a.grid.Hide()
	a.status = "cancelled"
	log.Printf("session %s: abandoned", a.session)
}

// LastPick returns the most recently confirmed index.
func (a *App) LastPick() (int, bool) { return a.lastPick, a.picked }

func (a *App) View() string {
	header := titleStyle.Render("radialmenu") + "  " + statusStyle.Render(a.status)
	body := a.grid.Render()
	if a.width <= 0 || a.height <= 1 || body == "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header,
		lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, body))
}
