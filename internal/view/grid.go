// Package view renders the radial selector as a 3x3 compass grid in the
// terminal and implements radial.Presenter over it.
package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/radialmenu/internal/radial"
)

// layout places option indices on the grid; 0 is the center.
var layout = [3][3]int{
	{8, 1, 2},
	{7, 0, 3},
	{6, 5, 4},
}

// Labels maps each option to its display text.
type Labels struct {
	Center  string
	Options [8]string // clockwise from the top
}

func (l Labels) forIndex(i int) string {
	if i == 0 {
		if s := strings.TrimSpace(l.Center); s != "" {
			return s
		}
		return "c"
	}
	if s := strings.TrimSpace(l.Options[i-1]); s != "" {
		return s
	}
	return strconv.Itoa(i)
}

// Grid is a terminal presenter for one radial widget. It keeps which element
// carries each designation and whether the widget is visible.
type Grid struct {
	theme      Theme
	labels     Labels
	elements   map[radial.Target]int
	designated map[radial.Designation]radial.Target
	visible    bool
}

var _ radial.Presenter = (*Grid)(nil)

// NewGrid returns a hidden grid with the nine standard elements.
func NewGrid(theme Theme, labels Labels) *Grid {
	g := &Grid{
		theme:      theme,
		labels:     labels,
		elements:   make(map[radial.Target]int, 9),
		designated: make(map[radial.Designation]radial.Target),
	}
	for i := 0; i <= 8; i++ {
		g.elements[radial.TargetFor(i)] = i
	}
	return g
}

// Highlight moves designation to target. Unknown targets only clear it.
func (g *Grid) Highlight(designation radial.Designation, target radial.Target) {
	delete(g.designated, designation)
	if _, ok := g.elements[target]; !ok {
		return
	}
	g.designated[designation] = target
}

func (g *Grid) Show() { g.visible = true }

func (g *Grid) Hide() { g.visible = false }

// Visible reports whether the widget is shown.
func (g *Grid) Visible() bool { return g.visible }

// Designated returns the element currently carrying designation.
func (g *Grid) Designated(designation radial.Designation) (radial.Target, bool) {
	t, ok := g.designated[designation]
	return t, ok
}

// Label returns the display text for index, or "" when out of range.
func (g *Grid) Label(index int) string {
	if index < 0 || index > 8 {
		return ""
	}
	return g.labels.forIndex(index)
}

// Reset clears all designations and hides the grid.
func (g *Grid) Reset() {
	clear(g.designated)
	g.visible = false
}

// Render draws the grid, or returns "" while hidden.
func (g *Grid) Render() string {
	if !g.visible {
		return ""
	}
	width := 0
	for i := 0; i <= 8; i++ {
		if w := ansi.StringWidth(g.labels.forIndex(i)); w > width {
			width = w
		}
	}
	rows := make([]string, 0, len(layout)+1)
	for _, row := range layout {
		cells := make([]string, 0, len(row))
		for _, idx := range row {
			cells = append(cells, g.styleFor(idx).Render(padCenter(g.labels.forIndex(idx), width)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, dimStyle.Render("drag to choose, release to confirm"))
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// styleFor picks the cell style. The active mark outlives its session, so
// selected wins when both land on one cell.
func (g *Grid) styleFor(idx int) lipgloss.Style {
	target := radial.TargetFor(idx)
	if t, ok := g.designated[radial.DesignationSelected]; ok && t == target {
		return g.theme.Selected
	}
	if t, ok := g.designated[radial.DesignationActive]; ok && t == target {
		return g.theme.Active
	}
	return g.theme.Cell
}

// padCenter pads s with spaces on both sides to the given visual width.
func padCenter(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
