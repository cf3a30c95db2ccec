package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/constellation/pkg/frame"
)

const (
	starHit  = '✦'
	starIdle = '✧'
)

type kind uint8

const (
	blank kind = iota
	inkLine
	doneLine
	star
	label
)

type cell struct {
	r     rune
	kind  kind
	color string
	bold  bool
}

// Canvas is a rasterized frame.
type Canvas struct {
	grid  Grid
	style frame.Style
	cells [][]cell
}

// Draw rasterizes f onto g. The frame must have been built for g.Size().
func Draw(f frame.Frame, g Grid) *Canvas {
	c := &Canvas{grid: g, style: f.Style, cells: make([][]cell, g.Rows)}
	for r := range c.cells {
		c.cells[r] = make([]cell, g.Cols)
		for col := range c.cells[r] {
			c.cells[r][col] = cell{r: ' '}
		}
	}

	t := f.Transform
	for _, l := range f.Lines {
		x1, y1 := t.Apply(l.X1, l.Y1)
		x2, y2 := t.Apply(l.X2, l.Y2)
		k, color := inkLine, f.Style.Ink
		if l.Done() {
			k, color = doneLine, f.Style.Highlight
		}
		c.line(x1, y1, x2, y2, cell{r: slopeRune(x2-x1, y2-y1), kind: k, color: color, bold: f.Glow && l.Done()})
	}

	for _, s := range f.Stars {
		x, y := t.Apply(s.X, s.Y)
		col, row := g.Cell(x, y)
		sc := cell{r: starIdle, kind: star, color: f.Style.Ink, bold: s.Hovered}
		if s.Hit {
			sc.r, sc.color = starHit, f.Style.Highlight
		}
		c.set(col, row, sc)
	}

	for _, l := range f.Labels {
		x, y := t.Apply(l.X, l.Y)
		col, row := g.Cell(x, y)
		for _, r := range l.Text {
			if c.at(col, row).kind != star {
				c.set(col, row, cell{r: r, kind: label, color: l.Color})
			}
			col++
		}
	}
	return c
}

// Rune returns the rune at (col, row), or a space outside the grid.
func (c *Canvas) Rune(col, row int) rune { return c.at(col, row).r }

// Plain returns the canvas as unstyled text, one line per row.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}

// String returns the canvas colored with lipgloss. Consecutive cells with
// the same style are rendered as one run.
func (c *Canvas) String() string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(c.style.Background))
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && sameStyle(row[j], row[start]) {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:j] {
				run.WriteRune(cl.r)
			}
			b.WriteString(cellStyle(base, row[start]).Render(run.String()))
			start = j
		}
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	if a.kind == blank && b.kind == blank {
		return true
	}
	return a.kind != blank && b.kind != blank && a.color == b.color && a.bold == b.bold
}

func cellStyle(base lipgloss.Style, cl cell) lipgloss.Style {
	if cl.kind == blank {
		return base
	}
	return base.Foreground(lipgloss.Color(cl.color)).Bold(cl.bold)
}

func (c *Canvas) at(col, row int) cell {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return cell{r: ' '}
	}
	return c.cells[row][col]
}

func (c *Canvas) set(col, row int, cl cell) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = cl
}

// line plots a segment between two pixel points with Bresenham's algorithm
// over cell coordinates.
func (c *Canvas) line(x1, y1, x2, y2 float64, cl cell) {
	c0, r0 := c.grid.Cell(x1, y1)
	c1, r1 := c.grid.Cell(x2, y2)

	dx, dy := abs(c1-c0), -abs(r1-r0)
	sx, sy := sign(c1-c0), sign(r1-r0)
	err := dx + dy
	for {
		c.set(c0, r0, cl)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c0 += sx
		}
		if e2 <= dx {
			err += dx
			r0 += sy
		}
	}
}

// slopeRune picks a box-drawing rune for a segment with the given pixel
// direction. Screen y grows downward.
func slopeRune(dx, dy float64) rune {
	ang := math.Atan2(-dy, dx) * 180 / math.Pi
	if ang < 0 {
		ang += 180
	}
	switch {
	case ang < 22.5 || ang >= 157.5:
		return '─'
	case ang < 67.5:
		return '╱'
	case ang < 112.5:
		return '│'
	default:
		return '╲'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
