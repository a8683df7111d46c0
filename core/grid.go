package core

// Cell is a grid-aligned position in display pixels
type Cell struct {
	X, Y int
}

// Direction is one of the four movement headings
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the heading name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Step returns c moved one cell of the given size in direction d
func (d Direction) Step(c Cell, size int) Cell {
	switch d {
	case DirUp:
		c.Y -= size
	case DirRight:
		c.X += size
	case DirDown:
		c.Y += size
	case DirLeft:
		c.X -= size
	}
	return c
}

// Grid maps continuous display pixels to a discrete cell grid
type Grid struct {
	Width, Height int // Display extents in pixels
	CellSize      int
}

// NewGrid creates a grid over a display of the given pixel extents
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Cols returns the number of whole cells across the display
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of whole cells down the display
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// CellAt returns the cell at grid column and row
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.CellSize, Y: row * g.CellSize}
}

// Contains reports whether c is a valid cell of the grid
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 &&
		c.X < g.Cols()*g.CellSize && c.Y < g.Rows()*g.CellSize &&
		c.X%g.CellSize == 0 && c.Y%g.CellSize == 0
}

// Wrap moves a cell that left the grid to the opposite edge
func (g Grid) Wrap(c Cell) Cell {
	spanX := g.Cols() * g.CellSize
	spanY := g.Rows() * g.CellSize
	if c.X >= spanX {
		c.X = 0
	}
	if c.X < 0 {
		c.X = spanX - g.CellSize
	}
	if c.Y >= spanY {
		c.Y = 0
	}
	if c.Y < 0 {
		c.Y = spanY - g.CellSize
	}
	return c
}

// Center returns the grid-aligned cell nearest the display centre
func (g Grid) Center() Cell {
	return g.CellAt(g.Cols()/2, g.Rows()/2)
}

// InCentralRegion reports whether c lies strictly inside the middle 50% x 50% of the display
func (g Grid) InCentralRegion(c Cell) bool {
	return c.X > g.Width/4 && c.X < 3*g.Width/4 &&
		c.Y > g.Height/4 && c.Y < 3*g.Height/4
}
