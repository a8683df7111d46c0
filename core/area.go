package core

// Area represents a rectangular region in display pixels
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether the top-left pixel of c lies inside the area
func (a Area) Contains(c Cell) bool {
	return c.X >= a.X && c.X < a.X+a.Width &&
		c.Y >= a.Y && c.Y < a.Y+a.Height
}

// Overlaps reports whether a size x size block anchored at c intersects the area
func (a Area) Overlaps(c Cell, size int) bool {
	return c.X > a.X-size && c.X < a.X+a.Width &&
		c.Y > a.Y-size && c.Y < a.Y+a.Height
}
