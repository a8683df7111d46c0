package input

import "github.com/lixenwraith/vi-snake/core"

// Deflection thresholds on the 10-bit axis readings
const (
	AxisLow  = 400
	AxisHigh = 600
)

// Decode maps raw axis readings to a heading.
// The panel is mounted rotated: channel X steers vertically and channel Y horizontally.
// X is evaluated first and Y overrides it, so a diagonal resolves to the horizontal heading.
// Readings inside the dead zone keep current. There is no reverse guard.
func Decode(x, y int, current core.Direction) core.Direction {
	dir := current
	if x < AxisLow {
		dir = core.DirUp
	} else if x > AxisHigh {
		dir = core.DirDown
	}
	if y < AxisLow {
		dir = core.DirRight
	} else if y > AxisHigh {
		dir = core.DirLeft
	}
	return dir
}

// Read samples both channels of in and decodes them
func Read(in core.Input, current core.Direction) core.Direction {
	return Decode(in.ReadAxis(core.AxisX), in.ReadAxis(core.AxisY), current)
}

// Deflect returns the axis readings that Decode resolves to dir
func Deflect(dir core.Direction) [2]int {
	switch dir {
	case core.DirUp:
		return [2]int{0, core.AxisCenter}
	case core.DirDown:
		return [2]int{core.AxisMax, core.AxisCenter}
	case core.DirRight:
		return [2]int{core.AxisCenter, 0}
	case core.DirLeft:
		return [2]int{core.AxisCenter, core.AxisMax}
	default:
		return [2]int{core.AxisCenter, core.AxisCenter}
	}
}
