package radial

import "math"

// DefaultDeadZone is the Manhattan displacement below which the center stays selected.
const DefaultDeadZone = 20.0

// Resolve maps a displacement in screen coordinates (+y down) to a selection
// index: 0 inside the dead zone, otherwise 1..8 clockwise from the top, one
// option per 45 degree sector.
func Resolve(dx, dy, deadZone float64) int {
	if math.Abs(dx)+math.Abs(dy) < deadZone {
		return 0
	}
	if dx > dy {
		if -dy > dx {
			return edge(-dy, dx, 1)
		}
		return edge(dx, dy, 3)
	}
	if -dx < dy {
		return edge(dy, -dx, 5)
	}
	return edge(-dx, -dy, 7)
}

// edge picks one of the three options spanning a quadrant. a is the distance
// along the quadrant's middle direction, b the clockwise offset from it.
// Boundary ties stay on base.
func edge(a, b float64, base int) int {
	b += a / 2
	idx := base
	switch {
	case b < 0:
		idx = base - 1
	case b > a:
		idx = base + 1
	}
	if idx == 0 {
		return 8
	}
	return idx
}
