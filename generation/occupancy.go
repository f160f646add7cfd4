package generation

// occupancyGrid marks which grid cells are reserved by placed areas.
// It lives for a single generation run.
type occupancyGrid struct {
	width  int
	height int
	cells  []bool
}

func newOccupancyGrid(width, height int) *occupancyGrid {
	return &occupancyGrid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// buildAreaOccupancy stamps every area circle onto a fresh grid
func buildAreaOccupancy(width, height int, areas []MapArea) *occupancyGrid {
	grid := newOccupancyGrid(width, height)
	for _, area := range areas {
		grid.markCircle(area.CenterX, area.CenterY, area.Radius)
	}
	return grid
}

func (g *occupancyGrid) occupied(x, y int) bool {
	return g.cells[y*g.width+x]
}

// markCircle reserves every in-bounds cell within the circle
func (g *occupancyGrid) markCircle(centerX, centerY, radius int) {
	radiusSq := radius * radius
	for y := centerY - radius; y <= centerY+radius; y++ {
		for x := centerX - radius; x <= centerX+radius; x++ {
			if x < 0 || y < 0 || x >= g.width || y >= g.height {
				continue
			}
			dx := x - centerX
			dy := y - centerY
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			g.cells[y*g.width+x] = true
		}
	}
}

// circleFits reports whether the full circle is in bounds and covers no
// reserved cell. It has no side effects.
func (g *occupancyGrid) circleFits(centerX, centerY, radius int) bool {
	if centerX-radius < 0 || centerY-radius < 0 ||
		centerX+radius >= g.width || centerY+radius >= g.height {
		return false
	}
	radiusSq := radius * radius
	for y := centerY - radius; y <= centerY+radius; y++ {
		for x := centerX - radius; x <= centerX+radius; x++ {
			dx := x - centerX
			dy := y - centerY
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			if g.cells[y*g.width+x] {
				return false
			}
		}
	}
	return true
}
