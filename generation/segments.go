package generation

// pointsToSegments collapses an ordered walk into the minimal list of
// axis-aligned straight segments: whenever the step direction changes the
// current run closes and a new one begins. Fewer than two points yields
// no segments.
func pointsToSegments(points []point, radius int) []PathSegment {
	if len(points) < 2 {
		return nil
	}
	segments := make([]PathSegment, 0)
	start := points[0]
	prev := points[0]
	dir := point{points[1].x - points[0].x, points[1].y - points[0].y}
	for _, p := range points[1:] {
		nextDir := point{p.x - prev.x, p.y - prev.y}
		if nextDir != dir {
			segments = append(segments, PathSegment{
				StartX: start.x,
				StartY: start.y,
				EndX:   prev.x,
				EndY:   prev.y,
				Radius: radius,
			})
			start = prev
			dir = nextDir
		}
		prev = p
	}
	segments = append(segments, PathSegment{
		StartX: start.x,
		StartY: start.y,
		EndX:   prev.x,
		EndY:   prev.y,
		Radius: radius,
	})
	return segments
}

// findNearestPoint returns the walk point with least squared distance to
// the target, or false for an empty walk
func findNearestPoint(points []point, target point) (point, bool) {
	best := point{}
	bestDist := -1
	for _, p := range points {
		dx := p.x - target.x
		dy := p.y - target.y
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = p
		}
	}
	return best, bestDist >= 0
}

// findNearestPointOnWalks searches several walks for the point nearest the target
func findNearestPointOnWalks(walks [][]point, target point) (point, bool) {
	best := point{}
	bestDist := -1
	for _, walk := range walks {
		p, ok := findNearestPoint(walk, target)
		if !ok {
			continue
		}
		dx := p.x - target.x
		dy := p.y - target.y
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = p
		}
	}
	return best, bestDist >= 0
}
