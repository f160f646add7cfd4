package generation

import (
	"math"
	"math/rand"
)

// Vec3 is a small float vector used by the tree growth algorithm
type Vec3 struct {
	X, Y, Z float32
}

// Length returns the vector magnitude
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalized returns a unit-length copy, or the zero vector for
// degenerate input
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length <= 1e-7 {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Add returns v + other
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * factor
func (v Vec3) Scale(factor float32) Vec3 {
	return Vec3{v.X * factor, v.Y * factor, v.Z * factor}
}

// TreeSegment is one branch piece of a grown tree
type TreeSegment struct {
	Start  Vec3
	End    Vec3
	Radius float32
	Normal Vec3
}

// TreeLeaf is a foliage quad anchor on the crown
type TreeLeaf struct {
	Position Vec3
	Size     float32
	Normal   Vec3
}

// TreeModel is the full branch and leaf geometry of one tree
type TreeModel struct {
	Segments []TreeSegment
	Leaves   []TreeLeaf
}

// TreeSettings tunes the space colonization growth
type TreeSettings struct {
	TrunkHeight       float32
	CrownRadius       float32
	CrownHeight       float32
	AttractionPoints  int
	SegmentLength     float32
	InfluenceDistance float32
	KillDistance      float32
	MaxIterations     int
	BaseRadius        float32
	LeafSize          float32
}

// DefaultTreeSettings returns the tuning used for the stock tree sprites
func DefaultTreeSettings() TreeSettings {
	return TreeSettings{
		TrunkHeight:       4.0,
		CrownRadius:       3.5,
		CrownHeight:       5.0,
		AttractionPoints:  280,
		SegmentLength:     0.5,
		InfluenceDistance: 2.4,
		KillDistance:      0.7,
		MaxIterations:     220,
		BaseRadius:        0.35,
		LeafSize:          0.55,
	}
}

type treeNode struct {
	position Vec3
	children int
}

// GenerateTree grows a tree by space colonization: attraction points are
// scattered in a cylinder-bounded crown above the trunk, then branch
// nodes repeatedly extend toward the mean direction of the attraction
// points within influence range, with consumed points removed once a
// node grows inside the kill distance.
func GenerateTree(seed int64, settings TreeSettings) TreeModel {
	rng := rand.New(rand.NewSource(seed))

	attractionPoints := make([]Vec3, 0, settings.AttractionPoints)
	for i := 0; i < settings.AttractionPoints; i++ {
		var p Vec3
		for try := 0; try < 30; try++ {
			x := float32(rng.Float64()*2-1) * settings.CrownRadius
			y := float32(rng.Float64()*2-1) * settings.CrownRadius
			if x*x+y*y > settings.CrownRadius*settings.CrownRadius {
				continue
			}
			z := float32(rng.Float64()) * settings.CrownHeight
			p = Vec3{x, y, z + settings.TrunkHeight}
			break
		}
		attractionPoints = append(attractionPoints, p)
	}
	initialPoints := make([]Vec3, len(attractionPoints))
	copy(initialPoints, attractionPoints)

	nodes := []treeNode{
		{position: Vec3{}, children: 1},
		{position: Vec3{0, 0, settings.TrunkHeight}},
	}
	segments := []TreeSegment{{
		Start:  nodes[0].position,
		End:    nodes[1].position,
		Radius: settings.BaseRadius,
	}}

	for iter := 0; len(attractionPoints) > 0 && iter < settings.MaxIterations; iter++ {
		directionSums := make([]Vec3, len(nodes))
		directionCounts := make([]int, len(nodes))
		remaining := attractionPoints[:0]

		for _, p := range attractionPoints {
			closest := -1
			closestDist := float32(math.MaxFloat32)
			var closestDelta Vec3
			for idx, node := range nodes {
				delta := p.Sub(node.position)
				dist := delta.Length()
				if dist < closestDist {
					closestDist = dist
					closest = idx
					closestDelta = delta
				}
			}

			if closestDist <= settings.KillDistance {
				continue
			}
			if closest >= 0 && closestDist <= settings.InfluenceDistance {
				directionSums[closest] = directionSums[closest].Add(closestDelta.Normalized())
				directionCounts[closest]++
			}
			remaining = append(remaining, p)
		}
		attractionPoints = remaining

		grew := false
		nodeCount := len(nodes)
		for idx := 0; idx < nodeCount; idx++ {
			if directionCounts[idx] == 0 {
				continue
			}
			direction := directionSums[idx].Scale(1 / float32(directionCounts[idx]))
			newPos := nodes[idx].position.Add(direction.Normalized().Scale(settings.SegmentLength))
			nodes[idx].children++
			nodes = append(nodes, treeNode{position: newPos})
			segments = append(segments, TreeSegment{
				Start: nodes[idx].position,
				End:   newPos,
			})
			grew = true
		}
		if !grew {
			break
		}
	}

	// Taper branch radii toward the crown top
	maxHeight := settings.TrunkHeight + settings.CrownHeight
	if maxHeight < 0.001 {
		maxHeight = 0.001
	}
	for i := range segments {
		t := float64(clampFloat(float64(segments[i].End.Z/maxHeight), 0, 1))
		radius := settings.BaseRadius * float32(math.Pow(1-t, 0.7))
		if radius < settings.BaseRadius*0.15 {
			radius = settings.BaseRadius * 0.15
		}
		segments[i].Radius = radius
	}

	center := computeTreeCenter(segments, nodes)
	for i := range segments {
		mid := Vec3{
			(segments[i].Start.X + segments[i].End.X) * 0.5,
			(segments[i].Start.Y + segments[i].End.Y) * 0.5,
			(segments[i].Start.Z + segments[i].End.Z) * 0.5,
		}
		segments[i].Normal = mid.Sub(center).Normalized()
	}

	leaves := make([]TreeLeaf, 0, len(initialPoints))
	for _, p := range initialPoints {
		leaves = append(leaves, TreeLeaf{
			Position: p,
			Size:     settings.LeafSize,
			Normal:   p.Sub(center).Normalized(),
		})
	}

	return TreeModel{Segments: segments, Leaves: leaves}
}

func computeTreeCenter(segments []TreeSegment, nodes []treeNode) Vec3 {
	min := Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}

	for _, segment := range segments {
		expandBounds(segment.Start, segment.Radius, &min, &max)
		expandBounds(segment.End, segment.Radius, &min, &max)
	}
	for _, node := range nodes {
		expandBounds(node.position, 0, &min, &max)
	}

	if min.X > max.X {
		return Vec3{}
	}
	return Vec3{
		(min.X + max.X) * 0.5,
		(min.Y + max.Y) * 0.5,
		(min.Z + max.Z) * 0.5,
	}
}

func expandBounds(p Vec3, radius float32, min, max *Vec3) {
	if radius < 0 {
		radius = 0
	}
	min.X = minFloat32(min.X, p.X-radius)
	min.Y = minFloat32(min.Y, p.Y-radius)
	min.Z = minFloat32(min.Z, p.Z-radius)
	max.X = maxFloat32(max.X, p.X+radius)
	max.Y = maxFloat32(max.Y, p.Y+radius)
	max.Z = maxFloat32(max.Z, p.Z+radius)
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
