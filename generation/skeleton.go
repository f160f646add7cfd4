package generation

import (
	"math/rand"

	"github.com/ktarrant/spriteforge/config"
)

const (
	// Corridor half-widths handed to the rasterizer
	PathRadius      = 1
	ConnectorRadius = 0

	// Chance for a minor area to become a dock
	dockChance = 0.25

	// How many times the trunk/branch carve is retried with shrunken
	// areas before all areas are cleared and the carve is forced
	maxCarveAttempts = 6
)

// AreaType identifies special area behavior
type AreaType int

const (
	AreaTypeDock AreaType = iota
)

// PathSegment is a single axis-aligned straight run of a carved corridor
type PathSegment struct {
	StartX int
	StartY int
	EndX   int
	EndY   int
	Radius int
}

// MapArea is a circular point of interest reserved on the grid.
// HasType/Type stand in for an optional area type.
type MapArea struct {
	CenterX int
	CenterY int
	Radius  int
	HasType bool
	Type    AreaType
}

// IsDock reports whether the area is a water-adjacent dock
func (a MapArea) IsDock() bool {
	return a.HasType && a.Type == AreaTypeDock
}

// MapSkeleton is the complete path network produced by the generator,
// prior to tile rasterization
type MapSkeleton struct {
	Paths      []PathSegment
	Areas      []MapArea
	WaterPaths []PathSegment
}

// SkeletonGenerator handles procedural generation of the map path network
type SkeletonGenerator struct {
	rng *rand.Rand
}

// NewSkeletonGenerator creates a new skeleton generator with the given seed
func NewSkeletonGenerator(seed int64) *SkeletonGenerator {
	return &SkeletonGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// SetSeed allows setting a specific seed for reproducible skeletons
func (g *SkeletonGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate produces a skeleton using the built-in anchor layout
func (g *SkeletonGenerator) Generate(width, height int) MapSkeleton {
	return g.GenerateWithConfig(width, height, config.DefaultSkeletonConfig())
}

// GenerateWithConfig produces a skeleton for the given anchor layout
func (g *SkeletonGenerator) GenerateWithConfig(width, height int, cfg *config.SkeletonConfig) MapSkeleton {
	return GenerateSkeleton(width, height, g.rng, cfg)
}

// GenerateSkeleton generates the map path network: circular areas placed
// near their configured anchors, a trunk corridor from the entry point to
// the fork point, one branch corridor per exit, connector corridors wiring
// areas into the network, and water channels from dock areas to the map
// edge. The caller owns the PRNG, so a fixed (dimensions, config, seed)
// triple always yields the same skeleton.
func GenerateSkeleton(width, height int, rng *rand.Rand, cfg *config.SkeletonConfig) MapSkeleton {
	if width <= 0 || height <= 0 {
		return MapSkeleton{
			Paths:      []PathSegment{},
			Areas:      []MapArea{},
			WaterPaths: []PathSegment{},
		}
	}
	if cfg == nil {
		cfg = config.DefaultSkeletonConfig()
	}

	entryX, entryY := resolvePoint(cfg.Entry.X, cfg.Entry.Y, width, height)
	forkX, forkY := resolvePoint(cfg.Fork.X, cfg.Fork.Y, width, height)
	exitPoints := make([]point, 0, len(cfg.Exits))
	for _, exit := range cfg.Exits {
		x, y := resolvePoint(exit.X, exit.Y, width, height)
		exitPoints = append(exitPoints, point{x, y})
	}
	if len(exitPoints) == 0 {
		exitPoints = []point{{0, height / 2}}
	}

	areas := placeAreas(width, height, rng, cfg.Areas)

	// Carve the trunk and the branches, shrinking areas and retrying when
	// a walk gets boxed in. The loop is bounded; a final unconditional
	// carve over a cleared grid guarantees a usable network.
	var trunk []point
	var branches [][]point
	for attempt := 0; attempt < maxCarveAttempts; attempt++ {
		occupied := buildAreaOccupancy(width, height, areas)
		trunk = carvePathPoints(entryX, entryY, forkX, forkY, width, height, rng, occupied, point{0, 0})
		if len(trunk) == 0 {
			shrinkAreas(areas)
			continue
		}
		forkPoint := trunk[len(trunk)-1]
		branches = carveBranches(forkPoint, exitPoints, width, height, rng, occupied)
		if allBranchesCarved(branches) {
			break
		}
		shrinkAreas(areas)
	}

	if len(trunk) == 0 || !allBranchesCarved(branches) {
		areas = areas[:0]
		occupied := buildAreaOccupancy(width, height, areas)
		trunk = carvePathPoints(entryX, entryY, forkX, forkY, width, height, rng, occupied, point{0, 0})
		forkPoint := point{forkX, forkY}
		if len(trunk) > 0 {
			forkPoint = trunk[len(trunk)-1]
		}
		branches = carveBranches(forkPoint, exitPoints, width, height, rng, occupied)
	}

	paths := make([]PathSegment, 0)
	paths = append(paths, pointsToSegments(trunk, PathRadius)...)
	for _, branch := range branches {
		paths = append(paths, pointsToSegments(branch, PathRadius)...)
	}

	waterPaths := carveDockPaths(width, height, areas, rng)

	if len(areas) > 0 {
		forkPoint := point{forkX, forkY}
		if len(trunk) > 0 {
			forkPoint = trunk[len(trunk)-1]
		}
		paths = append(paths, routeConnectors(width, height, rng, cfg, areas, trunk, branches, forkPoint)...)
	}

	return MapSkeleton{
		Paths:      paths,
		Areas:      areas,
		WaterPaths: waterPaths,
	}
}

// point is a grid cell coordinate
type point struct {
	x, y int
}

// resolvePoint maps normalized 0..1 coordinates onto grid cells
func resolvePoint(fx, fy float64, width, height int) (int, int) {
	x := int(clampFloat(fx, 0, 1)*float64(width-1) + 0.5)
	y := int(clampFloat(fy, 0, 1)*float64(height-1) + 0.5)
	return clampInt(x, 0, width-1), clampInt(y, 0, height-1)
}

func carveBranches(fork point, exits []point, width, height int, rng *rand.Rand, occupied *occupancyGrid) [][]point {
	branches := make([][]point, 0, len(exits))
	for _, exit := range exits {
		// Pull each branch toward its exit so forks spread away from the trunk
		bias := point{sign(exit.x - fork.x), sign(exit.y - fork.y)}
		branch := carvePathPoints(fork.x, fork.y, exit.x, exit.y, width, height, rng, occupied, bias)
		branches = append(branches, branch)
	}
	return branches
}

func allBranchesCarved(branches [][]point) bool {
	if branches == nil {
		return false
	}
	for _, branch := range branches {
		if len(branch) == 0 {
			return false
		}
	}
	return true
}

func shrinkAreas(areas []MapArea) {
	for i := range areas {
		if areas[i].Radius > 1 {
			areas[i].Radius--
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
