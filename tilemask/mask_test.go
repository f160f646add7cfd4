package tilemask

import (
	"math"
	"testing"
)

const eps = 1e-6

func assertClose(t *testing.T, actual, expected float32) {
	t.Helper()
	if math.Abs(float64(actual-expected)) > eps {
		t.Errorf("Expected %f, got %f", expected, actual)
	}
}

func TestTransitionMaskCount(t *testing.T) {
	masks := AllTransitionMasks()
	if len(masks) != 46 {
		t.Errorf("Expected 46 transition masks, got %d", len(masks))
	}
}

func TestNormalizeMaskDropsOrphanCorners(t *testing.T) {
	// A cut edge absorbs both of its adjacent corners
	if got := NormalizeMask(EdgeN | CornerNE); got != EdgeN|CornerNE|CornerNW {
		t.Errorf("Expected a cut N edge to imply both N corners, got %08b", got)
	}

	// A lone corner with all edges solid survives untouched
	if got := NormalizeMask(CornerSW); got != CornerSW {
		t.Errorf("Expected a lone corner to survive, got %08b", got)
	}

	// Normalization is idempotent
	for raw := 0; raw <= 255; raw++ {
		once := NormalizeMask(uint8(raw))
		twice := NormalizeMask(once)
		if once != twice {
			t.Fatalf("Normalization not idempotent for %08b: %08b vs %08b", raw, once, twice)
		}
	}
}

func TestMaskIndexCoversAllMasks(t *testing.T) {
	for _, mask := range AllTransitionMasks() {
		idx, ok := MaskIndex(mask)
		if !ok {
			t.Fatalf("No index for mask %08b", mask)
		}
		if idx < 0 || idx >= 46 {
			t.Fatalf("Index %d for mask %08b out of range", idx, mask)
		}
	}
	if _, ok := MaskIndex(0); ok {
		t.Error("Expected no index for the zero mask")
	}
}

func TestUVFromXYMatchesDiamondVertices(t *testing.T) {
	u, v := UVFromXY(0.0, 0.75)
	assertClose(t, u, 0)
	assertClose(t, v, 0)

	u, v = UVFromXY(0.5, 1.0)
	assertClose(t, u, 1)
	assertClose(t, v, 0)

	u, v = UVFromXY(0.5, 0.5)
	assertClose(t, u, 0)
	assertClose(t, v, 1)

	u, v = UVFromXY(1.0, 0.75)
	assertClose(t, u, 1)
	assertClose(t, v, 1)
}

func TestUVXYRoundtrip(t *testing.T) {
	xySamples := [][2]float32{
		{0.0, 0.75},
		{0.5, 0.5},
		{0.5, 1.0},
		{1.0, 0.75},
		{0.25, 0.875},
	}
	for _, sample := range xySamples {
		u, v := UVFromXY(sample[0], sample[1])
		x, y := XYFromUV(u, v)
		assertClose(t, x, sample[0])
		assertClose(t, y, sample[1])
	}

	uvSamples := [][2]float32{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.2, 0.8},
	}
	for _, sample := range uvSamples {
		x, y := XYFromUV(sample[0], sample[1])
		u, v := UVFromXY(x, y)
		assertClose(t, u, sample[0])
		assertClose(t, v, sample[1])
	}
}

func TestEdgeWeightForMask(t *testing.T) {
	// The diamond center is always solid
	if w := EdgeWeightForMask(EdgeN|EdgeS|EdgeE|EdgeW, 0.5, 0.75, 0.1, 0); w != 1 {
		t.Errorf("Expected full weight at the center, got %f", w)
	}

	// A point hard against a cut edge is fully transparent
	if w := EdgeWeightForMask(EdgeW, 0.0, 0.75, 0.1, 0); w != 0 {
		t.Errorf("Expected zero weight on a cut edge, got %f", w)
	}

	// No mask bits means no cut anywhere
	if w := EdgeWeightForMask(0, 0.1, 0.9, 0.1, 0.05); w != 1 {
		t.Errorf("Expected full weight without mask bits, got %f", w)
	}
}

func TestAnglesForMaskMatchEdges(t *testing.T) {
	angles := AnglesForMask(EdgeN | EdgeE)
	if len(angles) != 2 {
		t.Fatalf("Expected 2 angles, got %d", len(angles))
	}
	assertClose(t, angles[0], 333.435)
	assertClose(t, angles[1], 26.565)

	if len(AnglesForMask(0)) != 0 {
		t.Error("Expected no angles for the zero mask")
	}
}
