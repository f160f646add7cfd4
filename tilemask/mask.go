// Package tilemask encodes which neighbors of a terrain tile hold a
// different base tile, as an eight-bit edge/corner mask, and maps masks
// onto transition tilesheet slots.
package tilemask

import (
	"math"
	"sort"
)

// Edge and corner bits of a transition mask
const (
	EdgeN uint8 = 1 << 0
	EdgeE uint8 = 1 << 1
	EdgeS uint8 = 1 << 2
	EdgeW uint8 = 1 << 3

	CornerNE uint8 = 1 << 4
	CornerSE uint8 = 1 << 5
	CornerSW uint8 = 1 << 6
	CornerNW uint8 = 1 << 7

	EdgeMask   = EdgeN | EdgeE | EdgeS | EdgeW
	CornerMask = CornerNE | CornerSE | CornerSW | CornerNW
)

// NormalizeMask canonicalizes a raw neighbor mask. A corner transition is
// only meaningful when both adjacent edges stay solid, so corners whose
// adjacent edges are cut are dropped. The rule operates on the complement
// because the mask bits mark the transition side, not the solid side.
func NormalizeMask(mask uint8) uint8 {
	m := ^mask

	if m&(EdgeN|EdgeE) != (EdgeN | EdgeE) {
		m &^= CornerNE
	}
	if m&(EdgeS|EdgeE) != (EdgeS | EdgeE) {
		m &^= CornerSE
	}
	if m&(EdgeS|EdgeW) != (EdgeS | EdgeW) {
		m &^= CornerSW
	}
	if m&(EdgeN|EdgeW) != (EdgeN | EdgeW) {
		m &^= CornerNW
	}

	return ^m
}

// AllTransitionMasks returns every distinct nonzero normalized mask in
// ascending order. The tilesheet carries one transition tile per entry.
func AllTransitionMasks() []uint8 {
	seen := make(map[uint8]bool)
	for raw := 0; raw <= 255; raw++ {
		seen[NormalizeMask(uint8(raw))] = true
	}
	masks := make([]uint8, 0, len(seen))
	for mask := range seen {
		if mask == 0 {
			continue
		}
		masks = append(masks, mask)
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })
	return masks
}

// MaskIndex returns the tilesheet slot for a mask, or false for the zero mask
func MaskIndex(mask uint8) (int, bool) {
	normalized := NormalizeMask(mask)
	for idx, candidate := range AllTransitionMasks() {
		if candidate == normalized {
			return idx, true
		}
	}
	return 0, false
}

// MaskEdges returns only the edge bits of a mask
func MaskEdges(mask uint8) uint8 {
	return mask & EdgeMask
}

// MaskCorners returns only the corner bits of a mask
func MaskCorners(mask uint8) uint8 {
	return mask & CornerMask
}

// AnglesForMask returns the facing angle in degrees of every transition
// present in the mask, matching the isometric diamond edge slopes
func AnglesForMask(mask uint8) []float32 {
	mask = NormalizeMask(mask)
	angles := make([]float32, 0, 8)
	if mask&EdgeN != 0 {
		angles = append(angles, 333.435)
	}
	if mask&EdgeE != 0 {
		angles = append(angles, 26.565)
	}
	if mask&EdgeS != 0 {
		angles = append(angles, 153.435)
	}
	if mask&EdgeW != 0 {
		angles = append(angles, 206.565)
	}
	if mask&CornerNE != 0 {
		angles = append(angles, 0.0)
	}
	if mask&CornerNW != 0 {
		angles = append(angles, 270.0)
	}
	if mask&CornerSW != 0 {
		angles = append(angles, 180.0)
	}
	if mask&CornerSE != 0 {
		angles = append(angles, 90.0)
	}
	return angles
}

// UVFromXY maps normalized image coordinates onto the isometric diamond's
// uv space, with the left diamond vertex at the origin
func UVFromXY(xf, yf float32) (float32, float32) {
	const lx, ly = 0.0, 0.75

	dx := xf - lx
	dy := yf - ly

	u := dx + 2.0*dy
	v := u - dy*4.0
	return u, v
}

// XYFromUV is the inverse of UVFromXY
func XYFromUV(u, v float32) (float32, float32) {
	x := (u + v) * 0.5
	y := (u-v)*0.25 + 0.75
	return x, y
}

// EdgeWeightForMask returns the opacity of a pixel in a transition tile:
// 1 inside the solid region, 0 past the cut border, smoothstepped across
// the gradient band. Corner cuts are radial; adjacent edge pairs are
// rounded off with circular joins.
func EdgeWeightForMask(mask uint8, xf, yf, cutoff, gradient float32) float32 {
	alpha := float32(1.0)
	u, v := UVFromXY(xf, yf)

	if mask&EdgeN != 0 {
		border := 1.0 - cutoff
		if v > border {
			alpha = 0
		} else if gradient > 0 {
			alpha = minFloat32(alpha, smoothstep(border, border-gradient, v))
		}
	}
	if mask&EdgeW != 0 {
		border := cutoff
		if u < border {
			alpha = 0
		} else if gradient > 0 {
			alpha = minFloat32(alpha, smoothstep(border, border+gradient, u))
		}
	}
	if mask&EdgeS != 0 {
		border := cutoff
		if v < border {
			alpha = 0
		} else if gradient > 0 {
			alpha = minFloat32(alpha, smoothstep(border, border+gradient, v))
		}
	}
	if mask&EdgeE != 0 {
		border := 1.0 - cutoff
		if u > border {
			alpha = 0
		} else if gradient > 0 {
			alpha = minFloat32(alpha, smoothstep(border, border-gradient, u))
		}
	}

	corners := []struct {
		bit    uint8
		cu, cv float32
	}{
		{CornerNE, 1, 1},
		{CornerNW, 0, 1},
		{CornerSW, 0, 0},
		{CornerSE, 1, 0},
	}
	for _, corner := range corners {
		if mask&corner.bit == 0 {
			continue
		}
		du := u - corner.cu
		dv := v - corner.cv
		d := float32(math.Sqrt(float64(du*du + dv*dv)))
		if gradient > 0 {
			alpha = minFloat32(alpha, smoothstep(cutoff, cutoff+gradient, d))
		}
		if d < cutoff {
			alpha = 0
		}
	}

	if cutoff > 0 && mask&EdgeE != 0 && mask&EdgeN != 0 {
		cx := 1.0 - cutoff*2.0
		cy := float32(0.75)
		dx := xf - cx
		dy := yf - cy
		radius := cutoff * 0.5
		if dx*dx+dy*dy >= radius*radius && xf > cx {
			alpha = 0
		}
	}
	if cutoff > 0 && mask&EdgeS != 0 && mask&EdgeW != 0 {
		cx := cutoff * 2.0
		cy := float32(0.75)
		dx := xf - cx
		dy := yf - cy
		radius := cutoff * 0.5
		if dx*dx+dy*dy >= radius*radius && xf < cx {
			alpha = 0
		}
	}
	if cutoff > 0 && mask&EdgeW != 0 && mask&EdgeN != 0 {
		cx := float32(0.5)
		cy := 0.5 + cutoff*4.8
		dx := xf - cx
		dy := yf - cy
		radius := cutoff * 4.0
		if dx*dx+dy*dy >= radius*radius && yf < cy {
			alpha = 0
		}
	}
	if cutoff > 0 && mask&EdgeS != 0 && mask&EdgeE != 0 {
		cx := float32(0.5)
		cy := 1.0 - cutoff*4.8
		dx := xf - cx
		dy := yf - cy
		radius := cutoff * 4.0
		if dx*dx+dy*dy >= radius*radius && yf > cy {
			alpha = 0
		}
	}

	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3.0 - 2.0*t)
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
