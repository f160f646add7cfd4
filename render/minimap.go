package render

import (
	"image"
	"image/color"

	"github.com/ktarrant/spriteforge/generation"
)

// Minimap colors
var (
	minimapBackground = color.RGBA{24, 28, 34, 255}
	minimapPath       = color.RGBA{205, 186, 134, 255}
	minimapArea       = color.RGBA{96, 150, 96, 255}
	minimapDock       = color.RGBA{90, 140, 200, 255}
	minimapWater      = color.RGBA{60, 100, 170, 255}
)

// BuildMinimap draws a skeleton at reduced scale into a plain RGBA image:
// one pixel per scale map tiles. Paths and water channels are drawn as
// lines, areas as filled circles.
func BuildMinimap(skeleton *generation.MapSkeleton, width, height, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	imgW := maxRenderDim(width / scale)
	imgH := maxRenderDim(height / scale)
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	for y := 0; y < imgH; y++ {
		for x := 0; x < imgW; x++ {
			img.SetRGBA(x, y, minimapBackground)
		}
	}

	for _, segment := range skeleton.WaterPaths {
		drawSegment(img, segment, scale, minimapWater)
	}
	for _, segment := range skeleton.Paths {
		drawSegment(img, segment, scale, minimapPath)
	}
	for _, area := range skeleton.Areas {
		clr := minimapArea
		if area.IsDock() {
			clr = minimapDock
		}
		drawCircle(img, area.CenterX/scale, area.CenterY/scale, area.Radius/scale, clr)
	}
	return img
}

func drawSegment(img *image.RGBA, segment generation.PathSegment, scale int, clr color.RGBA) {
	dx := signRender(segment.EndX - segment.StartX)
	dy := signRender(segment.EndY - segment.StartY)
	steps := absRender(segment.EndX-segment.StartX) + absRender(segment.EndY-segment.StartY)
	for step := 0; step <= steps; step++ {
		x := (segment.StartX + dx*step) / scale
		y := (segment.StartY + dy*step) / scale
		setPixel(img, x, y, clr)
	}
}

func drawCircle(img *image.RGBA, centerX, centerY, radius int, clr color.RGBA) {
	if radius < 1 {
		radius = 1
	}
	radiusSq := radius * radius
	for y := centerY - radius; y <= centerY+radius; y++ {
		for x := centerX - radius; x <= centerX+radius; x++ {
			dx := x - centerX
			dy := y - centerY
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			setPixel(img, x, y, clr)
		}
	}
}

func setPixel(img *image.RGBA, x, y int, clr color.RGBA) {
	if !image.Pt(x, y).In(img.Rect) {
		return
	}
	img.SetRGBA(x, y, clr)
}

func signRender(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func absRender(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
