package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ktarrant/spriteforge/config"
	"github.com/ktarrant/spriteforge/generation"
	"github.com/ktarrant/spriteforge/render"
)

// MapViewer implements ebiten.Game for inspecting generated maps.
// Space regenerates with a fresh seed, M toggles the minimap overlay.
type MapViewer struct {
	width       int
	height      int
	seed        int64
	cfg         *config.SkeletonConfig
	renderer    *render.MapRenderer
	mapImage    *ebiten.Image
	minimap     *ebiten.Image
	showMinimap bool
}

// NewMapViewer creates a viewer and generates the first map
func NewMapViewer(width, height int, seed int64, cfg *config.SkeletonConfig) *MapViewer {
	tilesets := loadTilesets()
	viewer := &MapViewer{
		width:    width,
		height:   height,
		seed:     seed,
		cfg:      cfg,
		renderer: render.NewMapRenderer(tilesets, config.TileSize, seed),
	}
	viewer.regenerate(seed)
	return viewer
}

// loadTilesets loads the optional transition tilesheets; missing sheets
// leave the renderer on its solid-color fallback
func loadTilesets() map[render.Layer]*render.Tileset {
	sheets := map[render.Layer]string{
		render.LayerGrass:           "assets/grass.png",
		render.LayerDirt:            "assets/dirt.png",
		render.LayerPath:            "assets/path.png",
		render.LayerWater:           "assets/water.png",
		render.LayerTransition:      "assets/grass_transition.png",
		render.LayerPathTransition:  "assets/path_transition.png",
		render.LayerWaterTransition: "assets/water_transition.png",
	}
	tilesets := make(map[render.Layer]*render.Tileset)
	for layer, filename := range sheets {
		tileset, err := render.NewTileset(filename, 32, config.TileSize)
		if err != nil {
			log.Printf("Tilesheet %s not loaded: %v", filename, err)
			continue
		}
		tilesets[layer] = tileset
	}
	return tilesets
}

// regenerate builds a new skeleton, rasterizes it and re-renders the map
func (v *MapViewer) regenerate(seed int64) {
	v.seed = seed
	gen := generation.NewSkeletonGenerator(seed)
	skeleton := gen.GenerateWithConfig(v.width, v.height, v.cfg)
	grid := generation.RasterizeSkeleton(v.width, v.height, &skeleton)
	v.mapImage = v.renderer.Draw(grid)
	v.minimap = ebiten.NewImageFromImage(
		render.BuildMinimap(&skeleton, v.width, v.height, config.MinimapScale))
	fmt.Printf("Generated map: seed=%d paths=%d areas=%d water=%d\n",
		seed, len(skeleton.Paths), len(skeleton.Areas), len(skeleton.WaterPaths))
}

// Update handles viewer input
func (v *MapViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.regenerate(v.seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.showMinimap = !v.showMinimap
	}
	return nil
}

// Draw renders the current map and the minimap overlay
func (v *MapViewer) Draw(screen *ebiten.Image) {
	if v.mapImage != nil {
		screen.DrawImage(v.mapImage, nil)
	}
	if v.showMinimap && v.minimap != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(8, 8)
		screen.DrawImage(v.minimap, op)
	}
}

// Layout reports the fixed logical screen size
func (v *MapViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
