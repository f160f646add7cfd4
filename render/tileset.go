package render

import (
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tileset handles loading and drawing a tile spritesheet
type Tileset struct {
	Image       *ebiten.Image
	SrcTileSize int // Tile size in the sheet image, in pixels
	TileSize    int // Tile size when drawn, in pixels
	Columns     int
	Rows        int
}

// NewTileset loads a tileset from a PNG file
func NewTileset(filename string, srcTileSize, tileSize int) (*Tileset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	return NewTilesetFromImage(ebiten.NewImageFromImage(img), srcTileSize, tileSize), nil
}

// NewTilesetFromImage wraps an already-loaded sheet image
func NewTilesetFromImage(img *ebiten.Image, srcTileSize, tileSize int) *Tileset {
	bounds := img.Bounds()
	return &Tileset{
		Image:       img,
		SrcTileSize: srcTileSize,
		TileSize:    tileSize,
		Columns:     bounds.Dx() / srcTileSize,
		Rows:        bounds.Dy() / srcTileSize,
	}
}

// TileCount returns how many tiles the sheet holds
func (t *Tileset) TileCount() int {
	return t.Columns * t.Rows
}

// DrawTile draws the tile at the given sheet index to the target at tile
// coordinates x, y, scaled from the source tile size to the draw size
func (t *Tileset) DrawTile(target *ebiten.Image, index, x, y int) {
	if index < 0 || index >= t.TileCount() {
		return
	}
	sx := (index % t.Columns) * t.SrcTileSize
	sy := (index / t.Columns) * t.SrcTileSize

	op := &ebiten.DrawImageOptions{}
	scale := float64(t.TileSize) / float64(t.SrcTileSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x*t.TileSize), float64(y*t.TileSize))

	rect := image.Rect(sx, sy, sx+t.SrcTileSize, sy+t.SrcTileSize)
	target.DrawImage(t.Image.SubImage(rect).(*ebiten.Image), op)
}
