package config

// Screen layout configuration
const (
	// Tile size in pixels when drawn to the window
	TileSize = 8

	// Generated map dimensions in tiles
	MapWidth  = 96
	MapHeight = 96

	// Minimap scale divisor (one minimap pixel per N map tiles)
	MinimapScale = 2

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = MapWidth * TileSize
	WindowHeight = MapHeight * TileSize
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1024, 768 // Can be adjusted if needed for UI scaling
}
