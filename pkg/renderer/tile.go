package renderer

import (
	"image"
)

// Tile is a rectangular block of pixels rendered by one worker
type Tile struct {
	Index  int             // Position in the grid, row-major; also the seed offset
	Bounds image.Rectangle // Pixel bounds, Max exclusive
}

// NewTileGrid covers a width×height image with tiles of tileSize pixels.
// Tiles on the right and bottom edges are clipped to the image.
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, Tile{
				Index:  len(tiles),
				Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
			})
		}
	}
	return tiles
}
