package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Tile is a rectangular block of pixels rendered as one task
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a tile whose random generator is seeded from seed and id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// TileRenderer traces every pixel of a tile into a shared frame
type TileRenderer struct {
	scene   *scene.Scene
	camera  *Camera
	channel shading.Channel
	logger  log.Logger
}

// NewTileRenderer creates a tile renderer for a scene
func NewTileRenderer(s *scene.Scene, channel shading.Channel, logger log.Logger) *TileRenderer {
	return &TileRenderer{
		scene:   s,
		camera:  NewCamera(s.World.Camera.Position, s.Config.Width, s.Config.Height, s.Config.FOV),
		channel: channel,
		logger:  logger,
	}
}

// RenderTile writes the tile's pixels into img and their luminance into
// luminance (indexed y*width+x). Tiles never overlap, so concurrent calls on
// distinct tiles are safe.
func (tr *TileRenderer) RenderTile(tile *Tile, img *image.RGBA, luminance []float64) TileStats {
	world := tr.scene.World
	width := tr.scene.Config.Width
	sampler := core.NewRandomSampler(tile.Random)
	stats := TileStats{Pixels: tile.Bounds.Dx() * tile.Bounds.Dy()}

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			ray := tr.camera.GetRay(i, j)

			c, err := shading.TraceRay(ray.Origin, ray.Direction, world, tr.scene.Params, tr.channel, sampler)
			if err != nil {
				tr.logger.Debugf("pixel (%d, %d): %v", i, j, err)
				stats.FailedRays++
				c = world.Background
			}

			c = c.Clamp(0, 1)
			luminance[j*width+i] = c.Luminance()
			img.SetRGBA(i, j, vec3ToColor(c))
		}
	}

	return stats
}

// vec3ToColor converts a color already clamped to [0, 1] to RGBA
func vec3ToColor(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}
