package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Config contains the frame driver settings
type Config struct {
	TileSize   int             // Size of each square tile in pixels
	NumWorkers int             // Number of parallel workers (0 = use CPU count)
	Channel    shading.Channel // Lighting terms written to the image
	Seed       int64           // Base seed for the per-tile random generators
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   32,
		NumWorkers: 0,
		Channel:    shading.ChannelAll,
		Seed:       42,
	}
}

// Raytracer renders a whole frame by splitting it into tiles
type Raytracer struct {
	scene  *scene.Scene
	config Config
	logger log.Logger
}

// NewRaytracer creates a new raytracer. A nil logger uses the "renderer" module logger.
func NewRaytracer(s *scene.Scene, config Config, logger log.Logger) *Raytracer {
	if logger == nil {
		logger = log.New("renderer")
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render traces every pixel and returns the frame. Cancelling ctx stops the
// render between tiles and returns the context error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	width, height := rt.scene.Config.Width, rt.scene.Config.Height

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	luminance := make([]float64, width*height)
	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)

	tileRenderer := NewTileRenderer(rt.scene, rt.config.Channel, rt.logger)
	pool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)

	rt.logger.Infof("rendering %dx%d in %d tiles with %d workers (%v lighting, %v channel, %d reflections)",
		width, height, len(tiles), pool.GetNumWorkers(),
		rt.scene.Params.Lighting, rt.config.Channel, rt.scene.Params.MaxReflections)

	pool.Start(ctx, img, luminance)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Tiles:   len(tiles),
		Workers: pool.GetNumWorkers(),
	}

	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
		rt.logger.Debugf("tile %d done (%d/%d)", result.TaskID, stats.TotalPixels, width*height)
	}
	pool.Stop()

	if renderErr != nil {
		return nil, stats, renderErr
	}

	stats.setLuminance(luminance)
	stats.Duration = time.Since(start)

	if stats.FailedRays > 0 {
		rt.logger.Warningf("%d primary rays failed and were shaded with the background", stats.FailedRays)
	}
	rt.logger.Infof("render finished in %v", stats.Duration)

	return img, stats, nil
}
