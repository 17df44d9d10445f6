package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFrame renders a single frame of a built-in scene to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := setupScene(ctx)
	if err != nil {
		return err
	}

	channel, err := shading.ParseChannel(ctx.String("channel"))
	if err != nil {
		return err
	}

	config := renderer.DefaultConfig()
	config.Channel = channel
	config.NumWorkers = ctx.Int("workers")
	config.TileSize = ctx.Int("tile-size")

	rt := renderer.NewRaytracer(sc, config, nil)
	img, stats, err := rt.Render(context.Background())
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := writePNG(out, img); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("render saved as %s", out)

	return nil
}

// setupScene loads the selected scene and applies command line overrides
func setupScene(ctx *cli.Context) (*scene.Scene, error) {
	sc, err := scene.Load(ctx.String("scene"), scene.LoadOptions{MeshPath: ctx.String("mesh")})
	if err != nil {
		return nil, err
	}

	if ctx.IsSet("width") {
		sc.Config.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		sc.Config.Height = ctx.Int("height")
	}
	if ctx.IsSet("fov") {
		sc.Config.FOV = ctx.Float64("fov")
	}
	if ctx.IsSet("max-reflections") {
		sc.Params.MaxReflections = ctx.Int("max-reflections")
	}
	if ctx.IsSet("indirect-bounces") {
		sc.Params.IndirectMaxBounces = ctx.Int("indirect-bounces")
	}
	if ctx.IsSet("indirect-samples") {
		sc.Params.IndirectSamples = ctx.Int("indirect-samples")
	}
	if ctx.IsSet("lighting") {
		mode, err := shading.ParseLightingMode(ctx.String("lighting"))
		if err != nil {
			return nil, err
		}
		sc.Params.Lighting = mode
	}

	// Overrides may have broken an otherwise valid scene
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	logger.Infof("scene %q: %d primitives, %dx%d, params %+v",
		ctx.String("scene"), sc.GetPrimitiveCount(), sc.Config.Width, sc.Config.Height, sc.Params)
	if degenerate := sc.GetDegenerateCount(); degenerate > 0 {
		logger.Warningf("scene %q has %d zero-area triangles that will never be hit", ctx.String("scene"), degenerate)
	}

	return sc, nil
}

// writePNG encodes img to filename, creating parent directories as needed
func writePNG(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Size", "Tiles", "Workers", "Failed rays", "Luminance", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.FailedRays),
		fmt.Sprintf("%.3f ± %.3f", stats.MeanLuminance, stats.StdLuminance),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "PIXELS", fmt.Sprintf("%d", stats.TotalPixels)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
