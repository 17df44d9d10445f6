package cmd

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Mesh", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{
			info.ID,
			info.DisplayName,
			fmt.Sprintf("%t", info.UsesMesh),
			info.Description,
		})
	}

	table.Render()
	return nil
}
