package main

import (
	"fmt"
	"os"

	"github.com/df07/go-whitted-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// The default "version, v" flag would collide with the -v verbosity flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes with a recursive Whitted ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "notice",
			Usage: "log level: debug, info, notice, warning or error (-v and -vv take precedence)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Render a single frame of a built-in scene. Flags left unset keep the
values defined by the scene.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 480,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 360,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: 1,
					Usage: "distance from the camera to the virtual screen",
				},
				cli.IntFlag{
					Name:  "max-reflections",
					Value: 3,
					Usage: "maximum number of mirror bounces",
				},
				cli.IntFlag{
					Name:  "indirect-bounces",
					Value: 1,
					Usage: "maximum number of indirect diffuse bounces",
				},
				cli.IntFlag{
					Name:  "indirect-samples",
					Value: 16,
					Usage: "hemisphere samples per indirect estimate",
				},
				cli.StringFlag{
					Name:  "lighting",
					Value: "direct",
					Usage: "lighting mode: direct, indirect or global",
				},
				cli.StringFlag{
					Name:  "channel",
					Value: "all",
					Usage: "render a single term: all, ambient, diffuse or specular",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of parallel workers (0 uses every CPU)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "tile edge length in pixels",
				},
				cli.StringFlag{
					Name:  "mesh, obj",
					Usage: "OBJ or PLY file for the mesh scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
