package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/MrTraan/rtv1/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	renderFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 1200,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 600,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 20,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "threads, t",
			Value: 0,
			Usage: "number of render workers; 0 renders with a single worker",
		},
		cli.UintFlag{
			Name:  "seed",
			Value: 0,
			Usage: "base seed for pixel jittering; 0 seeds from the clock",
		},
		cli.Float64Flag{
			Name:  "tmin",
			Value: 0.001,
			Usage: "ignore ray hits closer than this distance",
		},
	}

	app := cli.NewApp()
	app.Name = "rtv1"
	app.Usage = "render sphere scenes using ray casting"
	app.Version = "0.0.1"
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
			Usage: "set log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render single frame",
					Description: `
Render a single frame and write it to an image file. The image format
(png, bmp or tiff) is selected by the output file extension. If no scene
file is specified the built-in sphere grid scene is rendered.`,
					ArgsUsage: "[scene_file]",
					Flags: append(renderFlags,
						cli.StringFlag{
							Name:  "out, o",
							Value: "output.png",
							Usage: "image filename for the rendered frame",
						},
					),
					Action: cmd.RenderFrame,
				},
				{
					Name:  "window",
					Usage: "render single frame and display it in a window",
					Description: `
Render a single frame and display it in a window until the window is
closed or Escape is pressed.`,
					ArgsUsage: "[scene_file]",
					Flags:     renderFlags,
					Action:    cmd.RenderWindow,
				},
			},
		},
		{
			Name:  "scene",
			Usage: "scene tools",
			Subcommands: []cli.Command{
				{
					Name:  "compile",
					Usage: "compile text scene representation into a binary compressed format",
					Description: `
Parse scene definitions from text .scene files and write them to zip
archives which can be supplied as an argument to the render command.`,
					ArgsUsage: "scene_file1.scene scene_file2.scene ...",
					Action:    cmd.CompileScene,
				},
				{
					Name:      "info",
					Usage:     "print scene information",
					ArgsUsage: "scene_file",
					Action:    cmd.ShowSceneInfo,
				},
				{
					Name:  "default",
					Usage: "write the built-in scene to a file",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "out, o",
							Value: "default.scene",
							Usage: "scene filename; use a .zip extension for the compiled format",
						},
					},
					Action: cmd.DumpDefaultScene,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
