package main

import (
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/Carmen-Shannon/oxy-rt/cmd"
)

func init() {
	// GLFW and the WebGPU surface must live on the main thread.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "oxy-rt"
	app.Usage = "interactive camera for a progressive GPU ray tracer"
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
	}
	app.Commands = []cli.Command{
		{
			Name:  "view",
			Usage: "open an interactive viewer window",
			Description: `
Open a window, create a WebGPU surface and drive the camera from mouse and
keyboard input. The camera uniform is uploaded every frame and the progressive
frame index restarts whenever the view changes.

With --watch the configuration file is reloaded when it changes on disk.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML configuration file",
				},
				cli.BoolFlag{
					Name:  "watch, w",
					Usage: "reload the configuration file when it changes",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "override the window width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "override the window height",
				},
				cli.StringFlag{
					Name:  "mode, m",
					Usage: "override the camera mode (examine, fly, walk)",
				},
				cli.BoolFlag{
					Name:  "profile",
					Usage: "log frame rate and memory statistics",
				},
				cli.BoolFlag{
					Name:  "software",
					Usage: "force the software fallback adapter",
				},
				cli.Float64Flag{
					Name:  "fps-limit",
					Usage: "cap the frame rate (0 = uncapped)",
				},
			},
			Action: cmd.View,
		},
		{
			Name:   "bindings",
			Usage:  "list mouse and keyboard camera controls",
			Action: cmd.Bindings,
		},
		{
			Name:  "fit",
			Usage: "compute the camera pose that frames a bounding box",
			Description: `
Build the camera from the configuration, fit it to the given box (or the
configured scene bounds) and print the resulting pose and view matrix.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML configuration file",
				},
				cli.StringFlag{
					Name:  "min",
					Usage: "box minimum corner as x,y,z",
				},
				cli.StringFlag{
					Name:  "max",
					Usage: "box maximum corner as x,y,z",
				},
				cli.BoolFlag{
					Name:  "tight",
					Usage: "fit the box corners instead of the bounding sphere",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "viewport aspect ratio (defaults to the configured window)",
				},
			},
			Action: cmd.Fit,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
