package main

import (
	"fmt"
	"os"

	"github.com/df07/go-rtw-pathtracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// The default "version, v" flag would clash with -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rtw"
	app.Usage = "render sphere and plane scenes with a path tracer"
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
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render a built-in scene (--scene) or a YAML scene file (--file). Camera and
sampling flags override the scene's own settings. The output format follows
the extension of --out: binary PPM for .ppm/.pnm, plain PPM for .txt, or PNG.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:   "describe",
			Usage:  "print the objects, camera and sky of a scene",
			Flags:  cmd.SceneFlags,
			Action: cmd.Describe,
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
