package cmd

import (
	"errors"

	"github.com/df07/go-rtw-pathtracer/pkg/loaders"
	"github.com/df07/go-rtw-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// SceneFlags select a built-in scene or a YAML scene file
var SceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name (see the scenes command)",
	},
	cli.StringFlag{
		Name:  "file, f",
		Usage: "YAML scene file, overrides --scene",
	},
}

// loadScene returns the scene named by the --file or --scene flag
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if path := ctx.String("file"); path != "" {
		logger.Infof("loading scene file %s", path)
		return loaders.LoadScene(path)
	}

	name := ctx.String("scene")
	if name == "" {
		return nil, errors.New("missing --scene or --file")
	}
	logger.Infof("using built-in scene %q", name)
	return scene.ByName(name)
}

// ListScenes prints the names of the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	for _, name := range scene.Names() {
		if _, err := ctx.App.Writer.Write([]byte(name + "\n")); err != nil {
			return err
		}
	}
	return nil
}
