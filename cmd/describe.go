package cmd

import (
	"fmt"
	"io"

	"github.com/df07/go-rtw-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Describe prints the objects, camera and sky of a scene.
func Describe(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	writeDescription(ctx.App.Writer, sc)
	return nil
}

func writeDescription(w io.Writer, sc *scene.Scene) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Kind", "Size", "X", "Y", "Z", "Material"})
	for _, d := range sc.Describe() {
		table.Append(d.Row())
	}
	table.SetFooter([]string{"", "", "", "", "OBJECTS", fmt.Sprintf("%d", sc.Objects.Len())})
	table.Render()

	cam := sc.Camera
	fmt.Fprintf(w, "Camera: %dx%d, vfov %g, from %v looking at %v, up %v, defocus %g, focus %g\n",
		cam.Width, cam.Height, cam.VFov, cam.LookFrom, cam.LookAt, cam.Up, cam.DefocusAngle, cam.FocusDistance)
	fmt.Fprintf(w, "Sampling: %d samples, %d bounces\n", sc.Sampling.SamplesPerPixel, sc.Sampling.MaxDepth)
	fmt.Fprintf(w, "Sky: %s\n", sc.Sky)
}
