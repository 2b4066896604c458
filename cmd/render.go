package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/df07/go-rtw-pathtracer/pkg/output"
	"github.com/df07/go-rtw-pathtracer/pkg/renderer"
	"github.com/df07/go-rtw-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFlags override the scene's own camera and sampling settings
var RenderFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width, 0 keeps the scene's",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height, 0 keeps the scene's",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel, 0 keeps the scene's",
	},
	cli.IntFlag{
		Name:  "bounces",
		Value: -1,
		Usage: "maximum ray bounces, negative keeps the scene's",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "rows rendered in parallel, 0 uses every CPU",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 42,
		Usage: "random seed; the same seed renders the same image",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "render.ppm",
		Usage: "image file to write (.ppm, .pnm, .txt or .png)",
	},
}, SceneFlags...)

// RenderFrame renders a scene to an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	applyOverrides(ctx, sc)

	opts := sc.Options()
	opts.Workers = ctx.Int("workers")
	opts.Seed = ctx.Int64("seed")

	rt, err := renderer.NewRaytracer(sc, sc.Sky, opts, logger)
	if err != nil {
		return err
	}

	// Interrupt stops handing out rows; the rows already rendered are still written
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := rt.RenderContext(runCtx, newProgressReporter(ctx.App.Writer))
	if err == nil {
		displayRenderStats(stats)
	}
	return saveFrame(ctx.String("out"), frame, err)
}

// saveFrame writes frame to out. An interrupted render still writes its partial
// frame (unfinished rows stay black) and then reports renderErr.
func saveFrame(out string, frame *renderer.Frame, renderErr error) error {
	if renderErr != nil && (frame == nil || !errors.Is(renderErr, context.Canceled)) {
		return renderErr
	}

	if err := output.WriteFile(out, frame); err != nil {
		return err
	}
	if renderErr != nil {
		logger.Warningf("wrote partial render to %s", out)
		return renderErr
	}
	logger.Noticef("wrote %s", out)
	return nil
}

func applyOverrides(ctx *cli.Context, sc *scene.Scene) {
	if v := ctx.Int("width"); v > 0 {
		sc.Camera.Width = v
	}
	if v := ctx.Int("height"); v > 0 {
		sc.Camera.Height = v
	}
	if v := ctx.Int("spp"); v > 0 {
		sc.Sampling.SamplesPerPixel = v
	}
	if v := ctx.Int("bounces"); v >= 0 {
		sc.Sampling.MaxDepth = v
	}
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Pixels", "Samples", "Workers", "Samples/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Duration.String(),
	})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
