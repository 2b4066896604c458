package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/integrator"
	"github.com/df07/go-rtw-pathtracer/pkg/sky"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        10,
	}
}

// Validate rejects sampling settings that would render nothing
func (s SamplingConfig) Validate() error {
	if s.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, s.SamplesPerPixel)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, s.MaxDepth)
	}
	return nil
}

// SampleScale is the weight of one sample in a pixel average
func (s SamplingConfig) SampleScale() float64 {
	return 1.0 / float64(s.SamplesPerPixel)
}

// Options collects everything a render needs besides the scene itself
type Options struct {
	Camera   CameraConfig
	Sampling SamplingConfig
	Workers  int   // Rows rendered concurrently by RenderContext, <= 0 means one per CPU
	Seed     int64 // Row y samples from a generator seeded Seed+y

	// MinDistance is the nearest accepted hit along any traced ray, in units of the ray's
	// direction. Raise it if surfaces show shadow acne. <= 0 means core.DefaultShadowEpsilon.
	MinDistance float64
}

// DefaultOptions returns the default camera and sampling with one worker per CPU
func DefaultOptions() Options {
	return Options{
		Camera:   DefaultCameraConfig(),
		Sampling: DefaultSamplingConfig(),
		Workers:  runtime.NumCPU(),
		Seed:     42,

		MinDistance: core.DefaultShadowEpsilon,
	}
}

// Progress reports a finished row
type Progress struct {
	Row       int // Index of the row that just finished
	Completed int // Rows finished so far, in any order
	Total     int // Rows in the image
}

// ProgressFunc is called once per completed row. Calls never overlap.
type ProgressFunc func(Progress)

// Raytracer renders a world through a camera
type Raytracer struct {
	world      integrator.World
	camera     *Camera
	integrator integrator.Integrator
	sampling   SamplingConfig
	workers    int
	seed       int64
	logger     core.Logger
}

// NewRaytracer validates opts and prepares a renderer for world under background
func NewRaytracer(world integrator.World, background sky.Sky, opts Options, logger core.Logger) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	if background == nil {
		return nil, ErrNoSky
	}
	if err := opts.Sampling.Validate(); err != nil {
		return nil, err
	}
	camera, err := NewCamera(opts.Camera)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	config := integrator.DefaultConfig()
	config.MaxDepth = opts.Sampling.MaxDepth
	if opts.MinDistance > 0 {
		config.MinDistance = opts.MinDistance
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(config, background),
		sampling:   opts.Sampling,
		workers:    workers,
		seed:       opts.Seed,
		logger:     logger,
	}, nil
}

// Camera returns the derived camera
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces the whole image on the calling goroutine, top row first
func (rt *Raytracer) Render(progress ProgressFunc) (*Frame, RenderStats) {
	start := time.Now()
	width, height := rt.camera.config.Width, rt.camera.config.Height
	frame := NewFrame(width, height)

	rt.logger.Infof("Rendering %dx%d, %d samples per pixel, %d bounces", width, height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth)
	for j := 0; j < height; j++ {
		rt.renderRow(frame, j)
		if progress != nil {
			progress(Progress{Row: j, Completed: j + 1, Total: height})
		}
	}

	stats := rt.stats(1, time.Since(start))
	rt.logger.Infof("Finished in %v", stats.Duration)
	return frame, stats
}

// SampleColor averages SamplesPerPixel camera rays through pixel (i, j) in linear color
func (rt *Raytracer) SampleColor(i, j int, sampler core.Sampler) core.Vec3 {
	var color core.Vec3
	for s := 0; s < rt.sampling.SamplesPerPixel; s++ {
		ray := rt.camera.GetRay(i, j, sampler)
		color.AddInPlace(rt.integrator.RayColor(ray, rt.world, sampler))
	}
	return color.Multiply(rt.sampling.SampleScale())
}

// RenderPixel returns the display bytes of pixel (i, j)
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) [3]byte {
	return core.ToRGBBytes(rt.SampleColor(i, j, sampler))
}

// renderRow fills row j using its own sampler, so the result does not depend on
// which goroutine renders it or in what order
func (rt *Raytracer) renderRow(frame *Frame, j int) {
	sampler := core.NewSeededSampler(rt.seed + int64(j))
	row := frame.Row(j)
	for i := 0; i < frame.Width; i++ {
		rgb := rt.RenderPixel(i, j, sampler)
		copy(row[3*i:3*i+3], rgb[:])
	}
}

func (rt *Raytracer) stats(workers int, duration time.Duration) RenderStats {
	width, height := rt.camera.config.Width, rt.camera.config.Height
	return RenderStats{
		Width:        width,
		Height:       height,
		TotalPixels:  width * height,
		TotalSamples: width * height * rt.sampling.SamplesPerPixel,
		Workers:      workers,
		Duration:     duration,
	}
}
