package integrator

import (
	"math"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/sky"
)

// Config bounds a traced path
type Config struct {
	MaxDepth    int     // Maximum number of ray segments per path
	MinDistance float64 // Hits closer than this are ignored to avoid self-intersection
}

// DefaultConfig returns the default path limits
func DefaultConfig() Config {
	return Config{
		MaxDepth:    10,
		MinDistance: core.DefaultShadowEpsilon,
	}
}

// PathTracingIntegrator implements unidirectional path tracing with a sky as the only light
type PathTracingIntegrator struct {
	MaxDepth    int
	MinDistance float64
	Sky         sky.Sky
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config, background sky.Sky) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:    config.MaxDepth,
		MinDistance: config.MinDistance,
		Sky:         background,
	}
}

// RayColor follows a path from ray until it escapes to the sky, is absorbed, or runs
// out of bounces. Each bounce multiplies the throughput by the material attenuation;
// an escaping path returns throughput times the sky color, every other ending is black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	rayT := core.NewInterval(pt.MinDistance, math.Inf(1))

	for remaining := pt.MaxDepth; remaining > 0; remaining-- {
		hit, isHit := world.Hit(ray, rayT)
		if !isHit {
			return throughput.MultiplyVec(pt.Sky.Color(ray))
		}

		scatter, didScatter := world.Material(hit.Material).Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached, no more light is gathered
	return core.Vec3{}
}
