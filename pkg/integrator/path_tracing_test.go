package integrator

import (
	"testing"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/geometry"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
	"github.com/df07/go-rtw-pathtracer/pkg/sky"
)

// testWorld pairs a shape list with its materials
type testWorld struct {
	*geometry.List
	materials *material.Arena
}

func (w *testWorld) Material(h material.Handle) material.Material {
	return w.materials.Get(h)
}

func newTestWorld() *testWorld {
	return &testWorld{List: geometry.NewList(), materials: material.NewArena()}
}

// fixedMaterial always scatters in the same direction
type fixedMaterial struct {
	direction   core.Vec3
	attenuation core.Vec3
}

func (m fixedMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, m.direction),
		Attenuation: m.attenuation,
	}, true
}

func (m fixedMaterial) String() string { return "fixed" }

// absorber never scatters
type absorber struct{}

func (absorber) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func (absorber) String() string { return "absorber" }

func newIntegrator(maxDepth int, background sky.Sky) *PathTracingIntegrator {
	config := DefaultConfig()
	config.MaxDepth = maxDepth
	return NewPathTracingIntegrator(config, background)
}

func vecNear(a, b core.Vec3) bool {
	return a.Subtract(b).Length() <= 1e-9
}

func TestPathTracingDepthZeroIsBlack(t *testing.T) {
	world := newTestWorld()
	sampler := core.NewSeededSampler(42)

	// Nothing to hit, but no bounces left either
	color := newIntegrator(0, sky.DefaultGradient()).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), world, sampler)
	if color != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", color)
	}
}

func TestPathTracingMissReturnsSky(t *testing.T) {
	world := newTestWorld()
	sampler := core.NewSeededSampler(42)
	pt := newIntegrator(10, sky.DefaultGradient())

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"looking up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"looking down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := pt.RayColor(core.NewRay(core.Vec3{}, tt.direction), world, sampler)
			if !vecNear(color, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracingAbsorption(t *testing.T) {
	world := newTestWorld()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, world.materials.Add(absorber{})))

	color := newIntegrator(10, sky.NewSolid(core.NewVec3(1, 1, 1))).
		RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewSeededSampler(1))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed path, got %v", color)
	}
}

func TestPathTracingAttenuationMultiplies(t *testing.T) {
	world := newTestWorld()

	// Floor sends rays up and to the right, into a wall that sends them up and back out to the sky
	floor := world.materials.Add(fixedMaterial{direction: core.NewVec3(1, 1, 0), attenuation: core.NewVec3(0.5, 0.5, 0.5)})
	wall := world.materials.Add(fixedMaterial{direction: core.NewVec3(-1, 1, 0), attenuation: core.NewVec3(1, 0.5, 0.25)})
	world.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor))
	world.Add(geometry.NewPlane(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), wall))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sampler := core.NewSeededSampler(1)
	white := sky.NewSolid(core.NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		maxDepth int
		expected core.Vec3
	}{
		{"one segment ends on the floor", 1, core.Vec3{}},
		{"two segments end on the wall", 2, core.Vec3{}},
		{"three segments reach the sky", 3, core.NewVec3(0.5, 0.25, 0.125)},
		{"spare bounces change nothing", 10, core.NewVec3(0.5, 0.25, 0.125)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := newIntegrator(tt.maxDepth, white).RayColor(ray, world, sampler)
			if !vecNear(color, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracingSkyDirectionAfterBounce(t *testing.T) {
	world := newTestWorld()
	up := world.materials.Add(fixedMaterial{direction: core.NewVec3(0, 1, 0), attenuation: core.NewVec3(0.5, 0.5, 0.5)})
	world.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), up))

	// The scattered ray starts on the floor; MinDistance keeps it from hitting the floor again
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, -1))
	color := newIntegrator(10, sky.DefaultGradient()).RayColor(ray, world, core.NewSeededSampler(1))

	expected := core.NewVec3(0.25, 0.35, 0.5)
	if !vecNear(color, expected) {
		t.Errorf("Expected half the zenith color %v, got %v", expected, color)
	}
}

func TestPathTracingLambertianIsBounded(t *testing.T) {
	world := newTestWorld()
	gray := world.materials.Add(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray))

	pt := newIntegrator(10, sky.DefaultGradient())
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	// The sphere reflects at most half of what reaches it
	for i := 0; i < 200; i++ {
		color := pt.RayColor(ray, world, sampler)
		if color.X < 0 || color.Y < 0 || color.Z < 0 || color.X > 0.5 || color.Y > 0.5 || color.Z > 0.5 {
			t.Fatalf("Color %v outside [0, 0.5]", color)
		}
	}
}
