package material

import (
	"math"
	"testing"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
)

func TestDielectric_ClearAttenuation(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewSeededSampler(1)
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0.3, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := glass.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Dielectric should always scatter")
		}
		if !scatter.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
			t.Fatalf("Expected white attenuation, got %v", scatter.Attenuation)
		}
	}
}

func TestDielectric_NormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		draw     float64
		expected core.Vec3
	}{
		// R0 for 1/1.5 is 0.04
		{"draw above reflectance refracts straight through", 0.5, core.NewVec3(0, 0, -1)},
		{"draw below reflectance reflects back", 0.01, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := &scriptedSampler{values: []float64{tt.draw}}
			scatter, _ := glass.Scatter(ray, hit, sampler)
			if scatter.Scattered.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, scatter.Scattered.Direction)
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving the glass at 60 degrees: 1.5 * sin(60) > 1, so refraction is impossible
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: false}
	incoming := core.NewVec3(math.Sqrt(3)/2, 0, -0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 1), incoming)

	// A draw of 0.999 would refract whenever refraction were possible
	sampler := &scriptedSampler{values: []float64{0.999}}
	scatter, _ := glass.Scatter(ray, hit, sampler)

	expected := core.NewVec3(math.Sqrt(3)/2, 0, 0.5)
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestDielectric_RefractionFollowsSnell(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	incoming := core.NewVec3(math.Sin(math.Pi/6), 0, -math.Cos(math.Pi/6))
	ray := core.NewRay(core.NewVec3(0, 0, 1), incoming)

	sampler := &scriptedSampler{values: []float64{0.999}}
	scatter, _ := glass.Scatter(ray, hit, sampler)
	out := scatter.Scattered.Direction.Normalize()

	sinIn := math.Sin(math.Pi / 6)
	sinOut := math.Hypot(out.X, out.Y)
	if math.Abs(sinIn-1.5*sinOut) > 1e-9 {
		t.Errorf("Snell's law violated: sin(in)=%f, 1.5*sin(out)=%f", sinIn, 1.5*sinOut)
	}
	if out.Z >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", out)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence entering glass", 1, 1 / 1.5, 0.04},
		{"normal incidence leaving glass", 1, 1.5, 0.04},
		{"grazing incidence", 0, 1 / 1.5, 1},
		{"matched indices", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Reflectance(%g, %g) = %f, expected %f", tt.cosine, tt.ratio, got, tt.expected)
			}
		})
	}
}
