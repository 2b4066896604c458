package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/geometry"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
	"github.com/df07/go-rtw-pathtracer/pkg/renderer"
)

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"default", "spheres"}, Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q) failed: %v", name, err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene %q is invalid: %v", name, err)
			}
			if s.Objects.Len() == 0 {
				t.Errorf("Built-in scene %q has no objects", name)
			}
		})
	}

	if _, err := ByName("cornell"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestByName_FreshInstances(t *testing.T) {
	first, _ := ByName("spheres")
	first.AddSphere(core.NewVec3(0, 5, 0), 1, 0)

	second, _ := ByName("spheres")
	if second.Objects.Len() != 7 {
		t.Errorf("Expected a fresh scene with 7 objects, got %d", second.Objects.Len())
	}
}

func TestDefaultScene_FocusOnLookAt(t *testing.T) {
	s := NewDefaultScene()
	expected := math.Sqrt(1.5*1.5 + 0.5*0.5 + 0.5*0.5)
	if math.Abs(s.Camera.FocusDistance-expected) > 1e-12 {
		t.Errorf("Expected focus distance %f, got %f", expected, s.Camera.FocusDistance)
	}
}

func TestScene_Validate(t *testing.T) {
	s := New()
	red := s.AddMaterial(material.NewLambertian(core.NewVec3(1, 0, 0)))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, red)
	if err := s.Validate(); err != nil {
		t.Fatalf("Expected valid scene, got %v", err)
	}

	nested := geometry.NewList(geometry.NewSphere(core.NewVec3(0, 0, -3), 0.5, material.Handle(4)))
	s.Add(nested)
	if err := s.Validate(); !errors.Is(err, ErrInvalidMaterial) {
		t.Errorf("Expected ErrInvalidMaterial for a nested bad handle, got %v", err)
	}

	s = New()
	s.Sampling.SamplesPerPixel = 0
	if err := s.Validate(); !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestScene_HitAndMaterial(t *testing.T) {
	s := New()
	glass := s.AddMaterial(material.NewDielectric(1.5))
	s.AddPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), glass)

	hit, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected hit on the ground plane")
	}
	if _, isGlass := s.Material(hit.Material).(*material.Dielectric); !isGlass {
		t.Errorf("Expected dielectric material, got %T", s.Material(hit.Material))
	}
}

func TestScene_Describe(t *testing.T) {
	s := New()
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gold)
	s.AddPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), gold)

	want := [][]string{
		{"Sphere", "0.5", "1", "0", "-1", "Metal { albedo: (0.8, 0.6, 0.2), fuzz: 0.3 }"},
		{"Plane", "∞", "0", "-0.5", "0", "Metal { albedo: (0.8, 0.6, 0.2), fuzz: 0.3 }"},
	}
	var got [][]string
	for _, d := range s.Describe() {
		got = append(got, d.Row())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Describe mismatch (-want +got):\n%s", diff)
	}
}

func TestScene_Renders(t *testing.T) {
	s := NewDefaultScene()
	s.Camera.Width, s.Camera.Height = 16, 9
	s.Sampling.SamplesPerPixel = 2
	s.Sampling.MaxDepth = 5

	opts := s.Options()
	opts.Workers = 2
	rt, err := renderer.NewRaytracer(s, s.Sky, opts, nil)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	frame, _ := rt.Render(nil)
	lit := 0
	for _, b := range frame.Bytes() {
		if b > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Expected a non-black image")
	}
}
