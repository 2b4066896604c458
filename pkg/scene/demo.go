package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
)

var builtins = map[string]func() *Scene{
	"default": NewDefaultScene,
	"spheres": NewSpheresScene,
}

// Names returns the names of the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named built-in scene
func ByName(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return build(), nil
}

// NewDefaultScene creates three spheres (normal-shaded, glass and gold) resting on a huge ground sphere
func NewDefaultScene() *Scene {
	s := New()

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.3, 0.86, 0.1)))
	center := s.AddMaterial(material.NewNormal())
	left := s.AddMaterial(material.NewDielectric(1.5))
	right := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2))

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, left)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, right)

	s.Camera.Width, s.Camera.Height = 1600, 900
	s.Camera.VFov = 45
	s.Camera.LookFrom = core.NewVec3(1.5, 0.5, 0)
	s.Camera.LookAt = core.NewVec3(0, 0, -0.5)
	s.Camera.DefocusAngle = 2
	s.Camera.FocusDistance = s.Camera.DistanceTo(s.Camera.LookAt)

	s.Sampling.SamplesPerPixel = 250
	s.Sampling.MaxDepth = 50
	return s
}

// NewSpheresScene creates a row of rainbow-colored spheres on a gray ground plane
func NewSpheresScene() *Scene {
	s := New()

	colors := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 0.5, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0.8, 0.3, 0.8),
	}
	for i, albedo := range colors {
		mat := s.AddMaterial(material.NewLambertian(albedo))
		s.AddSphere(core.NewVec3(0, 0, 2.5-float64(i)), 0.5, mat)
	}

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9)))
	s.AddPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), ground)

	s.Camera.Width, s.Camera.Height = 300, 150
	s.Camera.VFov = 60
	s.Camera.LookFrom = core.NewVec3(3, 1, 0)
	s.Camera.LookAt = core.NewVec3(0, 0, 0)
	s.Camera.FocusDistance = 2.3

	s.Sampling.SamplesPerPixel = 250
	s.Sampling.MaxDepth = 50
	return s
}
