package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/geometry"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
	"github.com/df07/go-rtw-pathtracer/pkg/renderer"
	"github.com/df07/go-rtw-pathtracer/pkg/sky"
)

var (
	ErrUnknownScene    = errors.New("scene: unknown scene")
	ErrInvalidMaterial = errors.New("scene: invalid material handle")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Materials *material.Arena
	Objects   *geometry.List
	Sky       sky.Sky
	Camera    renderer.CameraConfig
	Sampling  renderer.SamplingConfig
}

// New creates an empty scene with the default camera, sampling and gradient sky
func New() *Scene {
	return &Scene{
		Materials: material.NewArena(),
		Objects:   geometry.NewList(),
		Sky:       sky.DefaultGradient(),
		Camera:    renderer.DefaultCameraConfig(),
		Sampling:  renderer.DefaultSamplingConfig(),
	}
}

// AddMaterial stores m in the scene's arena
func (s *Scene) AddMaterial(m material.Material) material.Handle {
	return s.Materials.Add(m)
}

// AddSphere adds a sphere and returns it
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Handle) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Objects.Add(sphere)
	return sphere
}

// AddPlane adds a plane and returns it
func (s *Scene) AddPlane(origin, normal core.Vec3, mat material.Handle) *geometry.Plane {
	plane := geometry.NewPlane(origin, normal, mat)
	s.Objects.Add(plane)
	return plane
}

// Add adds any shape
func (s *Scene) Add(shape geometry.Shape) {
	s.Objects.Add(shape)
}

// Hit implements integrator.World
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return s.Objects.Hit(ray, rayT)
}

// Material implements integrator.World
func (s *Scene) Material(h material.Handle) material.Material {
	return s.Materials.Get(h)
}

// Options returns render options for the scene's camera and sampling
func (s *Scene) Options() renderer.Options {
	opts := renderer.DefaultOptions()
	opts.Camera = s.Camera
	opts.Sampling = s.Sampling
	return opts
}

// Validate checks the configuration and that every object refers to a material in the arena
func (s *Scene) Validate() error {
	if err := s.Camera.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if err := s.Sampling.Validate(); err != nil {
		return fmt.Errorf("sampling: %w", err)
	}
	if s.Sky == nil {
		return renderer.ErrNoSky
	}
	return s.validateShapes(s.Objects.Objects())
}

func (s *Scene) validateShapes(shapes []geometry.Shape) error {
	for i, shape := range shapes {
		if list, ok := shape.(*geometry.List); ok {
			if err := s.validateShapes(list.Objects()); err != nil {
				return err
			}
			continue
		}
		info := shape.Info()
		if !s.Materials.Valid(info.Material) {
			return fmt.Errorf("%w: object %d (%s) uses material #%d, arena holds %d",
				ErrInvalidMaterial, i, info.Kind, info.Material, s.Materials.Len())
		}
	}
	return nil
}

// Description is one object of the scene together with its material
type Description struct {
	geometry.Info
	MaterialName string
}

// Row returns the object's table cells with the material described in place of its handle
func (d Description) Row() []string {
	row := d.Info.Row()
	row[len(row)-1] = d.MaterialName
	return row
}

// Describe lists the scene's objects in insertion order
func (s *Scene) Describe() []Description {
	infos := s.Objects.Infos()
	out := make([]Description, len(infos))
	for i, info := range infos {
		out[i] = Description{Info: info, MaterialName: s.materialName(info)}
	}
	return out
}

func (s *Scene) materialName(info geometry.Info) string {
	if info.Kind == "List" {
		return "-"
	}
	if !s.Materials.Valid(info.Material) {
		return fmt.Sprintf("invalid #%d", info.Material)
	}
	return s.Materials.Get(info.Material).String()
}
