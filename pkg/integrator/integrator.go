package integrator

import (
	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
)

// World is the read-only scene an integrator traces rays through
type World interface {
	// Hit returns the closest intersection with t inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)

	// Material resolves the material handle carried by a hit record
	Material(h material.Handle) material.Material
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3
}
