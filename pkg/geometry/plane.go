package geometry

import (
	"math"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
)

// DefaultParallelEpsilon is the largest |D·N| for which a ray counts as parallel to a plane
const DefaultParallelEpsilon = 1e-4

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Origin          core.Vec3       // A point on the plane
	Normal          core.Vec3       // Unit normal
	Material        material.Handle // Material of the plane
	ParallelEpsilon float64
}

// NewPlane creates a new plane
func NewPlane(origin, normal core.Vec3, mat material.Handle) *Plane {
	return &Plane{
		Origin:          origin,
		Normal:          normal.Normalize(),
		Material:        mat,
		ParallelEpsilon: DefaultParallelEpsilon,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) <= p.ParallelEpsilon {
		return nil, false
	}

	// t = (origin - ray_origin) · N / (D · N)
	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// Info implements Shape
func (p *Plane) Info() Info {
	return Info{
		Kind:     "Plane",
		Size:     "∞",
		Position: p.Origin,
		Material: p.Material,
	}
}
