package material

import (
	"fmt"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler)),
		Attenuation: l.Albedo,
	}, true
}

func (l *Lambertian) String() string {
	return fmt.Sprintf("Lambertian { albedo: %v }", l.Albedo)
}

// diffuseDirection offsets the normal by a random unit vector, which lands on the unit
// sphere tangent to the surface and gives a cosine-weighted distribution.
func diffuseDirection(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := normal.Add(core.RandomUnitVector(sampler))

	// Opposite vectors cancel into a degenerate ray
	if direction.NearZero() {
		return normal
	}
	return direction
}
