package material

import (
	"github.com/df07/go-rtw-pathtracer/pkg/core"
)

// Normal is a debug material that scatters like Lambertian but tints each bounce
// with the surface normal, so orientation shows up as color.
type Normal struct{}

// NewNormal creates a new normal visualization material
func NewNormal() *Normal {
	return &Normal{}
}

// Scatter implements the Material interface. Negative normal components are passed
// through as attenuation unchanged.
func (n *Normal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler)),
		Attenuation: hit.Normal,
	}, true
}

func (n *Normal) String() string {
	return "Normal {}"
}
