// Package sky provides the background radiance returned for rays that escape the scene.
package sky

import (
	"fmt"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
)

// Sky gives the color seen along rays that hit nothing
type Sky interface {
	Color(ray core.Ray) core.Vec3
	String() string
}

// Solid is a sky of one color in every direction
type Solid struct {
	Radiance core.Vec3
}

// NewSolid creates a solid sky
func NewSolid(radiance core.Vec3) *Solid {
	return &Solid{Radiance: radiance}
}

// Color implements Sky
func (s *Solid) Color(ray core.Ray) core.Vec3 {
	return s.Radiance
}

func (s *Solid) String() string {
	return fmt.Sprintf("Solid { color: %v }", s.Radiance)
}

// Gradient blends vertically from Horizon (straight down) to Zenith (straight up)
type Gradient struct {
	Horizon core.Vec3
	Zenith  core.Vec3
}

// NewGradient creates a gradient sky
func NewGradient(horizon, zenith core.Vec3) *Gradient {
	return &Gradient{Horizon: horizon, Zenith: zenith}
}

// DefaultGradient is white at the horizon fading to light blue overhead
func DefaultGradient() *Gradient {
	return NewGradient(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
}

// Color implements Sky
func (g *Gradient) Color(ray core.Ray) core.Vec3 {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0) // Map Y from [-1,1] to [0,1]
	return g.Horizon.Multiply(1.0 - t).Add(g.Zenith.Multiply(t))
}

func (g *Gradient) String() string {
	return fmt.Sprintf("Gradient { horizon: %v, zenith: %v }", g.Horizon, g.Zenith)
}
