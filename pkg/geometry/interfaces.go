package geometry

import (
	"fmt"
	"strconv"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the closest intersection with t inside rayT (Min exclusive, Max inclusive)
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)

	// Info summarizes the shape for scene listings
	Info() Info
}

// Info is a printable summary of a shape
type Info struct {
	Kind     string
	Size     string // radius for spheres, "∞" for planes
	Position core.Vec3
	Material material.Handle
}

func (i Info) String() string {
	return fmt.Sprintf("[ %s ] Size: %s, Position: %v, Material: #%d", i.Kind, i.Size, i.Position, i.Material)
}

// Row returns the info as table cells: kind, size, x, y, z, material handle
func (i Info) Row() []string {
	return []string{
		i.Kind,
		i.Size,
		formatFloat(i.Position.X),
		formatFloat(i.Position.Y),
		formatFloat(i.Position.Z),
		strconv.Itoa(int(i.Material)),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
