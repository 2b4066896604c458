package geometry

import (
	"strconv"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
)

// List is an ordered collection of shapes tested by linear scan.
// It is itself a Shape, so lists can be nested.
type List struct {
	objects []Shape
}

// NewList creates a list holding the given shapes
func NewList(shapes ...Shape) *List {
	return &List{objects: append([]Shape(nil), shapes...)}
}

// Add appends a shape
func (l *List) Add(shape Shape) {
	l.objects = append(l.objects, shape)
}

// Len returns the number of shapes
func (l *List) Len() int {
	return len(l.objects)
}

// Objects returns the shapes in insertion order
func (l *List) Objects() []Shape {
	return l.objects
}

// Hit returns the closest hit across all shapes
func (l *List) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, rayT.WithMax(closestSoFar)); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// Info implements Shape. The size of a list is its object count.
func (l *List) Info() Info {
	return Info{
		Kind: "List",
		Size: strconv.Itoa(len(l.objects)),
	}
}

// Infos returns the info of every shape in insertion order
func (l *List) Infos() []Info {
	infos := make([]Info, len(l.objects))
	for i, object := range l.objects {
		infos[i] = object.Info()
	}
	return infos
}
