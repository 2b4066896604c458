package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
)

func TestList_ClosestHitWins(t *testing.T) {
	far := NewSphere(core.NewVec3(0, 0, -10), 1, material.Handle(0))
	near := NewSphere(core.NewVec3(0, 0, -3), 1, material.Handle(1))
	ground := NewPlane(core.NewVec3(0, -100, 0), core.NewVec3(0, 1, 0), material.Handle(2))

	// Insertion order must not matter
	orders := [][]Shape{
		{far, near, ground},
		{near, far, ground},
		{ground, far, near},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for _, shapes := range orders {
		list := NewList(shapes...)
		hit, isHit := list.Hit(ray, forward)
		if !isHit {
			t.Fatal("Expected hit, but got miss")
		}
		if hit.Material != material.Handle(1) {
			t.Errorf("Expected the near sphere to occlude the far one, got material %d", hit.Material)
		}
		if math.Abs(hit.T-2) > tolerance {
			t.Errorf("Expected t=2, got %f", hit.T)
		}
	}
}

func TestList_EmptyAndMiss(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	empty := NewList()
	if _, isHit := empty.Hit(ray, forward); isHit {
		t.Error("Empty list should never be hit")
	}

	list := NewList(NewSphere(core.NewVec3(0, 5, -1), 1, 0))
	if _, isHit := list.Hit(ray, forward); isHit {
		t.Error("Expected miss")
	}
}

func TestList_Nested(t *testing.T) {
	inner := NewList(NewSphere(core.NewVec3(0, 0, -2), 0.5, material.Handle(7)))
	outer := NewList()
	outer.Add(NewSphere(core.NewVec3(0, 0, -6), 0.5, material.Handle(1)))
	outer.Add(inner)

	hit, isHit := outer.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), forward)
	if !isHit || hit.Material != material.Handle(7) {
		t.Fatalf("Expected hit on nested sphere, got hit=%v", isHit)
	}
	if outer.Len() != 2 || outer.Info().Size != "2" {
		t.Errorf("Expected list of 2, got len=%d info=%v", outer.Len(), outer.Info())
	}
}

func TestList_Infos(t *testing.T) {
	list := NewList(
		NewSphere(core.NewVec3(0, 0, -1), 0.5, 0),
		NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), 1),
	)

	infos := list.Infos()
	if len(infos) != 2 {
		t.Fatalf("Expected 2 infos, got %d", len(infos))
	}
	if infos[0].Kind != "Sphere" || infos[1].Kind != "Plane" {
		t.Errorf("Expected insertion order Sphere, Plane, got %s, %s", infos[0].Kind, infos[1].Kind)
	}
	if got := infos[1].String(); got != "[ Plane ] Size: ∞, Position: (0, -0.5, 0), Material: #1" {
		t.Errorf("Unexpected plane description %q", got)
	}
}
