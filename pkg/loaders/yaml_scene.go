// Package loaders reads scene descriptions from YAML files.
package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
	"github.com/df07/go-rtw-pathtracer/pkg/material"
	"github.com/df07/go-rtw-pathtracer/pkg/scene"
	"github.com/df07/go-rtw-pathtracer/pkg/sky"
)

var ErrInvalidScene = errors.New("loaders: invalid scene description")

// sceneFile is the YAML document. Pointer fields are optional and fall back to scene.New() defaults.
type sceneFile struct {
	Camera    cameraSection           `yaml:"camera"`
	Sampling  samplingSection         `yaml:"sampling"`
	Sky       *skySection             `yaml:"sky"`
	Materials map[string]materialSpec `yaml:"materials"`
	Objects   []objectSpec            `yaml:"objects"`
}

type cameraSection struct {
	Width         *int     `yaml:"width"`
	Height        *int     `yaml:"height"`
	VFov          *float64 `yaml:"vfov"`
	LookFrom      *vec3    `yaml:"lookfrom"`
	LookAt        *vec3    `yaml:"lookat"`
	Up            *vec3    `yaml:"vup"`
	DefocusAngle  *float64 `yaml:"defocus_angle"`
	FocusDistance *float64 `yaml:"focus_dist"`
	FocusOnLookAt bool     `yaml:"focus_on_lookat"` // Overrides focus_dist with the distance to lookat
}

type samplingSection struct {
	Samples *int `yaml:"samples"`
	Bounces *int `yaml:"bounces"`
}

type skySection struct {
	Type    string `yaml:"type"`
	Horizon *color `yaml:"horizon"`
	Zenith  *color `yaml:"zenith"`
	Color   *color `yaml:"color"`
}

type materialSpec struct {
	Type   string   `yaml:"type"`
	Albedo *color   `yaml:"albedo"`
	Fuzz   float64  `yaml:"fuzz"`
	IOR    *float64 `yaml:"ior"`
}

type objectSpec struct {
	Type     string   `yaml:"type"`
	Center   *vec3    `yaml:"center"`
	Radius   *float64 `yaml:"radius"`
	Origin   *vec3    `yaml:"origin"`
	Normal   *vec3    `yaml:"normal"`
	Material string   `yaml:"material"`
}

// vec3 decodes a three element sequence
type vec3 core.Vec3

func (v *vec3) UnmarshalYAML(node *yaml.Node) error {
	var xyz []float64
	if err := node.Decode(&xyz); err != nil || len(xyz) != 3 {
		return fmt.Errorf("line %d: expected [x, y, z]", node.Line)
	}
	*v = vec3(core.NewVec3(xyz[0], xyz[1], xyz[2]))
	return nil
}

// color decodes either [r, g, b] or a "#rrggbb" string
type color core.Vec3

func (c *color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		rgb, err := core.ParseHexColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = color(rgb)
		return nil
	}

	var v vec3
	if err := v.UnmarshalYAML(node); err != nil {
		return fmt.Errorf("line %d: expected [r, g, b] or \"#rrggbb\"", node.Line)
	}
	*c = color(v)
	return nil
}

// LoadScene reads a YAML scene description from path
func LoadScene(path string) (*scene.Scene, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s: only .yaml and .yml files are supported", ErrInvalidScene, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene decodes a YAML scene description. Unknown keys are errors.
func ParseScene(r io.Reader) (*scene.Scene, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc sceneFile
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	s := scene.New()
	doc.Camera.apply(s)
	doc.Sampling.apply(s)

	if doc.Sky != nil {
		background, err := doc.Sky.build()
		if err != nil {
			return nil, err
		}
		s.Sky = background
	}

	handles, err := addMaterials(s, doc.Materials)
	if err != nil {
		return nil, err
	}
	for i, object := range doc.Objects {
		if err := object.add(s, handles); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return s, nil
}

func (c cameraSection) apply(s *scene.Scene) {
	camera := &s.Camera
	if c.Width != nil {
		camera.Width = *c.Width
	}
	if c.Height != nil {
		camera.Height = *c.Height
	}
	if c.VFov != nil {
		camera.VFov = *c.VFov
	}
	if c.LookFrom != nil {
		camera.LookFrom = core.Vec3(*c.LookFrom)
	}
	if c.LookAt != nil {
		camera.LookAt = core.Vec3(*c.LookAt)
	}
	if c.Up != nil {
		camera.Up = core.Vec3(*c.Up)
	}
	if c.DefocusAngle != nil {
		camera.DefocusAngle = *c.DefocusAngle
	}
	if c.FocusDistance != nil {
		camera.FocusDistance = *c.FocusDistance
	}
	if c.FocusOnLookAt {
		camera.FocusDistance = camera.DistanceTo(camera.LookAt)
	}
}

func (c samplingSection) apply(s *scene.Scene) {
	if c.Samples != nil {
		s.Sampling.SamplesPerPixel = *c.Samples
	}
	if c.Bounces != nil {
		s.Sampling.MaxDepth = *c.Bounces
	}
}

func (c *skySection) build() (sky.Sky, error) {
	switch c.Type {
	case "", "gradient":
		gradient := sky.DefaultGradient()
		if c.Horizon != nil {
			gradient.Horizon = core.Vec3(*c.Horizon)
		}
		if c.Zenith != nil {
			gradient.Zenith = core.Vec3(*c.Zenith)
		}
		return gradient, nil
	case "solid":
		if c.Color == nil {
			return nil, fmt.Errorf("%w: solid sky needs a color", ErrInvalidScene)
		}
		return sky.NewSolid(core.Vec3(*c.Color)), nil
	default:
		return nil, fmt.Errorf("%w: unknown sky type %q", ErrInvalidScene, c.Type)
	}
}

// addMaterials adds materials in name order so handles do not depend on map iteration
func addMaterials(s *scene.Scene, specs map[string]materialSpec) (map[string]material.Handle, error) {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	handles := make(map[string]material.Handle, len(specs))
	for _, name := range names {
		m, err := specs[name].build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		handles[name] = s.AddMaterial(m)
	}
	return handles, nil
}

func (m materialSpec) build() (material.Material, error) {
	albedo := func() (core.Vec3, error) {
		if m.Albedo == nil {
			return core.Vec3{}, fmt.Errorf("%w: %s needs an albedo", ErrInvalidScene, m.Type)
		}
		return core.Vec3(*m.Albedo), nil
	}

	switch m.Type {
	case "lambertian":
		a, err := albedo()
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(a), nil
	case "metal":
		a, err := albedo()
		if err != nil {
			return nil, err
		}
		return material.NewMetal(a, m.Fuzz), nil
	case "dielectric":
		if m.IOR == nil {
			return nil, fmt.Errorf("%w: dielectric needs an ior", ErrInvalidScene)
		}
		return material.NewDielectric(*m.IOR), nil
	case "normal":
		return material.NewNormal(), nil
	default:
		return nil, fmt.Errorf("%w: unknown material type %q", ErrInvalidScene, m.Type)
	}
}

func (o objectSpec) add(s *scene.Scene, handles map[string]material.Handle) error {
	mat, ok := handles[o.Material]
	if !ok {
		return fmt.Errorf("%w: unknown material %q", ErrInvalidScene, o.Material)
	}

	switch o.Type {
	case "sphere":
		if o.Center == nil || o.Radius == nil {
			return fmt.Errorf("%w: sphere needs center and radius", ErrInvalidScene)
		}
		s.AddSphere(core.Vec3(*o.Center), *o.Radius, mat)
	case "plane":
		if o.Origin == nil || o.Normal == nil {
			return fmt.Errorf("%w: plane needs origin and normal", ErrInvalidScene)
		}
		if core.Vec3(*o.Normal).NearZero() {
			return fmt.Errorf("%w: plane normal must not be zero", ErrInvalidScene)
		}
		s.AddPlane(core.Vec3(*o.Origin), core.Vec3(*o.Normal), mat)
	default:
		return fmt.Errorf("%w: unknown object type %q", ErrInvalidScene, o.Type)
	}
	return nil
}
