package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-rtw-pathtracer/pkg/core"
)

// CameraConfig describes where the camera is and how it projects the scene
type CameraConfig struct {
	Width         int       // Image width in pixels
	Height        int       // Image height in pixels
	VFov          float64   // Vertical field of view in degrees
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Camera-relative up direction
	DefocusAngle  float64   // Aperture cone angle in degrees, 0 for a pinhole
	FocusDistance float64   // Distance to the plane of perfect focus
}

// DefaultCameraConfig returns a 600x600 pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:         600,
		Height:        600,
		VFov:          90,
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

// DistanceTo returns the distance from the camera position to target,
// typically used to focus on an object
func (c CameraConfig) DistanceTo(target core.Vec3) float64 {
	return target.Subtract(c.LookFrom).Length()
}

// Validate reports configurations that cannot produce a finite image
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: vertical field of view %g must be between 0 and 180 degrees", ErrInvalidConfig, c.VFov)
	}
	if c.FocusDistance <= 0 {
		return fmt.Errorf("%w: focus distance %g must be positive", ErrInvalidConfig, c.FocusDistance)
	}
	if c.DefocusAngle < 0 {
		return fmt.Errorf("%w: defocus angle %g must not be negative", ErrInvalidConfig, c.DefocusAngle)
	}
	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: lookfrom and lookat are both %v", ErrInvalidConfig, c.LookFrom)
	}
	if c.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidConfig, c.Up)
	}
	return nil
}

// Camera is the derived, immutable projection of a CameraConfig.
// The image width and height are held fixed and the aspect ratio follows from them.
type Camera struct {
	config CameraConfig

	center     core.Vec3
	pixel00    core.Vec3 // Center of the top-left pixel
	pixelDelta core.Vec3 // Offset to the pixel to the right
	pixelDown  core.Vec3 // Offset to the pixel below
	u, v, w    core.Vec3 // Camera basis: right, up, backward

	defocusU core.Vec3 // Defocus disk horizontal radius
	defocusV core.Vec3 // Defocus disk vertical radius
}

// NewCamera validates config and derives the viewport from it
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	aspectRatio := float64(config.Width) / float64(config.Height)

	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * aspectRatio

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport v runs down the image so row 0 is the top
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDelta := viewportU.Divide(float64(config.Width))
	pixelDown := viewportV.Divide(float64(config.Height))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := upperLeft.Add(pixelDelta.Add(pixelDown).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:     config,
		center:     config.LookFrom,
		pixel00:    pixel00,
		pixelDelta: pixelDelta,
		pixelDown:  pixelDown,
		u:          u,
		v:          v,
		w:          w,
		defocusU:   u.Multiply(defocusRadius),
		defocusV:   v.Multiply(defocusRadius),
	}, nil
}

// GetRay returns a ray through a random point inside pixel (i, j), starting on the defocus disk
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDelta.Multiply(float64(i) + offset.X)).
		Add(c.pixelDown.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		p := core.RandomInUnitDisk(sampler)
		origin = c.center.Add(c.defocusU.Multiply(p.X)).Add(c.defocusV.Multiply(p.Y))
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// Config returns the configuration the camera was derived from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Center returns the camera position
func (c *Camera) Center() core.Vec3 {
	return c.center
}

// Basis returns the right, up and backward camera axes
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// PixelDeltas returns the offsets between horizontally and vertically adjacent pixels
func (c *Camera) PixelDeltas() (right, down core.Vec3) {
	return c.pixelDelta, c.pixelDown
}

// Pixel00 returns the center of the top-left pixel
func (c *Camera) Pixel00() core.Vec3 {
	return c.pixel00
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
