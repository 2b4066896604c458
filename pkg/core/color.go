package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color string cannot be parsed
var ErrInvalidColor = errors.New("core: invalid color")

// intensity bounds gamma-corrected channels before byte conversion.
// The 0.999 upper bound keeps 256*x below 256.
var intensity = Interval{Min: 0.0, Max: 0.999}

// LinearToGamma converts a linear channel value to gamma 2 space
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// GammaToLinear is the inverse of LinearToGamma for non-negative input
func GammaToLinear(gamma float64) float64 {
	return gamma * gamma
}

// GammaCorrect applies LinearToGamma to every channel
func (v Vec3) GammaCorrect() Vec3 {
	return Vec3{
		X: LinearToGamma(v.X),
		Y: LinearToGamma(v.Y),
		Z: LinearToGamma(v.Z),
	}
}

// ToRGBBytes converts a linear color to 8-bit display values
func ToRGBBytes(c Vec3) [3]byte {
	g := c.GammaCorrect()
	return [3]byte{
		byte(256 * intensity.Clamp(g.X)),
		byte(256 * intensity.Clamp(g.Y)),
		byte(256 * intensity.Clamp(g.Z)),
	}
}

// ToHex formats the display encoding of a linear color as #rrggbb
func ToHex(c Vec3) string {
	b := ToRGBBytes(c)
	return fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2])
}

// ParseHexColor parses #rrggbb (the # is optional) into channels in [0, 1].
// The channels are taken as-is and are not linearized.
func ParseHexColor(s string) (Vec3, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Vec3{}, fmt.Errorf("%w: %q must have six hex digits", ErrInvalidColor, s)
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Vec3{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		channels[i] = float64(v) / 255.0
	}
	return NewVec3(channels[0], channels[1], channels[2]), nil
}
