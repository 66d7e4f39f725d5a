// Package lights provides light sources for scene illumination.
package lights

import "github.com/dsharma-dev/go-phong-raytracer/pkg/math"

// PointLight is a light existing at a single point in space, radiating in
// every direction with constant intensity. No attenuation over distance.
type PointLight struct {
	Position  math.Tuple
	Intensity math.Color
}

// NewPointLight creates a new point light
func NewPointLight(position math.Tuple, intensity math.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Equals compares two lights by position and intensity within tolerance
func (l PointLight) Equals(other PointLight) bool {
	return l.Position.Equals(other.Position) && l.Intensity.Equals(other.Intensity)
}
