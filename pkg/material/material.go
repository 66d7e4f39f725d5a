// Package material provides surface parameters and the Phong shading model.
package material

import "github.com/dsharma-dev/go-phong-raytracer/pkg/math"

// Material holds the Phong surface parameters of a shape. Reflectance
// coefficients are nominally in [0,1]; shininess typically runs from 10
// (large highlight) to 200 (small highlight).
type Material struct {
	Color     math.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// NewMaterial creates a material with the default white Phong parameters
func NewMaterial() Material {
	return Material{
		Color:     math.White(),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Equals compares two materials within tolerance
func (m Material) Equals(other Material) bool {
	return m.Color.Equals(other.Color) &&
		math.FloatEquals(m.Ambient, other.Ambient) &&
		math.FloatEquals(m.Diffuse, other.Diffuse) &&
		math.FloatEquals(m.Specular, other.Specular) &&
		math.FloatEquals(m.Shininess, other.Shininess)
}
