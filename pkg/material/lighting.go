package material

import (
	stdmath "math"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/lights"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// Lighting evaluates the Phong reflection model at a single surface point:
// ambient + diffuse + specular. Components may exceed 1.0; clamping is the
// output layer's concern. When inShadow is true only the ambient term
// survives, before any light-vector geometry is computed.
func Lighting(m Material, light lights.PointLight, point, eyeV, normalV math.Tuple, inShadow bool) math.Color {
	effectiveColor := m.Color.MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	reflectV := lightV.Negate().Reflect(normalV)
	reflectDotEye := reflectV.Dot(eyeV)
	if reflectDotEye <= 0 {
		// Light reflects away from the eye
		return ambient.Add(diffuse)
	}

	factor := stdmath.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
