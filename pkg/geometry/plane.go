package geometry

import (
	stdmath "math"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// Plane is the canonical XZ plane through the local origin, with normal
// (0,1,0). Orientation and placement come from its transform.
type Plane struct {
	shapeCore
}

// NewPlane creates an XZ plane with the identity transform and the default
// material
func NewPlane() *Plane {
	return &Plane{shapeCore: newShapeCore()}
}

// LocalIntersect reports where the ray crosses y=0. A ray whose direction
// is parallel to the plane yields no intersections, including a ray lying
// exactly in the plane.
func (p *Plane) LocalIntersect(localRay math.Ray) Intersections {
	if stdmath.Abs(localRay.Direction.Y) < math.Epsilon {
		return nil
	}

	t := -localRay.Origin.Y / localRay.Direction.Y
	return NewIntersections(NewIntersection(t, p))
}

// LocalNormalAt is the constant (0,1,0) regardless of the point
func (p *Plane) LocalNormalAt(_ math.Tuple) math.Tuple {
	return math.NewVector(0, 1, 0)
}
