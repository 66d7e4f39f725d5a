package geometry

import (
	stdmath "math"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// Sphere is the canonical unit sphere centered at the local origin.
// Size and placement come entirely from its transform.
type Sphere struct {
	shapeCore
}

// NewSphere creates a unit sphere with the identity transform and the
// default material
func NewSphere() *Sphere {
	return &Sphere{shapeCore: newShapeCore()}
}

// LocalIntersect solves |O + tD|^2 = 1 for t. Both roots are returned even
// when they coincide (tangent ray) so consumers always see the same record
// shape for any hit.
func (s *Sphere) LocalIntersect(localRay math.Ray) Intersections {
	sphereToRay := localRay.Origin.Subtract(math.NewPoint(0, 0, 0))

	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return NewIntersections(
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	)
}

// LocalNormalAt returns the vector from the sphere's center to the point
func (s *Sphere) LocalNormalAt(localPoint math.Tuple) math.Tuple {
	return localPoint.Subtract(math.NewPoint(0, 0, 0))
}
