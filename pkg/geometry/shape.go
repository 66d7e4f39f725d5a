package geometry

import (
	"fmt"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/material"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// shapeCore carries the transform and material every primitive owns and
// implements the shared accessor half of the Shape interface.
type shapeCore struct {
	transform math.Matrix
	material  material.Material
}

func newShapeCore() shapeCore {
	return shapeCore{
		transform: math.Identity(),
		material:  material.NewMaterial(),
	}
}

// Transform returns the shape's object-to-world transform
func (c *shapeCore) Transform() math.Matrix {
	return c.transform
}

// SetTransform replaces the shape's transform, rejecting matrices whose
// determinant is zero within tolerance. A non-invertible transform is a
// scene construction error and never reaches the intersection pipeline.
func (c *shapeCore) SetTransform(m math.Matrix) error {
	if _, err := m.Inverse(); err != nil {
		return fmt.Errorf("set transform: %w", err)
	}
	c.transform = m
	return nil
}

// Material returns a copy of the shape's surface material
func (c *shapeCore) Material() material.Material {
	return c.material
}

// SetMaterial replaces the shape's material
func (c *shapeCore) SetMaterial(m material.Material) {
	c.material = m
}

// inverseTransform recomputes the inverse on demand. SetTransform
// guarantees invertibility, so failure here means the invariant was
// bypassed and the only safe response is to fail loudly.
func inverseTransform(s Shape) math.Matrix {
	inv, err := s.Transform().Inverse()
	if err != nil {
		panic(fmt.Sprintf("geometry: shape has non-invertible transform: %v", err))
	}
	return inv
}

// Intersect transforms the ray into the shape's object space by applying
// the inverse of the shape's transform, then delegates to the primitive's
// local intersection routine.
func Intersect(s Shape, ray math.Ray) Intersections {
	localRay := ray.Transform(inverseTransform(s))
	return s.LocalIntersect(localRay)
}

// NormalAt computes the world-space surface normal at a world-space point.
// The point is taken to object space via the inverse transform, the local
// normal is mapped back through the transpose of the inverse, and W is
// forced to zero because that mapping corrupts it for non-rotational
// transforms.
func NormalAt(s Shape, worldPoint math.Tuple) math.Tuple {
	inv := inverseTransform(s)
	localPoint := inv.MultiplyTuple(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := inv.Transpose().MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
