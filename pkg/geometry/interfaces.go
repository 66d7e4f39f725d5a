// Package geometry provides ray-intersectable primitives and the
// object-space intersection pipeline.
package geometry

import (
	"github.com/dsharma-dev/go-phong-raytracer/pkg/material"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// Shape is the capability every primitive implements. Concrete shapes only
// supply the two local-space operations; the world-space Intersect and
// NormalAt wrappers are built once on top of them.
type Shape interface {
	// Transform returns the shape's placement transform. Rays are taken
	// into object space through its inverse.
	Transform() math.Matrix
	// SetTransform replaces the shape's transform. Singular matrices are
	// rejected here so intersection never has to cope with them.
	SetTransform(m math.Matrix) error
	// Material returns a copy of the shape's surface material
	Material() material.Material
	// SetMaterial replaces the shape's material
	SetMaterial(m material.Material)
	// LocalIntersect intersects a ray already in the shape's object space
	LocalIntersect(localRay math.Ray) Intersections
	// LocalNormalAt computes the surface normal at a point in object space
	LocalNormalAt(localPoint math.Tuple) math.Tuple
}
