// Package scene aggregates shapes and a light into a renderable world.
package scene

import (
	"github.com/dsharma-dev/go-phong-raytracer/pkg/geometry"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/lights"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/material"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// World holds every shape in the scene and its single point light. Nothing
// is mutated after construction, so a world is safe to share across render
// workers without locking.
type World struct {
	Objects []geometry.Shape
	Light   lights.PointLight
}

// NewWorld creates an empty world with a white light at the origin
func NewWorld() *World {
	return &World{
		Light: lights.NewPointLight(math.NewPoint(0, 0, 0), math.White()),
	}
}

// NewDefaultWorld builds the canonical two-sphere test world: an outer
// green-tinted sphere with an inner half-size sphere, lit from the upper
// left.
func NewDefaultWorld() *World {
	outer := geometry.NewSphere()
	m := material.NewMaterial()
	m.Color = math.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	if err := inner.SetTransform(math.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}

	return &World{
		Objects: []geometry.Shape{outer, inner},
		Light:   lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White()),
	}
}

// AddObject appends a shape to the world
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// Intersect collects the intersections of the ray with every object in the
// world, merged into one ascending collection. Brute force over the full
// object list; the primitive count stays small enough that no acceleration
// structure is warranted.
func (w *World) Intersect(ray math.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, geometry.Intersect(obj, ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether the point has no clear line of sight to the
// light: some object intersects the shadow ray closer than the light.
func (w *World) IsShadowed(point math.Tuple) bool {
	toLight := w.Light.Position.Subtract(point)
	distance := toLight.Magnitude()
	shadowRay := math.NewRay(point, toLight.Normalize())

	if hit, ok := w.Intersect(shadowRay).Hit(); ok {
		return hit.T < distance
	}
	return false
}

// ShadeHit computes the color at a precomputed intersection, suppressing
// diffuse and specular when the hit point is shadowed. The shadow test uses
// the over point so a surface never shadows itself.
func (w *World) ShadeHit(comps geometry.Computations) math.Color {
	inShadow := w.IsShadowed(comps.OverPoint)
	return material.Lighting(
		comps.Object.Material(),
		w.Light,
		comps.Point,
		comps.EyeV,
		comps.NormalV,
		inShadow,
	)
}

// ColorAt returns the color visible along the ray, black when the ray hits
// nothing.
func (w *World) ColorAt(ray math.Ray) math.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return math.Black()
	}
	return w.ShadeHit(hit.Precompute(ray))
}
