package geometry

import (
	"sort"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// Intersection pairs a ray parameter t with the shape it was computed
// against. Negative t means the point lies behind the ray origin.
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection record
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a collection of intersection records kept in ascending
// t order. Ordering is a precondition for Hit, so constructors and merges
// sort eagerly rather than leaving it to callers.
type Intersections []Intersection

// NewIntersections builds a sorted collection from the given records
func NewIntersections(xs ...Intersection) Intersections {
	result := Intersections(xs)
	result.Sort()
	return result
}

// Sort orders the collection ascending by t
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the visible intersection: the entry with the smallest
// non-negative t. ok is false when every intersection lies behind the ray
// origin, a normal outcome rather than an error.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// Computations bundles the precomputed state shading needs at a hit.
type Computations struct {
	T         float64
	Object    Shape
	Point     math.Tuple
	OverPoint math.Tuple
	EyeV      math.Tuple
	NormalV   math.Tuple
	Inside    bool
}

// Precompute derives the hit point, eye and normal vectors for an
// intersection on the given ray. When the eye is inside the shape the
// normal is inverted so it always faces the eye. OverPoint is nudged a
// touch along the normal so shadow rays cannot re-hit the surface they
// start on.
func (i Intersection) Precompute(ray math.Ray) Computations {
	point := ray.Position(i.T)
	eyeV := ray.Direction.Negate()
	normalV := NormalAt(i.Object, point)

	inside := false
	if normalV.Dot(eyeV) < 0 {
		inside = true
		normalV = normalV.Negate()
	}

	return Computations{
		T:         i.T,
		Object:    i.Object,
		Point:     point,
		OverPoint: point.Add(normalV.Multiply(math.Epsilon)),
		EyeV:      eyeV,
		NormalV:   normalV,
		Inside:    inside,
	}
}
