package geometry

import (
	"errors"
	"testing"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/material"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// testShape records the ray handed to LocalIntersect so the generic
// object-space conversion can be observed directly.
type testShape struct {
	shapeCore
	savedRay math.Ray
}

func newTestShape() *testShape {
	return &testShape{shapeCore: newShapeCore()}
}

func (s *testShape) LocalIntersect(localRay math.Ray) Intersections {
	s.savedRay = localRay
	return nil
}

func (s *testShape) LocalNormalAt(localPoint math.Tuple) math.Tuple {
	return math.NewVector(localPoint.X, localPoint.Y, localPoint.Z)
}

func TestShape_Defaults(t *testing.T) {
	s := newTestShape()
	if !s.Transform().Equals(math.Identity()) {
		t.Errorf("Expected identity default transform, got %v", s.Transform())
	}
	if !s.Material().Equals(material.NewMaterial()) {
		t.Errorf("Expected default material, got %+v", s.Material())
	}
}

func TestShape_SetTransformAndMaterial(t *testing.T) {
	s := newTestShape()

	m := math.Translation(2, 3, 4)
	if err := s.SetTransform(m); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	if !s.Transform().Equals(m) {
		t.Errorf("Expected transform %v, got %v", m, s.Transform())
	}

	mat := material.NewMaterial()
	mat.Ambient = 1
	s.SetMaterial(mat)
	if !s.Material().Equals(mat) {
		t.Errorf("Expected material with ambient 1, got %+v", s.Material())
	}
}

func TestShape_SetTransformRejectsSingular(t *testing.T) {
	s := newTestShape()
	err := s.SetTransform(math.Scaling(1, 0, 1))
	if !errors.Is(err, math.ErrSingularMatrix) {
		t.Fatalf("Expected ErrSingularMatrix, got %v", err)
	}
	// The previous transform survives a rejected assignment
	if !s.Transform().Equals(math.Identity()) {
		t.Errorf("Expected transform to stay identity, got %v", s.Transform())
	}
}

func TestShape_IntersectConvertsToObjectSpace(t *testing.T) {
	ray := math.NewRay(math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1))

	tests := []struct {
		name              string
		transform         math.Matrix
		expectedOrigin    math.Tuple
		expectedDirection math.Tuple
	}{
		{
			name:              "scaled shape",
			transform:         math.Scaling(2, 2, 2),
			expectedOrigin:    math.NewPoint(0, 0, -2.5),
			expectedDirection: math.NewVector(0, 0, 0.5),
		},
		{
			name:              "translated shape",
			transform:         math.Translation(5, 0, 0),
			expectedOrigin:    math.NewPoint(-5, 0, -5),
			expectedDirection: math.NewVector(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShape()
			if err := s.SetTransform(tt.transform); err != nil {
				t.Fatalf("SetTransform: %v", err)
			}
			Intersect(s, ray)

			if !s.savedRay.Origin.Equals(tt.expectedOrigin) {
				t.Errorf("Expected local origin %v, got %v", tt.expectedOrigin, s.savedRay.Origin)
			}
			if !s.savedRay.Direction.Equals(tt.expectedDirection) {
				t.Errorf("Expected local direction %v, got %v", tt.expectedDirection, s.savedRay.Direction)
			}
		})
	}
}

func TestShape_NormalAtIsNormalizedVector(t *testing.T) {
	s := newTestShape()
	if err := s.SetTransform(math.Translation(0, 1, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	n := NormalAt(s, math.NewPoint(0, 1.70711, -0.70711))
	if !n.Equals(math.NewVector(0, 0.70711, -0.70711)) {
		t.Errorf("Expected (0,0.70711,-0.70711), got %v", n)
	}
	if !n.IsVector() {
		t.Errorf("Expected W=0 on world normal, got %f", n.W)
	}
	if !math.FloatEquals(n.Magnitude(), 1) {
		t.Errorf("Expected unit normal, got magnitude %f", n.Magnitude())
	}
}
