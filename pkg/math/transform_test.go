package math

import (
	"math"
	"testing"
)

func TestTransform_Translation(t *testing.T) {
	transform := Translation(5, -3, 2)

	if got := transform.MultiplyTuple(NewPoint(-3, 4, 5)); !got.Equals(NewPoint(2, 1, 7)) {
		t.Errorf("Expected point (2,1,7), got %v", got)
	}

	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("Translation should be invertible: %v", err)
	}
	if got := inv.MultiplyTuple(NewPoint(-3, 4, 5)); !got.Equals(NewPoint(-8, 7, 3)) {
		t.Errorf("Expected point (-8,7,3), got %v", got)
	}

	// Translation leaves vectors unchanged
	v := NewVector(-3, 4, 5)
	if got := transform.MultiplyTuple(v); !got.Equals(v) {
		t.Errorf("Expected vector unchanged, got %v", got)
	}
}

func TestTransform_Scaling(t *testing.T) {
	transform := Scaling(2, 3, 4)

	if got := transform.MultiplyTuple(NewPoint(-4, 6, 8)); !got.Equals(NewPoint(-8, 18, 32)) {
		t.Errorf("Expected point (-8,18,32), got %v", got)
	}
	if got := transform.MultiplyTuple(NewVector(-4, 6, 8)); !got.Equals(NewVector(-8, 18, 32)) {
		t.Errorf("Expected vector (-8,18,32), got %v", got)
	}

	// Scaling by a negative value reflects
	if got := Scaling(-1, 1, 1).MultiplyTuple(NewPoint(2, 3, 4)); !got.Equals(NewPoint(-2, 3, 4)) {
		t.Errorf("Expected point (-2,3,4), got %v", got)
	}
}

func TestTransform_Rotations(t *testing.T) {
	tests := []struct {
		name     string
		rotation Matrix
		point    Tuple
		expected Tuple
	}{
		{
			name:     "x half quarter",
			rotation: RotationX(math.Pi / 4),
			point:    NewPoint(0, 1, 0),
			expected: NewPoint(0, math.Sqrt2/2, math.Sqrt2/2),
		},
		{
			name:     "x full quarter",
			rotation: RotationX(math.Pi / 2),
			point:    NewPoint(0, 1, 0),
			expected: NewPoint(0, 0, 1),
		},
		{
			name:     "y full quarter",
			rotation: RotationY(math.Pi / 2),
			point:    NewPoint(0, 0, 1),
			expected: NewPoint(1, 0, 0),
		},
		{
			name:     "z full quarter",
			rotation: RotationZ(math.Pi / 2),
			point:    NewPoint(0, 1, 0),
			expected: NewPoint(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rotation.MultiplyTuple(tt.point); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_Shearing(t *testing.T) {
	tests := []struct {
		name     string
		shear    Matrix
		expected Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 7)},
	}

	point := NewPoint(2, 3, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shear.MultiplyTuple(point); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_CompositionOrder(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// Individual applications in sequence
	p2 := a.MultiplyTuple(p)
	if !p2.Equals(NewPoint(1, -1, 0)) {
		t.Errorf("Expected (1,-1,0) after rotation, got %v", p2)
	}
	p3 := b.MultiplyTuple(p2)
	if !p3.Equals(NewPoint(5, -5, 0)) {
		t.Errorf("Expected (5,-5,0) after scaling, got %v", p3)
	}
	p4 := c.MultiplyTuple(p3)
	if !p4.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("Expected (15,0,7) after translation, got %v", p4)
	}

	// Chained product applies the rightmost factor first
	chained := c.Multiply(b).Multiply(a)
	if got := chained.MultiplyTuple(p); !got.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("Expected chained transform to give (15,0,7), got %v", got)
	}
}

func TestTransform_View(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix
	}{
		{
			name:     "default orientation",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, -1),
			up:       NewVector(0, 1, 0),
			expected: Identity(),
		},
		{
			name:     "looking in positive z mirrors",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, 1),
			up:       NewVector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "view moves the world",
			from:     NewPoint(0, 0, 8),
			to:       NewPoint(0, 0, 0),
			up:       NewVector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: NewPoint(1, 3, 2),
			to:   NewPoint(4, -2, 8),
			up:   NewVector(1, 1, 0),
			expected: Matrix{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0.00000},
				{0.00000, 0.00000, 0.00000, 1.00000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViewTransform(tt.from, tt.to, tt.up); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := r.Position(tt.t); !got.Equals(tt.expected) {
			t.Errorf("Position(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	translated := r.Transform(Translation(3, 4, 5))
	if !translated.Origin.Equals(NewPoint(4, 6, 8)) {
		t.Errorf("Expected origin (4,6,8), got %v", translated.Origin)
	}
	if !translated.Direction.Equals(NewVector(0, 1, 0)) {
		t.Errorf("Expected direction unchanged, got %v", translated.Direction)
	}

	scaled := r.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equals(NewPoint(2, 6, 12)) {
		t.Errorf("Expected origin (2,6,12), got %v", scaled.Origin)
	}
	if !scaled.Direction.Equals(NewVector(0, 3, 0)) {
		t.Errorf("Expected direction (0,3,0), got %v", scaled.Direction)
	}
}
