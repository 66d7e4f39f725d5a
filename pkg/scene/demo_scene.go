package scene

import (
	stdmath "math"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/geometry"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/lights"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/material"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// NewDemoWorld builds the showcase scene: a matte floor plane with three
// glossy spheres of decreasing size, lit from the upper left.
func NewDemoWorld() *World {
	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Color = math.NewColor(1, 0.9, 0.9)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)

	middle := geometry.NewSphere()
	mustSetTransform(middle, math.Translation(-0.5, 1, 0.5))
	middleMat := material.NewMaterial()
	middleMat.Color = math.NewColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middle.SetMaterial(middleMat)

	right := geometry.NewSphere()
	mustSetTransform(right, math.Translation(1.5, 0.5, -0.5).Multiply(math.Scaling(0.5, 0.5, 0.5)))
	rightMat := material.NewMaterial()
	rightMat.Color = math.NewColor(0.5, 1, 0.1)
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)

	left := geometry.NewSphere()
	mustSetTransform(left, math.Translation(-1.5, 0.33, -0.75).Multiply(math.Scaling(0.33, 0.33, 0.33)))
	leftMat := material.NewMaterial()
	leftMat.Color = math.NewColor(1, 0.8, 0.1)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)

	return &World{
		Objects: []geometry.Shape{floor, middle, right, left},
		Light:   lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White()),
	}
}

// DemoViewTransform positions the camera for the demo world
func DemoViewTransform() math.Matrix {
	return math.ViewTransform(
		math.NewPoint(0, 1.5, -5),
		math.NewPoint(0, 1, 0),
		math.NewVector(0, 1, 0),
	)
}

// NewSingleSphereWorld builds the minimal scene: one purple sphere
// squashed along y, straight ahead of the camera.
func NewSingleSphereWorld() *World {
	s := geometry.NewSphere()
	mustSetTransform(s, math.Scaling(1, 0.7, 1).Multiply(math.RotationZ(stdmath.Pi/6)))
	m := material.NewMaterial()
	m.Color = math.NewColor(1, 0.2, 1)
	s.SetMaterial(m)

	return &World{
		Objects: []geometry.Shape{s},
		Light:   lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White()),
	}
}

// SingleSphereViewTransform positions the camera for the single sphere world
func SingleSphereViewTransform() math.Matrix {
	return math.ViewTransform(
		math.NewPoint(0, 0, -5),
		math.NewPoint(0, 0, 0),
		math.NewVector(0, 1, 0),
	)
}

// mustSetTransform panics on a singular matrix. Scene builders use fixed,
// known-invertible transforms.
func mustSetTransform(s geometry.Shape, m math.Matrix) {
	if err := s.SetTransform(m); err != nil {
		panic(err)
	}
}
