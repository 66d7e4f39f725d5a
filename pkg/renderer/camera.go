// Package renderer turns a world and a camera into a pixel canvas.
package renderer

import (
	"fmt"
	stdmath "math"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// Camera maps a pixel grid onto a canvas one unit in front of the eye and
// generates the ray passing through each pixel.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  math.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for an hsize x vsize canvas with the given
// horizontal field of view in radians, looking down -z from the origin.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   math.Identity(),
	}

	halfView := stdmath.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// Transform returns the camera's view transform
func (c *Camera) Transform() math.Matrix {
	return c.transform
}

// SetTransform replaces the view transform, rejecting singular matrices
func (c *Camera) SetTransform(m math.Matrix) error {
	if _, err := m.Inverse(); err != nil {
		return fmt.Errorf("set camera transform: %w", err)
	}
	c.transform = m
	return nil
}

// PixelSize returns the world-space size of one square pixel
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of the pixel
// at (px, py).
func (c *Camera) RayForPixel(px, py int) math.Ray {
	// Offsets from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed canvas coordinates; +x is left because the camera
	// looks toward -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv, err := c.transform.Inverse()
	if err != nil {
		panic(fmt.Sprintf("renderer: camera has non-invertible transform: %v", err))
	}

	pixel := inv.MultiplyTuple(math.NewPoint(worldX, worldY, -1))
	origin := inv.MultiplyTuple(math.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return math.NewRay(origin, direction)
}
