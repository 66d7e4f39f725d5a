package renderer

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
)

// Canvas is a width x height grid of colors. Pixels hold raw, unclamped
// shading output; clamping to displayable [0,1] happens only on export.
type Canvas struct {
	Width  int
	Height int
	pixels []math.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]math.Color, width*height),
	}
}

// WritePixel stores a color at (x, y). Out-of-bounds writes are dropped.
func (c *Canvas) WritePixel(x, y int, color math.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) math.Color {
	return c.pixels[y*c.Width+x]
}

// SavePNG rasterizes the canvas and writes it as a PNG file
func (c *Canvas) SavePNG(path string) error {
	ctx := gg.NewContext(c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			ctx.SetRGB(clamp01(p.R), clamp01(p.G), clamp01(p.B))
			ctx.SetPixel(x, y)
		}
	}
	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save canvas: %w", err)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
