// phongray renders small demo scenes with single-bounce Phong shading and
// writes the result as a PNG.
package main

import (
	"fmt"
	stdmath "math"
	"os"
	"time"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/math"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/projectile"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/renderer"
	"github.com/dsharma-dev/go-phong-raytracer/pkg/scene"
)

var (
	sceneName string
	width     int
	height    int
	output    string
	workers   int

	projOutput string
	projSpeed  float64
)

func main() {
	root := &cobra.Command{
		Use:   "phongray",
		Short: "Phong-shaded ray tracer for sphere and plane scenes",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a demo scene to a PNG file",
		Long: `Render a demo scene to a PNG file.

Available scenes:
  demo   - floor plane with three spheres
  sphere - a single squashed sphere`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender()
		},
	}
	renderCmd.Flags().StringVar(&sceneName, "scene", "demo", "Scene to render: 'demo' or 'sphere'")
	renderCmd.Flags().IntVar(&width, "width", 800, "Image width in pixels")
	renderCmd.Flags().IntVar(&height, "height", 400, "Image height in pixels")
	renderCmd.Flags().StringVar(&output, "out", "render.png", "Output PNG path")
	renderCmd.Flags().IntVar(&workers, "workers", 0, "Render workers (0 = one per CPU)")
	root.AddCommand(renderCmd)

	projectileCmd := &cobra.Command{
		Use:   "projectile",
		Short: "Plot a projectile trajectory to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectile()
		},
	}
	projectileCmd.Flags().StringVar(&projOutput, "out", "trajectory.png", "Output PNG path")
	projectileCmd.Flags().Float64Var(&projSpeed, "speed", 11.25, "Launch speed")
	root.AddCommand(projectileCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender() error {
	var world *scene.World
	var view math.Matrix

	switch sceneName {
	case "demo":
		world = scene.NewDemoWorld()
		view = scene.DemoViewTransform()
	case "sphere":
		world = scene.NewSingleSphereWorld()
		view = scene.SingleSphereViewTransform()
	default:
		return fmt.Errorf("unknown scene %q (use 'demo' or 'sphere')", sceneName)
	}

	camera := renderer.NewCamera(width, height, stdmath.Pi/3)
	if err := camera.SetTransform(view); err != nil {
		log.Errf("configure camera: %v", err)
		return fmt.Errorf("configure camera: %w", err)
	}

	log.Infof("Rendering %q scene at %dx%d", sceneName, width, height)
	start := time.Now()
	canvas := renderer.Render(camera, world, workers)
	log.Infof("Render completed in %v", time.Since(start))

	if err := canvas.SavePNG(output); err != nil {
		log.Errf("write %s: %v", output, err)
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.Infof("Wrote %s", output)
	return nil
}

func runProjectile() error {
	env := projectile.Environment{
		Gravity: math.NewVector(0, -0.1, 0),
		Wind:    math.NewVector(-0.01, 0, 0),
	}
	start := projectile.Projectile{
		Position: math.NewPoint(0, 1, 0),
		Velocity: math.NewVector(1, 1.8, 0).Normalize().Multiply(projSpeed),
	}

	positions := projectile.Trajectory(env, start, 10000)
	log.Infof("Projectile landed after %d ticks", len(positions)-1)

	const plotWidth, plotHeight = 900, 550
	canvas := renderer.NewCanvas(plotWidth, plotHeight)
	for _, pos := range positions {
		x := int(pos.X)
		y := plotHeight - 1 - int(pos.Y)
		canvas.WritePixel(x, y, math.NewColor(1, 0.2, 0.2))
	}

	if err := canvas.SavePNG(projOutput); err != nil {
		log.Errf("write %s: %v", projOutput, err)
		return fmt.Errorf("write %s: %w", projOutput, err)
	}
	log.Infof("Wrote %s", projOutput)
	return nil
}
