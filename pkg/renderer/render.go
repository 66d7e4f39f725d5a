package renderer

import (
	"runtime"
	"sync"

	"github.com/dsharma-dev/go-phong-raytracer/pkg/scene"
)

// Render casts one ray per pixel through the camera into the world and
// returns the finished canvas. Rows are distributed across numWorkers
// goroutines (NumCPU when numWorkers <= 0); each pixel is independent and
// the world is read-only, so workers share it without locking.
func Render(camera *Camera, world *scene.World, numWorkers int) *Canvas {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	canvas := NewCanvas(camera.HSize, camera.VSize)

	rows := make(chan int, camera.VSize)
	for y := 0; y < camera.VSize; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < camera.HSize; x++ {
					ray := camera.RayForPixel(x, y)
					canvas.WritePixel(x, y, world.ColorAt(ray))
				}
			}
		}()
	}
	wg.Wait()

	return canvas
}
