package raytracer

import "sync"

// bytesPerPixel is the packed RGB8 stride of a rendered frame buffer.
const bytesPerPixel = 3

// Render fills frame (row-major RGB8, len(frame) == Width*Height*3) with one
// shaded pixel per primary ray, splitting rows across workers goroutines.
//
// Rows are partitioned statically: each worker gets ⌊Height/workers⌋ rows,
// and the first Height mod workers workers get one extra row. Every worker
// writes only the byte range belonging to its own rows, so the ranges are
// disjoint and no synchronization beyond the final WaitGroup.Wait is needed.
// spec.md §4.8, grounded on the worker/WaitGroup idiom of
// renderer_parallel.go, adapted from a tile queue to static row ranges so
// the result is independent of scheduling order (spec.md §8 property 7).
func Render(scene *Scene, frame []byte, workers int) {
	if workers < 1 {
		workers = 1
	}
	if workers > int(scene.Height) {
		workers = int(scene.Height)
	}

	want := int(scene.Width) * int(scene.Height) * bytesPerPixel
	if len(frame) != want {
		panic("raytracer: frame buffer size does not match scene dimensions")
	}

	rowsPerWorker := int(scene.Height) / workers
	remainder := int(scene.Height) % workers

	var wg sync.WaitGroup
	row := 0
	for w := 0; w < workers; w++ {
		count := rowsPerWorker
		if w < remainder {
			count++
		}
		startRow := row
		endRow := row + count
		row = endRow

		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()
			renderRows(scene, frame, startRow, endRow)
		}(startRow, endRow)
	}
	wg.Wait()
}

// renderRows shades every pixel in rows [startRow, endRow) and writes it
// into its slice of frame.
func renderRows(scene *Scene, frame []byte, startRow, endRow int) {
	width := int(scene.Width)
	height := int(scene.Height)
	aspect := float32(width) / float32(height)

	for y := startRow; y < endRow; y++ {
		ny := (float32(y) + 0.5) / float32(height)
		rowOffset := y * width * bytesPerPixel

		for x := 0; x < width; x++ {
			nx := (float32(x) + 0.5) / float32(width)
			ray := scene.Camera.RayFor(nx, ny, aspect)
			rgb := shadePixel(scene, ray)

			idx := rowOffset + x*bytesPerPixel
			frame[idx] = rgb[0]
			frame[idx+1] = rgb[1]
			frame[idx+2] = rgb[2]
		}
	}
}
