// Command raytracer renders a scene description through every frame of its
// animation and writes one PNG per frame, the Go counterpart to
// original_source/main.c's render loop. Animated WebP assembly is left to
// an external tool (DESIGN.md): this binary's output is a numbered PNG
// sequence, the same frames original_source would hand to
// WebPAnimEncoderAdd.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/eiannone/keyboard"

	"github.com/markusheimerl/raytracer/internal/animpath"
	"github.com/markusheimerl/raytracer/internal/raytracer"
	"github.com/markusheimerl/raytracer/internal/rlog"
	"github.com/markusheimerl/raytracer/internal/rtconfig"
	"github.com/markusheimerl/raytracer/internal/scenefile"
	"github.com/markusheimerl/raytracer/internal/upscale"
)

func main() {
	scenePath := flag.String("scene", "", "path to scene JSON document")
	outDir := flag.String("out", "frames", "directory to write rendered PNG frames into")
	scale := flag.Float64("scale", 1.0, "render scale factor; render small and upscale with bicubic interpolation")
	flag.Parse()

	if *scenePath == "" {
		rlog.Errorf("raytracer: -scene is required\n")
		os.Exit(1)
	}

	if err := run(*scenePath, *outDir, float32(*scale)); err != nil {
		rlog.Errorf("raytracer: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath, outDir string, scaleFactor float32) error {
	doc, err := scenefile.Load(scenePath)
	if err != nil {
		return err
	}

	outputWidth, outputHeight := doc.Width, doc.Height
	doc.Width = uint32(float32(doc.Width) * scaleFactor)
	doc.Height = uint32(float32(doc.Height) * scaleFactor)

	built, err := scenefile.Build(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	cancel := listenForCancel()
	defer keyboard.Close()

	frameCount := doc.FrameCount
	if frameCount <= 0 {
		frameCount = 1
	}

	workers := rtconfig.ResolveWorkers(int(doc.Height))
	frame := make([]byte, doc.Width*doc.Height*3)

	drivers := make([]animpath.Driver, len(built.Paths))
	for i, path := range built.Paths {
		drivers[i] = animpath.NewDriver(path, frameCount)
	}

	start := time.Now()
	for f := 0; f < frameCount; f++ {
		select {
		case <-cancel:
			rlog.Println("\nrender cancelled")
			return nil
		default:
		}

		for i, mesh := range built.Scene.Meshes {
			mesh.SetTransform(drivers[i].TransformAt(f))
		}

		raytracer.Render(built.Scene, frame, workers)

		output := frame
		outWidth, outHeight := doc.Width, doc.Height
		if scaleFactor != 1 {
			output = upscale.Frame(frame, int(doc.Width), int(doc.Height), int(outputWidth), int(outputHeight))
			outWidth, outHeight = outputWidth, outputHeight
		}

		if err := writePNG(filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", f)), output, int(outWidth), int(outHeight)); err != nil {
			return fmt.Errorf("frame %d: %w", f, err)
		}

		rlog.ProgressBar(os.Stdout, f+1, frameCount, start)
	}

	return nil
}

func writePNG(path string, rgb []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: rgb[idx], G: rgb[idx+1], B: rgb[idx+2], A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// listenForCancel starts a background keyboard listener that closes the
// returned channel on Esc, mirroring win_input.go's
// SilentInputManager.Start goroutine but narrowed to a single cancel
// signal instead of a full key-state map, since a batch render has nothing
// else to react to interactively.
func listenForCancel() <-chan struct{} {
	cancel := make(chan struct{})
	if err := keyboard.Open(); err != nil {
		return cancel
	}

	go func() {
		for {
			_, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			if key == keyboard.KeyEsc {
				close(cancel)
				return
			}
		}
	}()
	return cancel
}
