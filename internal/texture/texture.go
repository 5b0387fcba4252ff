// Package texture decodes image files into raytracer.Texture buffers. Like
// objloader, it is a supplementary, non-core collaborator: spec.md §1 scopes
// WebP decoding out of the core and describes it only as "decoded RGBA
// texture buffers" (§6); this package is what actually produces them.
// Grounded on _examples/mirstar13-3d-graphics/obj_loader.go's
// image.Decode(file)-via-blank-import pattern, with
// golang.org/x/image/webp registered alongside the stdlib PNG/JPEG decoders
// because original_source/mesh.h:create_mesh reads WebP texture files.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	"github.com/markusheimerl/raytracer/internal/raytracer"
)

// Load decodes the image file at path and packs it into a tightly-packed
// RGBA8 raytracer.Texture.
func Load(path string) (raytracer.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return raytracer.Texture{}, fmt.Errorf("texture: cannot open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return raytracer.Texture{}, fmt.Errorf("texture: cannot decode %q: %w", path, err)
	}
	return FromImage(img)
}

// FromImage repacks a decoded image.Image into a tightly-packed RGBA8
// buffer, regardless of its native pixel format.
func FromImage(img image.Image) (raytracer.Texture, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rgba := make([]byte, width*height*4)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			rgba[idx] = byte(r >> 8)
			rgba[idx+1] = byte(g >> 8)
			rgba[idx+2] = byte(b >> 8)
			rgba[idx+3] = byte(a >> 8)
			idx += 4
		}
	}

	return raytracer.NewTexture(rgba, width, height)
}
