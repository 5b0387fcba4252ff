// Package upscale resizes a rendered RGB8 frame with bicubic (Catmull-Rom
// Hermite) interpolation. The core renderer is scoped to produce frames at
// whatever resolution the caller asks for (spec.md §6); this package lets a
// caller render small and scale up afterward, the way
// original_source/scene.c:save_scene renders at scene->scale_factor and
// upscales each frame before encoding, using
// original_source/utils/image.c's cubic_hermite/bicubic_interpolate.
package upscale

// Frame scales an RGB8 frame (row-major, top-left origin, 3 bytes/pixel)
// from srcWidth x srcHeight to dstWidth x dstHeight using bicubic
// interpolation per channel, clamped to [0,255].
func Frame(src []byte, srcWidth, srcHeight, dstWidth, dstHeight int) []byte {
	dst := make([]byte, dstWidth*dstHeight*3)

	if dstWidth == 1 && dstHeight == 1 {
		copy(dst, src[:3])
		return dst
	}

	for y := 0; y < dstHeight; y++ {
		srcY := sourceCoord(y, dstHeight, srcHeight)
		for x := 0; x < dstWidth; x++ {
			srcX := sourceCoord(x, dstWidth, srcWidth)
			r, g, b := bicubicInterpolate(src, srcX, srcY, srcWidth, srcHeight)
			idx := (y*dstWidth + x) * 3
			dst[idx] = r
			dst[idx+1] = g
			dst[idx+2] = b
		}
	}
	return dst
}

// sourceCoord maps a destination coordinate to a source coordinate across
// the full span [0, srcExtent-1], matching
// original_source/scene.c:save_scene's "x * (width-1) / (scaled_width-1)".
func sourceCoord(d, dstExtent, srcExtent int) float32 {
	if dstExtent == 1 {
		return 0
	}
	return float32(d) * float32(srcExtent-1) / float32(dstExtent-1)
}

// cubicHermite evaluates the Catmull-Rom Hermite spline through four
// evenly-spaced samples A,B,C,D at parameter t in [0,1], where B and C are
// the samples bracketing t.
func cubicHermite(a, b, c, d, t float32) float32 {
	coeffA := -a/2 + (3*b)/2 - (3*c)/2 + d/2
	coeffB := a - (5*b)/2 + 2*c - d/2
	coeffC := -a/2 + c/2
	coeffD := b

	return coeffA*t*t*t + coeffB*t*t + coeffC*t + coeffD
}

// getPixel reads a clamped-to-edge pixel from a row-major RGB8 frame.
func getPixel(frame []byte, x, y, width, height int) (r, g, b byte) {
	if x < 0 {
		x = 0
	}
	if x >= width {
		x = width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= height {
		y = height - 1
	}
	idx := (y*width + x) * 3
	return frame[idx], frame[idx+1], frame[idx+2]
}

// bicubicInterpolate samples a 4x4 neighborhood around (x, y) and blends it
// horizontally then vertically per channel.
func bicubicInterpolate(frame []byte, x, y float32, width, height int) (r, g, b byte) {
	x1 := int(x)
	y1 := int(y)
	fx := x - float32(x1)
	fy := y - float32(y1)

	var rows [4][4][3]float32
	for dy := -1; dy <= 2; dy++ {
		for dx := -1; dx <= 2; dx++ {
			pr, pg, pb := getPixel(frame, x1+dx, y1+dy, width, height)
			rows[dy+1][dx+1] = [3]float32{float32(pr), float32(pg), float32(pb)}
		}
	}

	var rVals, gVals, bVals [4]float32
	for i := 0; i < 4; i++ {
		rVals[i] = cubicHermite(rows[i][0][0], rows[i][1][0], rows[i][2][0], rows[i][3][0], fx)
		gVals[i] = cubicHermite(rows[i][0][1], rows[i][1][1], rows[i][2][1], rows[i][3][1], fx)
		bVals[i] = cubicHermite(rows[i][0][2], rows[i][1][2], rows[i][2][2], rows[i][3][2], fx)
	}

	rf := cubicHermite(rVals[0], rVals[1], rVals[2], rVals[3], fy) + 0.5
	gf := cubicHermite(gVals[0], gVals[1], gVals[2], gVals[3], fy) + 0.5
	bf := cubicHermite(bVals[0], bVals[1], bVals[2], bVals[3], fy) + 0.5

	return clampChannel(rf), clampChannel(gf), clampChannel(bf)
}

func clampChannel(v float32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
