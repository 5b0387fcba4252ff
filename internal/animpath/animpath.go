// Package animpath drives a mesh's Transform across a frame sequence. It is
// the Go counterpart to original_source/main.c's per-frame
// set_mesh_position/set_mesh_rotation calls, generalized from two hardcoded
// sinusoidal paths into a reusable Path function type so a caller can
// register as many independently-animated meshes as it wants.
package animpath

import (
	"math"

	"github.com/markusheimerl/raytracer/internal/vecmath"
)

// Path maps an angular phase t (radians) to a mesh transform for one frame.
type Path func(t float32) vecmath.Transform

// Driver resamples a Path at FrameCount evenly spaced phases spanning one
// full revolution (2*pi), mirroring main.c's
// "t := frame * (2*pi / frame_count)".
type Driver struct {
	Path       Path
	FrameCount int
}

// NewDriver builds a Driver over frameCount frames; frameCount must be
// positive.
func NewDriver(path Path, frameCount int) Driver {
	return Driver{Path: path, FrameCount: frameCount}
}

// TransformAt returns the transform for the given zero-based frame index.
func (d Driver) TransformAt(frame int) vecmath.Transform {
	t := float32(frame) * (2 * math.Pi / float32(d.FrameCount))
	return d.Path(t)
}

// Orbit is the drone path from original_source/main.c: a horizontal circle
// of the given radius around the origin at the given height, bobbing
// vertically at twice orbital frequency, banked into the turn.
func Orbit(radius, height, bobAmplitude float32) Path {
	return func(t float32) vecmath.Transform {
		sinT, cosT := float32(math.Sin(float64(t))), float32(math.Cos(float64(t)))
		sin2T := float32(math.Sin(float64(2 * t)))
		return vecmath.Transform{
			Position: vecmath.NewVec3(radius*cosT, height+bobAmplitude*sin2T, radius*sinT),
			Rotation: vecmath.NewVec3(0.1*sinT, t, 0.1*cosT),
		}
	}
}

// Bob is the treasure path from original_source/main.c: a fixed horizontal
// position that bobs vertically while slowly yawing.
func Bob(position vecmath.Vec3, bobAmplitude float32) Path {
	return func(t float32) vecmath.Transform {
		sinT := float32(math.Sin(float64(t)))
		return vecmath.Transform{
			Position: vecmath.NewVec3(position.X, bobAmplitude*sinT, position.Z),
			Rotation: vecmath.NewVec3(0, t*0.5, 0),
		}
	}
}

// Static is a Path that never moves, for meshes original_source leaves at
// their default transform (e.g. ground).
func Static(transform vecmath.Transform) Path {
	return func(float32) vecmath.Transform { return transform }
}
