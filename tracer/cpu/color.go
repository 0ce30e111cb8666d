package cpu

import (
	"github.com/chewxy/math32"

	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/types"
)

// Evaluate the color seen along a ray: the closest sphere hit is shaded
// with the Phong model and rays that miss every sphere get the sky color.
func RayColor(r types.Ray, sc *scene.Scene, tMin float32) types.Vec3 {
	rec, sphere, hit := sc.ClosestHit(r, tMin, scene.MaxT)
	if hit {
		return Phong(r, rec, sphere.Material, sc.Light)
	}
	return sc.Sky.Color(r.Dir)
}

// Convert a color in the 0-255 range to RGBA8 components. Channels are
// clamped and truncated; NaN channels map to 0. Alpha is always 255.
func ToRGBA8(c types.Vec3) [4]uint8 {
	return [4]uint8{toByte(c[0]), toByte(c[1]), toByte(c[2]), 255}
}

func toByte(v float32) uint8 {
	switch {
	case math32.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
