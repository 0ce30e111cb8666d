package cpu

import (
	"fmt"

	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/tracer/lcg"
	"github.com/MrTraan/rtv1/types"
)

// A frame is the shared render target together with the read-only scene
// data needed to fill it.
type Frame struct {
	W, H   uint32
	Pix    []uint8
	Scene  *scene.Scene
	Camera *scene.Camera
}

// Render rows [blockY, blockY+blockH) of the frame. Each pixel averages
// spp camera rays jittered by up to half a pixel in each direction using
// random values drawn from sampler. Only the bytes of the block rows are
// written. Returns the number of traced rays.
func RenderBlock(f *Frame, blockY, blockH, spp uint32, tMin float32, sampler lcg.Sampler) (uint64, error) {
	if blockY+blockH > f.H {
		return 0, fmt.Errorf("cpu tracer: block rows [%d, %d) exceed frame height %d", blockY, blockY+blockH, f.H)
	}
	if uint64(len(f.Pix)) < uint64(f.W)*uint64(f.H)*4 {
		return 0, fmt.Errorf("cpu tracer: frame buffer too small for %dx%d frame", f.W, f.H)
	}
	if spp == 0 {
		spp = 1
	}

	frameW := float32(f.W)
	frameH := float32(f.H)
	invSamples := 1.0 / float32(spp)
	offset := uint64(blockY) * uint64(f.W) * 4
	for y := blockY; y < blockY+blockH; y++ {
		for x := uint32(0); x < f.W; x++ {
			var color types.Vec3
			for s := uint32(0); s < spp; s++ {
				u := (float32(x) + sampler.Float32() - 0.5) / frameW
				v := (float32(y) + sampler.Float32() - 0.5) / frameH
				color = color.Add(RayColor(f.Camera.GetRay(u, v), f.Scene, tMin))
			}

			rgba := ToRGBA8(color.Mul(invSamples))
			copy(f.Pix[offset:offset+4], rgba[:])
			offset += 4
		}
	}

	return uint64(f.W) * uint64(blockH) * uint64(spp), nil
}
