package cpu

import (
	"bytes"
	"testing"

	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/tracer/lcg"
	"github.com/MrTraan/rtv1/types"
)

// A single unit sphere at the origin viewed from (0, 0, -3).
func testScene(t *testing.T) *scene.Scene {
	sc := scene.NewScene()
	sc.Camera = scene.CameraParams{
		Eye:  types.XYZ(0, 0, -3),
		Look: types.XYZ(0, 0, 0),
		Up:   types.XYZ(0, 1, 0),
		FOV:  90,
	}

	mat := scene.NewMaterial("yellow", types.XYZ(204, 204, 0), 0.2, 0.5, 0.3)
	if err := sc.AddMaterial(mat); err != nil {
		t.Fatal(err)
	}
	if err := sc.AddSphere(scene.NewSphere(types.XYZ(0, 0, 0), 1, mat)); err != nil {
		t.Fatal(err)
	}
	return sc
}

func testFrame(t *testing.T, w, h uint32) *Frame {
	sc := testScene(t)
	return &Frame{
		W:      w,
		H:      h,
		Pix:    make([]uint8, w*h*4),
		Scene:  sc,
		Camera: scene.NewCamera(sc.Camera, float32(w)/float32(h)),
	}
}

func pixelAt(f *Frame, x, y uint32) [4]uint8 {
	offset := (y*f.W + x) * 4
	var px [4]uint8
	copy(px[:], f.Pix[offset:offset+4])
	return px
}

func TestRenderBlockWithFixedSampler(t *testing.T) {
	frame := testFrame(t, 8, 6)

	for _, spp := range []uint32{1, 2} {
		rays, err := RenderBlock(frame, 0, frame.H, spp, scene.DefaultTMin, lcg.Fixed(0.5))
		if err != nil {
			t.Fatal(err)
		}
		if expRays := uint64(frame.W * frame.H * spp); rays != expRays {
			t.Fatalf("[spp %d] expected %d rays; got %d", spp, expRays, rays)
		}

		// A fixed 0.5 sample cancels the jitter so every sample of a pixel
		// traces the same ray.
		for y := uint32(0); y < frame.H; y++ {
			for x := uint32(0); x < frame.W; x++ {
				ray := frame.Camera.GetRay(float32(x)/float32(frame.W), float32(y)/float32(frame.H))
				exp := ToRGBA8(RayColor(ray, frame.Scene, scene.DefaultTMin))
				if got := pixelAt(frame, x, y); got != exp {
					t.Fatalf("[spp %d] expected pixel (%d, %d) to be %v; got %v", spp, x, y, exp, got)
				}
			}
		}
	}
}

func TestRenderBlockOnlyWritesBlockRows(t *testing.T) {
	frame := testFrame(t, 4, 3)
	for i := range frame.Pix {
		frame.Pix[i] = 7
	}

	if _, err := RenderBlock(frame, 1, 1, 1, scene.DefaultTMin, lcg.Fixed(0.5)); err != nil {
		t.Fatal(err)
	}

	rowBytes := int(frame.W * 4)
	for row := 0; row < int(frame.H); row++ {
		untouched := true
		for _, b := range frame.Pix[row*rowBytes : (row+1)*rowBytes] {
			if b != 7 {
				untouched = false
			}
		}
		if row == 1 && untouched {
			t.Fatalf("expected row %d to be rendered", row)
		}
		if row != 1 && !untouched {
			t.Fatalf("expected row %d to be left untouched", row)
		}
	}
}

func TestRenderBlockIsReproducible(t *testing.T) {
	frameA := testFrame(t, 16, 8)
	frameB := testFrame(t, 16, 8)

	if _, err := RenderBlock(frameA, 0, frameA.H, 4, scene.DefaultTMin, lcg.New(42)); err != nil {
		t.Fatal(err)
	}
	if _, err := RenderBlock(frameB, 0, frameB.H, 4, scene.DefaultTMin, lcg.New(42)); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(frameA.Pix, frameB.Pix) {
		t.Fatal("expected frames rendered with the same seed to match")
	}
}

func TestRenderBlockErrors(t *testing.T) {
	frame := testFrame(t, 4, 4)

	if _, err := RenderBlock(frame, 2, 3, 1, scene.DefaultTMin, lcg.Fixed(0.5)); err == nil {
		t.Fatal("expected an error for a block past the frame end")
	}

	frame.Pix = frame.Pix[:10]
	if _, err := RenderBlock(frame, 0, 1, 1, scene.DefaultTMin, lcg.Fixed(0.5)); err == nil {
		t.Fatal("expected an error for an undersized frame buffer")
	}
}
