package scene

import "github.com/MrTraan/rtv1/types"

const (
	gridSize         = 20
	gridSphereRadius = 0.2
)

// Build the built-in scene: a 20x20 grid of small yellow spheres on the
// y=0 plane viewed from above and behind.
func DefaultScene() *Scene {
	sc := NewScene()
	sc.Camera = CameraParams{
		Eye:  types.XYZ(0, 2, -3),
		Look: types.XYZ(0, 0, 0),
		Up:   types.XYZ(0, 1, 0),
		FOV:  90,
	}

	yellow := NewMaterial("yellow", types.XYZ(0.8, 0.8, 0.0).Mul(255), 0.2, 0.5, 0.3)
	red := NewMaterial("red", types.XYZ(0.8, 0.3, 0.3).Mul(255), 0.2, 0.5, 0.3)
	mustSucceed(sc.AddMaterial(yellow))
	mustSucceed(sc.AddMaterial(red))

	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			center := types.XYZ(float32(x)-12, 0, float32(y)-4)
			mustSucceed(sc.AddSphere(NewSphere(center, gridSphereRadius, yellow)))
		}
	}

	return sc
}

func mustSucceed(err error) {
	if err != nil {
		panic(err)
	}
}
