// Package scene defines the flat scene representation stored in compiled
// scene archives.
//
// Spheres reference their materials by index so that the representation can
// be serialized with encoding/gob, which does not preserve pointer identity.
package scene

import (
	"fmt"

	rtscene "github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/types"
)

// The current compiled scene format version.
const FormatVersion uint32 = 1

type Material struct {
	Name     string
	Color    types.Vec3
	Ambient  float32
	Diffuse  float32
	Specular float32
}

type Sphere struct {
	Center        types.Vec3
	Radius        float32
	MaterialIndex uint32
}

// A compiled scene.
type Scene struct {
	Version uint32

	Camera    rtscene.CameraParams
	Light     rtscene.Light
	Sky       rtscene.Sky
	Materials []Material
	Spheres   []Sphere
}

// Flatten a scene into its compiled representation.
func Compile(sc *rtscene.Scene) (*Scene, error) {
	matIndex := make(map[*rtscene.Material]uint32, len(sc.Materials))
	out := &Scene{
		Version:   FormatVersion,
		Camera:    sc.Camera,
		Light:     sc.Light,
		Sky:       sc.Sky,
		Materials: make([]Material, len(sc.Materials)),
		Spheres:   make([]Sphere, len(sc.Spheres)),
	}

	for index, mat := range sc.Materials {
		matIndex[mat] = uint32(index)
		out.Materials[index] = Material{
			Name:     mat.Name,
			Color:    mat.Color,
			Ambient:  mat.Ambient,
			Diffuse:  mat.Diffuse,
			Specular: mat.Specular,
		}
	}

	for index, sphere := range sc.Spheres {
		mIndex, exists := matIndex[sphere.Material]
		if !exists {
			return nil, fmt.Errorf("compiled scene: sphere %d references a material that is not part of the scene", index)
		}
		out.Spheres[index] = Sphere{
			Center:        sphere.Center,
			Radius:        sphere.Radius,
			MaterialIndex: mIndex,
		}
	}

	return out, nil
}

// Rebuild a renderable scene from the compiled representation.
func (cs *Scene) Expand() (*rtscene.Scene, error) {
	if cs.Version != FormatVersion {
		return nil, fmt.Errorf("compiled scene: unsupported format version %d", cs.Version)
	}

	sc := rtscene.NewScene()
	sc.Camera = cs.Camera
	sc.Light = cs.Light
	sc.Sky = cs.Sky

	for _, mat := range cs.Materials {
		err := sc.AddMaterial(rtscene.NewMaterial(mat.Name, mat.Color, mat.Ambient, mat.Diffuse, mat.Specular))
		if err != nil {
			return nil, err
		}
	}

	for index, sphere := range cs.Spheres {
		if sphere.MaterialIndex >= uint32(len(sc.Materials)) {
			return nil, fmt.Errorf("compiled scene: sphere %d references material index %d; scene defines %d materials", index, sphere.MaterialIndex, len(sc.Materials))
		}
		err := sc.AddSphere(rtscene.NewSphere(sphere.Center, sphere.Radius, sc.Materials[sphere.MaterialIndex]))
		if err != nil {
			return nil, err
		}
	}

	return sc, nil
}
