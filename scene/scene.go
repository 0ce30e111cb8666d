package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/MrTraan/rtv1/types"
)

// A point light. Its color uses the 0-255 scale.
type Light struct {
	Position types.Vec3
	Color    types.Vec3

	// The Phong specular exponent.
	Shininess float32
}

// Get the default light: a white point light at (-5, 5, 5).
func DefaultLight() Light {
	return Light{
		Position:  types.XYZ(-5, 5, 5),
		Color:     types.XYZ(255, 255, 255),
		Shininess: 50,
	}
}

// The sky is a vertical gradient used for rays that miss every sphere.
type Sky struct {
	// Color for a horizontal ray.
	Horizon types.Vec3

	// Color for a ray pointing straight up.
	Zenith types.Vec3
}

// Get the default white to pale blue sky.
func DefaultSky() Sky {
	return Sky{
		Horizon: types.XYZ(255, 255, 255),
		Zenith:  types.XYZ(0.5, 0.7, 1.0).Mul(255),
	}
}

// Get the sky color for a ray direction. The gradient is interpolated by
// t = 0.5 * (y + 1) of the normalized direction, so a ray pointing straight
// down also gets the horizon color.
func (s Sky) Color(dir types.Vec3) types.Vec3 {
	t := 0.5 * (dir.Normalize().Y() + 1.0)
	return s.Horizon.Mul(1.0 - t).Add(s.Zenith.Mul(t))
}

type Scene struct {
	Camera CameraParams

	Materials []*Material
	Spheres   []*Sphere

	Light Light
	Sky   Sky
}

// Create an empty scene with the default camera, light and sky.
func NewScene() *Scene {
	return &Scene{
		Camera:    DefaultCameraParams(),
		Materials: make([]*Material, 0),
		Spheres:   make([]*Sphere, 0),
		Light:     DefaultLight(),
		Sky:       DefaultSky(),
	}
}

// Add a material to the scene.
func (s *Scene) AddMaterial(material *Material) error {
	for _, mat := range s.Materials {
		if mat == material {
			return fmt.Errorf("scene: material already added")
		}
		if material.Name != "" && mat.Name == material.Name {
			return fmt.Errorf("scene: material %q already defined", material.Name)
		}
	}
	s.Materials = append(s.Materials, material)
	return nil
}

// Lookup a material by name.
func (s *Scene) Material(name string) (*Material, bool) {
	for _, mat := range s.Materials {
		if mat.Name == name {
			return mat, true
		}
	}
	return nil, false
}

// Add a sphere to the scene.
func (s *Scene) AddSphere(sphere *Sphere) error {
	if !(sphere.Radius > 0) {
		return fmt.Errorf("scene: sphere radius must be positive; got %v", sphere.Radius)
	}
	if sphere.Material == nil {
		return fmt.Errorf("scene: no material assigned to sphere")
	}
	for _, mat := range s.Materials {
		if mat == sphere.Material {
			s.Spheres = append(s.Spheres, sphere)
			return nil
		}
	}

	return fmt.Errorf("scene: sphere references unknown material; ensure that the material is added to the scene before adding the sphere")
}

// Check that the scene can be rendered.
func (s *Scene) Validate() error {
	return s.Camera.Validate()
}

// Find the closest sphere hit by the ray with a parameter in (tMin, tMax).
// Every sphere is tested; each accepted hit shrinks the search range so the
// first sphere found at the smallest t wins.
func (s *Scene) ClosestHit(r types.Ray, tMin, tMax float32) (HitRecord, *Sphere, bool) {
	var rec, tmpRec HitRecord
	var closest *Sphere
	closestSoFar := tMax
	for _, sphere := range s.Spheres {
		if sphere.Hit(r, tMin, closestSoFar, &tmpRec) {
			closest = sphere
			closestSoFar = tmpRec.T
			rec = tmpRec
		}
	}
	return rec, closest, closest != nil
}

// Get a printable summary of the scene contents.
func (s *Scene) Stats() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Material", "Color", "Ambient", "Diffuse", "Specular", "Spheres"})
	usage := make(map[*Material]int, len(s.Materials))
	for _, sphere := range s.Spheres {
		usage[sphere.Material]++
	}
	for _, mat := range s.Materials {
		table.Append([]string{
			mat.Name,
			fmt.Sprintf("%v", mat.Color),
			fmt.Sprintf("%.3f", mat.Ambient),
			fmt.Sprintf("%.3f", mat.Diffuse),
			fmt.Sprintf("%.3f", mat.Specular),
			fmt.Sprintf("%d", usage[mat]),
		})
	}
	table.SetFooter([]string{"", "", "", "", "TOTAL", fmt.Sprintf("%d", len(s.Spheres))})
	table.Render()

	fmt.Fprintf(&buf, "camera: %s\n", s.Camera)
	fmt.Fprintf(&buf, "light: position %v, color %v, shininess %3.1f\n", s.Light.Position, s.Light.Color, s.Light.Shininess)
	fmt.Fprintf(&buf, "sky: horizon %v, zenith %v\n", s.Sky.Horizon, s.Sky.Zenith)

	return buf.String()
}
