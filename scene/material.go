package scene

import "github.com/MrTraan/rtv1/types"

// Defines a Phong surface material. Color channels use the 0-255 scale.
// The ambient, diffuse and specular coefficients are not clamped; values
// outside [0, 1] overshoot and are only clamped when the final pixel is
// converted to 8 bits.
type Material struct {
	Name string

	Color types.Vec3

	Ambient  float32
	Diffuse  float32
	Specular float32
}

// Create a new material.
func NewMaterial(name string, color types.Vec3, ambient, diffuse, specular float32) *Material {
	return &Material{
		Name:     name,
		Color:    color,
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	}
}
