package cpu

import (
	"github.com/chewxy/math32"

	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/types"
)

// Shade a hit point using the Phong model against a single point light.
//
// Surfaces facing away from the light only receive the ambient term. No
// shadow rays are cast, so spheres never occlude each other from the light.
// The result is not clamped.
func Phong(r types.Ray, rec scene.HitRecord, mat *scene.Material, light scene.Light) types.Vec3 {
	l := light.Position.Sub(rec.Point).Normalize()
	angle := rec.Normal.Normalize().Dot(l)
	ambient := mat.Color.Mul(mat.Ambient)
	if angle < 0 {
		return ambient
	}

	d := r.Dir.Normalize().Dot(l.Sub(rec.Normal.Mul(2 * angle)))
	var specular float32
	if d > 0 {
		specular = math32.Pow(d, light.Shininess) * mat.Specular
	}

	return ambient.Add(mat.Color.Mul(angle * mat.Diffuse)).Add(light.Color.Mul(specular))
}
