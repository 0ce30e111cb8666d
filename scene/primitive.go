package scene

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/MrTraan/rtv1/types"
)

// The nearest accepted ray parameter; hits closer to the ray origin are
// ignored to avoid self-intersection artifacts.
const DefaultTMin float32 = 0.001

// The far end of the search range used for primary rays.
const MaxT float32 = math.MaxFloat32

// Stores the result of a successful ray-sphere intersection.
type HitRecord struct {
	// The ray parameter at the hit point.
	T float32

	// The hit point in world space.
	Point types.Vec3

	// The unit outward surface normal.
	Normal types.Vec3
}

// Defines a sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float32

	// The sphere material. Must be added to the scene before the sphere.
	Material *Material
}

// Create new sphere primitive
func NewSphere(center types.Vec3, radius float32, material *Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect the sphere with a ray. The hit is accepted only if its ray
// parameter lies strictly inside (tMin, tMax); the near root is tried
// before the far root. A tangent ray (zero discriminant) counts as a miss.
// When no hit is found rec is left untouched.
func (s *Sphere) Hit(r types.Ray, tMin, tMax float32, rec *HitRecord) bool {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - a*c
	if discriminant <= 0 {
		return false
	}

	sqrtD := math32.Sqrt(discriminant)
	for _, t := range [2]float32{(-b - sqrtD) / a, (-b + sqrtD) / a} {
		if t < tMax && t > tMin {
			rec.T = t
			rec.Point = r.At(t)
			rec.Normal = rec.Point.Sub(s.Center).Div(s.Radius)
			return true
		}
	}

	return false
}
