package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/MrTraan/rtv1/types"
)

var (
	ErrInvalidFOV     = errors.New("scene: camera fov must be in the (0, 180) degree range")
	ErrDegenerateView = errors.New("scene: camera eye and look positions must differ")
)

var defaultCameraParams = CameraParams{
	Eye:  types.XYZ(0, 0, 0),
	Look: types.XYZ(0, 0, -1),
	Up:   types.XYZ(0, 1, 0),
	FOV:  90,
}

// The camera parameters as defined by a scene description.
type CameraParams struct {
	Eye  types.Vec3
	Look types.Vec3
	Up   types.Vec3

	// Vertical field of view in degrees.
	FOV float32
}

// Get the default camera parameters: eye at the origin looking down -Z with
// a 90 degree vertical FOV.
func DefaultCameraParams() CameraParams {
	return defaultCameraParams
}

// Check the camera parameters. An up vector parallel to the view direction
// is not detected and produces a degenerate basis.
func (p CameraParams) Validate() error {
	if !(p.FOV > 0 && p.FOV < 180) {
		return ErrInvalidFOV
	}
	if p.Eye.Sub(p.Look).SqLen() == 0 {
		return ErrDegenerateView
	}
	return nil
}

func (p CameraParams) String() string {
	return fmt.Sprintf("eye: %v, look: %v, up: %v, fov: %3.1f", p.Eye, p.Look, p.Up, p.FOV)
}

// The camera generates primary rays through a virtual image plane placed at
// unit distance in front of the eye.
type Camera struct {
	origin          types.Vec3
	lowerLeftCorner types.Vec3
	horizontal      types.Vec3
	vertical        types.Vec3
}

// Setup a camera for the given parameters and image aspect ratio.
func NewCamera(p CameraParams, aspect float32) *Camera {
	theta := p.FOV * math32.Pi / 180
	halfHeight := math32.Tan(theta / 2)
	halfWidth := aspect * halfHeight

	w := p.Eye.Sub(p.Look).Normalize()
	u := p.Up.Cross(w).Normalize()
	v := w.Cross(u)

	return &Camera{
		origin:          p.Eye,
		lowerLeftCorner: p.Eye.Sub(u.Mul(halfWidth)).Sub(v.Mul(halfHeight)).Sub(w),
		horizontal:      u.Mul(halfWidth * 2),
		vertical:        v.Mul(halfHeight * 2),
	}
}

// Generate a ray for normalized image plane coordinates (s, t). (0, 0) maps
// to the lower left corner of the image plane and (1, 1) to the upper right.
func (c *Camera) GetRay(s, t float32) types.Ray {
	return types.NewRay(
		c.origin,
		c.lowerLeftCorner.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t)).Sub(c.origin),
	)
}

// Get the camera origin.
func (c *Camera) Origin() types.Vec3 {
	return c.origin
}
