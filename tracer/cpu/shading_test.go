package cpu

import (
	"math"
	"testing"

	"github.com/chewxy/math32"

	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/types"
)

const colorEpsilon float32 = 1e-3

func approxColor(a, b types.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(a[i]-b[i]) > colorEpsilon {
			return false
		}
	}
	return true
}

func TestPhong(t *testing.T) {
	mat := scene.NewMaterial("test", types.XYZ(200, 100, 0), 0.1, 0.5, 0.2)
	ray := types.NewRay(types.XYZ(0, 0, -3), types.XYZ(0, 0, 1))
	rec := scene.HitRecord{
		T:      2,
		Point:  types.XYZ(0, 0, -1),
		Normal: types.XYZ(0, 0, -1),
	}

	type spec struct {
		descr    string
		light    scene.Light
		expColor types.Vec3
	}
	specs := []spec{
		{
			"light behind the surface only contributes ambient",
			scene.Light{Position: types.XYZ(0, 0, 5), Color: types.XYZ(255, 255, 255), Shininess: 50},
			types.XYZ(20, 10, 0),
		},
		{
			"head-on light adds full diffuse and specular",
			scene.Light{Position: types.XYZ(0, 0, -5), Color: types.XYZ(255, 255, 255), Shininess: 50},
			types.XYZ(20+100+51, 10+50+51, 51),
		},
		{
			"specular term uses the light color",
			scene.Light{Position: types.XYZ(0, 0, -5), Color: types.XYZ(0, 0, 100), Shininess: 8},
			types.XYZ(120, 60, 20),
		},
	}

	for index, s := range specs {
		color := Phong(ray, rec, mat, s.light)
		if !approxColor(color, s.expColor) {
			t.Fatalf("[spec %d] %s: expected color %v; got %v", index, s.descr, s.expColor, color)
		}
	}
}

func TestPhongDoesNotClampCoefficients(t *testing.T) {
	mat := scene.NewMaterial("hot", types.XYZ(255, 255, 255), 2, 0, 0)
	ray := types.NewRay(types.XYZ(0, 0, -3), types.XYZ(0, 0, 1))
	rec := scene.HitRecord{T: 2, Point: types.XYZ(0, 0, -1), Normal: types.XYZ(0, 0, -1)}
	light := scene.Light{Position: types.XYZ(0, 0, 5), Color: types.XYZ(255, 255, 255), Shininess: 50}

	color := Phong(ray, rec, mat, light)
	if exp := types.XYZ(510, 510, 510); !approxColor(color, exp) {
		t.Fatalf("expected unclamped color %v; got %v", exp, color)
	}
	if got := ToRGBA8(color); got != [4]uint8{255, 255, 255, 255} {
		t.Fatalf("expected byte conversion to clamp to white; got %v", got)
	}
}

func TestRayColor(t *testing.T) {
	sc := testScene(t)

	// Straight down the view axis; hits the sphere at (0, 0, -1) with the
	// default light behind the hit normal.
	hitRay := types.NewRay(types.XYZ(0, 0, -3), types.XYZ(0, 0, 1))
	exp := types.XYZ(204, 204, 0).Mul(0.2)
	if got := RayColor(hitRay, sc, scene.DefaultTMin); !approxColor(got, exp) {
		t.Fatalf("expected hit color %v; got %v", exp, got)
	}

	missRay := types.NewRay(types.XYZ(0, 0, -3), types.XYZ(1, 1, 0))
	exp = sc.Sky.Color(missRay.Dir)
	if got := RayColor(missRay, sc, scene.DefaultTMin); got != exp {
		t.Fatalf("expected sky color %v; got %v", exp, got)
	}
}

func TestToRGBA8(t *testing.T) {
	type spec struct {
		in  types.Vec3
		exp [4]uint8
	}
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	specs := []spec{
		{types.XYZ(0, 0, 0), [4]uint8{0, 0, 0, 255}},
		{types.XYZ(10.9, 128.5, 254.99), [4]uint8{10, 128, 254, 255}},
		{types.XYZ(-5, 255, 300), [4]uint8{0, 255, 255, 255}},
		{types.XYZ(nan, 12, nan), [4]uint8{0, 12, 0, 255}},
		{types.XYZ(inf, -inf, 1), [4]uint8{255, 0, 1, 255}},
	}

	for index, s := range specs {
		if got := ToRGBA8(s.in); got != s.exp {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
		}
	}
}
