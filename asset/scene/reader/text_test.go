package reader

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrTraan/rtv1/asset"
	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/types"
)

func mockResource(name, payload string) *asset.Resource {
	return asset.NewResourceFromStream(name, strings.NewReader(payload))
}

func TestTextSceneReader(t *testing.T) {
	payload := `
# a test scene
camera_eye 0 0 -3
camera_look 0 0 0
camera_up 0 1 0
camera_fov 60

light_pos 1 2 3
light_color 10 20 30
light_shininess 8
sky_horizon 1 1 1
sky_zenith 0 0 255

material yellow 204 204 0 0.2 0.5 0.3
material red 204 76.5 76.5 0.2 0.5 0.3
sphere 0 0 0 1 yellow
sphere 2 0 0 0.5 red
sphere -2 0 0 0.5 yellow
`

	sc, err := newTextSceneReader().Read(mockResource("test.scene", payload))
	if err != nil {
		t.Fatal(err)
	}

	expCamera := scene.CameraParams{
		Eye:  types.XYZ(0, 0, -3),
		Look: types.XYZ(0, 0, 0),
		Up:   types.XYZ(0, 1, 0),
		FOV:  60,
	}
	if sc.Camera != expCamera {
		t.Fatalf("expected camera %v; got %v", expCamera, sc.Camera)
	}

	expLight := scene.Light{Position: types.XYZ(1, 2, 3), Color: types.XYZ(10, 20, 30), Shininess: 8}
	if sc.Light != expLight {
		t.Fatalf("expected light %v; got %v", expLight, sc.Light)
	}

	expSky := scene.Sky{Horizon: types.XYZ(1, 1, 1), Zenith: types.XYZ(0, 0, 255)}
	if sc.Sky != expSky {
		t.Fatalf("expected sky %v; got %v", expSky, sc.Sky)
	}

	if len(sc.Materials) != 2 {
		t.Fatalf("expected 2 materials; got %d", len(sc.Materials))
	}
	if len(sc.Spheres) != 3 {
		t.Fatalf("expected 3 spheres; got %d", len(sc.Spheres))
	}

	yellow, _ := sc.Material("yellow")
	if sc.Spheres[0].Material != yellow || sc.Spheres[2].Material != yellow {
		t.Fatal("expected spheres 0 and 2 to share the yellow material")
	}
	if sc.Spheres[1].Center != types.XYZ(2, 0, 0) || sc.Spheres[1].Radius != 0.5 {
		t.Fatalf("expected sphere 1 at (2, 0, 0) with radius 0.5; got %v, %v", sc.Spheres[1].Center, sc.Spheres[1].Radius)
	}
}

func TestTextSceneReaderDefaults(t *testing.T) {
	sc, err := newTextSceneReader().Read(mockResource("empty.scene", "# nothing here\n"))
	if err != nil {
		t.Fatal(err)
	}

	if sc.Camera != scene.DefaultCameraParams() {
		t.Fatalf("expected default camera; got %v", sc.Camera)
	}
	if sc.Light != scene.DefaultLight() {
		t.Fatalf("expected default light; got %v", sc.Light)
	}
	if len(sc.Spheres) != 0 {
		t.Fatalf("expected an empty scene; got %d spheres", len(sc.Spheres))
	}
}

func TestTextSceneReaderErrors(t *testing.T) {
	type spec struct {
		payload string
		expErr  string
	}
	specs := []spec{
		{
			"sphere 0 0 0 1 missing",
			`[test.scene: 1] error: undefined material with name "missing"`,
		},
		{
			"material m 1 1 1 0 0 0\n\nsphere 0 0 0 1",
			`[test.scene: 3] error: unsupported syntax for "sphere"; expected 5 arguments: cX cY cZ radius material_name; got 4`,
		},
		{
			"material m 1 1 1",
			`[test.scene: 1] error: unsupported syntax for "material"; expected 7 arguments: name r g b ambient diffuse specular; got 4`,
		},
		{
			"material m 1 1 1 0 0 0\nmaterial m 2 2 2 0 0 0",
			`[test.scene: 2] error: scene: material "m" already defined`,
		},
		{
			"material m 1 1 1 0 0 0\nsphere 0 0 0 -1 m",
			`[test.scene: 2] error: scene: sphere radius must be positive; got -1`,
		},
		{
			"camera_eye 0 0",
			`[test.scene: 1] error: unsupported syntax for "camera_eye"; expected 3 arguments; got 2`,
		},
		{
			"camera_fov wide",
			`[test.scene: 1] error: strconv.ParseFloat: parsing "wide": invalid syntax`,
		},
		{
			"camera_fov 180",
			`[test.scene: 0] error: scene: camera fov must be in the (0, 180) degree range`,
		},
		{
			"include",
			`[test.scene: 1] error: unsupported syntax for "include"; expected 1 argument; got 0`,
		},
	}

	for index, s := range specs {
		_, err := newTextSceneReader().Read(mockResource("test.scene", s.payload))
		if err == nil || err.Error() != s.expErr {
			t.Fatalf("[spec %d] expected error:\n%s\ngot:\n%v", index, s.expErr, err)
		}
	}
}

func TestTextSceneReaderUnknownDirective(t *testing.T) {
	sc, err := newTextSceneReader().Read(mockResource("test.scene", "frobnicate 1 2 3\ncamera_fov 45\n"))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Camera.FOV != 45 {
		t.Fatalf("expected parsing to continue after unknown directive; got fov %v", sc.Camera.FOV)
	}
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	for name, payload := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestTextSceneReaderInclude(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.scene":          "include lib/materials.scene\nsphere 0 0 0 1 blue\n",
		"lib/materials.scene": "material blue 0 0 255 0.1 0.9 0\n",
	})

	sc, err := ReadScene(filepath.Join(dir, "main.scene"))
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Spheres) != 1 || sc.Spheres[0].Material.Name != "blue" {
		t.Fatalf("expected a single sphere using the included material; got %d spheres", len(sc.Spheres))
	}
}

func TestTextSceneReaderIncludeErrors(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.scene":   "# main\ninclude broken.scene\n",
		"broken.scene": "sphere 0 0 0 1 nope\n",
		"a.scene":      "include b.scene\n",
		"b.scene":      "include a.scene\n",
	})

	mainFile := filepath.Join(dir, "main.scene")
	brokenFile := filepath.Join(dir, "broken.scene")
	_, err := ReadScene(mainFile)
	expErr := fmt.Sprintf("[%s: 1] error: undefined material with name \"nope\"\nreferenced from %s:2 [include]", brokenFile, mainFile)
	if err == nil || err.Error() != expErr {
		t.Fatalf("expected error:\n%s\ngot:\n%v", expErr, err)
	}

	_, err = ReadScene(filepath.Join(dir, "a.scene"))
	if err == nil || !strings.Contains(err.Error(), "include cycle detected") {
		t.Fatalf("expected an include cycle error; got %v", err)
	}
}

func TestTextSceneReaderRemoteInclude(t *testing.T) {
	files := map[string]string{
		"/scenes/main.scene":      "include materials.scene\nsphere 0 0 0 1 white\n",
		"/scenes/materials.scene": "material white 255 255 255 0.2 0.5 0.3\n",
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, exists := files[r.URL.Path]
		if !exists {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(payload))
	}))
	defer server.Close()

	sc, err := ReadScene(server.URL + "/scenes/main.scene")
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Spheres) != 1 || sc.Spheres[0].Material.Name != "white" {
		t.Fatal("expected a single sphere using the remote material")
	}
}

func TestReadSceneUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"scene.obj": ""})

	_, err := ReadScene(filepath.Join(dir, "scene.obj"))
	if err == nil || !strings.Contains(err.Error(), "unsupported file format") {
		t.Fatalf("expected unsupported format error; got %v", err)
	}
}
