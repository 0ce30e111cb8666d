package writer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/types"
)

type textSceneWriter struct {
	out io.Writer
}

// Create a new text scene writer
func newTextSceneWriter(out io.Writer) *textSceneWriter {
	return &textSceneWriter{out: out}
}

// Write scene definition in text format.
func (w *textSceneWriter) Write(sc *scene.Scene) error {
	for index, mat := range sc.Materials {
		if mat.Name == "" || strings.ContainsAny(mat.Name, " \t\r\n#") {
			return fmt.Errorf("textSceneWriter: material %d has a name (%q) that cannot be written", index, mat.Name)
		}
	}

	bw := bufio.NewWriter(w.out)
	fmt.Fprintln(bw, "# camera")
	fmt.Fprintf(bw, "camera_eye %s\n", fmtVec3(sc.Camera.Eye))
	fmt.Fprintf(bw, "camera_look %s\n", fmtVec3(sc.Camera.Look))
	fmt.Fprintf(bw, "camera_up %s\n", fmtVec3(sc.Camera.Up))
	fmt.Fprintf(bw, "camera_fov %s\n", fmtFloat(sc.Camera.FOV))

	fmt.Fprintln(bw, "\n# lighting")
	fmt.Fprintf(bw, "light_pos %s\n", fmtVec3(sc.Light.Position))
	fmt.Fprintf(bw, "light_color %s\n", fmtVec3(sc.Light.Color))
	fmt.Fprintf(bw, "light_shininess %s\n", fmtFloat(sc.Light.Shininess))
	fmt.Fprintf(bw, "sky_horizon %s\n", fmtVec3(sc.Sky.Horizon))
	fmt.Fprintf(bw, "sky_zenith %s\n", fmtVec3(sc.Sky.Zenith))

	fmt.Fprintln(bw, "\n# materials: name r g b ambient diffuse specular")
	for _, mat := range sc.Materials {
		fmt.Fprintf(bw, "material %s %s %s %s %s\n", mat.Name, fmtVec3(mat.Color), fmtFloat(mat.Ambient), fmtFloat(mat.Diffuse), fmtFloat(mat.Specular))
	}

	fmt.Fprintln(bw, "\n# spheres: cx cy cz radius material")
	for _, sphere := range sc.Spheres {
		fmt.Fprintf(bw, "sphere %s %s %s\n", fmtVec3(sphere.Center), fmtFloat(sphere.Radius), sphere.Material.Name)
	}

	return bw.Flush()
}

// Format a float using the shortest representation that parses back to the
// same float32 value.
func fmtFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func fmtVec3(v types.Vec3) string {
	return fmtFloat(v[0]) + " " + fmtFloat(v[1]) + " " + fmtFloat(v[2])
}
