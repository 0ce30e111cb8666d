package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MrTraan/rtv1/asset"
	"github.com/MrTraan/rtv1/log"
	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/types"
)

// Max depth of nested include directives.
const maxIncludeDepth = 16

type textSceneReader struct {
	logger log.Logger

	// The scene being populated.
	sc *scene.Scene

	// Paths of the resources currently being parsed; used to detect
	// include cycles.
	includeStack []string

	// An error stack that provides additional error information when
	// scene files include other scene files.
	errStack []string
}

// Create a new text scene reader.
func newTextSceneReader() *textSceneReader {
	return &textSceneReader{
		logger:       log.New("scene reader"),
		sc:           scene.NewScene(),
		includeStack: make([]string, 0),
		errStack:     make([]string, 0),
	}
}

// Read scene definition.
func (r *textSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	if err = r.sc.Validate(); err != nil {
		return nil, r.emitError(sceneRes.Path(), 0, "%s", err.Error())
	}

	r.logger.Noticef("parsed scene with %d spheres in %d ms", len(r.sc.Spheres), time.Since(start).Nanoseconds()/1e6)
	return r.sc, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *textSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = strings.Trim(
			fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	} else {
		errMsg = strings.Trim(
			fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	}

	return fmt.Errorf("%s", errMsg)
}

// Push a frame to the error stack.
func (r *textSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *textSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse a text scene resource.
func (r *textSceneReader) parse(res *asset.Resource) error {
	for _, path := range r.includeStack {
		if path == res.Path() {
			return r.emitError(res.Path(), 0, "include cycle detected")
		}
	}
	if len(r.includeStack) >= maxIncludeDepth {
		return r.emitError(res.Path(), 0, "max include depth of %d exceeded", maxIncludeDepth)
	}
	r.includeStack = append(r.includeStack, res.Path())
	defer func() { r.includeStack = r.includeStack[:len(r.includeStack)-1] }()

	var lineNum int
	var err error
	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "include":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "include"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [include]", res.Path(), lineNum))
			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "material":
			mat, err := parseMaterial(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			if err = r.sc.AddMaterial(mat); err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		case "sphere":
			sphere, err := r.parseSphere(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			if err = r.sc.AddSphere(sphere); err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		case "camera_eye":
			r.sc.Camera.Eye, err = parseVec3(lineTokens)
		case "camera_look":
			r.sc.Camera.Look, err = parseVec3(lineTokens)
		case "camera_up":
			r.sc.Camera.Up, err = parseVec3(lineTokens)
		case "camera_fov":
			r.sc.Camera.FOV, err = parseFloat32(lineTokens)
		case "light_pos":
			r.sc.Light.Position, err = parseVec3(lineTokens)
		case "light_color":
			r.sc.Light.Color, err = parseVec3(lineTokens)
		case "light_shininess":
			r.sc.Light.Shininess, err = parseFloat32(lineTokens)
		case "sky_horizon":
			r.sc.Sky.Horizon, err = parseVec3(lineTokens)
		case "sky_zenith":
			r.sc.Sky.Zenith, err = parseVec3(lineTokens)
		default:
			r.logger.Warningf(`[%s: %d] skipping unknown directive "%s"`, res.Path(), lineNum, lineTokens[0])
		}

		if err != nil {
			return r.emitError(res.Path(), lineNum, "%s", err.Error())
		}
	}

	if err = scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}

	return nil
}

// Parse material definition. Definitions use the following format:
// material name r g b ambient diffuse specular
// where r, g, b use the 0-255 scale.
func parseMaterial(lineTokens []string) (*scene.Material, error) {
	if len(lineTokens) != 8 {
		return nil, fmt.Errorf(`unsupported syntax for "material"; expected 7 arguments: name r g b ambient diffuse specular; got %d`, len(lineTokens)-1)
	}

	var vals [6]float32
	for index := 2; index < 8; index++ {
		v, err := strconv.ParseFloat(lineTokens[index], 32)
		if err != nil {
			return nil, err
		}
		vals[index-2] = float32(v)
	}

	return scene.NewMaterial(lineTokens[1], types.XYZ(vals[0], vals[1], vals[2]), vals[3], vals[4], vals[5]), nil
}

// Parse sphere definition. Definitions use the following format:
// sphere cX cY cZ radius material_name
func (r *textSceneReader) parseSphere(lineTokens []string) (*scene.Sphere, error) {
	if len(lineTokens) != 6 {
		return nil, fmt.Errorf(`unsupported syntax for "sphere"; expected 5 arguments: cX cY cZ radius material_name; got %d`, len(lineTokens)-1)
	}

	center, err := parseVec3(lineTokens[:4])
	if err != nil {
		return nil, err
	}

	radius, err := strconv.ParseFloat(lineTokens[4], 32)
	if err != nil {
		return nil, err
	}

	mat, exists := r.sc.Material(lineTokens[5])
	if !exists {
		return nil, fmt.Errorf(`undefined material with name "%s"`, lineTokens[5])
	}

	return scene.NewSphere(center, float32(radius), mat), nil
}

// Parse a float32 row.
func parseFloat32(lineTokens []string) (float32, error) {
	if len(lineTokens) != 2 {
		return 0, fmt.Errorf(`unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	val, err := strconv.ParseFloat(lineTokens[1], 32)
	if err != nil {
		return 0, err
	}

	return float32(val), nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) != 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}
