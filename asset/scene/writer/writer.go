package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MrTraan/rtv1/scene"
)

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition
	Write(*scene.Scene) error
}

// Write scene to a file. A ".zip" extension selects the compiled binary
// format and a ".scene" extension the text format.
func WriteScene(sc *scene.Scene, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	var w Writer
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip":
		w = newZipSceneWriter(f)
	case ".scene":
		w = newTextSceneWriter(f)
	default:
		f.Close()
		os.Remove(filename)
		return fmt.Errorf("writeScene: unsupported file format %q", filepath.Ext(filename))
	}

	err = w.Write(sc)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
