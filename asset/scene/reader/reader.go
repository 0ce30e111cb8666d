package reader

import (
	"fmt"

	"github.com/MrTraan/rtv1/asset"
	"github.com/MrTraan/rtv1/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or http(s) URL. The reader is selected by
// the file extension: ".scene" for text scenes and ".zip" for compiled ones.
func ReadScene(filename string) (*scene.Scene, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	reader, err := readerFor(res)
	if err != nil {
		return nil, err
	}
	return reader.Read(res)
}

func readerFor(res *asset.Resource) (Reader, error) {
	switch res.Ext() {
	case ".scene":
		return newTextSceneReader(), nil
	case ".zip":
		return newZipSceneReader(), nil
	}
	return nil, fmt.Errorf("readScene: unsupported file format %q", res.Ext())
}
