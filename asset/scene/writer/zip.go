package writer

import (
	"archive/zip"
	"encoding/gob"
	"io"
	"time"

	compiled "github.com/MrTraan/rtv1/asset/scene"
	"github.com/MrTraan/rtv1/log"
	"github.com/MrTraan/rtv1/scene"
)

const (
	dataFile = "scene.bin"
)

type zipSceneWriter struct {
	logger log.Logger
	out    io.Writer
}

// Create a new zip scene writer
func newZipSceneWriter(out io.Writer) *zipSceneWriter {
	return &zipSceneWriter{
		logger: log.New("zip scene writer"),
		out:    out,
	}
}

// Write compiled scene definition to zip file.
func (w *zipSceneWriter) Write(sc *scene.Scene) error {
	start := time.Now()

	cs, err := compiled.Compile(sc)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w.out)

	// Write scene data
	cw, err := zw.Create(dataFile)
	if err != nil {
		zw.Close()
		return err
	}
	err = gob.NewEncoder(cw).Encode(cs)
	if err != nil {
		zw.Close()
		return err
	}

	if err = zw.Close(); err != nil {
		return err
	}

	w.logger.Noticef("compressed scene in %d ms", time.Since(start).Nanoseconds()/1000000)
	return nil
}
