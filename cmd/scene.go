package cmd

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/MrTraan/rtv1/asset/scene/reader"
	"github.com/MrTraan/rtv1/asset/scene/writer"
	"github.com/MrTraan/rtv1/scene"
)

// Compile text scenes to binary format.
func CompileScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(sceneFile, ".scene") {
			logger.Warningf("skipping unsupported file %s", sceneFile)
			continue
		}

		logger.Noticef("parsing and compiling scene: %s", sceneFile)
		sc, err := reader.ReadScene(sceneFile)
		if err != nil {
			return err
		}

		// Display compiled scene info
		logger.Noticef("scene information:\n%s", sc.Stats())

		zipFile := strings.TrimSuffix(filepath.Base(sceneFile), ".scene") + ".zip"
		if !strings.Contains(sceneFile, "://") {
			zipFile = strings.TrimSuffix(sceneFile, ".scene") + ".zip"
		}
		if err = writer.WriteScene(sc, zipFile); err != nil {
			return err
		}
		logger.Noticef("wrote compiled scene to %s", zipFile)
	}

	return nil
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())
	return nil
}

// Write the built-in scene to a file.
func DumpDefaultScene(ctx *cli.Context) error {
	setupLogging(ctx)

	outFile := ctx.String("out")
	if err := writer.WriteScene(scene.DefaultScene(), outFile); err != nil {
		return err
	}

	logger.Noticef("wrote built-in scene to %s", outFile)
	return nil
}
