package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/MrTraan/rtv1/asset/scene/reader"
	"github.com/MrTraan/rtv1/display"
	"github.com/MrTraan/rtv1/renderer"
	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/tracer"
)

// Render a still frame and write it to an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	start := time.Now()
	if err = r.Render(); err != nil {
		return err
	}
	logger.Noticef("total time: %d ms", time.Since(start).Nanoseconds()/1000000)

	// Display stats
	displayFrameStats(r.Stats())

	imgFile := ctx.String("out")
	start = time.Now()
	if err = renderer.SaveFrameBuffer(imgFile, r.FrameBuffer()); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1000000)

	return nil
}

// Render a frame and present it in a window.
func RenderWindow(ctx *cli.Context) error {
	setupLogging(ctx)

	r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	start := time.Now()
	if err = r.Render(); err != nil {
		return err
	}
	logger.Noticef("total time: %d ms", time.Since(start).Nanoseconds()/1000000)
	displayFrameStats(r.Stats())

	fb := r.FrameBuffer()
	win, err := display.Open("rtv1", fb.W, fb.H)
	if err != nil {
		return err
	}
	defer win.Close()

	return win.Run(fb)
}

// Load scene and setup renderer.
func setupRenderer(ctx *cli.Context) (renderer.Renderer, error) {
	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		NumWorkers:      ctx.Int("threads"),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		TMin:            float32(ctx.Float64("tmin")),
		Seed:            uint32(ctx.Uint("seed")),
	}
	if ctx.Int("width") <= 0 || ctx.Int("height") <= 0 {
		return nil, renderer.ErrInvalidFrameSize
	}
	if ctx.Int("spp") <= 0 {
		return nil, renderer.ErrInvalidSampleCount
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return nil, err
	}

	logger.Infof("scene information:\n%s", sc.Stats())
	return renderer.NewDefault(sc, tracer.UniformScheduler(), opts)
}

// Load the scene passed as an argument or the built-in scene if no
// argument is given.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	switch ctx.NArg() {
	case 0:
		logger.Notice("no scene file specified; using built-in scene")
		return scene.DefaultScene(), nil
	case 1:
		return reader.ReadScene(ctx.Args().First())
	}
	return nil, errors.New("expected at most one scene file argument")
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Block", "% of frame", "Rays", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("[%d, %d)", stat.BlockY, stat.BlockY+stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Rays),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", stats.Rays()), stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics (seed %d)\n%s", stats.Seed, buf.String())
}
