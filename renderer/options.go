package renderer

import "github.com/MrTraan/rtv1/scene"

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of parallel workers; each one renders a horizontal band of the
	// frame. Values <= 0 select a single worker.
	NumWorkers int

	// Number of jittered samples per pixel.
	SamplesPerPixel uint32

	// Minimum ray parameter for accepting a hit.
	TMin float32

	// Base seed for the per-worker random sources. A zero value seeds from
	// the wall clock on every render.
	Seed uint32
}

// Get the default render options: a single worker rendering a 1200x600
// frame with 20 samples per pixel.
func DefaultOptions() Options {
	return Options{
		FrameW:          1200,
		FrameH:          600,
		NumWorkers:      1,
		SamplesPerPixel: 20,
		TMin:            scene.DefaultTMin,
	}
}

// Check that the options describe a renderable frame.
func (o Options) Validate() error {
	if o.FrameW == 0 || o.FrameH == 0 {
		return ErrInvalidFrameSize
	}
	if o.SamplesPerPixel == 0 {
		return ErrInvalidSampleCount
	}
	return nil
}

func (o Options) workerCount() int {
	if o.NumWorkers <= 0 {
		return 1
	}
	return o.NumWorkers
}
