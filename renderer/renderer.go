package renderer

import (
	"fmt"
	"time"

	"github.com/MrTraan/rtv1/log"
	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/tracer"
	"github.com/MrTraan/rtv1/tracer/cpu"
	"github.com/MrTraan/rtv1/tracer/lcg"
)

type Renderer interface {
	// Render frame.
	Render() error

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats

	// Get the frame buffer with the last rendered frame.
	FrameBuffer() *FrameBuffer
}

// A function that creates a tracer with the given id.
type TracerFactory func(id string) tracer.Tracer

// A renderer that splits each frame into blocks and renders them in
// parallel using a pool of tracers.
type defaultRenderer struct {
	logger log.Logger

	// Render options.
	options Options

	// The scene to render and the camera generated from its parameters.
	scene  *scene.Scene
	camera *scene.Camera

	// The block scheduler and the blocks assigned by the last render.
	scheduler        tracer.BlockScheduler
	blockAssignments []tracer.Block

	// The attached tracers.
	tracers []tracer.Tracer

	// The shared frame buffer that tracers render into.
	frameBuffer *FrameBuffer

	// Channels used by tracers to report block completion.
	doneChan chan uint32
	errChan  chan error

	// Stats for last rendered frame.
	stats FrameStats

	// Overrides the wall clock seed source.
	seedFn func() uint32
}

// Create a new renderer using one cpu tracer per worker.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	return NewWithTracers(sc, scheduler, opts, cpu.NewTracer)
}

// Create a new renderer that uses factory to create one tracer per worker.
func NewWithTracers(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options, factory TracerFactory) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	numWorkers := opts.workerCount()
	r := &defaultRenderer{
		logger:      log.New("renderer"),
		options:     opts,
		scene:       sc,
		camera:      scene.NewCamera(sc.Camera, float32(opts.FrameW)/float32(opts.FrameH)),
		scheduler:   scheduler,
		frameBuffer: NewFrameBuffer(opts.FrameW, opts.FrameH),
		doneChan:    make(chan uint32, numWorkers),
		errChan:     make(chan error, numWorkers),
		seedFn:      lcg.TimeSeed,
	}

	for index := 0; index < numWorkers; index++ {
		tr := factory(fmt.Sprintf("worker-%d", index))
		if tr == nil {
			continue
		}
		err := tr.Setup(opts.FrameW, opts.FrameH, r.frameBuffer.Pix, r.scene, r.camera)
		if err != nil {
			r.logger.Warningf("skipping tracer %s due to setup error: %s", tr.Id(), err.Error())
			tr.Close()
			continue
		}
		r.tracers = append(r.tracers, tr)
	}

	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	r.logger.Infof("attached %d tracers for a %dx%d frame", len(r.tracers), opts.FrameW, opts.FrameH)
	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Get the frame buffer.
func (r *defaultRenderer) FrameBuffer() *FrameBuffer {
	return r.frameBuffer
}

// Render frame.
func (r *defaultRenderer) Render() error {
	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	start := time.Now()
	seed := r.options.Seed
	if seed == 0 {
		seed = r.seedFn()
	}

	r.blockAssignments = r.scheduler.Schedule(len(r.tracers), r.options.FrameH)
	r.stats = FrameStats{
		Tracers: make([]TracerStat, len(r.tracers)),
		Seed:    seed,
	}

	pending := 0
	for index, block := range r.blockAssignments {
		tr := r.tracers[index]
		r.stats.Tracers[index] = TracerStat{
			Id:           tr.Id(),
			BlockY:       block.Y,
			BlockH:       block.H,
			FramePercent: 100.0 * float32(block.H) / float32(r.options.FrameH),
		}

		// More tracers than rows
		if block.H == 0 {
			continue
		}

		tr.Enqueue(tracer.BlockRequest{
			BlockY:          block.Y,
			BlockH:          block.H,
			SamplesPerPixel: r.options.SamplesPerPixel,
			TMin:            r.options.TMin,
			Seed:            lcg.Derive(seed, index),
			DoneChan:        r.doneChan,
			ErrChan:         r.errChan,
		})
		pending++
	}

	// Wait for all tracers to finish before reporting any error so no
	// tracer is still writing to the frame buffer.
	var err error
	for ; pending > 0; pending-- {
		select {
		case <-r.doneChan:
		case blockErr := <-r.errChan:
			if err == nil {
				err = blockErr
			}
		}
	}
	if err != nil {
		return err
	}

	for index, tr := range r.tracers {
		if r.stats.Tracers[index].BlockH == 0 {
			continue
		}
		trStats := tr.Stats()
		r.stats.Tracers[index].Rays = trStats.Rays
		r.stats.Tracers[index].RenderTime = trStats.RenderTime
	}
	r.stats.RenderTime = time.Since(start)

	r.logger.Debugf("rendered frame in %d ms", r.stats.RenderTime.Nanoseconds()/1000000)
	return nil
}
