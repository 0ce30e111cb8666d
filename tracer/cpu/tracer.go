package cpu

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrTraan/rtv1/log"
	"github.com/MrTraan/rtv1/scene"
	"github.com/MrTraan/rtv1/tracer"
	"github.com/MrTraan/rtv1/tracer/lcg"
)

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// The frame this tracer renders into.
	frame atomic.Pointer[Frame]

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *tracer.Stats
}

// Create a new cpu tracer.
func NewTracer(id string) tracer.Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		blockReqChan: make(chan tracer.BlockRequest, 1),
		stats:        &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Attach the tracer to a frame and start its worker.
func (tr *cpuTracer) Setup(frameW, frameH uint32, frameBuffer []uint8, sc *scene.Scene, camera *scene.Camera) error {
	tr.Lock()
	defer tr.Unlock()

	if sc == nil || camera == nil {
		return ErrMissingScene
	}
	if uint64(len(frameBuffer)) < uint64(frameW)*uint64(frameH)*4 {
		return ErrFrameBufferTooSmall
	}

	tr.frame.Store(&Frame{
		W:      frameW,
		H:      frameH,
		Pix:    frameBuffer,
		Scene:  sc,
		Camera: camera,
	})

	if tr.closeChan == nil {
		tr.startWorker()
	}

	tr.logger.Debugf("attached to %dx%d frame", frameW, frameH)
	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	// If the worker is running shut it down
	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close and shutdown channel
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
		tr.wg.Wait()
	}

	tr.frame.Store(nil)
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	tr.Lock()
	running := tr.closeChan != nil
	tr.Unlock()

	if !running {
		tr.logger.Error("received block request while worker is not running")
		blockReq.ErrChan <- ErrNotSetup
		return
	}

	tr.blockReqChan <- blockReq
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	// Worker already running
	if tr.closeChan != nil {
		return
	}

	tr.closeChan = make(chan struct{})
	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var blockReq tracer.BlockRequest
		close(readyChan)
		for {
			select {
			case blockReq = <-tr.blockReqChan:
				startTime := time.Now()
				rays, err := tr.renderBlock(tr.frame.Load(), &blockReq)
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}

				// Update stats
				tr.stats.BlockY = blockReq.BlockY
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.Rays = rays
				tr.stats.RenderTime = time.Since(startTime)

				blockReq.DoneChan <- blockReq.BlockH
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Render block using a random source seeded from the request.
func (tr *cpuTracer) renderBlock(frame *Frame, blockReq *tracer.BlockRequest) (uint64, error) {
	if frame == nil {
		return 0, ErrNotSetup
	}

	tr.logger.Debugf("rendering rows [%d, %d) with %d spp", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, blockReq.SamplesPerPixel)
	return RenderBlock(frame, blockReq.BlockY, blockReq.BlockH, blockReq.SamplesPerPixel, blockReq.TMin, lcg.New(blockReq.Seed))
}
