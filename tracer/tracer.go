package tracer

import (
	"time"

	"github.com/MrTraan/rtv1/scene"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The number of jittered rays per traced pixel.
	SamplesPerPixel uint32

	// Hits closer than TMin along a ray are ignored.
	TMin float32

	// A seed for the tracer's random number generator.
	Seed uint32

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block
	BlockY uint32
	BlockH uint32

	// The number of rays traced for this block.
	Rays uint64

	// The time for rendering this block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Setup the tracer. The frame buffer holds frameW*frameH RGBA8 pixels
	// and is shared by all tracers; each tracer only writes the rows of the
	// blocks it is asked to render. The scene and camera are never modified.
	Setup(frameW, frameH uint32, frameBuffer []uint8, sc *scene.Scene, camera *scene.Camera) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last frame statistics.
	Stats() *Stats
}
