package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The block assigned to the tracer and the percentage of total frame
	// area it represents.
	BlockY       uint32
	BlockH       uint32
	FramePercent float32

	// The number of rays traced for the block.
	Rays uint64

	// Render time for assigned block
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// The base seed used for the frame.
	Seed uint32

	// Total render time for entire frame.
	RenderTime time.Duration
}

// Get the total number of rays traced for the frame.
func (s FrameStats) Rays() uint64 {
	var rays uint64
	for _, stat := range s.Tracers {
		rays += stat.Rays
	}
	return rays
}
