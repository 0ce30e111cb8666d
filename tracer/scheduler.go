package tracer

// A horizontal band of frame rows [Y, Y+H).
type Block struct {
	Y uint32
	H uint32
}

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split the frame rows into one block per tracer. The returned blocks
	// are contiguous, do not overlap and together cover [0, frameH).
	Schedule(numTracers int, frameH uint32) []Block
}

// The uniform scheduler splits the frame into equal bands; when the frame
// height is not a multiple of the tracer count the bands differ by at most
// one row.
type uniformScheduler struct{}

// Create a new uniform scheduler instance.
func UniformScheduler() BlockScheduler {
	return uniformScheduler{}
}

// Assign rows [i*frameH/n, (i+1)*frameH/n) to tracer i. A tracer count of
// zero or less is treated as a single tracer. If there are more tracers
// than rows some blocks will be empty.
func (uniformScheduler) Schedule(numTracers int, frameH uint32) []Block {
	if numTracers <= 0 {
		numTracers = 1
	}

	n := uint64(numTracers)
	blocks := make([]Block, numTracers)
	for i := range blocks {
		startY := uint64(i) * uint64(frameH) / n
		endY := uint64(i+1) * uint64(frameH) / n
		blocks[i] = Block{Y: uint32(startY), H: uint32(endY - startY)}
	}

	return blocks
}
