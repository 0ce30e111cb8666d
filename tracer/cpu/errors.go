package cpu

import "errors"

var (
	ErrNotSetup            = errors.New("cpu tracer: tracer has not been set up")
	ErrMissingScene        = errors.New("cpu tracer: no scene or camera supplied")
	ErrFrameBufferTooSmall = errors.New("cpu tracer: frame buffer too small for frame dimensions")
)
