package renderer

import "errors"

var (
	ErrNoTracers          = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined    = errors.New("renderer: no scene defined")
	ErrInvalidFrameSize   = errors.New("renderer: frame width and height must be positive")
	ErrInvalidSampleCount = errors.New("renderer: samples per pixel must be positive")
	ErrUnsupportedFormat  = errors.New("renderer: unsupported image format")
)
