package renderer

import "image"

// A FrameBuffer stores W*H RGBA8 pixels row by row. Row 0 is the bottom row
// of the image.
type FrameBuffer struct {
	W   uint32
	H   uint32
	Pix []uint8
}

// Allocate a zeroed frame buffer.
func NewFrameBuffer(frameW, frameH uint32) *FrameBuffer {
	return &FrameBuffer{
		W:   frameW,
		H:   frameH,
		Pix: make([]uint8, uint64(frameW)*uint64(frameH)*4),
	}
}

// Get the RGBA components of the pixel at (x, y) where y counts rows from
// the bottom of the image.
func (fb *FrameBuffer) Pixel(x, y uint32) [4]uint8 {
	offset := (uint64(y)*uint64(fb.W) + uint64(x)) * 4
	return [4]uint8{fb.Pix[offset], fb.Pix[offset+1], fb.Pix[offset+2], fb.Pix[offset+3]}
}

// Get a copy of the frame as an image whose first row is the top of the
// frame.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(fb.W), int(fb.H)))
	stride := int(fb.W) * 4
	for y := 0; y < int(fb.H); y++ {
		srcRow := fb.Pix[y*stride : (y+1)*stride]
		dstY := int(fb.H) - 1 - y
		copy(img.Pix[dstY*img.Stride:dstY*img.Stride+stride], srcRow)
	}
	return img
}
