package renderer

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported output image formats.
type ImageFormat uint8

const (
	PNG ImageFormat = iota
	BMP
	TIFF
)

var imageFormatNames = map[ImageFormat]string{
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
}

func (f ImageFormat) String() string {
	if name, ok := imageFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ImageFormat(%d)", uint8(f))
}

// Detect the image format from a file extension.
func FormatFromFilename(filename string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// Encode the frame buffer contents as an image. Rows are written top to
// bottom.
func EncodeFrameBuffer(w io.Writer, fb *FrameBuffer, format ImageFormat) error {
	img := fb.Image()
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return ErrUnsupportedFormat
}

// Write the frame buffer to a file. The image format is selected by the
// file extension.
func SaveFrameBuffer(filename string, fb *FrameBuffer) error {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = EncodeFrameBuffer(f, fb, format)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
