// Package imaging translates uploaded image bytes into the raw pixel buffer
// layout the trainer service expects: row-major, one to four interleaved
// channels, no padding.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// PixelBuffer is a decoded image in the trainer's wire layout. Channels is
// 1 for grayscale, 3 for RGB, 4 for RGBA.
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int
	Data     []byte
}

// Decode parses an uploaded JPEG, PNG or GIF payload into a PixelBuffer.
func Decode(data []byte) (*PixelBuffer, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf := &PixelBuffer{Width: width, Height: height, Channels: 1}
		buf.Data = make([]byte, 0, width*height)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[(y-bounds.Min.Y)*src.Stride:]
			buf.Data = append(buf.Data, row[:width]...)
		}
		return buf, nil
	case *image.YCbCr:
		buf := &PixelBuffer{Width: width, Height: height, Channels: 3}
		buf.Data = make([]byte, 0, width*height*3)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := src.At(x, y).RGBA()
				buf.Data = append(buf.Data, byte(r>>8), byte(g>>8), byte(b>>8))
			}
		}
		return buf, nil
	default:
		buf := &PixelBuffer{Width: width, Height: height, Channels: 4}
		buf.Data = make([]byte, 0, width*height*4)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, a := img.At(x, y).RGBA()
				buf.Data = append(buf.Data, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
			}
		}
		return buf, nil
	}
}
