package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeGrayscale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	src.SetGray(0, 0, color.Gray{Y: 200})
	src.SetGray(2, 1, color.Gray{Y: 17})

	buf, err := Decode(encodePNG(t, src))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if buf.Width != 3 || buf.Height != 2 || buf.Channels != 1 {
		t.Fatalf("unexpected dimensions: %dx%dx%d", buf.Width, buf.Height, buf.Channels)
	}
	if len(buf.Data) != 6 {
		t.Fatalf("expected 6 bytes, got %d", len(buf.Data))
	}
	if buf.Data[0] != 200 {
		t.Fatalf("expected first pixel 200, got %d", buf.Data[0])
	}
	if buf.Data[5] != 17 {
		t.Fatalf("expected last pixel 17, got %d", buf.Data[5])
	}
}

func TestDecodeJPEGIsThreeChannels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			src.Set(x, y, color.RGBA{R: 250, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	decoded, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Channels != 3 {
		t.Fatalf("expected 3 channels for jpeg, got %d", decoded.Channels)
	}
	if len(decoded.Data) != 4*4*3 {
		t.Fatalf("expected %d bytes, got %d", 4*4*3, len(decoded.Data))
	}
	// jpeg is lossy; the red channel should still dominate
	if decoded.Data[0] < 200 || decoded.Data[1] > 60 {
		t.Fatalf("unexpected first pixel: %v", decoded.Data[:3])
	}
}

func TestDecodeColorPNGIsFourChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	decoded, err := Decode(encodePNG(t, src))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Channels != 4 {
		t.Fatalf("expected 4 channels, got %d", decoded.Channels)
	}
	if len(decoded.Data) != 2*2*4 {
		t.Fatalf("expected %d bytes, got %d", 2*2*4, len(decoded.Data))
	}
	if decoded.Data[3] != 255 {
		t.Fatalf("expected opaque alpha, got %d", decoded.Data[3])
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Fatal("expected error for non-image payload")
	}
}
