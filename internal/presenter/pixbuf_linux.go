//go:build linux

package presenter

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/godbus/dbus/v5"
)

// imageData is the org.freedesktop.Notifications "image-data" hint:
// a (iiibiiay) struct of raw RGBA pixels.
type imageData struct {
	Width         int32
	Height        int32
	Rowstride     int32
	HasAlpha      bool
	BitsPerSample int32
	Channels      int32
	Data          []byte
}

// loadImageHint decodes an icon file into the image-data hint variant.
func loadImageHint(path string) (dbus.Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return dbus.Variant{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return dbus.Variant{}, fmt.Errorf("failed to decode image: %w", err)
	}

	return dbus.MakeVariant(encodePixbuf(img)), nil
}

// encodePixbuf flattens an image into the 8-bit RGBA layout notification
// servers expect.
func encodePixbuf(img image.Image) imageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	data := make([]byte, 0, width*height*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			data = append(data, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}

	return imageData{
		Width:         int32(width),
		Height:        int32(height),
		Rowstride:     int32(width * 4),
		HasAlpha:      true,
		BitsPerSample: 8,
		Channels:      4,
		Data:          data,
	}
}
