package record

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/tiff"
)

// Encoder writes one still image in a lossless format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	Ext() string
}

type pngEncoder struct {
	enc png.Encoder
}

func (e pngEncoder) Encode(w io.Writer, img image.Image) error { return e.enc.Encode(w, img) }
func (pngEncoder) Ext() string                                 { return "png" }

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
func (tiffEncoder) Ext() string { return "tiff" }

// NewEncoder returns the encoder for format ("png" or "tiff").
func NewEncoder(format string) (Encoder, error) {
	switch strings.ToLower(format) {
	case "", "png":
		return pngEncoder{enc: png.Encoder{CompressionLevel: png.BestSpeed}}, nil
	case "tif", "tiff":
		return tiffEncoder{}, nil
	}
	return nil, fmt.Errorf("unsupported frame format %q", format)
}

// FileName names frame index of an animation. Indices are zero padded to
// four digits; from 10000 on the number simply grows wider.
func FileName(anim string, index int, ext string) string {
	return fmt.Sprintf("%s_%04d.%s", anim, index, ext)
}
