// Package imaging normalises uploaded item photos.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// MIME types accepted and produced.
const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
)

// Defaults applied by Normalize when Options leave a field zero.
const (
	DefaultMaxDimension = 1024
	DefaultMaxBytes     = 8 << 20
	JPEGQuality         = 85
)

// ThumbnailDimension bounds the longest side of a thumbnail.
const ThumbnailDimension = 128

// ErrTooLarge is returned when the upload exceeds Options.MaxBytes.
var ErrTooLarge = errors.New("image too large")

// ErrUnsupported is returned for anything other than JPEG or PNG.
var ErrUnsupported = errors.New("unsupported image format")

// Options bounds a normalised photo.
type Options struct {
	MaxDimension int
	MaxBytes     int64
}

// Photo is a normalised image.
type Photo struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// Normalize validates the upload by sniffing its bytes, downscales it so
// neither side exceeds the maximum dimension and re-encodes it. PNG input
// stays PNG so transparency survives; JPEG input is recompressed.
func Normalize(r io.Reader, opts Options) (Photo, error) {
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = DefaultMaxDimension
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, opts.MaxBytes+1))
	if err != nil {
		return Photo{}, fmt.Errorf("reading image data: %w", err)
	}
	if int64(len(data)) > opts.MaxBytes {
		return Photo{}, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, opts.MaxBytes)
	}

	mime := http.DetectContentType(data)
	var img image.Image
	switch mime {
	case MIMEJPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case MIMEPNG:
		img, err = png.Decode(bytes.NewReader(data))
	default:
		return Photo{}, fmt.Errorf("%w: %s (only JPEG and PNG accepted)", ErrUnsupported, mime)
	}
	if err != nil {
		return Photo{}, fmt.Errorf("decoding image: %w", err)
	}

	return encode(downscale(img, opts.MaxDimension), mime)
}

// Thumbnail re-encodes a stored photo with its longest side bounded by
// ThumbnailDimension.
func Thumbnail(data []byte, mime string) (Photo, error) {
	var (
		img image.Image
		err error
	)
	switch mime {
	case MIMEJPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case MIMEPNG:
		img, err = png.Decode(bytes.NewReader(data))
	default:
		return Photo{}, fmt.Errorf("%w: %s", ErrUnsupported, mime)
	}
	if err != nil {
		return Photo{}, fmt.Errorf("decoding image: %w", err)
	}
	return encode(downscale(img, ThumbnailDimension), mime)
}

func encode(img image.Image, mime string) (Photo, error) {
	var buf bytes.Buffer
	switch mime {
	case MIMEPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return Photo{}, fmt.Errorf("encoding PNG: %w", err)
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return Photo{}, fmt.Errorf("encoding JPEG: %w", err)
		}
	}
	b := img.Bounds()
	return Photo{Data: buf.Bytes(), MIME: mime, Width: b.Dx(), Height: b.Dy()}, nil
}

// downscale resizes the image so neither dimension exceeds maxDim,
// preserving aspect ratio. Smaller images are returned unchanged.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := maxDim, maxDim
	if w > h {
		newH = max(1, h*maxDim/w)
	} else {
		newW = max(1, w*maxDim/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
