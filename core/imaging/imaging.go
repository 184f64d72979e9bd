// Package imaging normalizes uploaded catalog images before they are published.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// DefaultMaxDimension is used when no limit is configured.
const DefaultMaxDimension = 1600

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// Result contains the processed image data.
type Result struct {
	Data []byte
	MIME string
	Ext  string
}

// Process validates the format by sniffing bytes, downscales images larger than maxDim
// and re-encodes them. PNG input stays PNG to keep transparency; JPEG and WebP become JPEG.
func Process(data []byte, maxDim int) (*Result, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	detected := http.DetectContentType(data)

	var (
		img image.Image
		err error
	)
	switch detected {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported image format: %s (only JPEG, PNG and WebP accepted)", detected)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, maxDim)

	var buf bytes.Buffer
	if detected == "image/png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding PNG: %w", err)
		}
		return &Result{Data: buf.Bytes(), MIME: "image/png", Ext: "png"}, nil
	}

	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return &Result{Data: buf.Bytes(), MIME: "image/jpeg", Ext: "jpg"}, nil
}

// downscale resizes the image so neither dimension exceeds maxDim, preserving aspect ratio.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	newW = max(newW, 1)
	newH = max(newH, 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
