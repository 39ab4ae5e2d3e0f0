// Package imaging shrinks payment screenshots before upload. Phone cameras
// produce multi-megabyte images; festival wifi does not appreciate them.
// Downscaling is best-effort: anything that fails leaves the original bytes
// untouched, since the upload itself matters more than its size.
package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultMaxEdge caps the longest side of an uploaded image in pixels.
const DefaultMaxEdge = 1280

const jpegQuality = 85

// Downscale re-encodes data so its longest edge is at most maxEdge pixels.
// PNG input stays PNG; everything else comes back as JPEG. Input that is
// not a decodable image, or already small enough, is returned unchanged
// with its best-guess content type.
func Downscale(data []byte, maxEdge int) (out []byte, contentType string, err error) {
	if maxEdge <= 0 {
		maxEdge = DefaultMaxEdge
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, "application/octet-stream", nil
	}

	ct := "image/jpeg"
	if format == "png" {
		ct = "image/png"
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxEdge {
		return data, ct, nil
	}

	scale := float64(maxEdge) / float64(longest)
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if format == "png" {
		err = png.Encode(&buf, dst)
	} else {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return data, ct, err
	}
	return buf.Bytes(), ct, nil
}
