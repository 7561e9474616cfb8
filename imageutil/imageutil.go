// Package imageutil normalizes reference images before they are sent
// to generative backends: data-URL decoding, downscaling to a safe
// pixel limit and JPEG re-encoding.
package imageutil

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
)

// MaxDimension is the largest edge accepted by the generative backends.
const MaxDimension = 1024

const jpegQuality = 80

// ErrNotDataURL is returned for inputs that are not data: URLs. Remote
// URLs are display-only and never uploaded.
var ErrNotDataURL = errors.New("imageutil: not a data URL")

// DecodeDataURL splits a base64 data URL into its MIME type and
// payload.
func DecodeDataURL(url string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(url, "data:") {
		return "", nil, ErrNotDataURL
	}
	header, payload, ok := strings.Cut(url[len("data:"):], ",")
	if !ok {
		return "", nil, fmt.Errorf("imageutil: malformed data URL")
	}
	mimeType = strings.TrimSuffix(header, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("imageutil: decode payload: %w", err)
	}
	return mimeType, data, nil
}

// EncodeDataURL wraps an image payload back into a data URL.
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Normalize decodes a data-URL image, scales it down so neither edge
// exceeds MaxDimension, and re-encodes it as JPEG. Images already
// within the limit are still re-encoded so the backend always receives
// a predictable format.
func Normalize(dataURL string) (mimeType string, data []byte, err error) {
	_, raw, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", nil, fmt.Errorf("imageutil: decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > MaxDimension || h > MaxDimension {
		if w > h {
			h = h * MaxDimension / w
			w = MaxDimension
		} else {
			w = w * MaxDimension / h
			h = MaxDimension
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", nil, fmt.Errorf("imageutil: encode jpeg: %w", err)
	}
	return "image/jpeg", buf.Bytes(), nil
}
