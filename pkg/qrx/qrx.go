// Package qrx renders QR codes as PNG images.
package qrx

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 2048
)

var (
	ErrEmptyContent = errors.New("qrx: empty content")
	ErrSize         = fmt.Errorf("qrx: size must be between %d and %d", MinSize, MaxSize)
)

// PNG encodes content as a size x size QR code using medium error
// correction.
func PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size < MinSize || size > MaxSize {
		return nil, ErrSize
	}

	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrx: encode: %w", err)
	}
	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qrx: scale: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("qrx: png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL wraps a PNG in a data: URL suitable for an <img> src.
func DataURL(img []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)
}

// Renderer renders PNGs at a fixed size.
type Renderer struct {
	Size int
}

func (r Renderer) Render(content string) ([]byte, error) {
	size := r.Size
	if size == 0 {
		size = DefaultSize
	}
	return PNG(content, size)
}
