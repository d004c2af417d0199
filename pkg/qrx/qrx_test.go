package qrx_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/aussiebroadwan/garage/pkg/qrx"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	raw, err := qrx.PNG("http://localhost:8080/v1/maintenance/workshop-submit?token=ABCD-EFGH", qrx.DefaultSize)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, qrx.DefaultSize, img.Bounds().Dx())
	require.Equal(t, qrx.DefaultSize, img.Bounds().Dy())
}

func TestPNG_Invalid(t *testing.T) {
	_, err := qrx.PNG("", qrx.DefaultSize)
	require.ErrorIs(t, err, qrx.ErrEmptyContent)

	_, err = qrx.PNG("x", 10)
	require.ErrorIs(t, err, qrx.ErrSize)

	_, err = qrx.PNG("x", qrx.MaxSize+1)
	require.ErrorIs(t, err, qrx.ErrSize)
}

func TestDataURL(t *testing.T) {
	raw, err := qrx.PNG("hello", qrx.MinSize)
	require.NoError(t, err)

	u := qrx.DataURL(raw)
	require.True(t, strings.HasPrefix(u, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(u, "data:image/png;base64,"))
	require.NoError(t, err)
	require.Equal(t, raw, decoded)
}

func TestRenderer(t *testing.T) {
	raw, err := qrx.Renderer{}.Render("otpauth://totp/garage:ana@example.com?secret=ABC")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, qrx.DefaultSize, img.Bounds().Dx())

	_, err = qrx.Renderer{Size: 1}.Render("x")
	require.ErrorIs(t, err, qrx.ErrSize)
}
