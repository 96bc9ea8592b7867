package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "WIFI:T:WPA;S:GuestNet;P:letmein123;;"

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestMatrix(t *testing.T) {
	var r QRRenderer
	m, err := r.Matrix(payload, Options{Level: ECMedium})
	require.NoError(t, err)
	require.NotEmpty(t, m)
	for _, row := range m {
		assert.Len(t, row, len(m), "matrix must be square")
	}

	again, err := r.Matrix(payload, Options{Level: ECMedium})
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestPNG(t *testing.T) {
	var r QRRenderer
	png, err := r.PNG(payload, Options{Level: ECMedium, Size: 256})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output must be a PNG")
}

func TestImage(t *testing.T) {
	var r QRRenderer
	img, err := r.Image(payload, Options{Level: ECLow, Size: 128})
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 128, bounds.Dx())
	assert.Equal(t, 128, bounds.Dy())
}

func TestSVG(t *testing.T) {
	var r QRRenderer
	var buf bytes.Buffer
	err := r.SVG(payload, Options{Level: ECHigh, Size: 300}, &buf)
	require.NoError(t, err)
	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"), "must start with an svg element")
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `width="300"`)
	assert.Contains(t, svg, `fill="#000000"`)
}

func TestSizeValidation(t *testing.T) {
	var r QRRenderer
	_, err := r.PNG(payload, Options{Level: ECMedium, Size: 0})
	assert.ErrorIs(t, err, ErrSizeTooSmall)

	_, err = r.Image(payload, Options{Level: ECMedium, Size: -1})
	assert.ErrorIs(t, err, ErrSizeTooSmall)

	err = r.SVG(payload, Options{Level: ECMedium, Size: 0}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrSizeTooSmall)
}

func TestUnknownLevel(t *testing.T) {
	var r QRRenderer
	_, err := r.Matrix(payload, Options{Level: ECLevel(9)})
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestGeneratorErrorsPassThrough(t *testing.T) {
	// QR capacity tops out under 3KB; the generator must reject this and the
	// error must reach the caller as-is.
	var r QRRenderer
	huge := strings.Repeat("x", 4000)
	_, err := r.PNG(huge, Options{Level: ECHigh, Size: 256})
	assert.Error(t, err)
}

func TestParseECLevel(t *testing.T) {
	for in, want := range map[string]ECLevel{
		"low":      ECLow,
		"M":        ECMedium,
		"quartile": ECQuartile,
		" High ":   ECHigh,
	} {
		got, err := ParseECLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseECLevel("ultra")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
