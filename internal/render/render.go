// Package render turns an encoded payload into a scannable QR code in the
// output form the caller asks for: module matrix, in-memory image, PNG bytes,
// or SVG text.
package render

import (
	"errors"
	"image"
	"io"
	"strings"
)

// ECLevel selects how much redundancy the rendered code carries, which is how
// much damage it can sustain and still decode.
type ECLevel int

const (
	ECLow ECLevel = iota
	ECMedium
	ECQuartile
	ECHigh
)

var (
	ErrSizeTooSmall = errors.New("render: size must be positive")
	ErrUnknownLevel = errors.New("render: unknown error-correction level")
)

// ParseECLevel maps a textual level name onto the enum. Matching is
// case-insensitive.
func ParseECLevel(s string) (ECLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return ECLow, nil
	case "medium", "m":
		return ECMedium, nil
	case "quartile", "q":
		return ECQuartile, nil
	case "high", "h":
		return ECHigh, nil
	}
	return 0, ErrUnknownLevel
}

// Options configures a single render call.
type Options struct {
	// Level is the error-correction level.
	Level ECLevel
	// Size is the output edge length in pixels. Ignored by Matrix, which is
	// module-granular.
	Size int
}

// Renderer produces scannable output from an encoded payload. Implementations
// must be safe for concurrent use; errors from the underlying code generator
// (e.g. payload too large for the chosen level) pass through unmodified.
type Renderer interface {
	Matrix(payload string, o Options) ([][]bool, error)
	Image(payload string, o Options) (image.Image, error)
	PNG(payload string, o Options) ([]byte, error)
	SVG(payload string, o Options, w io.Writer) error
}
