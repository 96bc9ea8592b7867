package render

import (
	"bytes"
	"fmt"
	"image"
	"io"

	qrcode "github.com/skip2/go-qrcode"
)

// QRRenderer renders payloads as QR codes via github.com/skip2/go-qrcode.
// The zero value is ready to use.
type QRRenderer struct{}

var _ Renderer = QRRenderer{}

func recoveryLevel(l ECLevel) (qrcode.RecoveryLevel, error) {
	switch l {
	case ECLow:
		return qrcode.Low, nil
	case ECMedium:
		return qrcode.Medium, nil
	case ECQuartile:
		// skip2 has no quartile constant; High (30%) is the nearest,
		// stronger, level.
		return qrcode.High, nil
	case ECHigh:
		return qrcode.Highest, nil
	}
	return 0, ErrUnknownLevel
}

func (QRRenderer) newCode(payload string, o Options) (*qrcode.QRCode, error) {
	level, err := recoveryLevel(o.Level)
	if err != nil {
		return nil, err
	}
	return qrcode.New(payload, level)
}

// Matrix returns the code as rows of modules, true meaning dark. The quiet
// zone border is included.
func (r QRRenderer) Matrix(payload string, o Options) ([][]bool, error) {
	qr, err := r.newCode(payload, o)
	if err != nil {
		return nil, err
	}
	return qr.Bitmap(), nil
}

// Image returns the code rasterized to Size x Size pixels.
func (r QRRenderer) Image(payload string, o Options) (image.Image, error) {
	if o.Size <= 0 {
		return nil, ErrSizeTooSmall
	}
	qr, err := r.newCode(payload, o)
	if err != nil {
		return nil, err
	}
	return qr.Image(o.Size), nil
}

// PNG returns the code as a Size x Size PNG.
func (r QRRenderer) PNG(payload string, o Options) ([]byte, error) {
	if o.Size <= 0 {
		return nil, ErrSizeTooSmall
	}
	qr, err := r.newCode(payload, o)
	if err != nil {
		return nil, err
	}
	return qr.PNG(o.Size)
}

// SVG writes the code as an SVG document scaled to Size x Size. Modules are
// emitted as one rect per horizontal dark run on a white background.
func (r QRRenderer) SVG(payload string, o Options, w io.Writer) error {
	if o.Size <= 0 {
		return ErrSizeTooSmall
	}
	m, err := r.Matrix(payload, o)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	n := len(m)
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		o.Size, o.Size, n, n)
	buf.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)
	for y, row := range m {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="1" fill="#000000"/>`, start, y, x-start)
		}
	}
	buf.WriteString(`</svg>`)
	_, err = w.Write(buf.Bytes())
	return err
}
