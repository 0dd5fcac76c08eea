// Package qrx renders otpauth provisioning URIs to scannable images.
// Rendering stays behind a small port so the core never depends on a
// particular encoder.
package qrx

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Renderer produces a scannable image for a provisioning URI.
type Renderer interface {
	Render(uri string) ([]byte, error)
}

// PNGRenderer renders QR codes as PNG bytes.
type PNGRenderer struct {
	size int
}

// NewPNGRenderer returns a renderer producing 300x300 pixel images,
// matching what enrollment apps comfortably scan.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{size: 300}
}

func (r *PNGRenderer) Render(uri string) ([]byte, error) {
	png, err := qrcode.Encode(uri, qrcode.Medium, r.size)
	if err != nil {
		return nil, fmt.Errorf("error rendering qr code: %w", err)
	}
	return png, nil
}
