package qrx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGRenderer_ProducesPNG(t *testing.T) {
	r := NewPNGRenderer()

	img, err := r.Render("otpauth://totp/pswmgr(alice)?secret=ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	require.NoError(t, err)
	require.NotEmpty(t, img)

	// PNG signature.
	assert.True(t, bytes.HasPrefix(img, []byte("\x89PNG\r\n\x1a\n")))
}

func TestPNGRenderer_EmptyURIFails(t *testing.T) {
	r := NewPNGRenderer()

	_, err := r.Render("")
	assert.Error(t, err)
}
