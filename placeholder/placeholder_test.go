package placeholder

import (
	"bytes"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	base, err := colorful.Hex("#3b4a6b")
	require.NoError(t, err)

	img, err := Render(130, 170, "", base)
	require.NoError(t, err)
	assert.Equal(t, 130, img.Bounds().Dx())
	assert.Equal(t, 170, img.Bounds().Dy())

	r, g, b := base.RGB255()
	top := img.RGBAAt(0, 0)
	assert.Equal(t, [4]uint8{r, g, b, 255}, [4]uint8{top.R, top.G, top.B, top.A})

	bottom := img.RGBAAt(0, 169)
	assert.NotEqual(t, top, bottom)
	assert.Equal(t, uint8(255), bottom.A)
}

func TestRenderLabel(t *testing.T) {
	base := colorful.Color{R: 0.2, G: 0.3, B: 0.4}
	plain, err := Render(200, 200, "", base)
	require.NoError(t, err)
	labeled, err := Render(200, 200, "loading", base)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(plain.Pix, labeled.Pix))
}

func TestRenderBadSize(t *testing.T) {
	_, err := Render(0, 10, "x", colorful.Color{})
	assert.Error(t, err)
}

func TestFontCacheFallback(t *testing.T) {
	font, err := loadFont()
	require.NoError(t, err)

	fc := &FontCache{}
	fc.Store(fontData, font)
	got, err := fc.Load(fontData)
	require.NoError(t, err)
	assert.Same(t, font, got)

	other := fontData
	other.Name = "roboto"
	got, err = fc.Load(other)
	require.NoError(t, err)
	assert.Same(t, font, got)
}
