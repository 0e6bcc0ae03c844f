// Package placeholder paints the cards shown in place of a texture while its
// image is still loading.
package placeholder

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"
)

const fontName = "goregular"

var fontData = draw2d.FontData{
	Name:   fontName,
	Family: draw2d.FontFamilySans,
	Style:  draw2d.FontStyleNormal,
}

// FontCache resolves every font to the ones stored, falling back to Go
// Regular.
type FontCache map[string]*truetype.Font

// Load implements draw2d.FontCache.
func (f FontCache) Load(fd draw2d.FontData) (*truetype.Font, error) {
	font, ok := f[fd.Name]
	if !ok {
		return f[fontName], nil
	}
	return font, nil
}

// Store implements draw2d.FontCache.
func (f *FontCache) Store(fd draw2d.FontData, tf *truetype.Font) {
	(*f)[fd.Name] = tf
}

var defaultFont *truetype.Font

func loadFont() (*truetype.Font, error) {
	if defaultFont != nil {
		return defaultFont, nil
	}
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("placeholder: parse font: %w", err)
	}
	defaultFont = font
	return font, nil
}

// Render paints a w x h card: a vertical gradient starting at base with
// label centred on it.
func Render(w, h int, label string, base colorful.Color) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("placeholder: bad size %dx%d", w, h)
	}
	font, err := loadFont()
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gradient(img, base)

	fontCache := &FontCache{}
	fontCache.Store(fontData, font)

	gc := draw2dimg.NewGraphicContext(img)
	gc.FontCache = fontCache

	// frame
	inset := math.Min(float64(w), float64(h)) * 0.05
	gc.SetStrokeColor(color.RGBA{255, 255, 255, 96})
	gc.SetLineWidth(math.Max(1, inset/8))
	draw2dkit.RoundedRectangle(gc, inset, inset, float64(w)-inset, float64(h)-inset, inset, inset)
	gc.Stroke()

	if label == "" {
		return img, nil
	}
	gc.SetFontData(fontData)
	gc.SetFont(font)
	gc.SetFontSize(math.Max(8, float64(h)/20))
	gc.SetFillColor(color.White)
	left, top, right, bottom := gc.GetStringBounds(label)
	x := (float64(w)-(right-left))/2 - left
	y := (float64(h)-(bottom-top))/2 - top
	gc.FillStringAt(label, x, y)
	return img, nil
}

// gradient fills img from base at the top to a darker, hue shifted base at
// the bottom.
func gradient(img *image.RGBA, base colorful.Color) {
	hh, cc, ll := base.Hcl()
	end := colorful.Hcl(math.Mod(hh+60, 360), cc, ll*0.6).Clamped()

	b := img.Bounds()
	rows := b.Dy()
	for y := 0; y < rows; y++ {
		t := 0.0
		if rows > 1 {
			t = float64(y) / float64(rows-1)
		}
		r, g, bl := base.BlendHcl(end, t).Clamped().RGB255()
		off := y * img.Stride
		for x := 0; x < b.Dx(); x++ {
			i := off + x*4
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = bl
			img.Pix[i+3] = 255
		}
	}
}
