package render

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var font *truetype.Font

// init sets up the fonts we want to use.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Font returns the font we use for labels.
func Font() *truetype.Font {
	return font
}

// DrawString writes a string to the given context with its top left corner at (x, y).
func DrawString(dc *gg.Context, text string, x, y float64, c color.Color, size float64) {
	dc.SetFontFace(truetype.NewFace(Font(), &truetype.Options{Size: size}))
	dc.SetColor(c)
	dc.DrawStringAnchored(text, x, y, 0, 1)
}

// DrawSegment strokes a solid line between two pixel positions.
func DrawSegment(dc *gg.Context, x1, y1, x2, y2 float64, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

// DrawDashedSegment strokes a dashed line between two pixel positions.
func DrawDashedSegment(dc *gg.Context, x1, y1, x2, y2 float64, c color.Color, width float64) {
	dc.SetDash(6, 4)
	DrawSegment(dc, x1, y1, x2, y2, c, width)
	dc.SetDash()
}

// DrawCross draws an x shaped marker centered on a pixel position.
func DrawCross(dc *gg.Context, x, y, size float64, c color.Color, width float64) {
	DrawSegment(dc, x-size, y-size, x+size, y+size, c, width)
	DrawSegment(dc, x-size, y+size, x+size, y-size, c, width)
}

// DrawArc strokes the arc of a circle centered on a pixel position, from angle1 to angle2 in
// radians.
func DrawArc(dc *gg.Context, x, y, radius, angle1, angle2 float64, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.NewSubPath()
	dc.DrawArc(x, y, radius, angle1, angle2)
	dc.Stroke()
}
