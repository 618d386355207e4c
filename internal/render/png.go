package render

import (
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"
)

// PNG draws into an in-memory gg context and encodes on Finish.
type PNG struct {
	dc *gg.Context
	w  io.Writer
}

func NewPNG(w io.Writer, width, height int) *PNG {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	return &PNG{dc: dc, w: w}
}

func (p *PNG) Clear(c color.RGBA) {
	p.dc.SetColor(c)
	p.dc.Clear()
}

func (p *PNG) Line(x1, y1, x2, y2, width float64, c color.RGBA) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
}

func (p *PNG) FilledCircle(x, y, r float64, c color.RGBA) {
	p.dc.SetColor(c)
	p.dc.DrawCircle(x, y, r)
	p.dc.Fill()
}

func (p *PNG) Arc(x, y, r, start, end, width float64, c color.RGBA) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.NewSubPath()
	p.dc.DrawArc(x, y, r, start, end)
	p.dc.Stroke()
}

func (p *PNG) Text(x, y float64, s string, c color.RGBA) {
	p.dc.SetColor(c)
	p.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

func (p *PNG) Finish() error {
	return p.dc.EncodePNG(p.w)
}
