// Package render draws graph scenes onto a Surface. Two surfaces exist: a
// raster one backed by gg that encodes PNG, and a vector one backed by svgo.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/mosdac/assistant/internal/models"
)

var ErrUnknownFormat = errors.New("unknown render format")

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Surface is the minimal drawing contract the scene needs. Angles are in
// radians, clockwise from the positive x axis.
type Surface interface {
	Clear(c color.RGBA)
	Line(x1, y1, x2, y2, width float64, c color.RGBA)
	FilledCircle(x, y, r float64, c color.RGBA)
	Arc(x, y, r, start, end, width float64, c color.RGBA)
	Text(x, y float64, s string, c color.RGBA)
}

// Canvas is a Surface that can be flushed to its writer.
type Canvas interface {
	Surface
	Finish() error
}

// Size returns the canvas dimensions used for a graph variant.
func Size(variant string) (int, int) {
	if variant == "ai" {
		return 600, 500
	}
	return 600, 600
}

// NewCanvas opens a canvas of the given format writing to w.
func NewCanvas(format Format, w io.Writer, width, height int) (Canvas, error) {
	switch format {
	case FormatPNG:
		return NewPNG(w, width, height), nil
	case FormatSVG:
		return NewSVG(w, width, height), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Render draws g in the given format to w.
func Render(w io.Writer, format Format, g models.Graph) error {
	width, height := Size(g.Variant)
	c, err := NewCanvas(format, w, width, height)
	if err != nil {
		return err
	}
	Draw(c, g)
	if err := c.Finish(); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

var (
	colorBackground = rgb(0xffffff)
	colorFlatEdge   = rgb(0xe5e7eb)
	colorFlatLabel  = rgb(0x6b7280)
	colorEdgeLabel  = rgb(0x374151)
	colorSelected   = rgb(0x1f2937)
	colorScoreRing  = rgb(0x22c55e)
	colorNodeText   = rgb(0xffffff)
	colorFallback   = rgb(0x9ca3af)

	nodeColors = map[models.NodeType]color.RGBA{
		models.NodeMission:         rgb(0x3b82f6),
		models.NodeData:            rgb(0x10b981),
		models.NodeLocation:        rgb(0xf59e0b),
		models.NodeDocument:        rgb(0x8b5cf6),
		models.NodeUserQuery:       rgb(0xef4444),
		models.NodeDataProduct:     rgb(0x10b981),
		models.NodeAPIEndpoint:     rgb(0x8b5cf6),
		models.NodeAIModel:         rgb(0xef4444),
		models.NodeKnowledgeEntity: rgb(0x06b6d4),
	}
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// withAlpha scales c to opacity a in [0,1], keeping it premultiplied.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func nodeColor(t models.NodeType) color.RGBA {
	if c, ok := nodeColors[t]; ok {
		return c
	}
	return colorFallback
}

// Draw paints edges first, then nodes, then the selection outline. Edges
// whose endpoints are missing are skipped. A nil surface draws nothing.
func Draw(s Surface, g models.Graph) {
	if s == nil {
		return
	}

	ai := g.Variant == "ai"
	byID := make(map[string]models.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}

	s.Clear(colorBackground)

	for _, e := range g.Edges {
		from, ok := byID[e.Source]
		if !ok {
			continue
		}
		to, ok := byID[e.Target]
		if !ok {
			continue
		}
		midX, midY := (from.X+to.X)/2, (from.Y+to.Y)/2

		if !ai {
			s.Line(from.X, from.Y, to.X, to.Y, 2, colorFlatEdge)
			s.Text(midX, midY-5, e.Relationship, colorFlatLabel)
			continue
		}

		s.Line(from.X, from.Y, to.X, to.Y, 2+e.Confidence*2, withAlpha(rgb(0x3b82f6), e.Confidence))
		s.FilledCircle(midX, midY, 4, withAlpha(colorScoreRing, e.Confidence))
		s.Text(midX, midY-8, fmt.Sprintf("%s (%.0f%%)", e.Relationship, e.Confidence*100), colorEdgeLabel)
	}

	for _, n := range g.Nodes {
		if !ai {
			s.FilledCircle(n.X, n.Y, 30, nodeColor(n.Type))
			if n.ID == g.Selected {
				s.Arc(n.X, n.Y, 30, 0, 2*math.Pi, 3, colorSelected)
			}
			s.Text(n.X, n.Y+3, n.Label, colorNodeText)
			continue
		}

		s.FilledCircle(n.X, n.Y, 30+n.Score*10, nodeColor(n.Type))
		s.Arc(n.X, n.Y, 35, 0, 2*math.Pi*n.Score, 3, colorScoreRing)
		if n.ID == g.Selected {
			s.Arc(n.X, n.Y, 38, 0, 2*math.Pi, 4, colorSelected)
		}
		s.Text(n.X, n.Y-5, n.Label, colorNodeText)
		s.Text(n.X, n.Y+8, fmt.Sprintf("%.0f%%", n.Score*100), colorNodeText)
	}
}
