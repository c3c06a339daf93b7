package render

import (
	"strings"
)

// fontFamily matches the stack used across every text element.
const fontFamily = "-apple-system, BlinkMacSystemFont, Segoe UI, Helvetica, Arial, sans-serif"

// Op is a single draw command. Section builders append ops to a Scene
// and the scene is serialized exactly once, in append order, which keeps
// rendering deterministic and lets tests assert on the command list
// instead of SVG substrings.
type Op interface {
	writeSVG(b *strings.Builder)
}

// GradientStop is one stop of a linear gradient definition.
type GradientStop struct {
	Offset  string
	Color   string
	Opacity float64
}

// Gradient is a <defs> linear gradient with a fixed id, referenced by
// fill/stroke as "url(#id)". Ids are constants, never derived from time
// or randomness, so repeated renders are byte-identical.
type Gradient struct {
	ID             string
	X1, Y1, X2, Y2 string
	Stops          []GradientStop
}

// Rect draws a rectangle, optionally rounded and stroked.
type Rect struct {
	X, Y, W, H  float64
	Fill        string
	Rx          float64
	Stroke      string
	StrokeWidth float64
}

func (r Rect) writeSVG(b *strings.Builder) {
	b.WriteString(`<rect x="` + fmtFloat(r.X) + `" y="` + fmtFloat(r.Y) +
		`" width="` + fmtFloat(r.W) + `" height="` + fmtFloat(r.H) + `" fill="` + r.Fill + `"`)
	if r.Rx > 0 {
		b.WriteString(` rx="` + fmtFloat(r.Rx) + `"`)
	}
	if r.Stroke != "" {
		b.WriteString(` stroke="` + r.Stroke + `" stroke-width="` + fmtFloat(r.StrokeWidth) + `"`)
	}
	b.WriteString("/>")
}

// Text draws a single text run. Content is XML-escaped at serialization.
type Text struct {
	X, Y      float64
	Size      float64
	Content   string
	Fill      string
	Bold      bool
	Anchor    string // "", "middle" or "end"
	Transform string
}

func (t Text) writeSVG(b *strings.Builder) {
	b.WriteString(`<text x="` + fmtFloat(t.X) + `" y="` + fmtFloat(t.Y) +
		`" font-size="` + fmtFloat(t.Size) + `"`)
	if t.Bold {
		b.WriteString(` font-weight="bold"`)
	}
	b.WriteString(` fill="` + t.Fill + `" font-family="` + fontFamily + `"`)
	if t.Anchor != "" {
		b.WriteString(` text-anchor="` + t.Anchor + `"`)
	}
	if t.Transform != "" {
		b.WriteString(` transform="` + t.Transform + `"`)
	}
	b.WriteString(`>` + escapeText(t.Content) + `</text>`)
}

// Circle draws a circle; DashArray/DashOffset support progress rings.
type Circle struct {
	CX, CY, R   float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	DashArray   float64
	DashOffset  float64
	LineCap     string
	Transform   string
}

func (c Circle) writeSVG(b *strings.Builder) {
	b.WriteString(`<circle cx="` + fmtFloat(c.CX) + `" cy="` + fmtFloat(c.CY) +
		`" r="` + fmtFloat(c.R) + `"`)
	if c.Fill != "" {
		b.WriteString(` fill="` + c.Fill + `"`)
	} else {
		b.WriteString(` fill="none"`)
	}
	if c.Stroke != "" {
		b.WriteString(` stroke="` + c.Stroke + `" stroke-width="` + fmtFloat(c.StrokeWidth) + `"`)
	}
	if c.DashArray > 0 {
		b.WriteString(` stroke-dasharray="` + fmtFloat(c.DashArray) +
			`" stroke-dashoffset="` + fmtFloat(c.DashOffset) + `"`)
	}
	if c.LineCap != "" {
		b.WriteString(` stroke-linecap="` + c.LineCap + `"`)
	}
	if c.Transform != "" {
		b.WriteString(` transform="` + c.Transform + `"`)
	}
	b.WriteString("/>")
}

// Line draws a straight segment, used for chart gridlines.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
	Dash           string
}

func (l Line) writeSVG(b *strings.Builder) {
	b.WriteString(`<line x1="` + fmtFloat(l.X1) + `" y1="` + fmtFloat(l.Y1) +
		`" x2="` + fmtFloat(l.X2) + `" y2="` + fmtFloat(l.Y2) +
		`" stroke="` + l.Stroke + `" stroke-width="` + fmtFloat(l.StrokeWidth) + `"`)
	if l.Dash != "" {
		b.WriteString(` stroke-dasharray="` + l.Dash + `"`)
	}
	b.WriteString("/>")
}

// Path draws an arbitrary path, used for the chart polyline and area fill.
type Path struct {
	D           string
	Stroke      string
	StrokeWidth float64
	Fill        string
	Rounded     bool
}

func (p Path) writeSVG(b *strings.Builder) {
	b.WriteString(`<path d="` + p.D + `"`)
	if p.Stroke != "" {
		b.WriteString(` stroke="` + p.Stroke + `" stroke-width="` + fmtFloat(p.StrokeWidth) + `"`)
	}
	if p.Fill != "" {
		b.WriteString(` fill="` + p.Fill + `"`)
	} else {
		b.WriteString(` fill="none"`)
	}
	if p.Rounded {
		b.WriteString(` stroke-linecap="round" stroke-linejoin="round"`)
	}
	b.WriteString("/>")
}

// Scene is an ordered list of draw commands plus gradient definitions on
// a fixed-size canvas.
type Scene struct {
	Width, Height int
	Defs          []Gradient
	Ops           []Op
}

// NewScene creates an empty scene of the given canvas size.
func NewScene(width, height int) *Scene {
	return &Scene{Width: width, Height: height}
}

// Add appends draw commands in z-order.
func (s *Scene) Add(ops ...Op) {
	s.Ops = append(s.Ops, ops...)
}

// AddGradient registers a gradient definition.
func (s *Scene) AddGradient(g Gradient) {
	s.Defs = append(s.Defs, g)
}

// SVG serializes the scene. Output is a pure function of the scene
// contents: same commands, same bytes.
func (s *Scene) SVG() string {
	var b strings.Builder

	b.WriteString(`<svg width="` + itoa(s.Width) + `" height="` + itoa(s.Height) +
		`" xmlns="http://www.w3.org/2000/svg">`)

	if len(s.Defs) > 0 {
		b.WriteString("<defs>")
		for _, g := range s.Defs {
			b.WriteString(`<linearGradient id="` + g.ID + `" x1="` + g.X1 + `" y1="` + g.Y1 +
				`" x2="` + g.X2 + `" y2="` + g.Y2 + `">`)
			for _, stop := range g.Stops {
				b.WriteString(`<stop offset="` + stop.Offset +
					`" style="stop-color:` + stop.Color + `;stop-opacity:` + fmtFloat(stop.Opacity) + `" />`)
			}
			b.WriteString("</linearGradient>")
		}
		b.WriteString("</defs>")
	}

	for _, op := range s.Ops {
		op.writeSVG(&b)
	}

	b.WriteString("</svg>")
	return b.String()
}

func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func itoa(n int) string {
	return fmtFloat(float64(n))
}
