package render

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	"github-insights/internal/common"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RenderPNG rasterizes a rendered card to PNG at its native size.
// Failures here indicate a malformed scene and surface as RENDER_ERROR.
func RenderPNG(svg string) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, common.WrapError(common.ErrCodeRender, "parse card SVG", err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, common.NewError(common.ErrCodeRender, "card SVG has no size")
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, common.WrapError(common.ErrCodeRender, "encode card PNG", err)
	}
	return buf.Bytes(), nil
}
