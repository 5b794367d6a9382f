package render

import (
	"fmt"

	svg "github.com/ajstarks/svgo"
)

const watermarkInset = 10

// drawWatermark stamps the branding label into the bottom-right corner.
func (r *renderer) drawWatermark(canvas *svg.SVG, width, height float64) {
	wm := r.theme.Watermark
	if wm.Disabled || wm.Text == "" {
		return
	}
	size := wm.FontSize(width, height)
	canvas.Text(px(width)-watermarkInset, px(height)-watermarkInset, wm.Text,
		fmt.Sprintf("text-anchor:end;font-size:%gpx;fill:%s;fill-opacity:%g",
			size, r.theme.Boundary.Text, wm.Opacity))
}
