package srv

import (
	"image"

	"github.com/hajimehoshi/bitmapfont/v2"
	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/images"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var uniformImage = image.NewUniform(images.White)

// AddLabel draws label with its baseline at y
func AddLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  uniformImage,
		Face: bitmapfont.Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

func AddCenteredLabel(img *image.RGBA, y int, label string) {
	d := &font.Drawer{Face: bitmapfont.Face}
	width := d.MeasureString(label).Round()
	AddLabel(img, (face.Width-width)/2, y, label)
}
