package images

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/bitmapfont/v2"
	"github.com/jypelle/simplicity/internal/face"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
)

// Glyph cell of bitmapfont.Face for ASCII characters
const (
	glyphWidth  = 6
	glyphHeight = 12
)

var BackgroundImage image.Image

var IntroImage image.Image

var faceImages [face.IMAGE_COUNT]image.Image

func init() {
	for d := 0; d < 10; d++ {
		digit := string(rune('0' + d))
		faceImages[face.BigDigitImage(d)] = RenderText(digit, 4, 3)
		faceImages[face.SmallDigitImage(d)] = RenderText(digit, 2, 2)
	}

	dayNames := [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
	for w, dayName := range dayNames {
		faceImages[face.WeekdayImage(w)] = RenderText(dayName, 2, 2)
	}

	faceImages[face.IMAGE_PERCENT] = RenderText("%", 2, 2)
	faceImages[face.IMAGE_AM_MODE] = RenderText("AM", 1, 1)
	faceImages[face.IMAGE_PM_MODE] = RenderText("PM", 1, 1)
	faceImages[face.IMAGE_BLUETOOTH_CONNECTED] = RenderText("B", 2, 2)
	faceImages[face.IMAGE_BLUETOOTH_DISCONNECTED] = crossOut(RenderText("B", 2, 2))
	faceImages[face.IMAGE_BATTERY_CHARGING] = chargingImage()

	BackgroundImage = backgroundImage()
	IntroImage = introImage()
}

// Image returns the bitmap of a face resource, nil when unknown
func Image(imageId face.ImageId) image.Image {
	if imageId <= face.NO_IMAGE || imageId >= face.IMAGE_COUNT {
		return nil
	}
	return faceImages[imageId]
}

// RenderText draws label in white on a transparent image, each glyph pixel
// being scaled by scaleX and scaleY
func RenderText(label string, scaleX, scaleY int) *image.RGBA {
	small := image.NewRGBA(image.Rect(0, 0, glyphWidth*len(label), glyphHeight))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(White),
		Face: bitmapfont.Face,
		Dot:  fixed.P(0, bitmapfont.Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(label)

	if scaleX == 1 && scaleY == 1 {
		return small
	}
	scaled := image.NewRGBA(image.Rect(0, 0, small.Bounds().Dx()*scaleX, small.Bounds().Dy()*scaleY))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return scaled
}

func crossOut(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		y := bounds.Min.Y + (x-bounds.Min.X)*bounds.Dy()/bounds.Dx()
		img.Set(x, y, White)
		img.Set(x, bounds.Max.Y-1-(y-bounds.Min.Y), White)
	}
	return img
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

func chargingImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 30, 16))

	// Battery outline and terminal
	fillRect(img, image.Rect(0, 0, 26, 1), White)
	fillRect(img, image.Rect(0, 15, 26, 16), White)
	fillRect(img, image.Rect(0, 0, 1, 16), White)
	fillRect(img, image.Rect(25, 0, 26, 16), White)
	fillRect(img, image.Rect(26, 5, 30, 11), White)

	// Bolt
	for i := 0; i < 6; i++ {
		fillRect(img, image.Rect(14-i, 3+i, 16-i, 4+i), White)
		fillRect(img, image.Rect(15-i, 7+i, 17-i, 8+i), White)
	}
	fillRect(img, image.Rect(8, 8, 16, 9), White)
	return img
}

func backgroundImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, face.Width, face.Height))
	fillRect(img, img.Bounds(), Black)
	fillRect(img, image.Rect(4, 134, face.Width-4, 135), White)
	return img
}

func introImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, face.Width, face.Height))
	fillRect(img, img.Bounds(), Black)
	title := RenderText("simplicity", 2, 3)
	at := image.Pt((face.Width-title.Bounds().Dx())/2, (face.Height-title.Bounds().Dy())/2)
	draw.Draw(img, title.Bounds().Add(at), title, image.Point{}, draw.Over)
	return img
}
