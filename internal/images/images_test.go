package images

import (
	"testing"

	"github.com/jypelle/simplicity/internal/face"
)

func TestEveryFaceImageIsRendered(t *testing.T) {
	for id := face.NO_IMAGE + 1; id < face.IMAGE_COUNT; id++ {
		img := Image(id)
		if img == nil {
			t.Errorf("%s: no image", id)
			continue
		}
		if img.Bounds().Empty() {
			t.Errorf("%s: empty image", id)
		}
	}
	if Image(face.NO_IMAGE) != nil || Image(face.IMAGE_COUNT) != nil {
		t.Errorf("out of range ids must have no image")
	}
}

func TestDigitSizes(t *testing.T) {
	tests := []struct {
		name          string
		id            face.ImageId
		width, height int
	}{
		{"big digit", face.IMAGE_NUM_8, 24, 36},
		{"small digit", face.IMAGE_DATENUM_8, 12, 24},
		{"day name", face.IMAGE_DAY_NAME_WED, 36, 24},
		{"am", face.IMAGE_AM_MODE, 12, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := Image(tt.id).Bounds()
			if bounds.Dx() != tt.width || bounds.Dy() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tt.width, tt.height)
			}
		})
	}
}

func TestRenderTextDrawsPixels(t *testing.T) {
	img := RenderText("8", 2, 2)
	lit := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Errorf("no pixel drawn for 8")
	}
}

func TestBackgroundSize(t *testing.T) {
	if BackgroundImage.Bounds().Dx() != face.Width || BackgroundImage.Bounds().Dy() != face.Height {
		t.Errorf("background is %v", BackgroundImage.Bounds())
	}
}
