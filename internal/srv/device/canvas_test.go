package device

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/srv/config"
)

func litPixels(img *image.RGBA, r image.Rectangle) int {
	lit := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if red, _, _, _ := img.At(x, y).RGBA(); red != 0 {
				lit++
			}
		}
	}
	return lit
}

func TestCanvasComposeVisibility(t *testing.T) {
	canvas := NewCanvas(0)
	handle, err := canvas.AcquireImage(face.IMAGE_NUM_8)
	if err != nil {
		t.Fatal(err)
	}
	canvas.PlaceImage(face.HOUR_ONES_SLOT, handle, image.Pt(40, 45))
	region := image.Rect(40, 45, 64, 81)

	if !canvas.Dirty() {
		t.Errorf("canvas not dirty after placing an image")
	}
	if litPixels(canvas.Compose(), region) == 0 {
		t.Errorf("placed digit not drawn")
	}
	if canvas.Dirty() {
		t.Errorf("canvas still dirty after compose")
	}

	canvas.SetVisible(face.HOUR_ONES_SLOT, false)
	if litPixels(canvas.Compose(), region) != 0 {
		t.Errorf("hidden digit drawn")
	}

	canvas.SetVisible(face.HOUR_ONES_SLOT, true)
	canvas.ReleaseImage(handle)
	if litPixels(canvas.Compose(), region) != 0 {
		t.Errorf("released digit drawn")
	}
	if canvas.LiveImages() != 0 {
		t.Errorf("%d live images", canvas.LiveImages())
	}
}

func TestCanvasResourceUnavailable(t *testing.T) {
	canvas := NewCanvas(2)
	if _, err := canvas.AcquireImage(face.NO_IMAGE); !errors.Is(err, face.ErrResourceUnavailable) {
		t.Errorf("unknown image: err = %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := canvas.AcquireImage(face.IMAGE_PERCENT); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := canvas.AcquireImage(face.IMAGE_PERCENT); !errors.Is(err, face.ErrResourceUnavailable) {
		t.Errorf("over capacity: err = %v", err)
	}
}

func TestCanvasEngineRunHasNoLeak(t *testing.T) {
	canvas := NewCanvas(0)
	battery := NewBattery(config.BatteryParam{}, true, face.BatteryState{Percent: 100})

	engine := face.NewEngine(canvas, battery)
	start := time.Date(2026, time.October, 17, 23, 30, 0, 0, time.UTC)
	if err := engine.Initialize(face.DisplayConfig{}, face.NewTimeSample(start), battery.Peek(), face.BluetoothState{}); err != nil {
		t.Fatal(err)
	}
	live := canvas.LiveImages()

	for i := 1; i <= 3600; i++ {
		if i%600 == 0 {
			battery.Inject(face.BatteryState{Percent: 100 - i/600, IsCharging: i%1200 == 0})
		}
		if err := engine.OnSecondTick(face.NewTimeSample(start.Add(time.Duration(i) * time.Second))); err != nil {
			t.Fatal(err)
		}
		if canvas.LiveImages() > live+1 {
			t.Fatalf("tick %d: %d live images, started with %d", i, canvas.LiveImages(), live)
		}
	}
	canvas.Compose()

	engine.Shutdown()
	acquired, released := canvas.Counts()
	if canvas.LiveImages() != 0 || acquired != released {
		t.Errorf("after shutdown: %d live, %d acquired, %d released", canvas.LiveImages(), acquired, released)
	}
}
