package srv

import (
	"image"
	"testing"
	"time"

	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/srv/config"
	"github.com/jypelle/simplicity/internal/srv/event"
)

type fakeScreen struct {
	on     bool
	frames []image.Image
}

func (f *fakeScreen) ShowImage(img image.Image) {
	f.frames = append(f.frames, img)
}

func (f *fakeScreen) Switch() bool {
	f.on = !f.on
	return f.on
}

func (f *fakeScreen) IsOn() bool {
	return f.on
}

func newTestServerApp(t *testing.T, clockFormat config.ClockFormat) (*ServerApp, *fakeScreen) {
	t.Helper()
	serverConfig := config.NewServerConfig(t.TempDir(), false, true)
	serverConfig.ClockFormat = clockFormat
	t.Cleanup(serverConfig.FlushSave)

	app := newServerApp(serverConfig)
	screen := &fakeScreen{on: true}
	app.screen = screen
	return app, screen
}

func sampleAt(hour, minute, second int) face.TimeSample {
	return face.NewTimeSample(time.Date(2026, time.October, 17, hour, minute, second, 0, time.UTC))
}

func TestServerAppFaceLifecycle(t *testing.T) {
	app, screen := newTestServerApp(t, config.H12_CLOCK_FORMAT)

	app.refreshDisplay()
	app.initializeFace(sampleAt(23, 59, 58))
	if len(screen.frames) != 2 {
		t.Fatalf("%d frames after startup", len(screen.frames))
	}

	app.onTick(event.TickerEventTickData{Sample: sampleAt(23, 59, 59)})
	app.onTick(event.TickerEventTickData{Sample: face.NewTimeSample(time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC))})

	faceModel := app.faceModel()
	shown := faceModel.Shown()
	want := map[string]string{
		"hour-tens":   "num_1",
		"hour-ones":   "num_2",
		"minute-tens": "num_0",
		"second-ones": "datenum_0",
		"day-name":    "day_name_sun",
		"day-ones":    "datenum_8",
		"am-pm":       "am_mode",
	}
	for slot, image := range want {
		if shown[slot] != image {
			t.Errorf("slot %s shows %q, want %q", slot, shown[slot], image)
		}
	}
	if faceModel.MinuteRefreshes != 2 || faceModel.SecondTicks != 2 {
		t.Errorf("stats = %+v", faceModel)
	}

	frame := screen.frames[len(screen.frames)-1]
	if frame.Bounds() != image.Rect(0, 0, face.Width, face.Height) {
		t.Errorf("frame bounds %v", frame.Bounds())
	}

	app.shutdownFace()
	if app.canvas.LiveImages() != 0 {
		t.Errorf("%d bitmaps left after shutdown", app.canvas.LiveImages())
	}
	if app.lastFrame != screen.frames[len(screen.frames)-1] {
		t.Errorf("end screen not shown")
	}
}

func TestServerAppUnchangedFaceIsNotRedrawn(t *testing.T) {
	app, screen := newTestServerApp(t, config.H24_CLOCK_FORMAT)
	app.initializeFace(sampleAt(8, 0, 0))
	frames := len(screen.frames)

	app.onBluetoothChanged(app.bluetoothDevice.Peek())
	if len(screen.frames) != frames {
		t.Errorf("unchanged face redrawn")
	}
}

func TestServerAppResync(t *testing.T) {
	app, _ := newTestServerApp(t, config.H24_CLOCK_FORMAT)
	app.initializeFace(sampleAt(8, 0, 0))

	app.onTick(event.TickerEventTickData{Sample: sampleAt(10, 42, 17), Resync: true})

	model := app.faceModel()
	shown := model.Shown()
	for slot, image := range map[string]string{"hour-tens": "num_1", "hour-ones": "num_0", "minute-tens": "num_4", "minute-ones": "num_2"} {
		if shown[slot] != image {
			t.Errorf("slot %s shows %q, want %q", slot, shown[slot], image)
		}
	}
	if _, ok := shown["am-pm"]; ok {
		t.Errorf("am-pm shown in 24h mode")
	}
}

func TestServerAppApiInjection(t *testing.T) {
	app, _ := newTestServerApp(t, config.H24_CLOCK_FORMAT)
	app.initializeFace(sampleAt(8, 0, 0))

	result := make(chan error, 1)
	app.onApiEvent(event.ApiEvent{Result: result, Data: event.ApiEventBatteryData{State: face.BatteryState{Percent: 150, IsCharging: true}}})
	if err := <-result; err != nil {
		t.Fatal(err)
	}
	if got := app.LastBattery(); got != (face.BatteryState{Percent: 100, IsCharging: true}) {
		t.Errorf("last battery = %+v", got)
	}

	// The per second battery refresh keeps the injected sample
	app.onTick(event.TickerEventTickData{Sample: sampleAt(8, 0, 1)})
	model := app.faceModel()
	shown := model.Shown()
	if shown["battery-charging"] != "battery_charging" || shown["battery-tens"] != "" {
		t.Errorf("charging face = %v", shown)
	}

	app.onApiEvent(event.ApiEvent{Result: result, Data: event.ApiEventBluetoothData{State: face.BluetoothState{Connected: true}}})
	if err := <-result; err != nil {
		t.Fatal(err)
	}
	model = app.faceModel()
	if !app.LastBluetooth().Connected || model.Shown()["bluetooth"] != "bluetooth_connected" {
		t.Errorf("bluetooth not connected")
	}

	images := make(chan image.Image, 1)
	app.onApiEvent(event.ApiEvent{Result: result, Data: event.ApiEventFaceImageData{Image: images}})
	if err := <-result; err != nil {
		t.Fatal(err)
	}
	if img := <-images; img == nil {
		t.Errorf("no face image")
	}

	app.onApiEvent(event.ApiEvent{Result: result, Data: "reboot"})
	if err := <-result; err == nil {
		t.Errorf("unknown request accepted")
	}
}
