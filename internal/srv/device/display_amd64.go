package device

import (
	"image"
	"image/color"
	"sync"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/jypelle/simplicity/internal/face"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
)

type Display struct {
	oledLock    sync.Mutex
	oledDisplay *ssd1306.Dev
	i2cBus      i2c.BusCloser
	contrast    byte

	lock           sync.RWMutex
	on             bool
	simulationMode bool
	lastImg        image.Image

	simulationWindow *app.Window

	askDone chan bool
	askImg  chan image.Image
	done    chan bool
}

func (d *Display) startSimulation() {
	d.simulationWindow = app.NewWindow(
		app.Title("simplicity"),
		app.Size(unit.Px(2*face.Width), unit.Px(2*face.Height)),
		app.MinSize(unit.Px(face.Width), unit.Px(face.Height)),
	)
	go func() {
		if err := d.gioloop(); err != nil {
			logrus.Fatalf("Simulation window failed: %v", err)
		}
	}()
	go app.Main()
}

func (d *Display) invalidateSimulationWindow() {
	d.simulationWindow.Invalidate()
}

func (d *Display) closeSimulationWindow() {
	d.simulationWindow.Close()
}

func (d *Display) gioloop() error {
	var ops op.Ops
	for {
		e := <-d.simulationWindow.Events()
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)

			d.lock.RLock()
			lastImg, on := d.lastImg, d.on
			d.lock.RUnlock()

			if on && lastImg != nil {
				img := widget.Image{Src: paint.NewImageOp(lastImg), Fit: widget.Contain}
				img.Layout(gtx)
			} else {
				paint.Fill(gtx.Ops, color.NRGBA{A: 0xff})
			}
			e.Frame(gtx.Ops)
		}
	}
}
