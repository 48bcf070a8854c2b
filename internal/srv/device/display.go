package device

import (
	"image"

	"github.com/jypelle/simplicity/internal/images"
	"github.com/jypelle/simplicity/internal/srv/config"
	"github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

func NewDisplay(param config.DisplayParam, simulationMode bool) *Display {
	if !simulationMode {
		if _, err := host.Init(); err != nil {
			logrus.Fatalf("Unable to initialize periph host: %v", err)
		}
	}

	device := Display{
		contrast:       param.Contrast,
		simulationMode: simulationMode,
		askDone:        make(chan bool),
		askImg:         make(chan image.Image),
		done:           make(chan bool),
	}

	return &device
}

func (d *Display) Start() {
	logrus.Infof("Start display device")

	d.on = true

	if d.simulationMode {
		d.startSimulation()
	} else {
		var err error
		// Open a handle to the first available I²C bus:
		d.i2cBus, err = i2creg.Open("")
		if err != nil {
			logrus.Fatalf("Unable to open i2c bus: %v\n", err)
		}

		// Open a handle to a ssd1306 connected on the I²C bus:
		d.oledDisplay, err = ssd1306.NewI2C(d.i2cBus, &ssd1306.DefaultOpts)
		if err != nil {
			logrus.Fatalf("Unable to initialize oled display: %v\n", err)
		}

		d.oledDisplay.SetContrast(d.contrast)

		go func() {
			for loop := true; loop; {
				select {
				case <-d.askDone:
					loop = false
				case newImg := <-d.askImg:
					d.oledLock.Lock()
					bounds := d.oledDisplay.Bounds()
					if err := d.oledDisplay.Draw(bounds, FitImage(newImg, bounds), image.Point{}); err != nil {
						logrus.Warnf("Unable to draw on oled display: %v", err)
					}
					d.oledLock.Unlock()
				}
			}
			d.oledLock.Lock()
			d.i2cBus.Close()
			d.oledLock.Unlock()
			d.done <- true
		}()
	}
}

func (d *Display) Stop() {
	logrus.Infof("Stop display device")

	if d.simulationMode {
		d.closeSimulationWindow()
	} else {
		d.askDone <- true
		<-d.done
	}
}

func (d *Display) SetOff() {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.setOff()
}

func (d *Display) setOff() {
	d.on = false
	if !d.simulationMode {
		d.oledLock.Lock()
		d.oledDisplay.Halt()
		d.oledLock.Unlock()
	}
}

func (d *Display) SetOn() {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.setOn()
}

func (d *Display) setOn() {
	d.on = true
	if d.simulationMode {
		d.invalidateSimulationWindow()
	} else {
		d.oledLock.Lock()
		d.oledDisplay.SetContrast(d.contrast) // Draw() alone doesn't wake the panel
		d.oledLock.Unlock()
		if d.lastImg != nil {
			d.askImg <- d.lastImg
		}
	}
}

// Switch toggles the panel and reports whether it is now on
func (d *Display) Switch() bool {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.on {
		d.setOff()
	} else {
		d.setOn()
	}

	return d.on
}

func (d *Display) IsOn() bool {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.on
}

// ShowImage displays a full face frame, kept for redraw when the panel wakes up
func (d *Display) ShowImage(img image.Image) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.lastImg = img
	if d.on {
		if d.simulationMode {
			d.invalidateSimulationWindow()
		} else {
			d.askImg <- img
		}
	}
}

// FitImage scales img into bounds keeping its aspect ratio, centered on a
// black background
func FitImage(img image.Image, bounds image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(bounds)
	xdraw.Draw(dst, bounds, image.NewUniform(images.Black), image.Point{}, xdraw.Src)

	src := img.Bounds()
	if src.Empty() || bounds.Empty() {
		return dst
	}

	width, height := bounds.Dx(), src.Dy()*bounds.Dx()/src.Dx()
	if height > bounds.Dy() {
		width, height = src.Dx()*bounds.Dy()/src.Dy(), bounds.Dy()
	}
	offset := image.Pt((bounds.Dx()-width)/2, (bounds.Dy()-height)/2).Add(bounds.Min)
	xdraw.ApproxBiLinear.Scale(dst, image.Rect(0, 0, width, height).Add(offset), img, src, xdraw.Over, nil)

	return dst
}
