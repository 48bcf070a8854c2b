package srv

import (
	"image"
	"time"

	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/srv/config"
	"github.com/jypelle/simplicity/internal/srv/device"
	"github.com/jypelle/simplicity/internal/srv/event"
	"github.com/jypelle/simplicity/internal/version"
	"github.com/sirupsen/logrus"
)

// Screen shows full frames, the oled display or its simulation window
type Screen interface {
	ShowImage(img image.Image)
	Switch() bool
	IsOn() bool
}

type ServerApp struct {
	*config.ServerConfig
	displayDevice   *device.Display
	clockDevice     *device.Clock
	batteryDevice   *device.Battery
	bluetoothDevice *device.Bluetooth
	apiDevice       *device.Api

	screen Screen
	canvas *device.Canvas
	engine *face.Engine

	currentMode Mode
	lastFrame   image.Image

	internalEventChannel chan event.InternalEvent

	eventLoopAskDone chan bool
	eventLoopDone    chan bool
}

type Mode int64

const (
	UNDEFINED_MODE Mode = iota
	FACE_MODE
	END_MODE
)

func NewServerApp(configDir string, debugMode bool, simulationMode bool) *ServerApp {

	logrus.Debugf("Creation of simplicity server %s ...", version.AppVersion.String())

	app := newServerApp(config.NewServerConfig(configDir, debugMode, simulationMode))

	app.displayDevice = device.NewDisplay(app.DisplayParam, app.SimulationMode)
	app.screen = app.displayDevice
	app.clockDevice = device.NewClock()
	app.apiDevice = device.NewApi(app.ServerConfig)

	logrus.Debugln("Server created")

	return app
}

// newServerApp creates the face side of the server: sensors, canvas and engine
func newServerApp(serverConfig *config.ServerConfig) *ServerApp {
	app := &ServerApp{
		ServerConfig:         serverConfig,
		currentMode:          UNDEFINED_MODE,
		internalEventChannel: make(chan event.InternalEvent),
		eventLoopAskDone:     make(chan bool),
		eventLoopDone:        make(chan bool),
	}

	app.batteryDevice = device.NewBattery(app.BatteryParam, app.SimulationMode, app.LastBattery())
	app.bluetoothDevice = device.NewBluetooth(app.BluetoothParam, app.SimulationMode, app.LastBluetooth())
	app.canvas = device.NewCanvas(int(app.DisplayParam.MaxBitmaps))
	app.engine = face.NewEngine(app.canvas, app.batteryDevice)

	return app
}

func (s *ServerApp) Start() {
	logrus.Printf("Starting simplicity server ...")

	logrus.Printf("Starting devices ...")

	// Start display device
	s.displayDevice.Start()

	// Display startup screen
	s.refreshDisplay()
	time.Sleep(2 * time.Second)

	// Start sensors, their first read is used to draw the face
	s.batteryDevice.Start()
	s.bluetoothDevice.Start()

	s.initializeFace(s.clockDevice.Now())

	// Start event loop
	go s.eventLoop()

	// Start clock device
	s.clockDevice.Start()

	// Start api device
	if s.ApiParam.Enabled {
		s.apiDevice.Start()
	}
}

func (s *ServerApp) initializeFace(t face.TimeSample) {
	displayConfig := s.DisplayConfig()
	logrus.Infof("Clock format: %s, 24h: %t", s.ClockFormat, displayConfig.Use24Hour)

	s.logFaceError(s.engine.Initialize(displayConfig, t, s.batteryDevice.Peek(), s.bluetoothDevice.Peek()))

	s.currentMode = FACE_MODE
	s.refreshDisplay()
}

func (s *ServerApp) Stop() {
	logrus.Printf("Stopping simplicity server ...")

	// Stop api
	if s.ApiParam.Enabled {
		s.apiDevice.StopSendingEvent()
	}

	// Stop clock and sensors
	s.clockDevice.StopSendingEvent()
	s.batteryDevice.StopSendingEvent()
	s.bluetoothDevice.StopSendingEvent()

	// Stop event loop
	logrus.Infof("Stop event loop")
	s.eventLoopAskDone <- true
	<-s.eventLoopDone

	// Display end mode image
	s.shutdownFace()
	time.Sleep(time.Second)

	// Stop display device
	s.displayDevice.Stop()

	// Flush state backup
	s.ServerConfig.ServerState.FlushSave()

	logrus.Printf("Server stopped")
}

func (s *ServerApp) shutdownFace() {
	s.engine.Shutdown()
	acquired, released := s.canvas.Counts()
	logrus.Debugf("Bitmaps acquired: %d, released: %d", acquired, released)

	s.currentMode = END_MODE
	s.refreshDisplay()
}

// SwitchDisplay turns the screen on or off
func (s *ServerApp) SwitchDisplay() {
	s.internalEventChannel <- event.InternalEvent{Data: event.InternalEventDisplaySwitchData{}}
}
