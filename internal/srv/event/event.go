package event

import (
	"image"

	"github.com/jypelle/simplicity/apimodel"
	"github.com/jypelle/simplicity/internal/face"
)

// Ticker
type TickerEvent struct {
	Data interface{}
}

type TickerEventTickData struct {
	Sample face.TimeSample
	// Resync is set when the wall clock jumped and seconds were not delivered
	Resync bool
}

// Battery
type BatteryEvent struct {
	State face.BatteryState
}

// Bluetooth
type BluetoothEvent struct {
	State face.BluetoothState
}

// Api
type ApiEvent struct {
	Result chan error
	Data   interface{}
}

type ApiEventFaceData struct {
	Face chan apimodel.Face
}

type ApiEventFaceImageData struct {
	Image chan image.Image
}

type ApiEventBatteryData struct {
	State face.BatteryState
}

type ApiEventBluetoothData struct {
	State face.BluetoothState
}

// Internal
type InternalEvent struct {
	Data interface{}
}

type InternalEventDisplaySwitchData struct{}
