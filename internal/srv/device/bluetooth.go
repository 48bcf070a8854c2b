package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/srv/config"
	"github.com/jypelle/simplicity/internal/srv/event"
	"github.com/sirupsen/logrus"
)

const (
	bluezService          = "org.bluez"
	bluezDeviceInterface  = "org.bluez.Device1"
	getManagedObjectsCall = "org.freedesktop.DBus.ObjectManager.GetManagedObjects"
)

type managedObjects map[dbus.ObjectPath]map[string]map[string]dbus.Variant

// Bluetooth watches BlueZ over the system bus, the face is connected as soon
// as one paired device is
type Bluetooth struct {
	lock         sync.RWMutex
	eventChannel chan event.BluetoothEvent

	enabled      bool
	pollInterval time.Duration
	conn         *dbus.Conn

	state     face.BluetoothState
	readError bool

	checkTicker *time.Ticker

	askDone chan bool
	done    chan bool
}

func NewBluetooth(param config.BluetoothParam, simulationMode bool, initialState face.BluetoothState) *Bluetooth {
	device := Bluetooth{
		eventChannel: make(chan event.BluetoothEvent),
		enabled:      param.Enabled && !simulationMode,
		pollInterval: param.GetPollInterval(),
		state:        initialState,
		askDone:      make(chan bool),
		done:         make(chan bool),
	}
	return &device
}

func (d *Bluetooth) Start() {
	logrus.Infof("Start bluetooth device")

	d.lock.Lock()
	defer d.lock.Unlock()

	if d.enabled {
		var err error
		d.conn, err = dbus.ConnectSystemBus()
		if err != nil {
			logrus.Warnf("Bluetooth state unavailable, unable to connect to the system bus: %v", err)
		} else {
			d.refresh()
		}
	}

	// Start periodic check
	d.checkTicker = time.NewTicker(d.pollInterval)
	go func() {
		for loop := true; loop; {
			select {
			case <-d.checkTicker.C:
				d.lock.Lock()
				changed := d.refresh()
				state := d.state
				d.lock.Unlock()
				if changed {
					d.eventChannel <- event.BluetoothEvent{State: state}
				}
			case <-d.askDone:
				loop = false
			}
		}
		d.lock.Lock()
		if d.conn != nil {
			d.conn.Close()
		}
		d.lock.Unlock()
		d.done <- true
	}()
}

func (d *Bluetooth) StopSendingEvent() {
	logrus.Infof("Stop bluetooth device")

	d.checkTicker.Stop()
	d.askDone <- true
	<-d.done
}

func (d *Bluetooth) EventChannel() chan event.BluetoothEvent {
	return d.eventChannel
}

// Peek returns the latest connection state
func (d *Bluetooth) Peek() face.BluetoothState {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.state
}

// Inject replaces the current state, used in simulation mode
func (d *Bluetooth) Inject(state face.BluetoothState) face.BluetoothState {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.state = state
	return d.state
}

// refresh queries BlueZ and reports whether the connection state changed
func (d *Bluetooth) refresh() bool {
	if d.conn == nil {
		return false
	}

	var objects managedObjects
	err := d.conn.Object(bluezService, "/").Call(getManagedObjectsCall, 0).Store(&objects)
	if err != nil {
		if !d.readError {
			logrus.Warnf("Unable to query bluez: %v", err)
		}
		d.readError = true
		return false
	}
	d.readError = false

	state := face.BluetoothState{Connected: anyDeviceConnected(objects)}
	if state == d.state {
		return false
	}
	logrus.Infof("Bluetooth connected: %t", state.Connected)
	d.state = state
	return true
}

func anyDeviceConnected(objects managedObjects) bool {
	for path, interfaces := range objects {
		properties, ok := interfaces[bluezDeviceInterface]
		if !ok {
			continue
		}
		connected, ok := properties["Connected"]
		if !ok {
			continue
		}
		if value, ok := connected.Value().(bool); ok && value {
			logrus.Debugf("Bluetooth device connected: %s", deviceName(path, properties))
			return true
		}
	}
	return false
}

func deviceName(path dbus.ObjectPath, properties map[string]dbus.Variant) string {
	if alias, ok := properties["Alias"]; ok {
		if name, ok := alias.Value().(string); ok {
			return fmt.Sprintf("%s (%s)", name, path)
		}
	}
	return string(path)
}
