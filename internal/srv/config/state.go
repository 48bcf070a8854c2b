package config

import (
	"os"
	"sync"
	"time"

	"github.com/jypelle/simplicity/internal/face"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const saveDelay = 10 * time.Second

// ServerState keeps the last sensor samples, used to draw the face before the
// first battery and bluetooth reads
type ServerState struct {
	serverStateConfig     ServerStateConfig
	lock                  sync.RWMutex
	backupTimer           *time.Timer
	completeStateFilename string
}

func NewServerState(completeStateFilename string) *ServerState {
	serverState := &ServerState{
		completeStateFilename: completeStateFilename,
	}

	rawConfig, err := os.ReadFile(completeStateFilename)
	if err == nil {
		// Interpret state file
		err = yaml.Unmarshal(rawConfig, &serverState.serverStateConfig)
		if err != nil {
			logrus.Fatalf("Unable to interpret state file: %v\n", err)
		}
	} else {
		// Create default state file
		logrus.Infof("Create default state file")
		serverState.SetLastBattery(face.BatteryState{Percent: 100})
		serverState.SetLastBluetooth(face.BluetoothState{Connected: false})
	}

	return serverState
}

func (ss *ServerState) LastBattery() face.BatteryState {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	return ss.serverStateConfig.Battery
}

func (ss *ServerState) SetLastBattery(battery face.BatteryState) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	if ss.backupTimer != nil && ss.serverStateConfig.Battery == battery {
		return
	}
	ss.serverStateConfig.Battery = battery
	ss.scheduleSave()
}

func (ss *ServerState) LastBluetooth() face.BluetoothState {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	return ss.serverStateConfig.Bluetooth
}

func (ss *ServerState) SetLastBluetooth(bluetooth face.BluetoothState) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	if ss.backupTimer != nil && ss.serverStateConfig.Bluetooth == bluetooth {
		return
	}
	ss.serverStateConfig.Bluetooth = bluetooth
	ss.scheduleSave()
}

func (ss *ServerState) scheduleSave() {
	if ss.backupTimer == nil {
		ss.backupTimer = time.AfterFunc(saveDelay, func() {
			ss.lock.Lock()
			defer ss.lock.Unlock()
			ss.save()
		})
	} else {
		ss.backupTimer.Reset(saveDelay)
	}
}

func (ss *ServerState) save() {
	logrus.Infof("Save state file: %s", ss.completeStateFilename)
	rawConfig, err := yaml.Marshal(&ss.serverStateConfig)
	if err != nil {
		logrus.Errorf("Unable to serialize state file: %v", err)
		return
	}
	err = os.WriteFile(ss.completeStateFilename, rawConfig, 0660)
	if err != nil {
		logrus.Errorf("Unable to save state file: %v", err)
	}
}

func (ss *ServerState) FlushSave() {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	if ss.backupTimer != nil {
		if ss.backupTimer.Stop() {
			ss.save()
		}
	}
}

type ServerStateConfig struct {
	Battery   face.BatteryState   `yaml:"battery"`
	Bluetooth face.BluetoothState `yaml:"bluetooth"`
}
