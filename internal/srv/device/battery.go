package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jypelle/simplicity/internal/face"
	"github.com/jypelle/simplicity/internal/srv/config"
	"github.com/jypelle/simplicity/internal/srv/event"
	"github.com/sirupsen/logrus"
)

const powerSupplyRoot = "/sys/class/power_supply"

var ErrNoBattery = errors.New("no battery power supply")

// Battery polls the kernel power supply class and reports percent/charging
// transitions. In simulation mode samples are injected instead.
type Battery struct {
	lock         sync.RWMutex
	eventChannel chan event.BatteryEvent

	simulationMode bool
	supplyRoot     string
	supply         string
	pollInterval   time.Duration

	state     face.BatteryState
	readError bool

	checkTicker *time.Ticker

	askDone chan bool
	done    chan bool
}

func NewBattery(param config.BatteryParam, simulationMode bool, initialState face.BatteryState) *Battery {
	device := Battery{
		eventChannel:   make(chan event.BatteryEvent),
		simulationMode: simulationMode,
		supplyRoot:     powerSupplyRoot,
		supply:         param.Supply,
		pollInterval:   param.GetPollInterval(),
		state:          ClampBattery(initialState),
		askDone:        make(chan bool),
		done:           make(chan bool),
	}
	return &device
}

func (d *Battery) Start() {
	logrus.Infof("Start battery device")

	d.lock.Lock()
	defer d.lock.Unlock()

	if !d.simulationMode {
		if d.supply == "" {
			supply, err := FindBatterySupply(d.supplyRoot)
			if err != nil {
				logrus.Warnf("Battery level unavailable: %v", err)
			}
			d.supply = supply
		}
		if d.supply != "" {
			logrus.Infof("Use power supply %s", d.supply)
			d.refresh(false)
		}
	}

	// Start periodic check
	d.checkTicker = time.NewTicker(d.pollInterval)
	go func() {
		for loop := true; loop; {
			select {
			case <-d.checkTicker.C:
				d.lock.Lock()
				changed := d.refresh(true)
				state := d.state
				d.lock.Unlock()
				if changed {
					d.eventChannel <- event.BatteryEvent{State: state}
				}
			case <-d.askDone:
				loop = false
			}
		}
		d.done <- true
	}()
}

func (d *Battery) StopSendingEvent() {
	logrus.Infof("Stop battery device")

	d.checkTicker.Stop()
	d.askDone <- true
	<-d.done
}

func (d *Battery) EventChannel() chan event.BatteryEvent {
	return d.eventChannel
}

// Peek returns the latest battery sample
func (d *Battery) Peek() face.BatteryState {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.state
}

// Inject replaces the current sample, used in simulation mode
func (d *Battery) Inject(state face.BatteryState) face.BatteryState {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.state = ClampBattery(state)
	return d.state
}

// refresh reads the power supply and reports whether the sample changed
func (d *Battery) refresh(warnOnce bool) bool {
	if d.simulationMode || d.supply == "" {
		return false
	}

	state, err := ReadBatteryStatus(filepath.Join(d.supplyRoot, d.supply))
	if err != nil {
		if !d.readError || !warnOnce {
			logrus.Warnf("Unable to read battery status: %v", err)
		}
		d.readError = true
		return false
	}
	d.readError = false

	if state == d.state {
		return false
	}
	logrus.Debugf("Battery: %d%%, charging: %t", state.Percent, state.IsCharging)
	d.state = state
	return true
}

// ReadBatteryStatus reads capacity and status of a power supply directory
func ReadBatteryStatus(supplyDir string) (face.BatteryState, error) {
	// Read capacity
	capacityBytes, err := os.ReadFile(filepath.Join(supplyDir, "capacity"))
	if err != nil {
		return face.BatteryState{}, fmt.Errorf("reading capacity failed: %w", err)
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(string(capacityBytes)))
	if err != nil {
		return face.BatteryState{}, fmt.Errorf("converting capacity to int failed: %w", err)
	}

	// Read charging status
	statusBytes, err := os.ReadFile(filepath.Join(supplyDir, "status"))
	if err != nil {
		return face.BatteryState{}, fmt.Errorf("reading status failed: %w", err)
	}
	status := strings.TrimSpace(string(statusBytes))

	return ClampBattery(face.BatteryState{Percent: capacity, IsCharging: status == "Charging"}), nil
}

// ClampBattery bounds the percentage, the engine expects 0-100
func ClampBattery(state face.BatteryState) face.BatteryState {
	if state.Percent < 0 || state.Percent > 100 {
		logrus.Errorf("Battery percentage out of range: %d", state.Percent)
		if state.Percent < 0 {
			state.Percent = 0
		} else {
			state.Percent = 100
		}
	}
	return state
}

// FindBatterySupply returns the first power supply of type Battery
func FindBatterySupply(supplyRoot string) (string, error) {
	entries, err := os.ReadDir(supplyRoot)
	if err != nil {
		return "", fmt.Errorf("listing power supplies failed: %w", err)
	}
	for _, entry := range entries {
		typeBytes, err := os.ReadFile(filepath.Join(supplyRoot, entry.Name(), "type"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(typeBytes)) == "Battery" {
			return entry.Name(), nil
		}
	}
	return "", ErrNoBattery
}
