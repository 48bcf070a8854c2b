package face

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var ErrNotInitialized = errors.New("face engine not initialized")

type Stats struct {
	SecondTicks     int64
	MinuteRefreshes int64
	AcquireFailures int64
}

// Engine decides which image every slot shows. It must only be called from a
// single goroutine: the event loop.
type Engine struct {
	compositor    Compositor
	batterySource BatterySource

	config DisplayConfig
	slots  []*Slot
	stats  Stats
}

func NewEngine(compositor Compositor, batterySource BatterySource) *Engine {
	return &Engine{
		compositor:    compositor,
		batterySource: batterySource,
	}
}

// Initialize creates the slots and fills them from the initial samples so the
// face is never blank
func (e *Engine) Initialize(config DisplayConfig, t TimeSample, battery BatteryState, bluetooth BluetoothState) error {
	if e.slots != nil {
		return errors.New("face engine already initialized")
	}
	logrus.Debugf("Initialize face engine (24h: %t, leading zeros: %t)", config.Use24Hour, config.ShowLeadingZeros)

	e.config = config
	e.slots = make([]*Slot, SLOT_COUNT)
	for i := range e.slots {
		e.slots[i] = newSlot(SlotId(i), e.compositor)
	}

	// The charging icon never changes, only its visibility does
	errs := []error{e.apply([]Command{setImage(BATTERY_ICON_SLOT, IMAGE_BATTERY_CHARGING, batteryIconPosition)})}

	errs = append(errs,
		e.OnBluetoothChanged(bluetooth),
		e.apply(PlanSeconds(t)),
		e.OnBatteryChanged(battery),
		e.OnMinuteBoundary(t),
	)
	return errors.Join(errs...)
}

func (e *Engine) Shutdown() {
	if e.slots == nil {
		return
	}
	logrus.Debugf("Shutdown face engine")
	for _, slot := range e.slots {
		slot.Release()
	}
	e.slots = nil
}

func (e *Engine) OnSecondTick(t TimeSample) error {
	if e.slots == nil {
		return ErrNotInitialized
	}
	e.stats.SecondTicks++

	errs := []error{e.apply(PlanSeconds(t))}

	// Refresh battery every second, some platforms change the percentage silently
	if e.batterySource != nil {
		errs = append(errs, e.OnBatteryChanged(e.batterySource.Peek()))
	}

	// If a minute has passed update rest of items
	if t.Second == 0 {
		errs = append(errs, e.OnMinuteBoundary(t))
	}
	return errors.Join(errs...)
}

func (e *Engine) OnMinuteBoundary(t TimeSample) error {
	if e.slots == nil {
		return ErrNotInitialized
	}
	e.stats.MinuteRefreshes++
	logrus.Debugf("Refresh face for %02d:%02d", t.Hour, t.Minute)
	return e.apply(PlanMinuteBoundary(t, e.config))
}

func (e *Engine) OnBatteryChanged(state BatteryState) error {
	if e.slots == nil {
		return ErrNotInitialized
	}
	return e.apply(PlanBattery(state))
}

func (e *Engine) OnBluetoothChanged(state BluetoothState) error {
	if e.slots == nil {
		return ErrNotInitialized
	}
	return e.apply(PlanBluetooth(state))
}

func (e *Engine) Config() DisplayConfig {
	return e.config
}

func (e *Engine) Stats() Stats {
	return e.stats
}

// State returns what the slots actually hold, which differs from the planned
// state when an acquisition failed
func (e *Engine) State() DisplayState {
	var state DisplayState
	for i, slot := range e.slots {
		state[i] = slot.State()
	}
	return state
}

// apply executes every command, a failed one doesn't prevent the others
func (e *Engine) apply(commands []Command) error {
	var errs []error
	for _, command := range commands {
		slot := e.slots[command.SlotId]
		switch command.Type {
		case SET_IMAGE_COMMAND:
			if err := slot.SetImage(command.ImageId, command.Position); err != nil {
				e.stats.AcquireFailures++
				errs = append(errs, err)
			}
		case SET_VISIBLE_COMMAND:
			slot.SetVisible(command.Visible)
		default:
			errs = append(errs, fmt.Errorf("unknown command type %d", command.Type))
		}
	}
	return errors.Join(errs...)
}
