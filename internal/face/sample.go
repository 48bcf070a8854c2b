package face

import "time"

// TimeSample is the wall clock snapshot taken at each tick
type TimeSample struct {
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-59
	Weekday int // 0-6, Sunday is 0
	Month   int // 1-12
	Day     int // 1-31
	Year    int
}

func NewTimeSample(t time.Time) TimeSample {
	return TimeSample{
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: int(t.Weekday()),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Year:    t.Year(),
	}
}

type BatteryState struct {
	Percent    int  `yaml:"percent" json:"percent"`
	IsCharging bool `yaml:"charging" json:"charging"`
}

type BluetoothState struct {
	Connected bool `yaml:"connected" json:"connected"`
}

type DisplayConfig struct {
	Use24Hour        bool
	ShowLeadingZeros bool
}

// BatterySource is polled by the engine on every second tick
type BatterySource interface {
	Peek() BatteryState
}
