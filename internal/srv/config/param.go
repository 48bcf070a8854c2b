package config

import (
	_ "embed"
	"time"
)

//go:embed param_default.yaml
var ParamDefaultFile []byte

type ServerParam struct {
	ClockFormat      ClockFormat    `yaml:"clock_format"`
	ShowLeadingZeros bool           `yaml:"show_leading_zeros"`
	BatteryParam     BatteryParam   `yaml:"battery"`
	BluetoothParam   BluetoothParam `yaml:"bluetooth"`
	DisplayParam     DisplayParam   `yaml:"display"`
	ApiParam         ApiParam       `yaml:"api"`
}

type BatteryParam struct {
	Supply       string `yaml:"supply"`
	PollInterval int64  `yaml:"poll_interval"`
}

func (p BatteryParam) GetPollInterval() time.Duration {
	return pollInterval(p.PollInterval)
}

type BluetoothParam struct {
	Enabled      bool  `yaml:"enabled"`
	PollInterval int64 `yaml:"poll_interval"`
}

func (p BluetoothParam) GetPollInterval() time.Duration {
	return pollInterval(p.PollInterval)
}

type DisplayParam struct {
	Contrast   byte  `yaml:"contrast"`
	MaxBitmaps int64 `yaml:"max_bitmaps"`
}

type ApiParam struct {
	Enabled bool   `yaml:"enabled"`
	SslPort int64  `yaml:"ssl_port"`
	ApiKey  string `yaml:"api_key"`
}

func pollInterval(seconds int64) time.Duration {
	if seconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(seconds) * time.Second
}
