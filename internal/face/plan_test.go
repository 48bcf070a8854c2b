package face

import (
	"testing"
)

func TestDisplayHour12h(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		displayHour := DisplayHour(hour, false)
		if displayHour < 1 || displayHour > 12 {
			t.Errorf("DisplayHour(%d, false) = %d, want 1..12", hour, displayHour)
		}
	}
	if got := DisplayHour(0, false); got != 12 {
		t.Errorf("DisplayHour(0, false) = %d, want 12", got)
	}
	if got := DisplayHour(12, false); got != 12 {
		t.Errorf("DisplayHour(12, false) = %d, want 12", got)
	}
	if got := DisplayHour(13, false); got != 1 {
		t.Errorf("DisplayHour(13, false) = %d, want 1", got)
	}
}

func TestDisplayHour24h(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		if got := DisplayHour(hour, true); got != hour {
			t.Errorf("DisplayHour(%d, true) = %d", hour, got)
		}
	}
}

func TestPlanBatteryPercent(t *testing.T) {
	for percent := 0; percent < 100; percent++ {
		state := NewDisplayState().Apply(PlanBattery(BatteryState{Percent: percent}))

		if state[BATTERY_DIGIT_0_SLOT].Visible {
			t.Fatalf("%d%%: hundreds digit visible", percent)
		}
		if state[BATTERY_ICON_SLOT].Visible {
			t.Fatalf("%d%%: charging icon visible", percent)
		}
		want := []ImageId{SmallDigitImage(percent / 10), SmallDigitImage(percent % 10), IMAGE_PERCENT}
		for i, imageId := range want {
			slotState := state[BATTERY_DIGIT_1_SLOT+SlotId(i)]
			if !slotState.Visible || slotState.ImageId != imageId {
				t.Fatalf("%d%%: battery digit %d = %+v, want visible %s", percent, i+1, slotState, imageId)
			}
		}
	}
}

func TestPlanBatteryFull(t *testing.T) {
	state := NewDisplayState().Apply(PlanBattery(BatteryState{Percent: 100}))

	want := []ImageId{IMAGE_DATENUM_1, IMAGE_DATENUM_0, IMAGE_DATENUM_0, IMAGE_PERCENT}
	for i, imageId := range want {
		slotState := state[BATTERY_DIGIT_0_SLOT+SlotId(i)]
		if !slotState.Visible || slotState.ImageId != imageId {
			t.Errorf("battery digit %d = %+v, want visible %s", i, slotState, imageId)
		}
		if slotState.Position != batteryDigitPositions[i] {
			t.Errorf("battery digit %d at %v, want %v", i, slotState.Position, batteryDigitPositions[i])
		}
	}
	if state[BATTERY_ICON_SLOT].Visible {
		t.Errorf("charging icon visible at 100%%")
	}
}

func TestPlanBatteryCharging(t *testing.T) {
	for _, percent := range []int{0, 42, 99, 100} {
		state := NewDisplayState().Apply(PlanBattery(BatteryState{Percent: percent, IsCharging: true}))
		for slotId := BATTERY_DIGIT_0_SLOT; slotId <= BATTERY_DIGIT_3_SLOT; slotId++ {
			if state[slotId].Visible {
				t.Errorf("%d%% charging: %s visible", percent, slotId)
			}
		}
		if !state[BATTERY_ICON_SLOT].Visible {
			t.Errorf("%d%% charging: charging icon hidden", percent)
		}
	}
}

func TestPlanMinuteBoundaryLeadingZeros(t *testing.T) {
	sample := TimeSample{Hour: 9, Minute: 41, Weekday: 1, Month: 3, Day: 2, Year: 2026}

	tests := []struct {
		name          string
		config        DisplayConfig
		hourTensShown bool
		monthShown    bool
		amPmShown     bool
	}{
		{"12h suppressed", DisplayConfig{}, false, false, true},
		{"12h leading zeros", DisplayConfig{ShowLeadingZeros: true}, true, true, true},
		{"24h", DisplayConfig{Use24Hour: true}, true, true, false},
		{"24h leading zeros", DisplayConfig{Use24Hour: true, ShowLeadingZeros: true}, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewDisplayState().Apply(PlanMinuteBoundary(sample, tt.config))
			if got := state[HOUR_TENS_SLOT].Visible; got != tt.hourTensShown {
				t.Errorf("hour tens visible = %t, want %t", got, tt.hourTensShown)
			}
			if got := state[DATE_0_SLOT].Visible; got != tt.monthShown {
				t.Errorf("month tens visible = %t, want %t", got, tt.monthShown)
			}
			if got := state[TIME_FORMAT_SLOT].Shown(); got != tt.amPmShown {
				t.Errorf("am/pm shown = %t, want %t", got, tt.amPmShown)
			}
		})
	}
}

func TestPlanMinuteBoundaryDate(t *testing.T) {
	sample := TimeSample{Hour: 21, Minute: 7, Weekday: 6, Month: 12, Day: 31, Year: 2027}
	state := NewDisplayState().Apply(PlanMinuteBoundary(sample, DisplayConfig{}))

	want := map[SlotId]ImageId{
		DAY_NAME_SLOT:    IMAGE_DAY_NAME_SAT,
		DATE_0_SLOT:      IMAGE_DATENUM_1,
		DATE_1_SLOT:      IMAGE_DATENUM_2,
		DATE_2_SLOT:      IMAGE_DATENUM_3,
		DATE_3_SLOT:      IMAGE_DATENUM_1,
		DATE_4_SLOT:      IMAGE_DATENUM_1,
		DATE_5_SLOT:      IMAGE_DATENUM_7,
		HOUR_TENS_SLOT:   IMAGE_NUM_0,
		HOUR_ONES_SLOT:   IMAGE_NUM_9,
		MINUTE_TENS_SLOT: IMAGE_NUM_0,
		MINUTE_ONES_SLOT: IMAGE_NUM_7,
		TIME_FORMAT_SLOT: IMAGE_PM_MODE,
	}
	for slotId, imageId := range want {
		if state[slotId].ImageId != imageId {
			t.Errorf("%s = %s, want %s", slotId, state[slotId].ImageId, imageId)
		}
	}
	if !state[DATE_0_SLOT].Visible {
		t.Errorf("month tens hidden for december")
	}
	if state[HOUR_TENS_SLOT].Visible {
		t.Errorf("hour tens visible for 9 PM")
	}
}

func TestPlanBluetooth(t *testing.T) {
	connected := NewDisplayState().Apply(PlanBluetooth(BluetoothState{Connected: true}))
	if got := connected[BLUETOOTH_SLOT]; got.ImageId != IMAGE_BLUETOOTH_CONNECTED || !got.Visible {
		t.Errorf("connected = %+v", got)
	}
	disconnected := connected.Apply(PlanBluetooth(BluetoothState{}))
	if got := disconnected[BLUETOOTH_SLOT]; got.ImageId != IMAGE_BLUETOOTH_DISCONNECTED || !got.Visible {
		t.Errorf("disconnected = %+v", got)
	}
}

func TestResourceTables(t *testing.T) {
	for d := 0; d < 10; d++ {
		if BigDigitImage(d) != IMAGE_NUM_0+ImageId(d) {
			t.Errorf("BigDigitImage(%d) = %s", d, BigDigitImage(d))
		}
		if SmallDigitImage(d) != IMAGE_DATENUM_0+ImageId(d) {
			t.Errorf("SmallDigitImage(%d) = %s", d, SmallDigitImage(d))
		}
	}
	if WeekdayImage(0) != IMAGE_DAY_NAME_SUN || WeekdayImage(6) != IMAGE_DAY_NAME_SAT {
		t.Errorf("weekday table out of order")
	}
	for id := ImageId(0); id < IMAGE_COUNT; id++ {
		if id.String() == "" {
			t.Errorf("image %d has no name", id)
		}
	}
}
