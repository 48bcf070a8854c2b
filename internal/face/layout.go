package face

import "image"

// Face size in pixels
const (
	Width  = 144
	Height = 168
)

type SlotId int64

const (
	HOUR_TENS_SLOT SlotId = iota
	HOUR_ONES_SLOT
	MINUTE_TENS_SLOT
	MINUTE_ONES_SLOT
	SECOND_TENS_SLOT
	SECOND_ONES_SLOT
	DAY_NAME_SLOT
	DATE_0_SLOT
	DATE_1_SLOT
	DATE_2_SLOT
	DATE_3_SLOT
	DATE_4_SLOT
	DATE_5_SLOT
	BATTERY_DIGIT_0_SLOT
	BATTERY_DIGIT_1_SLOT
	BATTERY_DIGIT_2_SLOT
	BATTERY_DIGIT_3_SLOT
	BATTERY_ICON_SLOT
	BLUETOOTH_SLOT
	TIME_FORMAT_SLOT

	SLOT_COUNT
)

var slotNames = [SLOT_COUNT]string{
	HOUR_TENS_SLOT:       "hour-tens",
	HOUR_ONES_SLOT:       "hour-ones",
	MINUTE_TENS_SLOT:     "minute-tens",
	MINUTE_ONES_SLOT:     "minute-ones",
	SECOND_TENS_SLOT:     "second-tens",
	SECOND_ONES_SLOT:     "second-ones",
	DAY_NAME_SLOT:        "day-name",
	DATE_0_SLOT:          "month-tens",
	DATE_1_SLOT:          "month-ones",
	DATE_2_SLOT:          "day-tens",
	DATE_3_SLOT:          "day-ones",
	DATE_4_SLOT:          "date-separator",
	DATE_5_SLOT:          "year-ones",
	BATTERY_DIGIT_0_SLOT: "battery-hundreds",
	BATTERY_DIGIT_1_SLOT: "battery-tens",
	BATTERY_DIGIT_2_SLOT: "battery-ones",
	BATTERY_DIGIT_3_SLOT: "battery-percent",
	BATTERY_ICON_SLOT:    "battery-charging",
	BLUETOOTH_SLOT:       "bluetooth",
	TIME_FORMAT_SLOT:     "am-pm",
}

func (id SlotId) String() string {
	if id < 0 || id >= SLOT_COUNT {
		return "unknown"
	}
	return slotNames[id]
}

var (
	hourTensPosition   = image.Pt(10, 45)
	hourOnesPosition   = image.Pt(40, 45)
	minuteTensPosition = image.Pt(77, 45)
	minuteOnesPosition = image.Pt(105, 45)
	secondTensPosition = image.Pt(107, 90)
	secondOnesPosition = image.Pt(120, 90)

	dayNamePosition = image.Pt(5, 140)
	datePositions   = [6]image.Point{
		image.Pt(50, 140),
		image.Pt(63, 140),
		image.Pt(81, 140),
		image.Pt(94, 140),
		image.Pt(112, 140),
		image.Pt(125, 140),
	}

	timeFormatPosition = image.Pt(120, 30)

	// x positions of the battery digits, the percent sign shifts right at 100%
	batteryDigitPositions = [4]image.Point{
		image.Pt(2, 2),
		image.Pt(15, 2),
		image.Pt(28, 2),
		image.Pt(41, 2),
	}
	batteryIconPosition = image.Pt(2, 2)
	bluetoothPosition   = image.Pt(125, 2)
)

// Date separator digit shown between day and year
const dateSeparatorDigit = 1
