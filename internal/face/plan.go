package face

import "image"

type CommandType int64

const (
	SET_IMAGE_COMMAND CommandType = iota
	SET_VISIBLE_COMMAND
)

// Command is one side effect on a slot, computed by the Plan functions
type Command struct {
	Type     CommandType
	SlotId   SlotId
	ImageId  ImageId
	Position image.Point
	Visible  bool
}

func setImage(slotId SlotId, imageId ImageId, position image.Point) Command {
	return Command{Type: SET_IMAGE_COMMAND, SlotId: slotId, ImageId: imageId, Position: position}
}

func setVisible(slotId SlotId, visible bool) Command {
	return Command{Type: SET_VISIBLE_COMMAND, SlotId: slotId, Visible: visible}
}

// DisplayHour converts a 0-23 hour to the hour shown on the face
func DisplayHour(hour int, use24Hour bool) int {
	if use24Hour {
		return hour
	}
	displayHour := hour % 12

	// Converts "0" to "12"
	if displayHour == 0 {
		return 12
	}
	return displayHour
}

// PlanSeconds updates the seconds digits, they are always visible
func PlanSeconds(t TimeSample) []Command {
	return []Command{
		setImage(SECOND_TENS_SLOT, SmallDigitImage(t.Second/10), secondTensPosition),
		setImage(SECOND_ONES_SLOT, SmallDigitImage(t.Second%10), secondOnesPosition),
		setVisible(SECOND_TENS_SLOT, true),
		setVisible(SECOND_ONES_SLOT, true),
	}
}

// PlanMinuteBoundary refreshes day name, date, hour, minute and AM/PM
func PlanMinuteBoundary(t TimeSample, config DisplayConfig) []Command {
	commands := make([]Command, 0, 20)

	// Day name
	commands = append(commands, setImage(DAY_NAME_SLOT, WeekdayImage(t.Weekday), dayNamePosition))

	// Date number
	dateDigits := [6]int{
		t.Month / 10,
		t.Month % 10,
		t.Day / 10,
		t.Day % 10,
		dateSeparatorDigit,
		t.Year % 10,
	}
	for i, digit := range dateDigits {
		commands = append(commands, setImage(DATE_0_SLOT+SlotId(i), SmallDigitImage(digit), datePositions[i]))
	}

	// Hour and minutes
	displayHour := DisplayHour(t.Hour, config.Use24Hour)
	commands = append(commands,
		setImage(HOUR_TENS_SLOT, BigDigitImage(displayHour/10), hourTensPosition),
		setImage(HOUR_ONES_SLOT, BigDigitImage(displayHour%10), hourOnesPosition),
		setImage(MINUTE_TENS_SLOT, BigDigitImage(t.Minute/10), minuteTensPosition),
		setImage(MINUTE_ONES_SLOT, BigDigitImage(t.Minute%10), minuteOnesPosition),
	)

	if config.Use24Hour {
		return append(commands,
			setVisible(HOUR_TENS_SLOT, true),
			setVisible(DATE_0_SLOT, true),
			setVisible(TIME_FORMAT_SLOT, false),
		)
	}

	// AM/PM and leading zeros
	timeFormatImage := IMAGE_AM_MODE
	if t.Hour >= 12 {
		timeFormatImage = IMAGE_PM_MODE
	}
	return append(commands,
		setImage(TIME_FORMAT_SLOT, timeFormatImage, timeFormatPosition),
		setVisible(TIME_FORMAT_SLOT, true),
		setVisible(HOUR_TENS_SLOT, displayHour >= 10 || config.ShowLeadingZeros),
		setVisible(DATE_0_SLOT, t.Month >= 10 || config.ShowLeadingZeros),
	)
}

// PlanBattery shows either the charging icon or the percentage digits
func PlanBattery(state BatteryState) []Command {
	if state.IsCharging {
		return []Command{
			setVisible(BATTERY_DIGIT_0_SLOT, false),
			setVisible(BATTERY_DIGIT_1_SLOT, false),
			setVisible(BATTERY_DIGIT_2_SLOT, false),
			setVisible(BATTERY_DIGIT_3_SLOT, false),
			setVisible(BATTERY_ICON_SLOT, true),
		}
	}

	commands := []Command{
		setVisible(BATTERY_DIGIT_1_SLOT, true),
		setVisible(BATTERY_DIGIT_2_SLOT, true),
		setVisible(BATTERY_DIGIT_3_SLOT, true),
		setVisible(BATTERY_ICON_SLOT, false),
	}

	if state.Percent == 100 {
		return append(commands,
			setVisible(BATTERY_DIGIT_0_SLOT, true),
			setImage(BATTERY_DIGIT_0_SLOT, SmallDigitImage(1), batteryDigitPositions[0]),
			setImage(BATTERY_DIGIT_1_SLOT, SmallDigitImage(0), batteryDigitPositions[1]),
			setImage(BATTERY_DIGIT_2_SLOT, SmallDigitImage(0), batteryDigitPositions[2]),
			setImage(BATTERY_DIGIT_3_SLOT, IMAGE_PERCENT, batteryDigitPositions[3]),
		)
	}
	return append(commands,
		setVisible(BATTERY_DIGIT_0_SLOT, false),
		setImage(BATTERY_DIGIT_1_SLOT, SmallDigitImage(state.Percent/10), batteryDigitPositions[0]),
		setImage(BATTERY_DIGIT_2_SLOT, SmallDigitImage(state.Percent%10), batteryDigitPositions[1]),
		setImage(BATTERY_DIGIT_3_SLOT, IMAGE_PERCENT, batteryDigitPositions[2]),
	)
}

func PlanBluetooth(state BluetoothState) []Command {
	imageId := IMAGE_BLUETOOTH_DISCONNECTED
	if state.Connected {
		imageId = IMAGE_BLUETOOTH_CONNECTED
	}
	return []Command{
		setImage(BLUETOOTH_SLOT, imageId, bluetoothPosition),
		setVisible(BLUETOOTH_SLOT, true),
	}
}
