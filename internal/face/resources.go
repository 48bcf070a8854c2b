package face

type ImageId int64

const (
	NO_IMAGE ImageId = iota

	IMAGE_NUM_0
	IMAGE_NUM_1
	IMAGE_NUM_2
	IMAGE_NUM_3
	IMAGE_NUM_4
	IMAGE_NUM_5
	IMAGE_NUM_6
	IMAGE_NUM_7
	IMAGE_NUM_8
	IMAGE_NUM_9

	IMAGE_DATENUM_0
	IMAGE_DATENUM_1
	IMAGE_DATENUM_2
	IMAGE_DATENUM_3
	IMAGE_DATENUM_4
	IMAGE_DATENUM_5
	IMAGE_DATENUM_6
	IMAGE_DATENUM_7
	IMAGE_DATENUM_8
	IMAGE_DATENUM_9

	IMAGE_DAY_NAME_SUN
	IMAGE_DAY_NAME_MON
	IMAGE_DAY_NAME_TUE
	IMAGE_DAY_NAME_WED
	IMAGE_DAY_NAME_THU
	IMAGE_DAY_NAME_FRI
	IMAGE_DAY_NAME_SAT

	IMAGE_PERCENT
	IMAGE_AM_MODE
	IMAGE_PM_MODE
	IMAGE_BLUETOOTH_CONNECTED
	IMAGE_BLUETOOTH_DISCONNECTED
	IMAGE_BATTERY_CHARGING

	IMAGE_COUNT
)

var bigDigitImageIds = [10]ImageId{
	IMAGE_NUM_0,
	IMAGE_NUM_1,
	IMAGE_NUM_2,
	IMAGE_NUM_3,
	IMAGE_NUM_4,
	IMAGE_NUM_5,
	IMAGE_NUM_6,
	IMAGE_NUM_7,
	IMAGE_NUM_8,
	IMAGE_NUM_9,
}

var smallDigitImageIds = [10]ImageId{
	IMAGE_DATENUM_0,
	IMAGE_DATENUM_1,
	IMAGE_DATENUM_2,
	IMAGE_DATENUM_3,
	IMAGE_DATENUM_4,
	IMAGE_DATENUM_5,
	IMAGE_DATENUM_6,
	IMAGE_DATENUM_7,
	IMAGE_DATENUM_8,
	IMAGE_DATENUM_9,
}

var weekdayImageIds = [7]ImageId{
	IMAGE_DAY_NAME_SUN,
	IMAGE_DAY_NAME_MON,
	IMAGE_DAY_NAME_TUE,
	IMAGE_DAY_NAME_WED,
	IMAGE_DAY_NAME_THU,
	IMAGE_DAY_NAME_FRI,
	IMAGE_DAY_NAME_SAT,
}

// BigDigitImage returns the time digit image for d (0-9)
func BigDigitImage(d int) ImageId {
	return bigDigitImageIds[d]
}

// SmallDigitImage returns the date/seconds/battery digit image for d (0-9)
func SmallDigitImage(d int) ImageId {
	return smallDigitImageIds[d]
}

// WeekdayImage returns the day name image, Sunday being 0
func WeekdayImage(w int) ImageId {
	return weekdayImageIds[w]
}

var imageNames = [IMAGE_COUNT]string{
	NO_IMAGE:                     "none",
	IMAGE_NUM_0:                  "num_0",
	IMAGE_NUM_1:                  "num_1",
	IMAGE_NUM_2:                  "num_2",
	IMAGE_NUM_3:                  "num_3",
	IMAGE_NUM_4:                  "num_4",
	IMAGE_NUM_5:                  "num_5",
	IMAGE_NUM_6:                  "num_6",
	IMAGE_NUM_7:                  "num_7",
	IMAGE_NUM_8:                  "num_8",
	IMAGE_NUM_9:                  "num_9",
	IMAGE_DATENUM_0:              "datenum_0",
	IMAGE_DATENUM_1:              "datenum_1",
	IMAGE_DATENUM_2:              "datenum_2",
	IMAGE_DATENUM_3:              "datenum_3",
	IMAGE_DATENUM_4:              "datenum_4",
	IMAGE_DATENUM_5:              "datenum_5",
	IMAGE_DATENUM_6:              "datenum_6",
	IMAGE_DATENUM_7:              "datenum_7",
	IMAGE_DATENUM_8:              "datenum_8",
	IMAGE_DATENUM_9:              "datenum_9",
	IMAGE_DAY_NAME_SUN:           "day_name_sun",
	IMAGE_DAY_NAME_MON:           "day_name_mon",
	IMAGE_DAY_NAME_TUE:           "day_name_tue",
	IMAGE_DAY_NAME_WED:           "day_name_wed",
	IMAGE_DAY_NAME_THU:           "day_name_thu",
	IMAGE_DAY_NAME_FRI:           "day_name_fri",
	IMAGE_DAY_NAME_SAT:           "day_name_sat",
	IMAGE_PERCENT:                "percent",
	IMAGE_AM_MODE:                "am_mode",
	IMAGE_PM_MODE:                "pm_mode",
	IMAGE_BLUETOOTH_CONNECTED:    "bluetooth_connected",
	IMAGE_BLUETOOTH_DISCONNECTED: "bluetooth_disconnected",
	IMAGE_BATTERY_CHARGING:       "battery_charging",
}

func (id ImageId) String() string {
	if id < 0 || id >= IMAGE_COUNT {
		return "unknown"
	}
	return imageNames[id]
}
