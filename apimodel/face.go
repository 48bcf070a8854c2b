package apimodel

// Face is the displayed watch face as seen by the api
type Face struct {
	Use24Hour        bool   `json:"use_24_hour"`
	ShowLeadingZeros bool   `json:"show_leading_zeros"`
	DisplayOn        bool   `json:"display_on"`
	Slots            []Slot `json:"slots"`

	LiveImages      int64 `json:"live_images"`
	SecondTicks     int64 `json:"second_ticks"`
	MinuteRefreshes int64 `json:"minute_refreshes"`
	AcquireFailures int64 `json:"acquire_failures"`
}

type Slot struct {
	Name    string `json:"name"`
	Image   string `json:"image"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Visible bool   `json:"visible"`
}

// Shown returns the image names of the visible slots holding an image
func (f *Face) Shown() map[string]string {
	shown := make(map[string]string)
	for _, slot := range f.Slots {
		if slot.Visible && slot.Image != "" {
			shown[slot.Name] = slot.Image
		}
	}
	return shown
}
