package face

import "image"

type SlotState struct {
	ImageId  ImageId
	Position image.Point
	Visible  bool
}

// DisplayState is the target state of every slot
type DisplayState [SLOT_COUNT]SlotState

// NewDisplayState returns the state of freshly created slots: no image, visible
func NewDisplayState() DisplayState {
	var state DisplayState
	for i := range state {
		state[i].Visible = true
	}
	return state
}

// Apply returns the state reached once commands are executed, without side effects
func (ds DisplayState) Apply(commands []Command) DisplayState {
	for _, command := range commands {
		slotState := &ds[command.SlotId]
		switch command.Type {
		case SET_IMAGE_COMMAND:
			slotState.ImageId = command.ImageId
			slotState.Position = command.Position
		case SET_VISIBLE_COMMAND:
			slotState.Visible = command.Visible
		}
	}
	return ds
}

// Shown reports whether the slot is composited with an image
func (ss SlotState) Shown() bool {
	return ss.Visible && ss.ImageId != NO_IMAGE
}
