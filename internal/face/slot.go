package face

import (
	"errors"
	"fmt"
	"image"
)

var ErrResourceUnavailable = errors.New("image resource unavailable")

type ImageHandle int64

// Compositor owns the image memory and composes slot regions onto the screen.
// AcquireImage must wrap ErrResourceUnavailable when the image can't be allocated.
type Compositor interface {
	AcquireImage(imageId ImageId) (ImageHandle, error)
	ReleaseImage(handle ImageHandle)
	PlaceImage(slotId SlotId, handle ImageHandle, position image.Point)
	SetVisible(slotId SlotId, visible bool)
}

// Slot holds at most one acquired image. Every handle it acquires is released
// exactly once, either when replaced or on Release.
type Slot struct {
	id         SlotId
	compositor Compositor

	held     bool
	handle   ImageHandle
	imageId  ImageId
	position image.Point
	visible  bool
}

func newSlot(id SlotId, compositor Compositor) *Slot {
	return &Slot{id: id, compositor: compositor, visible: true}
}

func (s *Slot) Id() SlotId {
	return s.id
}

func (s *Slot) State() SlotState {
	if !s.held {
		return SlotState{Visible: s.visible}
	}
	return SlotState{ImageId: s.imageId, Position: s.position, Visible: s.visible}
}

// SetImage swaps the displayed image. On acquisition failure the slot keeps its
// previous image, position and visibility.
func (s *Slot) SetImage(imageId ImageId, position image.Point) error {
	if s.held && s.imageId == imageId {
		if s.position != position {
			s.position = position
			s.compositor.PlaceImage(s.id, s.handle, position)
		}
		return nil
	}

	handle, err := s.compositor.AcquireImage(imageId)
	if err != nil {
		return fmt.Errorf("slot %s, image %s: %w", s.id, imageId, err)
	}

	oldHandle, hadImage := s.handle, s.held
	s.held = true
	s.handle = handle
	s.imageId = imageId
	s.position = position
	s.compositor.PlaceImage(s.id, handle, position)

	if hadImage {
		s.compositor.ReleaseImage(oldHandle)
	}
	return nil
}

func (s *Slot) SetVisible(visible bool) {
	s.visible = visible
	s.compositor.SetVisible(s.id, visible)
}

func (s *Slot) Release() {
	if !s.held {
		return
	}
	s.held = false
	s.compositor.ReleaseImage(s.handle)
	s.handle = 0
	s.imageId = NO_IMAGE
}
