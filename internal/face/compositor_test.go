package face

import (
	"fmt"
	"image"
)

// countingCompositor records every acquire/release so tests can check pairing
type countingCompositor struct {
	nextHandle ImageHandle
	live       map[ImageHandle]ImageId
	acquired   int
	released   int
	failing    map[ImageId]bool

	placed  map[SlotId]ImageHandle
	visible map[SlotId]bool
}

func newCountingCompositor() *countingCompositor {
	return &countingCompositor{
		live:    make(map[ImageHandle]ImageId),
		failing: make(map[ImageId]bool),
		placed:  make(map[SlotId]ImageHandle),
		visible: make(map[SlotId]bool),
	}
}

func (c *countingCompositor) AcquireImage(imageId ImageId) (ImageHandle, error) {
	if c.failing[imageId] {
		return 0, fmt.Errorf("out of memory: %w", ErrResourceUnavailable)
	}
	c.nextHandle++
	c.acquired++
	c.live[c.nextHandle] = imageId
	return c.nextHandle, nil
}

func (c *countingCompositor) ReleaseImage(handle ImageHandle) {
	if _, ok := c.live[handle]; !ok {
		panic(fmt.Sprintf("release of unknown handle %d", handle))
	}
	delete(c.live, handle)
	c.released++
}

func (c *countingCompositor) PlaceImage(slotId SlotId, handle ImageHandle, position image.Point) {
	if _, ok := c.live[handle]; !ok {
		panic(fmt.Sprintf("placing unknown handle %d", handle))
	}
	c.placed[slotId] = handle
}

func (c *countingCompositor) SetVisible(slotId SlotId, visible bool) {
	c.visible[slotId] = visible
}

type fakeBattery struct {
	state BatteryState
}

func (b *fakeBattery) Peek() BatteryState {
	return b.state
}
